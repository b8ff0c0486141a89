package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/dasher.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded default is part of the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic("config: embedded default is invalid: " + err.Error())
	}
	return cfg
}

// DefaultYAML returns the raw embedded default YAML, for `dasher config`.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
