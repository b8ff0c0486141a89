package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.dasher/config.yaml -> ./configs/dasher.yaml -> embedded default.
// A customPath that cannot be read or parsed is an error; the fallback
// locations are skipped silently when absent.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		var cfg Config
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "dasher.yaml")); ok {
		return cfg, nil
	}

	return Default(), nil
}

// tryLoad reads and parses a config file, reporting whether it succeeded.
func tryLoad(path string) (Config, bool) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the per-user config location, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "config.yaml")
}
