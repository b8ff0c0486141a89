package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default config should validate, got: %v", err)
	}
}

func TestValidateRejectsInconsistencies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"upward-positive jump impulse", func(c *Config) { c.Physics.JumpImpulse = 5 }},
		{"zero max fall speed", func(c *Config) { c.Physics.MaxFallSpeed = 0 }},
		{"ground above field", func(c *Config) { c.Field.GroundY = c.Field.Height + 1 }},
		{"duck taller than run", func(c *Config) { c.Character.DuckHeight = c.Character.Height }},
		{"inverted spawn gap", func(c *Config) { c.Obstacles.MaxGap = c.Obstacles.MinGap - 1 }},
		{"zero-size obstacle", func(c *Config) { c.Obstacles.HighBird.Width = 0 }},
		{"negative altitude", func(c *Config) { c.Obstacles.LowBird.Altitude = -1 }},
		{"zero score increment", func(c *Config) { c.Score.PerTick = 0 }},
		{"max speed below initial", func(c *Config) { c.Score.MaxSpeed = c.Score.InitialSpeed - 1 }},
		{"zero speed interval", func(c *Config) { c.Score.SpeedInterval = 0 }},
		{"no animation frames", func(c *Config) { c.Animation.Running.Frames = 0 }},
		{"negative frame duration", func(c *Config) { c.Animation.Ducking.FrameMillis = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject the broken config")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := "physics:\n  gravity: 0.9\n  jump_impulse: -8\n  max_fall_speed: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("custom gravity not applied, got %v", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Whatever file won the search order, the result must be usable.
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}
