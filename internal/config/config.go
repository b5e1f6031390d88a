// Package config holds Aurora's runtime configuration: file-backed YAML with
// environment overrides. The scene catalog and the visibility threshold are
// deliberately not here; they are compile-time data, not configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration tree.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// DarkMode forces the dark theme. When false the theme is detected from
	// the terminal environment.
	DarkMode bool `yaml:"dark_mode" env:"AURORA_DARK_MODE"`

	// Mouse enables wheel scrolling. On by default.
	Mouse bool `yaml:"mouse" env:"AURORA_MOUSE"`

	// ReducedMotion collapses the loading splash and entrance styling.
	ReducedMotion bool `yaml:"reduced_motion" env:"AURORA_REDUCED_MOTION"`
}

// LoggingConfig controls the file-backed logger. The TUI owns stdout, so
// logs never go to the terminal.
type LoggingConfig struct {
	// File is the log sink path. Empty disables logging entirely.
	File string `yaml:"file" env:"AURORA_LOG_FILE"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"AURORA_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Mouse: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aurora", "config.yaml")
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path when one exists, overlaid by AURORA_* environment variables.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Fall through to env overrides.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	return cfg, nil
}
