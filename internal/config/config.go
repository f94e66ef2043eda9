// Package config loads the optional sysprobe config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the file-configurable settings. Flags override anything
// set here.
type Config struct {
	// NoColor disables ANSI color even on a terminal.
	NoColor bool `yaml:"no_color"`
	// Hide lists report keys to omit, e.g. "Battery".
	Hide []string `yaml:"hide"`
	// Timeout bounds the whole collection run, package probes included.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// DefaultPath resolves $XDG_CONFIG_HOME/sysprobe/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "sysprobe", "config.yaml")
}

// Load reads the config at path, or the defaults when the file does not
// exist. A present but malformed file is an error; silently ignoring it
// would make the file useless for debugging.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Default().Timeout
	}
	return cfg, nil
}

// Hidden reports whether a report key is configured away.
func (c *Config) Hidden(key string) bool {
	for _, h := range c.Hide {
		if h == key {
			return true
		}
	}
	return false
}
