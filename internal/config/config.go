// Package config loads portsweep defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vulnverified/portsweep/internal/engine"
)

// FileName is the config file looked up in the home directory.
const FileName = ".portsweep.yaml"

// Config holds all runtime configuration for portsweep.
type Config struct {
	Range       engine.PortRange `yaml:"range"`
	Timeout     time.Duration    `yaml:"timeout"`
	Concurrency int              `yaml:"concurrency"`
	Nameserver  string           `yaml:"nameserver"`
	NoColor     bool             `yaml:"no_color"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Range:       engine.PortRange{Start: 1, End: 1024},
		Timeout:     engine.DefaultTimeout,
		Concurrency: 100,
	}
}

// Load reads a YAML config file and merges it onto the defaults.
// An empty path means ~/.portsweep.yaml. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that the engine would otherwise silently clamp.
func (c Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
