package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all hexgrid tool configuration
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// GridConfig describes the grid the tool builds
type GridConfig struct {
	Name    string `yaml:"name"`
	Height  int    `yaml:"height"`
	Width   int    `yaml:"width"`
	Default int    `yaml:"default"` // value every tile starts with
}

// RedisConfig holds Redis connection settings. An empty Address disables
// snapshot storage.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults. Grid dimensions
// default to 8x8 only when absent; an explicit 0 is kept.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Grid: GridConfig{Height: 8, Width: 8}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Grid.Name == "" {
		cfg.Grid.Name = "default"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "hexgrid:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the tool cannot run with.
func (c *Config) Validate() error {
	if c.Grid.Height < 0 || c.Grid.Width < 0 {
		return fmt.Errorf("invalid grid size %dx%d: %w", c.Grid.Height, c.Grid.Width, ErrInvalidGrid)
	}
	return nil
}

// ErrInvalidGrid is returned for negative grid dimensions.
var ErrInvalidGrid = errors.New("config: grid dimensions must not be negative")
