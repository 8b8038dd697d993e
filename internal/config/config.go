// Package config holds the kinetic CLI defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a config value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds CLI defaults. Flags override them.
type Config struct {
	GridMode grid.Mode       `yaml:"grid_mode"`
	PropType motion.PropType `yaml:"prop_type"`
	Format   string          `yaml:"format"`
	// Tables is an optional path to YAML letter tables.
	Tables      string `yaml:"tables"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		GridMode:    grid.Diamond,
		PropType:    motion.Staff,
		Format:      FormatYAML,
		Concurrency: 4,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// KINETIC_TABLES, when set, overrides the tables path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("KINETIC_TABLES"); p != "" {
		c.Tables = p
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch {
	case !c.GridMode.Valid():
		return fmt.Errorf("grid_mode %q: %w", c.GridMode, ErrInvalidConfig)
	case !c.PropType.Valid():
		return fmt.Errorf("prop_type %q: %w", c.PropType, ErrInvalidConfig)
	case c.Format != FormatYAML && c.Format != FormatJSON:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	case c.Concurrency < 1:
		return fmt.Errorf("concurrency %d: %w", c.Concurrency, ErrInvalidConfig)
	}

	return nil
}
