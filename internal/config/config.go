// Package config loads the optional TOML configuration of the command line
// tool.
//
// Example:
//
//	[output]
//	format = "yaml"
//
//	[log]
//	level = "info"
//	format = "json"
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/letung3105/pyvalid/internal/logger"
	"github.com/letung3105/pyvalid/internal/pyvalid"
)

// FormatNone disables printing the syntax tree of valid inputs.
const FormatNone = "none"

// Config is the root of the configuration file
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how syntax trees are printed
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig controls diagnostics logging
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	// defaults never fail validation
	_ = cfg.validate()
	return cfg
}

// Load reads the configuration from a TOML file. An empty path yields the
// default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate checks the configuration for errors and sets defaults
func (c *Config) validate() error {
	if c.Output.Format == "" {
		c.Output.Format = pyvalid.FormatSexp
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Output.Format != FormatNone && !pyvalid.IsFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	return cfg
}
