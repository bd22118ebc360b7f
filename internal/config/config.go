// Package config provides configuration structures for the chess server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all configuration for the chess server.
// It is composed of sub-configs for logical grouping.
type Config struct {
	// Server holds the HTTP listener settings
	Server *ServerConfig `yaml:"server"`

	// Log holds logger settings
	Log *LogConfig `yaml:"log"`

	// Games holds limits and options for hosted games
	Games *GamesConfig `yaml:"games"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server: NewServerConfig(),
		Log:    NewLogConfig(),
		Games:  NewGamesConfig(),
	}
}

// Load reads a YAML file and overlays it on the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(data)
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	// An explicit null section leaves the pointer nil.
	if cfg.Server == nil {
		cfg.Server = NewServerConfig()
	}
	if cfg.Log == nil {
		cfg.Log = NewLogConfig()
	}
	if cfg.Games == nil {
		cfg.Games = NewGamesConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every sub-config and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Games.Validate()
}

func invalid(field, format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, "field %s: %s", field, fmt.Sprintf(format, args...))
}
