package config

import "github.com/rs/zerolog"

// Log output formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error, ...)
	Level string `yaml:"level"`

	// Format is LogFormatJSON or LogFormatConsole
	Format string `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: LogFormatJSON,
	}
}

// Validate checks the level parses and the format is known.
func (c *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return invalid("log.level", "unknown level %q", c.Level)
	}
	switch c.Format {
	case LogFormatJSON, LogFormatConsole:
		return nil
	default:
		return invalid("log.format", "unknown format %q", c.Format)
	}
}
