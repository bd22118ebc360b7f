package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the read, write and idle timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write, idle time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	b.cfg.Server.IdleTimeout = idle
	return b
}

// WithShutdownTimeout sets the graceful shutdown bound.
func (b *ConfigBuilder) WithShutdownTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.ShutdownTimeout = d
	return b
}

// WithAllowedOrigins sets the CORS origins.
func (b *ConfigBuilder) WithAllowedOrigins(origins ...string) *ConfigBuilder {
	b.cfg.Server.AllowedOrigins = origins
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithMaxGames sets the store capacity.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Games.MaxGames = n
	return b
}

// WithUndo enables or disables taking back moves.
func (b *ConfigBuilder) WithUndo(enabled bool) *ConfigBuilder {
	b.cfg.Games.AllowUndo = enabled
	return b
}
