package config

import "time"

// ServerConfig holds settings for the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, host:port
	Addr string `yaml:"addr"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds the graceful shutdown on SIGINT/SIGTERM
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// AllowedOrigins lists the origins allowed by CORS, "*" for any
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		AllowedOrigins:  []string{"*"},
	}
}

// Validate rejects an empty address and negative timeouts.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return invalid("server.addr", "must not be empty")
	}
	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"server.read_timeout", c.ReadTimeout},
		{"server.write_timeout", c.WriteTimeout},
		{"server.idle_timeout", c.IdleTimeout},
		{"server.shutdown_timeout", c.ShutdownTimeout},
	}
	for _, to := range timeouts {
		if to.d < 0 {
			return invalid(to.name, "negative duration %s", to.d)
		}
	}
	return nil
}
