// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	addr       = flag.String("addr", "", "Listen address, overrides the config file")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the config file")
	logFormat  = flag.String("log-format", "", "Log format (json, console), overrides the config file")
	noUndo     = flag.Bool("no-undo", false, "Do not let players take back moves")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set.
func applyFlags(cfg *config.Config) {
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *noUndo {
		cfg.Games.AllowUndo = false
	}
}
