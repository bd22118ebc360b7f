// Package logging builds the zerolog logger used by the server.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// New returns a logger writing to w at the given level. format is
// config.LogFormatJSON or config.LogFormatConsole.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log level %q", errors.ErrInvalidConfig, level)
	}

	switch format {
	case config.LogFormatJSON:
	case config.LogFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: log format %q", errors.ErrInvalidConfig, format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// FromConfig is New with the settings of cfg.
func FromConfig(w io.Writer, cfg *config.LogConfig) (zerolog.Logger, error) {
	return New(w, cfg.Level, cfg.Format)
}
