// Package logging builds the zerolog logger of the tabview command.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// New returns a logger writing to w. format is FormatPlain (human readable
// console output) or FormatJSON; level is one of the Level constants.
func New(format, level string, w io.Writer) (zerolog.Logger, error) {
	var out io.Writer
	switch strings.ToLower(format) {
	case FormatPlain, "":
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.Kitchen,
		}
	case FormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", format)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.Nop(), fmt.Errorf("log level is required")
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
