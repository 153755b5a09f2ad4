// Package logger sets up the global zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Init configures the global logger to write to stderr at level in the given
// format ("console" or "json").
func Init(level, format string) error {
	return InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit output.
func InitWriter(out io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	var output io.Writer
	switch strings.ToLower(format) {
	case "", FormatConsole:
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: milliTimeFormat}
	case FormatJSON:
		output = out
	default:
		return errors.Errorf("invalid log format %q", format)
	}

	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return nil
}
