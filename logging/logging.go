package logging

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var ErrFormat = errors.New("unknown log format")

// Setup replaces the global zerolog logger. Console output is meant for people,
// JSON for collecting experiment runs.
func Setup(level, format string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var w io.Writer
	switch format {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	case FormatJSON:
		w = out
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
