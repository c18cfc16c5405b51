// Package logging builds the process logger and propagates request IDs.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the process-wide logger. Debug mode lowers the level. The
// returned logger is passed down explicitly; there is no ambient global.
func New(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().
		Logger()
}
