package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Init must run before anything writes to it;
// the zero value still works (writes to stderr, info level).
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if env == "development" {
		level = zerolog.DebugLevel
	}

	Log = zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()

	if env == "development" {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
