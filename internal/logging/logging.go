package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a zerolog Logger on stderr. Stdout is left to report output.
// APP_ENV=dev (or development) uses a human-friendly console writer.
func New(level, env string) zerolog.Logger {
	return newLogger(os.Stderr, level, env)
}

// Init builds the logger and installs it as the global zerolog logger
func Init(level, env string) zerolog.Logger {
	l := New(level, env)
	log.Logger = l
	return l
}

func newLogger(w io.Writer, level, env string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if env == "dev" || env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
