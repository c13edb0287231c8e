package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process-wide structured logger. LOG_LEVEL and LOG_PRETTY
// are read here so callers only pass the service name.
func New(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if os.Getenv("LOG_PRETTY") == "true" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
}
