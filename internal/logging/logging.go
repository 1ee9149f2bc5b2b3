package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. format is "console" or "json";
// unknown formats fall back to console.
func Setup(level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.ToLower(format) == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return nil
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// Component returns a logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
