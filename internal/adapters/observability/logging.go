package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the service-wide zerolog Logger.
// APP_ENV=dev (or development) uses a human-friendly console writer and
// debug level; everything else logs JSON at info.
func NewLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).Level(zerolog.InfoLevel).
		With().Timestamp().Str("service", "rantease-api").Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("service", "rantease-api").Logger()
	}
	return l
}
