package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process logger. APP_ENV=dev (or development) gets a console writer
// at debug level; anything else gets JSON lines at info. level, when it parses, overrides
// the default level.
func NewLogger(env, level string) zerolog.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(out io.Writer, env, level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if env == "dev" || env == "development" {
		lvl = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
		lvl = l
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "realty-listings").Logger()
}
