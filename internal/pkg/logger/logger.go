package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-cms/InkWell/internal/pkg/env"
)

// Log is the application-wide structured logger.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup configures level and output format from the environment. In dev the
// output is the human-readable console writer.
func Setup() {
	level, err := zerolog.ParseLevel(env.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	Log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if env.IsDev() {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
