package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger. Diagnostics go to stderr so the prompts and
// command output on stdout stay clean enough to pipe. An explicit level
// overrides the environment default.
func New(environment, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	logger := zerolog.New(output).With().
		Timestamp().
		Str("env", environment).
		Logger()

	zerolog.SetGlobalLevel(levelFor(environment, level))
	return logger
}

func levelFor(environment, level string) zerolog.Level {
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			return parsed
		}
	}
	if environment == "production" {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}
