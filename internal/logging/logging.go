// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger for console output at the given
// level (debug, info, warn, error).
func Setup(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("unsupported log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return nil
}

// DebugEnabled reports whether the global logger emits debug output.
func DebugEnabled() bool {
	return log.Logger.GetLevel() <= zerolog.DebugLevel
}
