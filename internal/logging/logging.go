// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"envprof/internal/profile"
)

// Setup sends human-readable logs to w. Debug messages appear only when
// verbose is set.
func Setup(w io.Writer, verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    false,
		TimeFormat: time.TimeOnly,
	})
}

// Warnings logs every warning collected while building table.
func Warnings(logger zerolog.Logger, table *profile.Table) {
	for _, w := range table.Warnings() {
		event := logger.Warn().Str("key", w.Key)
		if w.Profile != "" {
			event = event.Str("profile", w.Profile)
		}
		event.Msg("unused configuration key")
	}
}
