// Package logging configures structured logging for the service.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tinted slog handler as the process default. Debug
// mode lowers the level and records source positions.
func Setup(debug bool) {
	level := slog.LevelInfo
	opts := &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, opts)))
}
