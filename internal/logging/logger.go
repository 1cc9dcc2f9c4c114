package logging

import (
	"io"
	"log/slog"

	"github.com/3-lines-studio/accordion/internal/env"
)

// New returns a text logger writing to w. Dev mode logs at debug level
// with source locations.
func New(w io.Writer, mode env.Mode) *slog.Logger {
	level := slog.LevelInfo
	if mode == env.ModeDev {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: mode == env.ModeDev,
	}))
}

// NewNop discards everything. Used as the default and in tests.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
