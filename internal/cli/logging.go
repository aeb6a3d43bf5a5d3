package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Only warnings and errors are
// shown unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetupLogging installs a logger on stderr as the slog default
func SetupLogging(verbose bool) *slog.Logger {
	logger := NewLogger(stderr, verbose)
	slog.SetDefault(logger)
	return logger
}
