// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// LevelFromFlags maps the -vv, -v and -q switches to a level. They are
// checked in that order; with none set the fallback is returned.
func LevelFromFlags(vv, v, q bool, fallback slog.Level) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return fallback
	}
}

// Setup installs a text handler writing to w at level as the default
// logger and returns it.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
