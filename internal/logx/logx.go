// Package logx builds the loggers used by testkit tools.
package logx

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level, with attribute keys deduplicated by [DedupeHandler].
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewDedupeHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
