// =============================================================================
// JSON to CSV Converter - Logging
// =============================================================================
//
// Package logging builds the structured logger used across the converter.
//
// FORMATS:
//   text : slog text handler (default)
//   json : slog JSON handler, one object per line
//
// =============================================================================

package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a logger writing to w. Unknown levels fall back to info and
// any format other than "json" produces text output.
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
