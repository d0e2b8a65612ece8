// Package logging configures the process-wide slog logger. Diagnostics
// always go to stderr so stdout stays clean for recommendation output.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default logger. Machine-readable output formats get a
// JSON handler so log lines stay parseable alongside NDJSON on stdout;
// everything else gets the text handler.
func Setup(outputFormat, level string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if outputFormat == "ndjson" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Component returns a logger tagged with the originating subsystem
// ("engine", "refstore", "catalog").
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
