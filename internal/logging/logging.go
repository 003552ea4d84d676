// Package logging configures structured logging for the CLI and provides
// the shared evaluation sink that metrics append to while running
// concurrently.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Init configures the global slog default with the given level and format.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// LevelFromVerbosity maps the 0/1/2 verbosity scale to a slog level:
// 0 silences everything below WARN, 1 enables INFO, 2 enables DEBUG.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v >= 2:
		return slog.LevelDebug
	case v == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// ParseVerbosity validates a LOG_LEVEL-style string. Valid values are
// "0", "1" and "2"; anything else is an error.
func ParseVerbosity(s string) (int, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	}
	return 0, fmt.Errorf("invalid verbosity %q: must be 0, 1 or 2", s)
}
