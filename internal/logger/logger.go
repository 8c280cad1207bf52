// Package logger builds the structured logger used by the calculator binary.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelNone disables all logging.
const LevelNone = slog.Level(1 << 10)

// ParseLevel parses a level name: debug, info, warn (or warning), error, or
// none. Case is ignored.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "none", "off":
		return LevelNone, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a logger writing text records at or above the named level to w.
// With level none, records are discarded.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == LevelNone {
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelNone}))
}
