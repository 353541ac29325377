package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log output formats accepted by --log-format.
const (
	formatText = "text"
	formatJSON = "json"
)

// newLogger builds the diagnostic logger for one invocation.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case formatText:
		handler = slog.NewTextHandler(w, opts)
	case formatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, formatText, formatJSON)
	}
	return slog.New(handler).With("component", "rqlaunch"), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
