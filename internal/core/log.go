package core

import (
	"log/slog"
	"sync/atomic"
)

// logger is the package-level logger. A nil value means no custom logger has
// been set and Logger falls back to slog.Default().
var logger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger: the one installed with
// SetLogger, or slog.Default() tagged with the rqlaunch component.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default().With("component", "rqlaunch")
}

// SetLogger replaces the package-level logger. A nil l restores the default.
// Managers capture the logger when they are created.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}
