package rqlaunch

import (
	"log/slog"

	"github.com/giantswarm/rqlaunch/internal/core"
)

// SetLogger replaces the logger used by launchers created afterwards. The
// provided logger should already carry any desired attributes.
//
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute.
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
