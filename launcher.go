package rqlaunch

import (
	"context"
	"fmt"

	"github.com/giantswarm/rqlaunch/internal/core"
)

var _ Launcher = (*launcher)(nil)

// launcher wraps core.Manager. The manager is a named field rather than
// embedded so callers cannot reach internal methods through type assertions.
type launcher struct {
	mgr *core.Manager
}

// Start implements Launcher.Start.
func (l *launcher) Start(ctx context.Context) (int, error) {
	return l.mgr.Start(ctx)
}

// Stop implements Launcher.Stop.
func (l *launcher) Stop(ctx context.Context) (int, error) {
	return l.mgr.Stop(ctx)
}

// New returns a Launcher configured by opts on top of the defaults. It
// performs no I/O. Returns an error describing every invalid setting.
//
//nolint:ireturn // Returns Launcher interface by design for testability (mockable).
func New(opts ...Option) (Launcher, error) {
	cfg := defaultLauncherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	mgr, err := core.NewManager(cfg.ManagerConfig, cfg.prober)
	if err != nil {
		return nil, fmt.Errorf("rqlaunch: %w", err)
	}
	return &launcher{mgr: mgr}, nil
}
