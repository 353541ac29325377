package core

import (
	"fmt"
	"log/slog"

	"github.com/giantswarm/rqlaunch/internal/instance"
	"github.com/giantswarm/rqlaunch/internal/liveness"
	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

const (
	// ErrInstancesRoot is returned when the instances root cannot be created.
	ErrInstancesRoot = sentinel.Error("cannot create instances root")

	// ErrConfigNotFound is returned by Start when the configuration file is
	// missing and no template is configured to install it from.
	ErrConfigNotFound = sentinel.Error("instance configuration not found")

	// ErrLocked is returned when another run holds the instances root lock
	// for longer than the configured lock timeout.
	ErrLocked = sentinel.Error("another run holds the instances lock")
)

// ErrUnsafeName is re-exported from instance so the public API imports only
// from core.
const ErrUnsafeName = instance.ErrUnsafeName

// logFileName is the per-instance output log inside its data directory.
const logFileName = "log"

// Manager starts and stops the configured rqlited instances.
//
// A Manager holds no state between calls: everything it knows about running
// instances lives in the pid markers under the instances root. It is not
// safe for concurrent use; concurrent runs against the same root are
// serialized by a file lock.
type Manager struct {
	cfg    ManagerConfig
	prober liveness.Prober
	log    *slog.Logger
}

// NewManager validates cfg and returns a Manager. A nil prober probes the host
// process table. Without cfg.Logger, the package logger current at this call
// is used.
func NewManager(cfg ManagerConfig, prober liveness.Prober) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manager config: %w", err)
	}
	if prober == nil {
		prober = liveness.OS{}
	}
	log := cfg.Logger
	if log == nil {
		log = Logger()
	}
	return &Manager{
		cfg:    cfg,
		prober: prober,
		log:    log,
	}, nil
}

// Config returns the Manager's configuration.
func (m *Manager) Config() ManagerConfig {
	return m.cfg
}
