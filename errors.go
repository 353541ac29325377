package rqlaunch

import "github.com/giantswarm/rqlaunch/internal/core"

// Sentinel errors for error inspection with errors.Is.
const (
	// ErrInstancesRoot is returned by Start when the instances root cannot be
	// created.
	ErrInstancesRoot = core.ErrInstancesRoot

	// ErrConfigNotFound is returned by Start when the configuration file is
	// missing and no template path is configured.
	ErrConfigNotFound = core.ErrConfigNotFound

	// ErrLocked is returned by Start and Stop when another run holds the
	// instances root lock for longer than the lock timeout.
	ErrLocked = core.ErrLocked

	// ErrUnsafeName describes a configuration line whose instance name is not
	// a plain directory name. Such lines are skipped and logged, never
	// returned from Start.
	ErrUnsafeName = core.ErrUnsafeName
)
