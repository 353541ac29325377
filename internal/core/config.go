package core

import (
	"errors"
	"fmt"
	"log/slog"
	"syscall"
	"time"
)

// ManagerConfig holds configuration for a Manager. All paths are explicit so
// that a Manager can run against any directory tree.
type ManagerConfig struct {
	// ConfigPath is the instance configuration file.
	ConfigPath string

	// TemplatePath is copied to ConfigPath when ConfigPath does not exist.
	// Empty disables the default-configuration install.
	TemplatePath string

	// InstancesDir holds one data directory per instance.
	InstancesDir string

	// Binary is the rqlited executable.
	Binary string

	// StartupGrace is how long a newly launched process must stay up before
	// it is considered started.
	StartupGrace time.Duration

	// LockTimeout bounds the wait for another run to release the lock on
	// InstancesDir.
	LockTimeout time.Duration

	// StopSignal is sent to each recorded pid by Stop. It must request an
	// orderly shutdown, so SIGKILL is rejected.
	StopSignal syscall.Signal

	// Logger receives the Manager's diagnostics. Nil uses the package logger.
	Logger *slog.Logger
}

// Validate checks all ManagerConfig invariants and reports every violation
// at once.
func (c ManagerConfig) Validate() error {
	var errs []error

	if c.ConfigPath == "" {
		errs = append(errs, errors.New("config path must not be empty"))
	}
	if c.InstancesDir == "" {
		errs = append(errs, errors.New("instances directory must not be empty"))
	}
	if c.Binary == "" {
		errs = append(errs, errors.New("rqlited binary must not be empty"))
	}
	if c.StartupGrace <= 0 {
		errs = append(errs, fmt.Errorf("startup grace must be greater than 0, got %s", c.StartupGrace))
	}
	if c.LockTimeout <= 0 {
		errs = append(errs, fmt.Errorf("lock timeout must be greater than 0, got %s", c.LockTimeout))
	}
	switch c.StopSignal {
	case 0:
		errs = append(errs, errors.New("stop signal must be set"))
	case syscall.SIGKILL:
		errs = append(errs, errors.New("stop signal must allow a graceful shutdown, got SIGKILL"))
	}

	return errors.Join(errs...)
}
