package rqlaunch

import (
	"log/slog"
	"syscall"
	"time"
)

// Option configures a Launcher during construction via New.
//
// Options do not validate their arguments; New validates the resulting
// configuration as a whole and reports every problem at once, since option
// values usually come straight from command-line flags.
type Option func(*launcherConfig)

// WithConfigPath sets the instance configuration file.
//
// Default: DefaultConfigPath.
func WithConfigPath(path string) Option {
	return func(c *launcherConfig) {
		c.ConfigPath = path
	}
}

// WithTemplatePath sets the file copied to the configuration path when that
// file does not exist. An empty path disables the install, making a missing
// configuration file an error.
//
// Default: DefaultTemplatePath.
func WithTemplatePath(path string) Option {
	return func(c *launcherConfig) {
		c.TemplatePath = path
	}
}

// WithInstancesDir sets the instances root.
//
// Default: DefaultInstancesDir.
func WithInstancesDir(dir string) Option {
	return func(c *launcherConfig) {
		c.InstancesDir = dir
	}
}

// WithBinary sets the rqlited executable. A name without a path separator is
// resolved via PATH.
//
// Default: DefaultBinary.
func WithBinary(path string) Option {
	return func(c *launcherConfig) {
		c.Binary = path
	}
}

// WithStartupGrace sets how long a launched process must keep running before
// Start records it. Start returns sooner for processes that exit early.
//
// Default: 1 second.
func WithStartupGrace(d time.Duration) Option {
	return func(c *launcherConfig) {
		c.StartupGrace = d
	}
}

// WithLockTimeout sets how long Start and Stop wait for another run holding
// the instances root lock.
//
// Default: 10 seconds.
func WithLockTimeout(d time.Duration) Option {
	return func(c *launcherConfig) {
		c.LockTimeout = d
	}
}

// WithStopSignal sets the signal Stop sends to each instance. SIGKILL is
// rejected by New.
//
// Default: SIGHUP.
func WithStopSignal(sig syscall.Signal) Option {
	return func(c *launcherConfig) {
		c.StopSignal = sig
	}
}

// WithProber replaces the liveness check used by Start to decide whether a
// recorded instance is still running. Intended for tests.
func WithProber(p Prober) Option {
	return func(c *launcherConfig) {
		c.prober = p
	}
}

// WithLogger sets the logger for this Launcher's diagnostics, overriding the
// one installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *launcherConfig) {
		c.Logger = l
	}
}
