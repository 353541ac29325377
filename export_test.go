package rqlaunch

import (
	"syscall"
	"time"
)

// ConfigSnapshot holds a copy of launcherConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	ConfigPath   string
	TemplatePath string
	InstancesDir string
	Binary       string
	StartupGrace time.Duration
	LockTimeout  time.Duration
	StopSignal   syscall.Signal
	HasProber    bool
	HasLogger    bool
}

// ApplyOptionsForTesting creates a default launcherConfig, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultLauncherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		ConfigPath:   cfg.ConfigPath,
		TemplatePath: cfg.TemplatePath,
		InstancesDir: cfg.InstancesDir,
		Binary:       cfg.Binary,
		StartupGrace: cfg.StartupGrace,
		LockTimeout:  cfg.LockTimeout,
		StopSignal:   cfg.StopSignal,
		HasProber:    cfg.prober != nil,
		HasLogger:    cfg.Logger != nil,
	}
}
