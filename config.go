package rqlaunch

import (
	"github.com/giantswarm/rqlaunch/internal/core"
)

// launcherConfig holds configuration for a Launcher. It embeds
// core.ManagerConfig to keep internal types out of the public API.
type launcherConfig struct {
	core.ManagerConfig
	prober Prober
}

// defaultLauncherConfig returns a launcherConfig populated with all default
// values.
func defaultLauncherConfig() launcherConfig {
	return launcherConfig{ManagerConfig: core.ManagerConfig{
		ConfigPath:   DefaultConfigPath,
		TemplatePath: DefaultTemplatePath,
		InstancesDir: DefaultInstancesDir,
		Binary:       DefaultBinary,
		StartupGrace: DefaultStartupGrace,
		LockTimeout:  DefaultLockTimeout,
		StopSignal:   DefaultStopSignal,
	}}
}
