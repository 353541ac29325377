package rqlaunch

import (
	"syscall"
	"time"
)

// Default configuration values for New. They match the snap package layout.
const (
	// DefaultConfigPath is the instance configuration file.
	DefaultConfigPath = "/var/snap/rqlite/common/rqlited.conf"

	// DefaultTemplatePath is the packaged configuration installed when
	// DefaultConfigPath does not exist yet.
	DefaultTemplatePath = "/snap/rqlite/doc/rqlited.conf.default"

	// DefaultInstancesDir is the instances root.
	DefaultInstancesDir = "/var/snap/rqlite/common/instances"

	// DefaultBinary is the rqlited executable.
	DefaultBinary = "/snap/rqlite/current/bin/rqlited"

	// DefaultStartupGrace is how long a launched rqlited must stay up to be
	// counted as started.
	DefaultStartupGrace = time.Second

	// DefaultLockTimeout bounds the wait for a concurrent start or stop
	// against the same instances root.
	DefaultLockTimeout = 10 * time.Second

	// DefaultStopSignal is sent to each instance by Stop.
	DefaultStopSignal = syscall.SIGHUP
)
