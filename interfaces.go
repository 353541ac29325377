package rqlaunch

import "context"

// Launcher starts and stops the configured rqlited instances.
//
// Runs against the same instances root are serialized with a file lock, also
// across processes. Neither method supervises instances after it returns.
type Launcher interface {
	// Start launches every configured instance that is not already running
	// and returns the number of instances newly started. Instances that fail
	// to launch, or exit within the startup grace window, are logged and not
	// counted.
	//
	// If the configuration file is missing, the template is installed first.
	// Returns an error only for setup failures or when ctx is canceled; in
	// the latter case the count covers instances started so far.
	Start(ctx context.Context) (int, error)

	// Stop signals every instance recorded under the instances root and
	// removes its pid marker, even when the process is already gone. It
	// returns the number of signals attempted and does not wait for the
	// processes to exit.
	Stop(ctx context.Context) (int, error)
}

// Prober reports whether a process id refers to a live process.
//
// Alive must return an error for pid 0 and false for negative pids.
type Prober interface {
	Alive(pid int) (bool, error)
}
