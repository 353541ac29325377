package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/giantswarm/rqlaunch/internal/pidfile"
	"github.com/giantswarm/rqlaunch/internal/process"
)

// Stop sends the stop signal to every process recorded in a pid marker under
// the instances root and returns the number of signal attempts.
//
// Cleanup takes priority over confirmed termination: every marker is removed
// after its signal attempt, whether or not the signal reached a live process,
// and Stop does not wait for processes to exit. A missing instances root
// means nothing is running.
func (m *Manager) Stop(ctx context.Context) (int, error) {
	if _, err := os.Stat(m.cfg.InstancesDir); errors.Is(err, fs.ErrNotExist) {
		m.log.Info("stop finished, no instances root", "path", m.cfg.InstancesDir)
		return 0, nil
	}

	lock, err := acquireRunLock(ctx, m.lockPath(), m.cfg.LockTimeout)
	if err != nil {
		return 0, err
	}
	defer releaseRunLock(m.log, lock)

	markers, err := pidfile.Glob(m.cfg.InstancesDir)
	if err != nil {
		return 0, err
	}

	signaled := 0
	for _, marker := range markers {
		if err := ctx.Err(); err != nil {
			return signaled, fmt.Errorf("stop interrupted: %w", err)
		}
		if m.stopInstance(marker) {
			signaled++
		}
	}

	m.log.Info("stop finished", "signaled", signaled, "markers", len(markers))
	return signaled, nil
}

// stopInstance signals the process recorded at marker and removes the marker.
// It reports whether a signal was attempted.
func (m *Manager) stopInstance(marker string) bool {
	log := m.log.With("instance", filepath.Base(filepath.Dir(marker)))

	attempted := false
	if pid, ok := pidfile.Read(marker); !ok {
		log.Warn("unreadable pid marker", "path", marker)
	} else {
		attempted = true
		err := process.Signal(pid, m.cfg.StopSignal)
		switch {
		case err == nil:
			log.Info("stop signal sent", "pid", pid, "signal", m.cfg.StopSignal.String())
		case errors.Is(err, process.ErrNoSuchProcess):
			log.Warn("process not found", "pid", pid)
		default:
			log.Error("stop signal failed", "pid", pid, "error", err)
		}
	}

	if err := pidfile.Remove(marker); err != nil {
		log.Error("could not remove pid marker", "error", err)
	}
	return attempted
}
