package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockFileName is the advisory lock file inside the instances root. It is a
// plain file, so it never matches the root/*/pid marker pattern.
const lockFileName = ".rqlaunch.lock"

// lockRetryInterval is the interval between lock attempts.
const lockRetryInterval = 50 * time.Millisecond

func (m *Manager) lockPath() string {
	return filepath.Join(m.cfg.InstancesDir, lockFileName)
}

// acquireRunLock takes an exclusive lock on path, giving up after timeout.
// The lock serializes start and stop runs against the same instances root.
func acquireRunLock(ctx context.Context, path string, timeout time.Duration) (*flock.Flock, error) {
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fl := flock.New(path)
	locked, err := fl.TryLockContext(lockCtx, lockRetryInterval)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s (waited %s)", ErrLocked, path, timeout)
		}
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return fl, nil
}

// releaseRunLock unlocks and closes the lock file. The file stays on disk so
// that removing it cannot race with another run that just locked it.
func releaseRunLock(log *slog.Logger, fl *flock.Flock) {
	if fl == nil {
		return
	}
	if err := fl.Close(); err != nil {
		log.Debug("failed to release run lock", "path", fl.Path(), "error", err)
	}
}
