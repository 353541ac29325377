package process

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

const (
	// ErrInvalidPID is returned by Signal for pids that do not identify a
	// single process. Signaling 0 or a negative pid would reach a whole
	// process group.
	ErrInvalidPID = sentinel.Error("pid must be positive")

	// ErrNoSuchProcess is returned by Signal when the target does not exist.
	ErrNoSuchProcess = sentinel.Error("no such process")
)

// Signal sends sig to pid. The target need not be a child of this process.
func Signal(pid int, sig syscall.Signal) error {
	if pid <= 0 {
		return fmt.Errorf("signal pid %d: %w", pid, ErrInvalidPID)
	}
	if err := unix.Kill(pid, sig); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return fmt.Errorf("signal pid %d: %w", pid, ErrNoSuchProcess)
		}
		return fmt.Errorf("signal pid %d with %s: %w", pid, sig, err)
	}
	return nil
}
