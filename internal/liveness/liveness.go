package liveness

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

// ErrZeroPID is returned for pid 0, which addresses the caller's process
// group rather than a single process.
const ErrZeroPID = sentinel.Error("pid 0 does not identify a single process")

// Prober reports whether a process with the given pid currently exists.
type Prober interface {
	Alive(pid int) (bool, error)
}

// ProberFunc adapts an ordinary function to the Prober interface.
type ProberFunc func(pid int) (bool, error)

// Alive calls f(pid).
func (f ProberFunc) Alive(pid int) (bool, error) {
	return f(pid)
}

var _ Prober = OS{}

// OS probes the host process table by sending signal 0. The zero value is
// ready to use.
type OS struct {
	kill func(pid int, sig syscall.Signal) error // nil means unix.Kill
}

// Alive reports whether pid exists. A process owned by another user that
// cannot be signaled still counts as alive. Negative pids are never alive.
// Errors other than ESRCH and EPERM are returned.
func (o OS) Alive(pid int) (bool, error) {
	if pid == 0 {
		return false, ErrZeroPID
	}
	if pid < 0 {
		return false, nil
	}

	kill := o.kill
	if kill == nil {
		kill = unix.Kill
	}
	err := kill(pid, 0)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.ESRCH):
		return false, nil
	case errors.Is(err, unix.EPERM):
		return true, nil
	default:
		return false, fmt.Errorf("probe pid %d: %w", pid, err)
	}
}
