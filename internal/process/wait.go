package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

const (
	// ErrProcessExited indicates the process exited inside its startup
	// grace window, whatever its exit status.
	ErrProcessExited = sentinel.Error("process exited during startup")

	// ErrGraceNotPositive indicates a non-positive startup grace window.
	ErrGraceNotPositive = sentinel.Error("startup grace must be positive")
)

// startupPollInterval is how often WaitStartup checks for an early exit.
const startupPollInterval = 20 * time.Millisecond

// WaitStartup blocks for at most grace. It returns an error wrapping
// ErrProcessExited as soon as the child exits, nil if the child is still
// running when the window closes, and the context error if ctx is canceled
// first.
func (p *Process) WaitStartup(ctx context.Context, grace time.Duration) error {
	if grace <= 0 {
		return fmt.Errorf("wait for %s: %w", p.name, ErrGraceNotPositive)
	}

	err := wait.PollUntilContextTimeout(ctx, p.pollInterval, grace, true,
		func(context.Context) (bool, error) {
			select {
			case <-p.exited:
				return false, p.exitError()
			default:
				return false, nil
			}
		})

	switch {
	case errors.Is(err, ErrProcessExited):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("wait for %s startup: %w", p.name, ctx.Err())
	case err == nil, wait.Interrupted(err):
		// The window closes without a final poll, so an exit after the last
		// tick is only visible here.
		select {
		case <-p.exited:
			return p.exitError()
		default:
			return nil
		}
	default:
		return fmt.Errorf("wait for %s startup: %w", p.name, err)
	}
}
