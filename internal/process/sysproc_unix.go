//go:build unix

package process

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr places the child in its own process group so that a
// terminal interrupt aimed at the launcher does not reach instances that are
// already running. No parent-death signal is set: instances must outlive the
// launcher.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
