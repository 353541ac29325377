//go:build !unix

package process

import "os/exec"

// configureSysProcAttr is a no-op on platforms without process groups.
func configureSysProcAttr(_ *exec.Cmd) {}
