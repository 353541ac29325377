package process

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

const (
	// ErrEmptyBinary is returned by Start when Spec.Binary is empty.
	ErrEmptyBinary = sentinel.Error("binary must not be empty")

	// ErrEmptyDir is returned by Start when Spec.Dir is empty.
	ErrEmptyDir = sentinel.Error("working directory must not be empty")

	// ErrEmptyLogPath is returned by Start when Spec.LogPath is empty.
	ErrEmptyLogPath = sentinel.Error("log path must not be empty")
)

// logFileMode is the permission of a newly created instance log.
const logFileMode = 0o644

// Spec describes a process to launch.
type Spec struct {
	Name    string   // Instance name for logging
	Binary  string   // Executable path, or a name resolved via PATH
	Args    []string // Arguments after the binary
	Dir     string   // Working directory
	LogPath string   // Append-only file receiving stdout and stderr
}

func (s Spec) validate() error {
	var errs []error
	if s.Binary == "" {
		errs = append(errs, ErrEmptyBinary)
	}
	if s.Dir == "" {
		errs = append(errs, ErrEmptyDir)
	}
	if s.LogPath == "" {
		errs = append(errs, ErrEmptyLogPath)
	}
	return errors.Join(errs...)
}

// Process is a launched child. It is not safe for concurrent use, except for
// Exited, which may be selected on from any goroutine.
type Process struct {
	cmd     *exec.Cmd
	logFile *os.File
	exited  chan struct{} // closed once cmd.Wait has returned
	waitErr error         // written before exited is closed
	name    string
	log     *slog.Logger

	pollInterval time.Duration // WaitStartup check period
}

// openLog opens path for appending, creating it if needed.
func openLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, logFileMode) //nolint:gosec // G304: path is built from the instances root
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

// Start opens the log, wires it to the child's stdout and stderr, and starts
// the command. A single goroutine calls cmd.Wait so the exit status is
// collected exactly once. If logger is nil, slog.Default() is used.
func Start(spec Spec, logger *slog.Logger) (*Process, error) {
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("start %s: %w", spec.Name, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	logFile, err := openLog(spec.LogPath)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(spec.Binary, spec.Args...) //nolint:gosec // G204: binary is operator configuration
	cmd.Dir = spec.Dir
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	configureSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("start %s process: %w", spec.Name, err)
	}

	p := &Process{
		cmd:     cmd,
		logFile: logFile,
		exited:  make(chan struct{}),
		name:    spec.Name,
		log:     logger,

		pollInterval: startupPollInterval,
	}
	go func() {
		p.waitErr = cmd.Wait()
		close(p.exited)
	}()

	p.log.Debug("process launched", "instance", p.name, "pid", cmd.Process.Pid, "binary", spec.Binary)
	return p, nil
}

// PID returns the child's process id.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Exited returns a channel that is closed when the child exits.
func (p *Process) Exited() <-chan struct{} {
	return p.exited
}

// Close releases the parent's handle on the log file. The child keeps its own
// descriptor and continues writing. Close does not stop the child.
func (p *Process) Close() {
	if p.logFile != nil {
		if err := p.logFile.Close(); err != nil {
			p.log.Debug("close log file", "instance", p.name, "error", err)
		}
		p.logFile = nil
	}
}

// exitError describes how the child exited. It must only be called after
// Exited is closed.
func (p *Process) exitError() error {
	status := "exit status 0"
	if p.waitErr != nil {
		status = p.waitErr.Error()
	}
	return fmt.Errorf("%s (pid %d): %w: %s", p.name, p.PID(), ErrProcessExited, status)
}
