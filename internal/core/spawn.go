package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/giantswarm/rqlaunch/internal/fileutil"
	"github.com/giantswarm/rqlaunch/internal/instance"
	"github.com/giantswarm/rqlaunch/internal/netutil"
	"github.com/giantswarm/rqlaunch/internal/pidfile"
	"github.com/giantswarm/rqlaunch/internal/process"
)

// Start launches every configured instance that is not already running and
// returns how many were newly started, i.e. how many pid markers were
// written. Per-instance failures are logged and do not produce an error.
//
// An error is returned only when the run cannot proceed at all (instances
// root, lock, configuration file) or when ctx is canceled; in the latter
// case the count covers the instances started before cancellation.
func (m *Manager) Start(ctx context.Context) (int, error) {
	if err := fileutil.EnsureDir(m.cfg.InstancesDir); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInstancesRoot, err)
	}

	lock, err := acquireRunLock(ctx, m.lockPath(), m.cfg.LockTimeout)
	if err != nil {
		return 0, err
	}
	defer releaseRunLock(m.log, lock)

	if err := m.ensureConfigFile(); err != nil {
		return 0, err
	}
	instances, err := instance.Load(m.cfg.ConfigPath, m.log)
	if err != nil {
		return 0, err
	}

	ports := netutil.NewPortRegistry(m.log)
	started := 0
	for _, inst := range instances {
		if err := ctx.Err(); err != nil {
			return started, fmt.Errorf("start interrupted: %w", err)
		}
		ports.ReserveAll(inst.Name(), inst.ServicePort(), inst.RaftPort())
		ok, err := m.startInstance(ctx, inst)
		if err != nil {
			return started, fmt.Errorf("start interrupted: %w", err)
		}
		if ok {
			started++
		}
	}

	m.log.Info("start finished", "started", started, "configured", len(instances))
	return started, nil
}

// startInstance runs the start sequence for one instance and reports whether
// a pid marker was written. The returned error is non-nil only when ctx was
// canceled during the startup grace window.
func (m *Manager) startInstance(ctx context.Context, inst instance.Config) (bool, error) {
	log := m.log.With("instance", inst.Name())
	dataDir := inst.DataDir(m.cfg.InstancesDir)

	if err := fileutil.EnsureInstanceDir(dataDir); err != nil {
		log.Error("skipped: cannot create data directory", "error", err)
		return false, nil
	}

	marker := pidfile.Path(dataDir)
	if m.shouldSkip(log, marker) {
		return false, nil
	}

	logPath := filepath.Join(dataDir, logFileName)
	p, err := process.Start(process.Spec{
		Name:    inst.Name(),
		Binary:  m.cfg.Binary,
		Args:    serverArgs(inst, dataDir),
		Dir:     dataDir,
		LogPath: logPath,
	}, log)
	if err != nil {
		log.Error("skipped: launch failed", "error", err)
		return false, nil
	}
	defer p.Close()

	if err := p.WaitStartup(ctx, m.cfg.StartupGrace); err != nil {
		if errors.Is(err, process.ErrProcessExited) {
			log.Error("failed to start, see instance log", "log", logPath, "error", err)
			return false, nil
		}
		// Interrupted before startup was confirmed. No marker will be
		// written, so the process must not be left running unrecorded.
		m.abandon(log, p.PID())
		return false, err
	}

	if err := pidfile.Write(marker, p.PID()); err != nil {
		log.Error("started but could not record pid", "pid", p.PID(), "error", err)
		m.abandon(log, p.PID())
		return false, nil
	}

	log.Info("started", "pid", p.PID(),
		"service_port", inst.ServicePort(), "raft_port", inst.RaftPort())
	return true, nil
}

// shouldSkip reports whether the marker at path records a live process. A
// marker that is unreadable or names a dead process is stale and gets
// replaced by the new launch.
func (m *Manager) shouldSkip(log *slog.Logger, path string) bool {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false
	}

	pid, ok := pidfile.Read(path)
	if !ok {
		log.Warn("unreadable pid marker, starting anyway", "path", path)
		return false
	}

	alive, err := m.prober.Alive(pid)
	switch {
	case err != nil:
		log.Error("skipped: cannot determine whether recorded process is alive", "pid", pid, "error", err)
		return true
	case alive:
		log.Info("skipped: already running", "pid", pid)
		return true
	default:
		log.Warn("stale pid marker, recorded process is gone", "pid", pid)
		return false
	}
}

// abandon asks a process that will not be recorded to shut down.
func (m *Manager) abandon(log *slog.Logger, pid int) {
	if err := process.Signal(pid, m.cfg.StopSignal); err != nil && !errors.Is(err, process.ErrNoSuchProcess) {
		log.Warn("could not stop unrecorded process", "pid", pid, "error", err)
	}
}
