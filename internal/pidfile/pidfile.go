package pidfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio/v2"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

// FileName is the marker file name inside an instance data directory.
const FileName = "pid"

// ErrInvalidPID is returned by Write for pids that cannot identify a single
// process.
const ErrInvalidPID = sentinel.Error("pid must be positive")

// fileMode is the permission of a written marker.
const fileMode = 0o644

// Path returns the marker path for an instance data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Read returns the pid stored at path. It reports false when the file is
// missing, unreadable, or does not hold a positive decimal integer.
func Read(path string) (int, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is built from the instances root
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// Write stores pid at path. The value is written to a temporary file and
// renamed into place, so a concurrent Read sees either the old or the new
// value.
func Write(path string, pid int) error {
	if pid <= 0 {
		return fmt.Errorf("write %s: %w (got %d)", path, ErrInvalidPID, pid)
	}
	if err := renameio.WriteFile(path, []byte(strconv.Itoa(pid)+"\n"), fileMode); err != nil {
		return fmt.Errorf("write pid marker %s: %w", path, err)
	}
	return nil
}

// Remove deletes the marker at path. A missing marker is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove pid marker %s: %w", path, err)
	}
	return nil
}

// Glob returns every marker one level below root (root/*/pid), sorted by
// path. It does not recurse further, and a directory named like a marker is
// not a marker. A missing root yields no markers.
func Glob(root string) ([]string, error) {
	names, err := doublestar.Glob(os.DirFS(root), "*/"+FileName, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("list pid markers under %s: %w", root, err)
	}
	markers := make([]string, 0, len(names))
	for _, name := range names {
		markers = append(markers, filepath.Join(root, filepath.FromSlash(name)))
	}
	slices.Sort(markers)
	return markers, nil
}
