package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

// ErrNotDir is returned when a path expected to be a directory exists as
// something else.
const ErrNotDir = sentinel.Error("path exists but is not a directory")

// dirMode is the permission used for every directory created by this package.
const dirMode = 0o755

// EnsureDir creates a directory and all parent directories if they don't exist.
// Returns nil if directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// EnsureDirForFile creates the parent directory of filePath if it does not
// already exist.
func EnsureDirForFile(filePath string) error {
	if err := EnsureDir(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("ensure dir for %s: %w", filePath, err)
	}
	return nil
}

// EnsureInstanceDir creates a single directory whose parent must already
// exist. Losing a creation race to another process is not an error: if the
// path already exists as a directory, EnsureInstanceDir returns nil. If it
// exists as anything else, ErrNotDir is returned.
func EnsureInstanceDir(path string) error {
	err := os.Mkdir(path, dirMode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create instance directory %s: %w", path, err)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return fmt.Errorf("stat instance directory %s: %w", path, statErr)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDir)
	}
	return nil
}
