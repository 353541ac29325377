package fileutil

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

// ErrEmptySrc is returned when a source path is empty.
const ErrEmptySrc = sentinel.Error("source path must not be empty")

// ErrEmptyDst is returned when a destination path is empty.
const ErrEmptyDst = sentinel.Error("destination path must not be empty")

// CopyFile copies src to dst with the given permissions, creating parent
// directories as needed. The data is staged in a temporary file next to dst
// and renamed into place, so dst is either absent, its previous content, or
// the complete copy.
func CopyFile(src, dst string, mode os.FileMode) (retErr error) {
	if src == "" {
		return ErrEmptySrc
	}
	if dst == "" {
		return ErrEmptyDst
	}

	if err := EnsureDirForFile(dst); err != nil {
		return fmt.Errorf("prepare destination: %w", err)
	}

	srcFile, err := os.Open(src) //nolint:gosec // G304: paths are from controlled sources
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close source: %w", closeErr)
		}
	}()

	pending, err := renameio.TempFile("", dst)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", dst, err)
	}
	// Cleanup is a no-op once CloseAtomicallyReplace has succeeded.
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.Copy(pending, srcFile); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := pending.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", dst, err)
	}
	return nil
}
