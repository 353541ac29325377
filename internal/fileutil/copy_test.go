package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("create test file: %v", err)
	}
	return path
}

func readDst(t *testing.T, path string) string {
	t.Helper()
	got, err := os.ReadFile(path) //nolint:gosec // G304: path is test-controlled
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	return string(got)
}

func TestCopyFile_EmptyPaths(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src  string
		dst  string
		want error
	}{
		"empty source":      {src: "", dst: "/tmp/dst", want: ErrEmptySrc},
		"empty destination": {src: "/tmp/src", dst: "", want: ErrEmptyDst},
		"both empty":        {src: "", dst: "", want: ErrEmptySrc},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CopyFile(tc.src, tc.dst, 0o644)
			if !errors.Is(err, tc.want) {
				t.Errorf("CopyFile() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCopyFile_CopiesContent(t *testing.T) {
	t.Parallel()
	src := createTestFile(t, t.TempDir(), "rqlited.conf.default", "# name port raft\nnode1 4001 4002\n")
	dst := filepath.Join(t.TempDir(), "common", "rqlited.conf")

	if err := CopyFile(src, dst, 0o640); err != nil {
		t.Fatalf("CopyFile() error: %v", err)
	}

	if got := readDst(t, dst); got != "# name port raft\nnode1 4001 4002\n" {
		t.Errorf("destination content = %q", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat destination: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o640 {
		t.Errorf("destination mode = %o, want %o", perm, 0o640)
	}
}

func TestCopyFile_OverwritesExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := createTestFile(t, dir, "new.conf", "new")
	dst := createTestFile(t, dir, "old.conf", "old content that is longer")

	if err := CopyFile(src, dst, 0o644); err != nil {
		t.Fatalf("CopyFile() error: %v", err)
	}
	if got := readDst(t, dst); got != "new" {
		t.Errorf("destination content = %q, want %q", got, "new")
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.conf")

	err := CopyFile(filepath.Join(dir, "absent"), dst, 0o644)
	if err == nil {
		t.Fatal("expected error for missing source, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
	if _, statErr := os.Stat(dst); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("destination should not exist after failed copy, stat error = %v", statErr)
	}
}
