package pidfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()
	path := Path(t.TempDir())

	if err := Write(path, 4242); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	pid, ok := Read(path)
	if !ok || pid != 4242 {
		t.Fatalf("Read() = %d, %v; want 4242, true", pid, ok)
	}

	if err := Write(path, 7); err != nil {
		t.Fatalf("Write() overwrite error: %v", err)
	}
	if pid, ok := Read(path); !ok || pid != 7 {
		t.Errorf("Read() after overwrite = %d, %v; want 7, true", pid, ok)
	}
}

func TestRead_AfterExternalDelete(t *testing.T) {
	t.Parallel()
	path := Path(t.TempDir())

	if err := Write(path, 100); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove marker: %v", err)
	}

	if pid, ok := Read(path); ok {
		t.Errorf("Read() = %d, true; want no value", pid)
	}
}

func TestRead_InvalidContent(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		wantPID int
		wantOK  bool
	}{
		"plain":             {content: "123", wantPID: 123, wantOK: true},
		"trailing newline":  {content: "123\n", wantPID: 123, wantOK: true},
		"surrounding space": {content: "  123 \n", wantPID: 123, wantOK: true},
		"empty":             {content: "", wantOK: false},
		"garbage":           {content: "not-a-pid", wantOK: false},
		"float":             {content: "12.5", wantOK: false},
		"zero":              {content: "0", wantOK: false},
		"negative":          {content: "-5", wantOK: false},
		"two values":        {content: "12 13", wantOK: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write marker: %v", err)
			}

			pid, ok := Read(path)
			if ok != tc.wantOK || pid != tc.wantPID {
				t.Errorf("Read(%q) = %d, %v; want %d, %v", tc.content, pid, ok, tc.wantPID, tc.wantOK)
			}
		})
	}
}

func TestWrite_RejectsNonPositive(t *testing.T) {
	t.Parallel()
	path := Path(t.TempDir())

	for _, pid := range []int{0, -1} {
		if err := Write(path, pid); !errors.Is(err, ErrInvalidPID) {
			t.Errorf("Write(%d) error = %v, want %v", pid, err, ErrInvalidPID)
		}
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("marker should not exist after rejected writes, stat error = %v", err)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("existing marker", func(t *testing.T) {
		t.Parallel()
		path := Path(t.TempDir())
		if err := Write(path, 55); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if err := Remove(path); err != nil {
			t.Fatalf("Remove() error: %v", err)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("marker still present, stat error = %v", err)
		}
	})

	t.Run("missing marker", func(t *testing.T) {
		t.Parallel()
		if err := Remove(Path(t.TempDir())); err != nil {
			t.Errorf("Remove() on missing marker error: %v", err)
		}
	})
}

func TestGlob(t *testing.T) {
	t.Parallel()
	root := filepath.Join(t.TempDir(), "inst[1]")

	for _, name := range []string{"b", "a", "empty"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := Write(Path(filepath.Join(root, "a")), 1); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := Write(Path(filepath.Join(root, "b")), 2); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	// A directory named like a marker is not a marker.
	if err := os.MkdirAll(filepath.Join(root, "empty", FileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Deeper markers are not reported.
	if err := os.MkdirAll(filepath.Join(root, "a", "nested"), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	if err := Write(Path(filepath.Join(root, "a", "nested")), 3); err != nil {
		t.Fatalf("Write() nested error: %v", err)
	}

	got, err := Glob(root)
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	want := []string{Path(filepath.Join(root, "a")), Path(filepath.Join(root, "b"))}
	if len(got) != len(want) {
		t.Fatalf("Glob() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Glob()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGlob_MissingRoot(t *testing.T) {
	t.Parallel()

	got, err := Glob(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Glob() = %v, want none", got)
	}
}
