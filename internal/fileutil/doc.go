// Package fileutil provides the directory and file helpers used to lay out
// the instances root.
//
// EnsureDir creates shared directories recursively, EnsureInstanceDir creates a
// single per-instance data directory while tolerating a concurrent creator, and
// CopyFile installs files atomically so a reader never sees a partial copy.
package fileutil
