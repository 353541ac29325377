package instance

import (
	"fmt"
	"path/filepath"

	"github.com/giantswarm/rqlaunch/internal/sentinel"
)

const (
	// ErrEmptyName is returned by New when the instance name is empty.
	ErrEmptyName = sentinel.Error("instance name must not be empty")

	// ErrUnsafeName is returned by New when the instance name is not a
	// single path element, i.e. it contains a separator or is "." or "..".
	ErrUnsafeName = sentinel.Error("instance name must be a plain directory name")

	// ErrEmptyPort is returned by New when either port token is empty.
	ErrEmptyPort = sentinel.Error("port must not be empty")
)

// Config describes one instance: its name and the two ports handed to the
// server. Ports are opaque tokens at this layer.
//
// The zero value is not a valid Config; use New.
type Config struct {
	name        string
	servicePort string
	raftPort    string
}

// New validates its arguments and returns a Config. Unsafe names are
// rejected, never sanitized.
func New(name, servicePort, raftPort string) (Config, error) {
	if err := validateName(name); err != nil {
		return Config{}, err
	}
	if servicePort == "" {
		return Config{}, fmt.Errorf("service %w", ErrEmptyPort)
	}
	if raftPort == "" {
		return Config{}, fmt.Errorf("raft %w", ErrEmptyPort)
	}
	return Config{name: name, servicePort: servicePort, raftPort: raftPort}, nil
}

// Name returns the instance name, which is also its data directory name.
func (c Config) Name() string { return c.name }

// ServicePort returns the client API port token.
func (c Config) ServicePort() string { return c.servicePort }

// RaftPort returns the Raft transport port token.
func (c Config) RaftPort() string { return c.raftPort }

// DataDir returns the instance data directory under root.
func (c Config) DataDir(root string) string {
	return filepath.Join(root, c.name)
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("%s (service %s, raft %s)", c.name, c.servicePort, c.raftPort)
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("%q: %w", name, ErrUnsafeName)
	}
	return nil
}
