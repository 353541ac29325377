package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/giantswarm/rqlaunch/internal/fileutil"
)

// configFileMode is the permission of an installed default configuration.
const configFileMode = 0o644

// ensureConfigFile installs the packaged template when the configuration
// file does not exist yet.
func (m *Manager) ensureConfigFile() error {
	_, err := os.Stat(m.cfg.ConfigPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat instance config: %w", err)
	}
	if m.cfg.TemplatePath == "" {
		return fmt.Errorf("%w: %s", ErrConfigNotFound, m.cfg.ConfigPath)
	}

	if err := fileutil.CopyFile(m.cfg.TemplatePath, m.cfg.ConfigPath, configFileMode); err != nil {
		return fmt.Errorf("install default configuration from %s: %w", m.cfg.TemplatePath, err)
	}
	m.log.Info("default configuration installed",
		"path", m.cfg.ConfigPath, "template", m.cfg.TemplatePath)
	return nil
}
