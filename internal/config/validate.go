package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSysfs(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSysfs() error {
	if strings.TrimSpace(c.Sysfs.DRMRoot) == "" {
		return errors.New("sysfs.drm_root must be set")
	}
	name := c.Sysfs.EDIDFile
	if name == "" {
		return errors.New("sysfs.edid_file must be set")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("sysfs.edid_file must be a plain file name, got %q", name)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}
