package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSysfs(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeSysfs() error {
	if value, ok := os.LookupEnv(envDRMRoot); ok && strings.TrimSpace(value) != "" {
		c.Sysfs.DRMRoot = value
	}
	c.Sysfs.DRMRoot = strings.TrimSpace(c.Sysfs.DRMRoot)
	if c.Sysfs.DRMRoot == "" {
		c.Sysfs.DRMRoot = defaultDRMRoot
	}
	var err error
	if c.Sysfs.DRMRoot, err = expandPath(c.Sysfs.DRMRoot); err != nil {
		return fmt.Errorf("sysfs.drm_root: %w", err)
	}
	c.Sysfs.EDIDFile = strings.TrimSpace(c.Sysfs.EDIDFile)
	if c.Sysfs.EDIDFile == "" {
		c.Sysfs.EDIDFile = defaultEDIDFile
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
