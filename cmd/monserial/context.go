package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"monserial/internal/catalog"
	"monserial/internal/config"
	"monserial/internal/edid"
	"monserial/internal/logging"
	"monserial/internal/sysfs"
)

type commandContext struct {
	configFlag     *string
	drmRootFlag    *string
	logLevelFlag   *string
	skipUnparsable *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce  sync.Once
	logger      *slog.Logger
	loggerErr   error
	closeLogger func() error
}

func newCommandContext(configFlag, drmRootFlag, logLevelFlag *string, skipUnparsable *bool) *commandContext {
	return &commandContext{
		configFlag:     configFlag,
		drmRootFlag:    drmRootFlag,
		logLevelFlag:   logLevelFlag,
		skipUnparsable: skipUnparsable,
	}
}

// ensureConfig loads the config file once and layers command-line overrides
// on top of it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.drmRootFlag != nil && strings.TrimSpace(*c.drmRootFlag) != "" {
			root, err := config.ExpandPath(strings.TrimSpace(*c.drmRootFlag))
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Sysfs.DRMRoot = root
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		if c.skipUnparsable != nil && cmd != nil && cmd.Flags().Changed("skip-unparsable") {
			cfg.Catalog.SkipUnparsable = *c.skipUnparsable
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg := c.config
		logger, closeFn, err := logging.NewFromConfig(cfg, stderr)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
		c.closeLogger = closeFn
	})
	return c.logger, c.loggerErr
}

// close releases log files opened by ensureLogger. Safe to call when no
// logger was built.
func (c *commandContext) close() error {
	if c.closeLogger == nil {
		return nil
	}
	closeFn := c.closeLogger
	c.closeLogger = nil
	return closeFn()
}

// discover builds the display catalog for this invocation.
func (c *commandContext) discover(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger.Debug("enumerating displays",
		logging.String(logging.FieldPath, cfg.Sysfs.DRMRoot),
		logging.Bool("skip_unparsable", cfg.Catalog.SkipUnparsable),
		logging.Bool("sort_by_name", cfg.Catalog.SortByName),
	)
	cat, err := catalog.Discover(
		sysfs.Options{Root: cfg.Sysfs.DRMRoot, EDIDFile: cfg.Sysfs.EDIDFile},
		edid.Standard,
		catalog.Options{
			SkipUnparsable: cfg.Catalog.SkipUnparsable,
			SortByName:     cfg.Catalog.SortByName,
			Logger:         logger,
		},
	)
	if err != nil {
		hint := "run monserial check to inspect the DRM root"
		if errors.Is(err, edid.ErrDecode) {
			hint = "rerun with --skip-unparsable to ignore displays with a broken EDID"
		}
		logging.ErrorWithContext(logger, "display discovery failed", "discovery_failed",
			logging.String(logging.FieldPath, cfg.Sysfs.DRMRoot),
			logging.String(logging.FieldErrorHint, hint),
			logging.Error(err),
		)
		return nil, err
	}
	return cat, nil
}
