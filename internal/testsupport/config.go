package testsupport

import (
	"path/filepath"
	"testing"

	"monserial/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose DRM root and log file live in a unique
// temp directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Sysfs.DRMRoot = filepath.Join(base, "drm")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDRMRoot points the config at a DRM tree, usually DRMTree.Root.
func WithDRMRoot(root string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sysfs.DRMRoot = root
	}
}

// WithLogFile sends a copy of the log output to a file under the temp dir.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "monserial.log")
	}
}
