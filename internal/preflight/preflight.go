package preflight

import (
	"log/slog"

	"monserial/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config. Later checks
// are skipped when the DRM root itself is unusable.
func RunAll(cfg *config.Config, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	root := CheckDirectoryAccess("DRM root", cfg.Sysfs.DRMRoot)
	results := []Result{root}
	if !root.Passed {
		return results
	}

	results = append(results, CheckConnectors(cfg))
	results = append(results, CheckEDID(cfg, logger))
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
