package preflight

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"monserial/internal/catalog"
	"monserial/internal/config"
	"monserial/internal/edid"
	"monserial/internal/sysfs"
)

// CheckDirectoryAccess verifies that the directory exists and can be listed.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckConnectors verifies that the connectors can be enumerated and reports
// how many expose an EDID block.
func CheckConnectors(cfg *config.Config) Result {
	const name = "Connectors"

	devices, err := sysfs.EnumerateWith(sourceOptions(cfg))
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("enumeration failed (%v)", err)}
	}
	if len(devices) == 0 {
		return Result{Name: name, Passed: true, Detail: "no connector exposes an EDID block"}
	}
	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.ShortName)
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d with EDID: %s", len(devices), strings.Join(names, ", "))}
}

// CheckEDID verifies that every EDID block decodes, regardless of the
// skip_unparsable setting, so a skipped display still shows up here.
func CheckEDID(cfg *config.Config, logger *slog.Logger) Result {
	const name = "EDID decode"

	cat, err := catalog.Discover(sourceOptions(cfg), edid.Standard, catalog.Options{Logger: logger})
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d displays decoded", cat.Len())}
}

func sourceOptions(cfg *config.Config) sysfs.Options {
	return sysfs.Options{Root: cfg.Sysfs.DRMRoot, EDIDFile: cfg.Sysfs.EDIDFile}
}
