package config

const (
	appName            = "monserial"
	defaultDRMRoot     = "/sys/class/drm"
	defaultEDIDFile    = "edid"
	defaultLogLevel    = "warn"
	defaultLogFormat   = "console"
	defaultSkipBadEDID = false
	defaultSortByName  = false
	configFileName     = "config.toml"
	projectConfigName  = "monserial.toml"
	fallbackConfigPath = "~/.config/monserial/config.toml"
	envDRMRoot         = "MONSERIAL_DRM_ROOT"
	envLogLevel        = "MONSERIAL_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Sysfs: Sysfs{
			DRMRoot:  defaultDRMRoot,
			EDIDFile: defaultEDIDFile,
		},
		Catalog: Catalog{
			SkipUnparsable: defaultSkipBadEDID,
			SortByName:     defaultSortByName,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
