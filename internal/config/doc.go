// Package config loads, normalizes, and validates monserial configuration data.
//
// It supplies repository defaults, reads an optional TOML file from the XDG
// config directory, and honours environment overrides such as
// MONSERIAL_DRM_ROOT. A missing file is not an error: every knob has a
// default that matches a stock Linux system.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log levels, and clear validation errors.
package config
