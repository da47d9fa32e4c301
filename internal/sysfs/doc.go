// Package sysfs enumerates DRM connectors under /sys/class/drm and reads the
// raw EDID block each one exposes.
//
// Connectors without an edid file (card0, renderD128, the "version" file) and
// connectors whose edid file is empty (disconnected outputs) are skipped.
// Every other I/O failure aborts the enumeration.
package sysfs
