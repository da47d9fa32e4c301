package sysfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"
)

const (
	// DefaultDRMRoot is the kernel's DRM class directory.
	DefaultDRMRoot = "/sys/class/drm"
	// DefaultEDIDFile is the per-connector file holding the EDID block.
	DefaultEDIDFile = "edid"
)

var cardPrefix = regexp.MustCompile(`^card\d+-`)

// Device is one connector that exposed a non-empty EDID block.
type Device struct {
	Dir       string
	ShortName string
	EDID      []byte
}

// Options controls where Enumerate looks.
type Options struct {
	Root     string
	EDIDFile string
}

// ShortName strips the card index prefix from a connector directory name,
// turning "card0-HDMI-A-1" into "HDMI-A-1". Names without the prefix are
// returned unchanged.
func ShortName(dir string) string {
	return cardPrefix.ReplaceAllString(dir, "")
}

// Enumerate lists connectors under the default DRM root.
func Enumerate() ([]Device, error) {
	return EnumerateWith(Options{})
}

// EnumerateWith lists opts.Root and returns a Device for every entry whose
// EDID file exists and is non-empty, in directory listing order.
func EnumerateWith(opts Options) ([]Device, error) {
	root := opts.Root
	if root == "" {
		root = DefaultDRMRoot
	}
	edidFile := opts.EDIDFile
	if edidFile == "" {
		edidFile = DefaultEDIDFile
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name(), edidFile)
		data, err := os.ReadFile(path)
		if err != nil {
			if notApplicable(err) {
				continue
			}
			return nil, fmt.Errorf("read edid %s: %w", path, err)
		}
		if len(data) == 0 {
			continue
		}
		devices = append(devices, Device{
			Dir:       entry.Name(),
			ShortName: ShortName(entry.Name()),
			EDID:      data,
		})
	}
	return devices, nil
}

// notApplicable reports whether err means the entry has no EDID file at all.
// ENOTDIR covers plain files at the root such as "version".
func notApplicable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}
