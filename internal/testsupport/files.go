package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// DRMTree builds a fake /sys/class/drm directory for enumeration tests.
type DRMTree struct {
	t    testing.TB
	Root string
}

// NewDRMTree creates an empty DRM root under a fresh temp directory.
func NewDRMTree(t testing.TB) *DRMTree {
	t.Helper()
	root := filepath.Join(t.TempDir(), "drm")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir drm root: %v", err)
	}
	return &DRMTree{t: t, Root: root}
}

// Connector adds <root>/<name>/edid holding data. A nil data slice writes an
// empty edid file, which is what the kernel exposes for disconnected outputs.
func (d *DRMTree) Connector(name string, data []byte) *DRMTree {
	d.t.Helper()
	dir := filepath.Join(d.Root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		d.t.Fatalf("mkdir connector %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "edid"), data, 0o644); err != nil {
		d.t.Fatalf("write edid for %s: %v", name, err)
	}
	return d
}

// LinkedConnector mirrors the real sysfs layout, where class entries are
// symlinks into /sys/devices.
func (d *DRMTree) LinkedConnector(name string, data []byte) *DRMTree {
	d.t.Helper()
	target := filepath.Join(filepath.Dir(d.Root), "devices", name)
	if err := os.MkdirAll(target, 0o755); err != nil {
		d.t.Fatalf("mkdir device %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(target, "edid"), data, 0o644); err != nil {
		d.t.Fatalf("write edid for %s: %v", name, err)
	}
	if err := os.Symlink(target, filepath.Join(d.Root, name)); err != nil {
		d.t.Fatalf("symlink %s: %v", name, err)
	}
	return d
}

// Card adds a directory without an edid file, such as card0 or renderD128.
func (d *DRMTree) Card(name string) *DRMTree {
	d.t.Helper()
	if err := os.MkdirAll(filepath.Join(d.Root, name), 0o755); err != nil {
		d.t.Fatalf("mkdir %s: %v", name, err)
	}
	return d
}

// File adds a plain file at the root, such as the kernel's "version" entry.
func (d *DRMTree) File(name, content string) *DRMTree {
	d.t.Helper()
	if err := os.WriteFile(filepath.Join(d.Root, name), []byte(content), 0o644); err != nil {
		d.t.Fatalf("write %s: %v", name, err)
	}
	return d
}
