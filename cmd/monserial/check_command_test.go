package main

import (
	"path/filepath"
	"testing"

	"monserial/internal/testsupport"
)

func TestCheckHealthyTree(t *testing.T) {
	tree := newTestTree(t)

	out, _, err := runCLI(t, "--drm-root", tree.Root, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "DRM root")
	requireContains(t, out, "2 with EDID: DP-1, HDMI-A-1")
	requireContains(t, out, "2 displays decoded")
	requireContains(t, out, "OK")
}

func TestCheckReportsFailures(t *testing.T) {
	tree := testsupport.NewDRMTree(t).Connector("card0-DP-1", []byte{0x00, 0xff})

	out, _, err := runCLI(t, "--drm-root", tree.Root, "check")
	if err == nil {
		t.Fatal("expected check to fail")
	}
	requireContains(t, out, "FAIL")
	requireContains(t, out, "card0-DP-1")
}

func TestCheckMissingRoot(t *testing.T) {
	out, _, err := runCLI(t, "--drm-root", filepath.Join(t.TempDir(), "absent"), "check")
	if err == nil {
		t.Fatal("expected check to fail")
	}
	requireContains(t, out, "does not exist")
}
