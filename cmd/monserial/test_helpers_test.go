package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"monserial/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// Keep the developer's own config file out of the run.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newTestTree(t *testing.T) *testsupport.DRMTree {
	t.Helper()
	return testsupport.NewDRMTree(t).
		Card("card0").
		File("version", "drm 1.1.0 20060810").
		Connector("card0-HDMI-A-1", testsupport.EDID(1001)).
		Connector("card0-DP-1", testsupport.EDID(1002)).
		Connector("card0-DP-2", nil)
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in output:\n%s", needle, haystack)
	}
}
