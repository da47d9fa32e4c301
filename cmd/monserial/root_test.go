package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"monserial/internal/edid"
	"monserial/internal/mapping"
	"monserial/internal/testsupport"
)

func TestNoFlagsDoesNothing(t *testing.T) {
	tree := newTestTree(t)

	out, errOut, err := runCLI(t, "--drm-root", tree.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" || errOut != "" {
		t.Fatalf("expected no output, got stdout %q stderr %q", out, errOut)
	}
}

func TestNoFlagsIgnoresInvalidConfig(t *testing.T) {
	tree := newTestTree(t)
	t.Setenv("MONSERIAL_LOG_LEVEL", "verbose")

	out, errOut, err := runCLI(t, "--drm-root", tree.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" || errOut != "" {
		t.Fatalf("expected no output, got stdout %q stderr %q", out, errOut)
	}

	if _, _, err := runCLI(t, "--drm-root", tree.Root, "--list"); err == nil {
		t.Fatal("expected --list to report the invalid log level")
	}
}

func TestListPrintsEveryDisplay(t *testing.T) {
	tree := newTestTree(t)

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--list")
	if err != nil {
		t.Fatalf("--list: %v", err)
	}
	// os.ReadDir lists entries sorted by name.
	want := "Short Name: DP-1   Serial: 1002\n" +
		"Short Name: HDMI-A-1   Serial: 1001\n"
	if out != want {
		t.Fatalf("unexpected listing:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestListSingleDisplay(t *testing.T) {
	tree := testsupport.NewDRMTree(t).Connector("card1-eDP-1", testsupport.EDID(55))

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--list")
	if err != nil {
		t.Fatalf("--list: %v", err)
	}
	if out != "Short Name: eDP-1   Serial: 55\n" {
		t.Fatalf("unexpected listing %q", out)
	}
}

func TestListEmptyTree(t *testing.T) {
	tree := testsupport.NewDRMTree(t).Card("card0")

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--list")
	if err != nil {
		t.Fatalf("--list: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestListWinsOverMap(t *testing.T) {
	tree := newTestTree(t)

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--map", "Left:1002", "--list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "set $") {
		t.Fatalf("--list should take precedence over --map, got %q", out)
	}
	requireContains(t, out, "Short Name: DP-1")
}

func TestMapPrintsSetLinesInRuleOrder(t *testing.T) {
	tree := newTestTree(t)

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--map", "Left:1002", "--map", "Right:9999", "--map", "Center:1001")
	if err != nil {
		t.Fatalf("--map: %v", err)
	}
	want := "set $Left DP-1\n" +
		"# No display for serial number 9999\n" +
		"set $Right Unknown\n" +
		"set $Center HDMI-A-1\n"
	if out != want {
		t.Fatalf("unexpected output:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestMapRuleParseErrorFailsBeforeDiscovery(t *testing.T) {
	// The DRM root does not exist, so reaching discovery would fail differently.
	root := filepath.Join(t.TempDir(), "absent")

	out, _, err := runCLI(t, "--drm-root", root, "--map", "Left:1002", "--map", "Right")
	if err == nil {
		t.Fatal("expected rule parse error")
	}
	if !errors.Is(err, mapping.ErrRuleParse) {
		t.Fatalf("expected ErrRuleParse, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestMapDecodeErrorAbortsWithoutOutput(t *testing.T) {
	tree := newTestTree(t).Connector("card0-DP-3", []byte("not an edid"))

	out, errOut, err := runCLI(t, "--drm-root", tree.Root, "--map", "Left:1002")
	if !errors.Is(err, edid.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	requireContains(t, err.Error(), "card0-DP-3")
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	requireContains(t, errOut, "display discovery failed")
	requireContains(t, errOut, "event_type=discovery_failed")
	requireContains(t, errOut, "--skip-unparsable")
}

func TestMapEmptyVariableName(t *testing.T) {
	tree := newTestTree(t)

	out, _, err := runCLI(t, "--drm-root", tree.Root, "--map", ":1002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "set $ DP-1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSkipUnparsableFlag(t *testing.T) {
	tree := newTestTree(t).Connector("card0-DP-3", []byte("not an edid"))

	out, errOut, err := runCLI(t, "--drm-root", tree.Root, "--skip-unparsable", "--map", "Left:1002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "set $Left DP-1\n" {
		t.Fatalf("unexpected output %q", out)
	}
	requireContains(t, errOut, "skipping display with unparsable edid")
}

func TestMissingDRMRootFails(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")

	if _, _, err := runCLI(t, "--drm-root", root, "--list"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestConfigFileSuppliesDRMRoot(t *testing.T) {
	tree := newTestTree(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	body := "[sysfs]\ndrm_root = \"" + tree.Root + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--config", cfgPath, "--map", "Center:1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "set $Center HDMI-A-1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDebugLogsGoToStderr(t *testing.T) {
	tree := newTestTree(t)

	out, errOut, err := runCLI(t, "--drm-root", tree.Root, "--log-level", "debug", "--map", "Gone:5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# No display for serial number 5\nset $Gone Unknown\n" {
		t.Fatalf("logs leaked into stdout: %q", out)
	}
	requireContains(t, errOut, "enumerating displays")
	requireContains(t, errOut, "no display for rule")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	tree := newTestTree(t)

	if _, _, err := runCLI(t, "--drm-root", tree.Root, "--log-level", "chatty", "--list"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPositionalArgumentsRejected(t *testing.T) {
	if _, _, err := runCLI(t, "Left:1002"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
