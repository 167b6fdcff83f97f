package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/relm/internal/config"
	"github.com/ShayCichocki/relm/internal/version"
	"github.com/ShayCichocki/relm/pkg/relm"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, logPath, altScreen = "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("RELM_ANTHROPIC_API_KEY", "")
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if want := "relm version " + version.Get(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConfigCommand_SetAndGet(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "relm.yaml")

	out, err := execute(t, "--config", path, "config", "watch.path", "/srv/data")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(out, "Set watch.path = /srv/data") {
		t.Errorf("unexpected set output %q", out)
	}

	out, err = execute(t, "--config", path, "config", "watch.path")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "watch.path: /srv/data" {
		t.Errorf("get output = %q", out)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Watch.Path != "/srv/data" {
		t.Errorf("saved watch.path = %q", cfg.Watch.Path)
	}
}

func TestConfigCommand_MasksSecrets(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "relm.yaml")
	key := "sk-ant-REDACTED"

	out, err := execute(t, "--config", path, "config", "anthropic.api_key", key)
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if strings.Contains(out, key) {
		t.Errorf("set output leaked the key: %q", out)
	}

	out, err = execute(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}
	if strings.Contains(out, key) || !strings.Contains(out, "anthropic.api_key: sk-ant-...wxyz") {
		t.Errorf("list output = %q", out)
	}
	if !strings.Contains(out, "# api key source: config_file") {
		t.Errorf("missing key source in %q", out)
	}
}

func TestConfigCommand_UnknownKey(t *testing.T) {
	isolate(t)

	if _, err := execute(t, "config", "nope.key"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := execute(t, "config", "tui.alt_screen", "perhaps"); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "relm.yaml")
	if err := os.WriteFile(path, []byte("tui:\n  refresh_rate: 40ms\n"), 0644); err != nil {
		t.Fatal(err)
	}

	configPath, logPath, altScreen = path, "", false
	cmd := counterCmd
	if err := cmd.ParseFlags([]string{"--log", "/tmp/relm-test.log", "--alt-screen"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	t.Cleanup(func() {
		cmd.Flags().Lookup("log").Changed = false
		cmd.Flags().Lookup("alt-screen").Changed = false
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.TUI.RefreshRate != 40*time.Millisecond {
		t.Errorf("refresh rate = %v, want 40ms", cfg.TUI.RefreshRate)
	}
	if cfg.Executor.LogPath != "/tmp/relm-test.log" || !cfg.TUI.AltScreen {
		t.Errorf("flag overrides not applied: %+v %+v", cfg.Executor, cfg.TUI)
	}
}

func TestAskCommand_NoKey(t *testing.T) {
	isolate(t)

	_, err := execute(t, "ask")
	if !errors.Is(err, config.ErrNoAPIKey) {
		t.Errorf("ask error = %v, want ErrNoAPIKey", err)
	}
}

func TestCounterCommand_NotATerminal(t *testing.T) {
	isolate(t)

	stdin := os.Stdin
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	os.Stdin = f
	defer func() { os.Stdin = stdin }()

	_, err = execute(t, "counter")
	var relmErr *relm.Error
	if !errors.As(err, &relmErr) || relmErr.Kind != relm.ToolkitInitFailure {
		t.Errorf("counter error = %v, want ToolkitInitFailure", err)
	}
}
