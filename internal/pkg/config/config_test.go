package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	minimal := `server:
  host: 127.0.0.1
  port: 9000
checker:
  tool_path: /opt/cdi
`
	if err := os.WriteFile(path, []byte(minimal), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("server port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Checker.ToolPath != "/opt/cdi" {
		t.Errorf("tool path = %q", cfg.Checker.ToolPath)
	}
	if cfg.AppName != "CheckDiskGo" {
		t.Errorf("app name default = %q", cfg.AppName)
	}
	if cfg.Checker.LaunchTimeout != 120 {
		t.Errorf("launch timeout default = %d, want 120", cfg.Checker.LaunchTimeout)
	}
	if cfg.Checker.OutputWait != 10 || cfg.Checker.DirectOutputWait != 25 {
		t.Errorf("output wait defaults = %d/%d, want 10/25",
			cfg.Checker.OutputWait, cfg.Checker.DirectOutputWait)
	}
	if cfg.Checker.PollInterval != 250 {
		t.Errorf("poll interval default = %d, want 250", cfg.Checker.PollInterval)
	}
	if cfg.Monitoring.Smart.MinHealthPercent != 80 {
		t.Errorf("min health percent default = %d, want 80", cfg.Monitoring.Smart.MinHealthPercent)
	}
	if cfg.Monitoring.Smart.MaxTemperature != 60 {
		t.Errorf("max temperature default = %d, want 60", cfg.Monitoring.Smart.MaxTemperature)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig should fail for a missing file")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Checker.ToolPath = `C:\Tools\CrystalDiskInfo`

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Checker.ToolPath != cfg.Checker.ToolPath {
		t.Errorf("tool path round trip = %q, want %q",
			loaded.Checker.ToolPath, cfg.Checker.ToolPath)
	}
	if loaded.Server.Port != cfg.Server.Port {
		t.Errorf("port round trip = %d, want %d", loaded.Server.Port, cfg.Server.Port)
	}
}
