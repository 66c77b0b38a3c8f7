package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Installer.Script != "" {
		t.Errorf("Installer.Script = %q, want empty", cfg.Installer.Script)
	}
	if len(cfg.Installer.ExtraArgs) != 0 {
		t.Errorf("Installer.ExtraArgs = %v, want empty", cfg.Installer.ExtraArgs)
	}
	if cfg.UI.NoColor {
		t.Error("UI.NoColor should be false by default")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Version: 1,
		Installer: InstallerConfig{
			Script:    "/opt/printforge/install.sh",
			ExtraArgs: []string{"--quiet"},
		},
		UI: UIConfig{NoColor: true},
	}
	if err := SaveConfigTo(cfg, path); err != nil {
		t.Fatalf("SaveConfigTo() error: %v", err)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error: %v", err)
	}
	if loaded.Installer.Script != cfg.Installer.Script {
		t.Errorf("Installer.Script = %q, want %q", loaded.Installer.Script, cfg.Installer.Script)
	}
	if len(loaded.Installer.ExtraArgs) != 1 || loaded.Installer.ExtraArgs[0] != "--quiet" {
		t.Errorf("Installer.ExtraArgs = %v, want [--quiet]", loaded.Installer.ExtraArgs)
	}
	if !loaded.UI.NoColor {
		t.Error("UI.NoColor not preserved through save/load")
	}
}

func TestLoadConfigFrom_Missing(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadConfigFrom() on missing file should return an error")
	}
}
