package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.PlansFile != "plans.json" {
		t.Errorf("PlansFile = %q, want plans.json", cfg.General.PlansFile)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.PlansFile = "/etc/planrec/plans.yaml"
	cfg.General.Currency = "€"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.PlansFile != cfg.General.PlansFile {
		t.Errorf("PlansFile = %q, want %q", got.General.PlansFile, cfg.General.PlansFile)
	}
	if got.General.Currency != "€" {
		t.Errorf("Currency = %q, want €", got.General.Currency)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "planrec", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general]\nplans_file = \"my.json\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.PlansFile != "my.json" {
		t.Errorf("PlansFile = %q, want my.json", cfg.General.PlansFile)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency default lost: %q", cfg.General.Currency)
	}
}
