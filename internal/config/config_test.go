package config

import (
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.Scoring.DefaultScore != 17 || cfg.Scoring.Threshold != 200 {
		t.Fatalf("defaults not applied: %+v", cfg.Scoring)
	}
	if cfg.General.Profile != "default" {
		t.Fatalf("default profile = %q", cfg.General.Profile)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Scoring.Threshold = 180
	cfg.General.Profile = "alt"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Scoring.Threshold != 180 || loaded.General.Profile != "alt" ||
		loaded.Appearance.Theme != "terminal" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/alphawin-test"
	if cfg.DataDir() != "/tmp/alphawin-test" {
		t.Fatalf("DataDir override ignored: %s", cfg.DataDir())
	}
	if cfg.DBPath() != filepath.Join("/tmp/alphawin-test", "profiles.db") {
		t.Fatalf("DBPath = %s", cfg.DBPath())
	}
}
