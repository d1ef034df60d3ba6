package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renocalc/renocalc/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.DisplayUnit = model.UnitCentimeters
	cfg.RecentEstimates = []string{"flat", "summer house"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.DisplayUnit != model.UnitCentimeters {
		t.Errorf("expected cm display unit, got %s", loaded.DisplayUnit)
	}
	if len(loaded.RecentEstimates) != 2 {
		t.Errorf("expected 2 recent estimates, got %d", len(loaded.RecentEstimates))
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")
	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if loaded.DisplayUnit != defaults.DisplayUnit || loaded.Theme != defaults.Theme {
		t.Errorf("expected defaults, got %+v", loaded)
	}
}

func TestLoadAppConfigNormalizesNilRecent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light"}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.RecentEstimates == nil {
		t.Error("RecentEstimates should be normalized to an empty slice")
	}
}

func TestLoadAppConfigCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for corrupt config file")
	}
}
