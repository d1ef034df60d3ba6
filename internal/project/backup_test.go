package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renocalc/renocalc/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	store, _ := newTestStore(t)
	store.SaveMaterial(model.NewSavedMaterial("paint", "White", map[string]string{"coverage": "10"}))
	store.SaveEstimate("flat", []model.RoomData{model.NewRoom("A", "5", "4", "2.5")})

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := ExportAllData(path, cfg, store); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Error("expected version and timestamp in backup")
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected imported theme dark, got %s", backup.Config.Theme)
	}
	if len(backup.Materials) != 1 || len(backup.Estimates) != 1 {
		t.Errorf("expected 1 material and 1 estimate, got %d/%d",
			len(backup.Materials), len(backup.Estimates))
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for backup without version")
	}
}
