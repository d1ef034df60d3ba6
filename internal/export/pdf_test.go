package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renocalc/renocalc/internal/model"
)

// buildTestEstimate creates a realistic two-room estimate for testing.
func buildTestEstimate() model.Estimate {
	living := model.NewRoom("Living room", "5", "4", "2.5")
	living.Openings = []model.Opening{
		model.NewOpening(model.OpeningDoor, "0.9", "2.1", "1"),
		model.NewOpening(model.OpeningWindow, "1.2", "1.4", "2"),
	}
	bath := model.NewRoom("Bathroom", "2.2", "1.8", "2.5")
	bath.Exclusions = []model.ExclusionZone{
		model.NewExclusionZone("0.8", "1.8", model.SurfaceWall),
	}
	bath.Elements = []model.GeometricElement{
		model.NewNiche("0.6", "0.15", "0.4", "1"),
	}
	return model.Estimate{
		ID:    1,
		Name:  "Two-room flat",
		Date:  "2026-08-30T10:00:00Z",
		Rooms: []model.RoomData{living, bath},
	}
}

func buildTestResults() map[string]*model.MaterialResult {
	return map[string]*model.MaterialResult{
		"White paint": {
			Category: "paint",
			Quantity: "9.5 L",
			Cost:     1140,
			Details:  []model.Detail{{Label: "Coats", Value: "2"}},
		},
		"Bathroom tile": {
			Category: "tile",
			Quantity: "7 packs (61 tiles)",
			Cost:     3500,
		},
		"Unset wallpaper": nil,
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.pdf")

	if err := ExportPDF(path, buildTestEstimate(), buildTestResults()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_NoRooms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	err := ExportPDF(path, model.Estimate{Name: "Empty"}, nil)
	if err == nil {
		t.Fatal("expected error for estimate without rooms, got nil")
	}
}

func TestExportPDF_NoMaterials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms_only.pdf")
	if err := ExportPDF(path, buildTestEstimate(), nil); err != nil {
		t.Fatalf("ExportPDF without materials returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}
