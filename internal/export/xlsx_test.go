package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/renocalc/renocalc/internal/model"
)

func TestExportXLSX_WorkbookStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.xlsx")
	est := buildTestEstimate()

	if err := ExportXLSX(path, est, buildTestResults()); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("expected Summary + 2 room sheets, got %v", sheets)
	}
	if sheets[0] != "Summary" {
		t.Errorf("expected first sheet Summary, got %s", sheets[0])
	}

	name, err := f.GetCellValue("Summary", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if name != est.Name {
		t.Errorf("expected estimate name %q in B1, got %q", est.Name, name)
	}

	// The room sheet carries the room name.
	roomName, err := f.GetCellValue(sheets[1], "B1")
	if err != nil {
		t.Fatal(err)
	}
	if roomName != "Living room" {
		t.Errorf("expected room name in first room sheet, got %q", roomName)
	}
}

func TestExportXLSX_NoRooms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportXLSX(path, model.Estimate{Name: "Empty"}, nil); err == nil {
		t.Fatal("expected error for estimate without rooms")
	}
}

func TestExportXLSX_SheetNameSanitized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weird.xlsx")
	room := model.NewRoom("Kitchen/Dining [main]: the really long annex wing", "4", "4", "2.5")
	est := model.Estimate{ID: 2, Name: "Odd names", Rooms: []model.RoomData{room}}

	if err := ExportXLSX(path, est, nil); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %v", sheets)
	}
	if len(sheets[1]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %q", sheets[1])
	}
}
