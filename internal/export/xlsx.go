package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/renocalc/renocalc/internal/model"
)

// ExportXLSX writes an estimate workbook: a Summary sheet with per-room
// metrics and the material cost table, plus one sheet per room listing
// its openings, exclusion zones, and geometric elements.
func ExportXLSX(path string, est model.Estimate, results map[string]*model.MaterialResult) error {
	if len(est.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	if err := writeSummarySheet(f, summary, est, results); err != nil {
		return err
	}

	for i, room := range est.Rooms {
		name := sheetName(room, i)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet for room %q: %w", room.Name, err)
		}
		if err := writeRoomSheet(f, name, room); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sheetName builds a workbook-safe sheet name. Excel limits names to 31
// characters and forbids a handful of punctuation characters; the room
// index keeps duplicates apart.
func sheetName(room model.RoomData, index int) string {
	name := fmt.Sprintf("%d %s", index+1, room.Name)
	for _, forbidden := range []string{"/", "\\", "?", "*", "[", "]", ":"} {
		name = strings.ReplaceAll(name, forbidden, "-")
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func writeSummarySheet(f *excelize.File, sheet string, est model.Estimate, results map[string]*model.MaterialResult) error {
	rows := [][]any{
		{"Estimate", est.Name},
		{"Date", est.Date},
		{"Rooms", len(est.Rooms)},
		{},
		{"Room", "Floor m2", "Walls m2", "Ceiling m2", "Perimeter m"},
	}

	total := model.ComputeTotalMetrics(est.Rooms)
	for _, room := range est.Rooms {
		m := model.ComputeMetrics(room)
		rows = append(rows, []any{room.Name, m.FloorArea, m.WallArea, m.CeilingArea, m.Perimeter})
	}
	rows = append(rows,
		[]any{"Total", total.FloorArea, total.WallArea, total.CeilingArea, total.Perimeter},
		[]any{},
		[]any{"Material", "Category", "Quantity", "Cost"},
	)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	var grandTotal float64
	for _, name := range names {
		r := results[name]
		if r == nil {
			rows = append(rows, []any{name, "", "not computable", ""})
			continue
		}
		grandTotal += r.Cost
		rows = append(rows, []any{name, r.Category, r.Quantity, r.Cost})
	}
	rows = append(rows, []any{"Grand total", "", "", grandTotal})

	return writeRows(f, sheet, rows)
}

func writeRoomSheet(f *excelize.File, sheet string, room model.RoomData) error {
	m := model.ComputeMetrics(room)
	rows := [][]any{
		{"Room", room.Name},
		{"Dimensions", fmt.Sprintf("%s x %s x %s m", room.Length, room.Width, room.Height)},
		{"Floor area", m.FloorArea},
		{"Wall area", m.WallArea},
		{"Ceiling area", m.CeilingArea},
		{"Perimeter", m.Perimeter},
	}

	if len(room.Openings) > 0 {
		rows = append(rows, []any{}, []any{"Openings", "Type", "Width", "Height", "Count"})
		for _, o := range room.Openings {
			rows = append(rows, []any{o.ID, string(o.Type), o.Width, o.Height, o.Count})
		}
	}
	if len(room.Exclusions) > 0 {
		rows = append(rows, []any{}, []any{"Exclusions", "Surface", "Width", "Height"})
		for _, z := range room.Exclusions {
			rows = append(rows, []any{z.ID, string(z.Surface), z.Width, z.Height})
		}
	}
	if len(room.Elements) > 0 {
		rows = append(rows, []any{}, []any{"Elements", "Kind", "Width", "Depth", "Diameter", "Height", "Count"})
		for _, e := range room.Elements {
			rows = append(rows, []any{e.ID, string(e.Kind), e.Width, e.Depth, e.Diameter, e.Height, e.Count})
		}
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
