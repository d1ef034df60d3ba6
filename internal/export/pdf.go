// Package export renders a computed estimate to shareable file formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/renocalc/renocalc/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 7.0
	qrSize       = 24.0
)

// estimateTag is the payload encoded into the estimate QR code so a
// printed page can be matched back to the saved estimate.
type estimateTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// ExportPDF writes an estimate summary document: a header with the
// estimate identity and QR tag, a metrics table with one row per room,
// and a material table with quantity and cost per material plus the
// grand total.
func ExportPDF(path string, est model.Estimate, results map[string]*model.MaterialResult) error {
	if len(est.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	if err := renderHeader(pdf, est); err != nil {
		return err
	}
	renderMetricsTable(pdf, est.Rooms)
	renderMaterialsTable(pdf, results)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, est model.Estimate) error {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, 8, est.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetX(marginLeft)
	subtitle := fmt.Sprintf("Material estimate | %d rooms", len(est.Rooms))
	if est.Date != "" {
		subtitle += " | " + est.Date
	}
	pdf.CellFormat(contentWidth-qrSize, 5, subtitle, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// QR tag in the top-right corner.
	tag, err := json.Marshal(estimateTag{ID: est.ID, Name: est.Name, Date: est.Date})
	if err != nil {
		return fmt.Errorf("failed to marshal estimate tag: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(tag), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	imgName := fmt.Sprintf("qr_estimate_%d", est.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetY(marginTop + qrSize + 4)
	return nil
}

func renderMetricsTable(pdf *fpdf.Fpdf, rooms []model.RoomData) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight, "Room metrics", "", 1, "L", false, 0, "")

	colWidths := []float64{60, 30, 30, 30, 30}
	headers := []string{"Room", "Floor m2", "Walls m2", "Ceiling m2", "Perimeter m"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	total := model.ComputeTotalMetrics(rooms)
	for _, room := range rooms {
		m := model.ComputeMetrics(room)
		pdf.SetX(marginLeft)
		pdf.CellFormat(colWidths[0], rowHeight, room.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], rowHeight, fmt.Sprintf("%.2f", m.FloorArea), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, fmt.Sprintf("%.2f", m.WallArea), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], rowHeight, fmt.Sprintf("%.2f", m.CeilingArea), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], rowHeight, fmt.Sprintf("%.2f", m.Perimeter), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(colWidths[0], rowHeight, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[1], rowHeight, fmt.Sprintf("%.2f", total.FloorArea), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[2], rowHeight, fmt.Sprintf("%.2f", total.WallArea), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], rowHeight, fmt.Sprintf("%.2f", total.CeilingArea), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[4], rowHeight, fmt.Sprintf("%.2f", total.Perimeter), "1", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func renderMaterialsTable(pdf *fpdf.Fpdf, results map[string]*model.MaterialResult) {
	if len(results) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight, "Materials", "", 1, "L", false, 0, "")

	colWidths := []float64{60, 40, 45, 35}
	headers := []string{"Material", "Category", "Quantity", "Cost"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf.SetFont("Helvetica", "", 9)
	var grandTotal float64
	for _, name := range names {
		r := results[name]
		pdf.SetX(marginLeft)
		pdf.CellFormat(colWidths[0], rowHeight, name, "1", 0, "L", false, 0, "")
		if r == nil {
			pdf.CellFormat(colWidths[1], rowHeight, "-", "1", 0, "C", false, 0, "")
			pdf.CellFormat(colWidths[2], rowHeight, "not computable", "1", 0, "C", false, 0, "")
			pdf.CellFormat(colWidths[3], rowHeight, "-", "1", 1, "C", false, 0, "")
			continue
		}
		grandTotal += r.Cost
		pdf.CellFormat(colWidths[1], rowHeight, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, r.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], rowHeight, fmt.Sprintf("%.2f", r.Cost), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], rowHeight, "Grand total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[3], rowHeight, fmt.Sprintf("%.2f", grandTotal), "1", 1, "R", false, 0, "")
}
