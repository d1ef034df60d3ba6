// Package importer reads room lists from CSV and Excel files and room
// geometry from DXF floor plans. Tabular import supports automatic
// delimiter detection, flexible column mapping, and case-insensitive
// header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/renocalc/renocalc/internal/model"
)

// ImportResult holds the results of an import operation. Row-level
// problems are collected as messages, never turned into hard failures,
// so one bad line does not discard a whole file.
type ImportResult struct {
	Rooms    []model.RoomData
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name   int
	Length int
	Width  int
	Height int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":   {"name", "room", "room name", "label", "description"},
	"length": {"length", "len", "l", "long side"},
	"width":  {"width", "w", "wide", "short side"},
	"height": {"height", "h", "ceiling", "ceiling height"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping (name, length, width, height) and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Name: -1, Length: -1, Width: -1, Height: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Name: 0, Length: 1, Width: 2, Height: 3}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a RoomData from a row using the given column mapping.
// Dimensions are expected in meters. Returns the room and any error message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, roomCount int) (model.RoomData, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Room %d", roomCount+1)
	}

	length := getCell(row, mapping.Length)
	if length == "" {
		return model.RoomData{}, fmt.Sprintf("%s: Missing length value", rowLabel)
	}
	width := getCell(row, mapping.Width)
	if width == "" {
		return model.RoomData{}, fmt.Sprintf("%s: Missing width value", rowLabel)
	}
	height := getCell(row, mapping.Height)
	if height == "" {
		return model.RoomData{}, fmt.Sprintf("%s: Missing height value", rowLabel)
	}

	for _, dim := range []struct{ label, value string }{
		{"length", length}, {"width", width}, {"height", height},
	} {
		if model.ParseDimension(dim.value) <= 0 {
			return model.RoomData{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, dim.label, dim.value)
		}
	}

	return model.NewRoom(name, length, width, height), ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports rooms from a CSV file. It automatically detects the
// delimiter and maps columns by header names. Supports comma, semicolon,
// tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("CSV parse error: %v", err))
			return result
		}
		rows = append(rows, row)
	}

	importRows(rows, &result)
	return result
}

// ImportXLSX imports rooms from the first sheet of an Excel workbook.
func ImportXLSX(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Workbook has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", sheets[0], err))
		return result
	}

	importRows(rows, &result)
	return result
}

// importRows runs header detection and row parsing over tabular data.
func importRows(rows [][]string, result *ImportResult) {
	start := 0
	var mapping ColumnMapping
	headerFound := false

	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		mapping, headerFound = DetectColumns(row)
		if headerFound {
			start = i + 1
		} else {
			start = i
			result.Warnings = append(result.Warnings,
				"No header row detected, assuming columns: name, length, width, height")
		}
		break
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		room, errMsg := parseRow(row, mapping, fmt.Sprintf("Row %d", i+1), len(result.Rooms))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Rooms = append(result.Rooms, room)
	}

	if len(result.Rooms) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No rooms found in file")
	}
}
