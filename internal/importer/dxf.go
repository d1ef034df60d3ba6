package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/renocalc/renocalc/internal/model"
)

// dxfUnitsPerMeter converts DXF drawing units to meters. Floor plans
// are conventionally drawn in millimeters.
const dxfUnitsPerMeter = 1000.0

// ImportDXF extracts rooms from a DXF floor plan. Each closed LWPOLYLINE
// becomes one room: its bounding box gives length and width, and the
// supplied ceiling height (a numeric string in meters) applies to every
// imported room. Open polylines and other entity types are skipped with
// a warning.
func ImportDXF(path, ceilingHeight string) ImportResult {
	result := ImportResult{}

	if model.ParseDimension(ceilingHeight) <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid ceiling height '%s'", ceilingHeight))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	roomNum := 0
	skipped := 0
	for _, ent := range entities {
		lw, ok := ent.(*entity.LwPolyline)
		if !ok {
			skipped++
			continue
		}
		if !lw.Closed {
			result.Warnings = append(result.Warnings, "Skipped open LWPOLYLINE")
			continue
		}
		if len(lw.Vertices) < 3 {
			result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
			continue
		}

		length, width := boundingBoxMeters(lw)
		if length < 0.1 || width < 0.1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f m)", length, width))
			continue
		}

		roomNum++
		room := model.NewRoom(
			fmt.Sprintf("Room %d", roomNum),
			formatMeters(length),
			formatMeters(width),
			ceilingHeight,
		)
		result.Rooms = append(result.Rooms, room)
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}
	if len(result.Rooms) == 0 {
		result.Errors = append(result.Errors, "No closed room outlines found in DXF file")
	}
	return result
}

// boundingBoxMeters returns the polyline's bounding box converted to
// meters, longest side first.
func boundingBoxMeters(lw *entity.LwPolyline) (length, width float64) {
	minX, minY := lw.Vertices[0][0], lw.Vertices[0][1]
	maxX, maxY := minX, minY
	for _, v := range lw.Vertices[1:] {
		if v[0] < minX {
			minX = v[0]
		}
		if v[0] > maxX {
			maxX = v[0]
		}
		if v[1] < minY {
			minY = v[1]
		}
		if v[1] > maxY {
			maxY = v[1]
		}
	}
	dx := (maxX - minX) / dxfUnitsPerMeter
	dy := (maxY - minY) / dxfUnitsPerMeter
	if dx >= dy {
		return dx, dy
	}
	return dy, dx
}

// formatMeters renders a length as a numeric string the way a user
// would type it, trimming trailing zeros.
func formatMeters(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
