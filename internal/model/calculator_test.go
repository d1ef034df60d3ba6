package model

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetricsBareRoom(t *testing.T) {
	room := NewRoom("Living room", "5", "4", "2.5")
	m := ComputeMetrics(room)

	if !almostEqual(m.FloorArea, 20) {
		t.Errorf("expected floor area 20, got %f", m.FloorArea)
	}
	if !almostEqual(m.Perimeter, 18) {
		t.Errorf("expected perimeter 18, got %f", m.Perimeter)
	}
	// With no openings, exclusions, or elements the net wall area equals
	// perimeter x height.
	if !almostEqual(m.WallArea, 45) {
		t.Errorf("expected wall area 45, got %f", m.WallArea)
	}
	if !almostEqual(m.CeilingArea, 20) {
		t.Errorf("expected ceiling area 20, got %f", m.CeilingArea)
	}
}

func TestComputeMetricsCommaDecimals(t *testing.T) {
	room := NewRoom("Kitchen", "3,5", "2,8", "2,7")
	m := ComputeMetrics(room)
	if !almostEqual(m.FloorArea, 3.5*2.8) {
		t.Errorf("expected floor area %f, got %f", 3.5*2.8, m.FloorArea)
	}
}

func TestComputeMetricsUnparseableDefaultsToZero(t *testing.T) {
	room := NewRoom("Partial", "abc", "", "2.5")
	m := ComputeMetrics(room)
	if m.FloorArea != 0 || m.WallArea != 0 {
		t.Errorf("expected zero metrics for unparseable room, got %+v", m)
	}
}

func TestComputeMetricsNonFiniteDefaultsToZero(t *testing.T) {
	for _, dim := range []string{"nan", "inf", "-inf"} {
		room := NewRoom("Degenerate", dim, "4", "2.5")
		m := ComputeMetrics(room)
		// Length counts as zero, so only the width-driven walls remain.
		if m.FloorArea != 0 || m.CeilingArea != 0 {
			t.Errorf("expected zero areas for length %q, got %+v", dim, m)
		}
		if !almostEqual(m.Perimeter, 8) || !almostEqual(m.WallArea, 20) {
			t.Errorf("expected perimeter 8 and wall area 20 for length %q, got %+v", dim, m)
		}
	}
}

func TestComputeMetricsOpeningsSubtract(t *testing.T) {
	room := NewRoom("Bedroom", "5", "4", "2.5")
	room.Openings = []Opening{
		NewOpening(OpeningDoor, "0.9", "2.1", "1"),
		NewOpening(OpeningWindow, "1.2", "1.4", "2"),
	}
	m := ComputeMetrics(room)
	expected := 45 - 0.9*2.1 - 1.2*1.4*2
	if !almostEqual(m.WallArea, expected) {
		t.Errorf("expected wall area %f, got %f", expected, m.WallArea)
	}
}

func TestComputeMetricsOversizedOpeningClampsToZero(t *testing.T) {
	room := NewRoom("Closet", "1", "1", "2")
	room.Openings = []Opening{NewOpening(OpeningDoor, "10", "10", "5")}
	m := ComputeMetrics(room)
	if m.WallArea != 0 {
		t.Errorf("expected clamped wall area 0, got %f", m.WallArea)
	}
}

func TestComputeMetricsExclusionsPerSurface(t *testing.T) {
	room := NewRoom("Bath", "3", "2", "2.5")
	room.Exclusions = []ExclusionZone{
		NewExclusionZone("1", "1", SurfaceWall),
		NewExclusionZone("0.5", "0.5", SurfaceFloor),
		NewExclusionZone("0.4", "0.4", SurfaceCeiling),
	}
	m := ComputeMetrics(room)
	if !almostEqual(m.WallArea, 25-1) {
		t.Errorf("expected wall area 24, got %f", m.WallArea)
	}
	if !almostEqual(m.FloorArea, 6-0.25) {
		t.Errorf("expected floor area 5.75, got %f", m.FloorArea)
	}
	if !almostEqual(m.CeilingArea, 6-0.16) {
		t.Errorf("expected ceiling area 5.84, got %f", m.CeilingArea)
	}
}

func TestComputeMetricsNicheAddsInnerFaces(t *testing.T) {
	room := NewRoom("Hall", "4", "3", "2.5")
	room.Elements = []GeometricElement{NewNiche("1", "0.3", "0.5", "1")}
	m := ComputeMetrics(room)
	// Back face + two side faces + top and bottom faces.
	extra := 1*0.5 + 2*0.3*0.5 + 2*1*0.3
	if !almostEqual(m.WallArea, 35+extra) {
		t.Errorf("expected wall area %f, got %f", 35+extra, m.WallArea)
	}
	if !almostEqual(m.FloorArea, 12) {
		t.Errorf("niche must not consume floor footprint, got %f", m.FloorArea)
	}
}

func TestComputeMetricsProtrusionAddsFacesConsumesFloor(t *testing.T) {
	room := NewRoom("Hall", "4", "3", "2.5")
	room.Elements = []GeometricElement{NewProtrusion("1", "0.4", "2.5", "2")}
	m := ComputeMetrics(room)
	extra := (1*2.5 + 2*0.4*2.5) * 2
	if !almostEqual(m.WallArea, 35+extra) {
		t.Errorf("expected wall area %f, got %f", 35+extra, m.WallArea)
	}
	if !almostEqual(m.FloorArea, 12-1*0.4*2) {
		t.Errorf("expected floor area %f, got %f", 12-0.8, m.FloorArea)
	}
}

func TestComputeMetricsColumnLateralAreaAndFootprint(t *testing.T) {
	room := NewRoom("Lobby", "6", "6", "3")
	room.Elements = []GeometricElement{NewColumn("0.4", "3", "2")}
	m := ComputeMetrics(room)
	lateral := math.Pi * 0.4 * 3 * 2
	footprint := math.Pi * 0.2 * 0.2 * 2
	if !almostEqual(m.WallArea, 72+lateral) {
		t.Errorf("expected wall area %f, got %f", 72+lateral, m.WallArea)
	}
	if !almostEqual(m.FloorArea, 36-footprint) {
		t.Errorf("expected floor area %f, got %f", 36-footprint, m.FloorArea)
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	room := NewRoom("Same", "5", "4", "2.5")
	room.Openings = []Opening{NewOpening(OpeningDoor, "0.9", "2.1", "1")}
	first := ComputeMetrics(room)
	second := ComputeMetrics(room)
	if first != second {
		t.Errorf("expected identical metrics, got %+v and %+v", first, second)
	}
}

func TestComputeTotalMetricsEmpty(t *testing.T) {
	total := ComputeTotalMetrics(nil)
	if total.FloorArea != 0 || total.WallArea != 0 || total.CeilingArea != 0 || total.Perimeter != 0 {
		t.Errorf("expected all-zero totals, got %+v", total)
	}
	if total.RoomCount != 0 {
		t.Errorf("expected 0 rooms, got %d", total.RoomCount)
	}
}

func TestComputeTotalMetricsSingleRoomMatchesRoom(t *testing.T) {
	room := NewRoom("Only", "5", "4", "2.5")
	total := ComputeTotalMetrics([]RoomData{room})
	m := ComputeMetrics(room)
	if total.Metrics() != m {
		t.Errorf("single-room totals %+v != room metrics %+v", total.Metrics(), m)
	}
	if total.RoomCount != 1 {
		t.Errorf("expected 1 room, got %d", total.RoomCount)
	}
}

func TestComputeTotalMetricsSums(t *testing.T) {
	a := NewRoom("A", "5", "4", "2.5")
	b := NewRoom("B", "3", "2", "2.7")
	total := ComputeTotalMetrics([]RoomData{a, b})
	ma, mb := ComputeMetrics(a), ComputeMetrics(b)
	if !almostEqual(total.FloorArea, ma.FloorArea+mb.FloorArea) {
		t.Errorf("floor sum mismatch")
	}
	if !almostEqual(total.WallArea, ma.WallArea+mb.WallArea) {
		t.Errorf("wall sum mismatch")
	}
}
