package model

import "math"

// RoomMetrics holds the derived surface measurements for one room.
// Metrics are always computed fresh from RoomData and never persisted;
// staleness is impossible because nothing caches them.
type RoomMetrics struct {
	FloorArea   float64 `json:"floor_area"`   // sq m
	WallArea    float64 `json:"wall_area"`    // sq m, net of openings and exclusions
	CeilingArea float64 `json:"ceiling_area"` // sq m
	Perimeter   float64 `json:"perimeter"`    // m
}

// TotalCalculations aggregates RoomMetrics across all rooms of a project.
type TotalCalculations struct {
	FloorArea   float64 `json:"floor_area"`
	WallArea    float64 `json:"wall_area"`
	CeilingArea float64 `json:"ceiling_area"`
	Perimeter   float64 `json:"perimeter"`
	RoomCount   int     `json:"room_count"`
}

// Metrics returns the aggregate as a RoomMetrics value so material
// calculators can consume per-room and whole-project figures alike.
func (t TotalCalculations) Metrics() RoomMetrics {
	return RoomMetrics{
		FloorArea:   t.FloorArea,
		WallArea:    t.WallArea,
		CeilingArea: t.CeilingArea,
		Perimeter:   t.Perimeter,
	}
}

// ComputeMetrics derives floor, wall, ceiling, and perimeter metrics for
// a single room. It is pure and deterministic: the same RoomData always
// yields the same RoomMetrics. Unparseable dimensions count as zero, so
// a half-filled room produces zero-valued metrics instead of an error.
//
// Openings and wall exclusions subtract from wall area; niches add their
// inner faces, protrusions add their outer faces while consuming floor
// footprint, and columns add lateral area while consuming footprint.
// Every area is clamped at zero so over-sized openings can never push a
// negative quantity downstream.
func ComputeMetrics(room RoomData) RoomMetrics {
	length := ParseDimension(room.Length)
	width := ParseDimension(room.Width)
	height := ParseDimension(room.Height)

	perimeter := 2 * (length + width)
	floorArea := length * width
	wallArea := perimeter * height

	for _, o := range room.Openings {
		w := ParseDimension(o.Width)
		h := ParseDimension(o.Height)
		n := ParseCount(o.Count)
		wallArea -= w * h * float64(n)
	}

	ceilingArea := floorArea
	for _, z := range room.Exclusions {
		area := ParseDimension(z.Width) * ParseDimension(z.Height)
		switch z.Surface {
		case SurfaceWall:
			wallArea -= area
		case SurfaceFloor:
			floorArea -= area
		case SurfaceCeiling:
			ceilingArea -= area
		}
	}

	for _, e := range room.Elements {
		n := float64(ParseCount(e.Count))
		h := ParseDimension(e.Height)
		switch e.Kind {
		case ElementNiche:
			w := ParseDimension(e.Width)
			d := ParseDimension(e.Depth)
			// Inner faces: back wall plus two side walls plus top/bottom.
			wallArea += (w*h + 2*d*h + 2*w*d) * n
		case ElementProtrusion:
			w := ParseDimension(e.Width)
			d := ParseDimension(e.Depth)
			// Outer faces: front plus two sides; footprint leaves the floor.
			wallArea += (w*h + 2*d*h) * n
			floorArea -= w * d * n
		case ElementColumn:
			dia := ParseDimension(e.Diameter)
			wallArea += math.Pi * dia * h * n
			floorArea -= math.Pi * (dia / 2) * (dia / 2) * n
		}
	}

	return RoomMetrics{
		FloorArea:   clampZero(floorArea),
		WallArea:    clampZero(wallArea),
		CeilingArea: clampZero(ceilingArea),
		Perimeter:   perimeter,
	}
}

// ComputeTotalMetrics sums per-room metrics across all rooms.
// An empty slice yields all-zero totals, not an error.
func ComputeTotalMetrics(rooms []RoomData) TotalCalculations {
	var total TotalCalculations
	for _, room := range rooms {
		m := ComputeMetrics(room)
		total.FloorArea += m.FloorArea
		total.WallArea += m.WallArea
		total.CeilingArea += m.CeilingArea
		total.Perimeter += m.Perimeter
	}
	total.RoomCount = len(rooms)
	return total
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
