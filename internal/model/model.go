package model

import "github.com/google/uuid"

// Unit represents the active display unit for lengths.
type Unit string

const (
	UnitMeters      Unit = "m"
	UnitCentimeters Unit = "cm"
	UnitMillimeters Unit = "mm"
)

// OpeningType distinguishes doors from windows.
type OpeningType string

const (
	OpeningDoor   OpeningType = "door"
	OpeningWindow OpeningType = "window"
)

// Surface identifies which room surface an exclusion zone applies to.
type Surface string

const (
	SurfaceWall    Surface = "wall"
	SurfaceFloor   Surface = "floor"
	SurfaceCeiling Surface = "ceiling"
)

// ElementKind tags the variant of a geometric element.
type ElementKind string

const (
	ElementNiche      ElementKind = "niche"
	ElementProtrusion ElementKind = "protrusion"
	ElementColumn     ElementKind = "column"
)

// Opening represents a door or window cut-out that reduces wall area.
// Dimensions are numeric strings in meters, exactly as entered by the user.
type Opening struct {
	ID     string      `json:"id"`
	Type   OpeningType `json:"type"`
	Width  string      `json:"width"`
	Height string      `json:"height"`
	Count  string      `json:"count"`
}

func NewOpening(t OpeningType, width, height, count string) Opening {
	return Opening{
		ID:     uuid.New().String()[:8],
		Type:   t,
		Width:  width,
		Height: height,
		Count:  count,
	}
}

// ExclusionZone is a user-declared patch on one surface that material
// coverage should skip (e.g. an area that is already tiled).
type ExclusionZone struct {
	ID      string  `json:"id"`
	Width   string  `json:"width"`
	Height  string  `json:"height"`
	Surface Surface `json:"surface"`
}

func NewExclusionZone(width, height string, surface Surface) ExclusionZone {
	return ExclusionZone{
		ID:      uuid.New().String()[:8],
		Width:   width,
		Height:  height,
		Surface: surface,
	}
}

// GeometricElement is a niche, protrusion, or column altering the basic
// box model of a room. The fields used depend on Kind: niche and
// protrusion carry Width/Depth/Height, column carries Diameter/Height.
// Unused fields stay empty; the validation schemas enforce the
// variant-specific requirements.
type GeometricElement struct {
	ID       string      `json:"id"`
	Kind     ElementKind `json:"kind"`
	Width    string      `json:"width,omitempty"`
	Depth    string      `json:"depth,omitempty"`
	Diameter string      `json:"diameter,omitempty"`
	Height   string      `json:"height"`
	Count    string      `json:"count"`
}

// NewNiche creates a niche element. Niches add inner-face paintable area.
func NewNiche(width, depth, height, count string) GeometricElement {
	return GeometricElement{
		ID:     uuid.New().String()[:8],
		Kind:   ElementNiche,
		Width:  width,
		Depth:  depth,
		Height: height,
		Count:  count,
	}
}

// NewProtrusion creates a protrusion element. Protrusions add outer-face
// area and consume floor footprint.
func NewProtrusion(width, depth, height, count string) GeometricElement {
	return GeometricElement{
		ID:     uuid.New().String()[:8],
		Kind:   ElementProtrusion,
		Width:  width,
		Depth:  depth,
		Height: height,
		Count:  count,
	}
}

// NewColumn creates a column element. Columns add lateral surface area
// and consume floor footprint.
func NewColumn(diameter, height, count string) GeometricElement {
	return GeometricElement{
		ID:       uuid.New().String()[:8],
		Kind:     ElementColumn,
		Diameter: diameter,
		Height:   height,
		Count:    count,
	}
}

// RoomData describes one room to estimate. All dimensions are numeric
// strings in meters; they are parsed leniently at calculation time so a
// partially filled room still yields a (possibly zero) metric.
type RoomData struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Length     string             `json:"length"`
	Width      string             `json:"width"`
	Height     string             `json:"height"`
	Openings   []Opening          `json:"openings"`
	Exclusions []ExclusionZone    `json:"exclusions"`
	Elements   []GeometricElement `json:"elements"`
	ImageRef   string             `json:"image_ref,omitempty"`
}

func NewRoom(name, length, width, height string) RoomData {
	return RoomData{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Length:     length,
		Width:      width,
		Height:     height,
		Openings:   []Opening{},
		Exclusions: []ExclusionZone{},
		Elements:   []GeometricElement{},
	}
}

// SavedMaterial is a user-created material definition. Params carries
// the category-specific inputs (tile size, pack size, price, ...) as
// numeric strings. ID is assigned by the store on first save; 0 means
// not yet persisted.
type SavedMaterial struct {
	ID       int               `json:"id"`
	Category string            `json:"category"`
	Name     string            `json:"name"`
	Params   map[string]string `json:"params"`
}

func NewSavedMaterial(category, name string, params map[string]string) SavedMaterial {
	if params == nil {
		params = map[string]string{}
	}
	return SavedMaterial{
		Category: category,
		Name:     name,
		Params:   params,
	}
}

// Detail is one label/value line in a material result breakdown.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MaterialResult is the computed quantity/cost output for one material.
// Results are created fresh on every recalculation and replaced
// wholesale per material name, never mutated in place.
type MaterialResult struct {
	Category string   `json:"category"`
	Quantity string   `json:"quantity"`
	Cost     float64  `json:"cost"`
	Details  []Detail `json:"details"`
	ShowNote bool     `json:"show_note"`
}

// Estimate is the persisted shape for a saved set of rooms.
type Estimate struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Date  string     `json:"date"` // ISO-8601
	Rooms []RoomData `json:"rooms"`
}
