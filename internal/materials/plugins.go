package materials

import (
	"fmt"
	"math"

	"github.com/renocalc/renocalc/internal/model"
)

// Built-in category names.
const (
	CategoryPlaster   = "plaster"
	CategoryPaint     = "paint"
	CategoryWallpaper = "wallpaper"
	CategoryTile      = "tile"
	CategoryPrimer    = "primer"
	CategoryLaminate  = "laminate"
	CategorySkirting  = "skirting"
)

// areaFor selects the surface a plugin works on. The optional "surface"
// param overrides the plugin's default target.
func areaFor(m model.RoomMetrics, params map[string]string, def model.Surface) float64 {
	surface := def
	if s, ok := params["surface"]; ok && s != "" {
		surface = model.Surface(s)
	}
	switch surface {
	case model.SurfaceFloor:
		return m.FloorArea
	case model.SurfaceCeiling:
		return m.CeilingArea
	default:
		return m.WallArea
	}
}

// ceilTenth rounds up to the next tenth of a unit (paint and primer are
// sold in tenths of a liter at smallest).
func ceilTenth(v float64) float64 {
	return math.Ceil(v*10) / 10
}

// PlasterCalculator computes plaster bags.
//
// quantity = ceil(area x consumption-per-sqm / bag-weight)
// cost     = quantity x price-per-bag
type PlasterCalculator struct{}

func (PlasterCalculator) Category() string { return CategoryPlaster }

func (PlasterCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceWall)
	consumption := model.Param(params, "consumption") // kg per sq m
	bagWeight := model.Param(params, "bagWeight")     // kg
	if area == 0 || consumption == 0 || bagWeight == 0 {
		return nil
	}
	price := model.Param(params, "price")

	bags := int(math.Ceil(area * consumption / bagWeight))
	cost := float64(bags) * price

	return &model.MaterialResult{
		Category: CategoryPlaster,
		Quantity: fmt.Sprintf("%d bags", bags),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Consumption", Value: fmt.Sprintf("%.1f kg/sq m", consumption)},
			{Label: "Bag weight", Value: fmt.Sprintf("%.0f kg", bagWeight)},
			{Label: "Bags", Value: fmt.Sprintf("%d", bags)},
		},
	}
}

// PaintCalculator computes paint liters rounded up to the nearest 0.1 L.
//
// liters = ceil(area x coats / coverage-per-liter x 10) / 10
// cost   = liters x price-per-liter
type PaintCalculator struct{}

func (PaintCalculator) Category() string { return CategoryPaint }

func (PaintCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceWall)
	coverage := model.Param(params, "coverage") // sq m per liter
	coats := model.ParamOr(params, "coats", 1)
	if area == 0 || coverage == 0 {
		return nil
	}
	price := model.Param(params, "price")

	liters := ceilTenth(area * coats / coverage)
	cost := liters * price

	return &model.MaterialResult{
		Category: CategoryPaint,
		Quantity: fmt.Sprintf("%.1f L", liters),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Coats", Value: fmt.Sprintf("%.0f", coats)},
			{Label: "Coverage", Value: fmt.Sprintf("%.1f sq m/L", coverage)},
			{Label: "Liters", Value: fmt.Sprintf("%.1f", liters)},
		},
	}
}

// PrimerCalculator computes primer liters with the same rounding rule
// as paint.
type PrimerCalculator struct{}

func (PrimerCalculator) Category() string { return CategoryPrimer }

func (PrimerCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceWall)
	coverage := model.Param(params, "coverage")
	coats := model.ParamOr(params, "coats", 1)
	if area == 0 || coverage == 0 {
		return nil
	}
	price := model.Param(params, "price")

	liters := ceilTenth(area * coats / coverage)
	return &model.MaterialResult{
		Category: CategoryPrimer,
		Quantity: fmt.Sprintf("%.1f L", liters),
		Cost:     liters * price,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Coats", Value: fmt.Sprintf("%.0f", coats)},
			{Label: "Coverage", Value: fmt.Sprintf("%.1f sq m/L", coverage)},
			{Label: "Liters", Value: fmt.Sprintf("%.1f", liters)},
		},
	}
}

// WallpaperCalculator computes wallpaper rolls.
//
// rolls = ceil(area x (1 + margin%) / roll-coverage-area), where the
// roll coverage area is roll-width x roll-length reduced by one pattern
// repeat of waste per roll when a repeat is set.
type WallpaperCalculator struct{}

func (WallpaperCalculator) Category() string { return CategoryWallpaper }

func (WallpaperCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceWall)
	rollWidth := model.Param(params, "rollWidth")   // m
	rollLength := model.Param(params, "rollLength") // m
	if area == 0 || rollWidth == 0 || rollLength == 0 {
		return nil
	}
	margin := model.Param(params, "margin")         // percent
	repeat := model.Param(params, "patternRepeat")  // m wasted per roll
	price := model.Param(params, "price")

	usableLength := rollLength - repeat
	if usableLength <= 0 {
		return nil
	}
	rollArea := rollWidth * usableLength
	needed := area * (1 + margin/100)
	rolls := int(math.Ceil(needed / rollArea))
	cost := float64(rolls) * price

	return &model.MaterialResult{
		Category: CategoryWallpaper,
		Quantity: fmt.Sprintf("%d rolls", rolls),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Area with margin", Value: fmt.Sprintf("%.2f sq m", needed)},
			{Label: "Roll coverage", Value: fmt.Sprintf("%.2f sq m", rollArea)},
			{Label: "Rolls", Value: fmt.Sprintf("%d", rolls)},
		},
		ShowNote: repeat > 0,
	}
}

// Tile layout patterns and their waste margins. Choosing a pattern
// overrides any user-entered margin.
const (
	TilePatternStraight = "straight"
	TilePatternDiagonal = "diagonal"

	straightMargin = 10.0
	diagonalMargin = 15.0
)

// TileCalculator computes tile packs.
//
// footprint = (tileWidth + groutWidth) x (tileHeight + groutWidth)
// tiles     = ceil(area x (1 + margin/100) / footprint)
// packs     = ceil(tiles / packSize)
// cost      = packs x price
//
// Tile dimensions are entered in centimeters and grout width in
// millimeters, matching how tiles are sold and joints are specified.
type TileCalculator struct{}

func (TileCalculator) Category() string { return CategoryTile }

func (TileCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceFloor)
	tileWidth := model.Param(params, "tileWidth") / 100   // cm to m
	tileHeight := model.Param(params, "tileHeight") / 100 // cm to m
	packSize := model.Param(params, "packSize")
	if area == 0 || tileWidth == 0 || tileHeight == 0 || packSize == 0 {
		return nil
	}
	groutWidth := model.Param(params, "groutWidth") / 1000 // mm to m
	price := model.Param(params, "price")

	margin := model.Param(params, "margin")
	overridden := false
	switch params["pattern"] {
	case TilePatternStraight:
		margin = straightMargin
		overridden = true
	case TilePatternDiagonal:
		margin = diagonalMargin
		overridden = true
	}

	footprint := (tileWidth + groutWidth) * (tileHeight + groutWidth)
	needed := area * (1 + margin/100)
	tiles := int(math.Ceil(needed / footprint))
	packs := int(math.Ceil(float64(tiles) / packSize))
	cost := float64(packs) * price

	return &model.MaterialResult{
		Category: CategoryTile,
		Quantity: fmt.Sprintf("%d packs (%d tiles)", packs, tiles),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Area with margin", Value: fmt.Sprintf("%.2f sq m", needed)},
			{Label: "Tile footprint", Value: fmt.Sprintf("%.6f sq m", footprint)},
			{Label: "Tiles", Value: fmt.Sprintf("%d", tiles)},
			{Label: "Packs", Value: fmt.Sprintf("%d", packs)},
			{Label: "Margin", Value: fmt.Sprintf("%.0f%%", margin)},
		},
		ShowNote: overridden,
	}
}

// SkirtingCalculator computes skirting board planks from the room
// perimeter. The default waste margin covers corner miters and joins.
//
// length = perimeter x (1 + waste/100)
// planks = ceil(length / plank-length)
// cost   = planks x price-per-plank
type SkirtingCalculator struct{}

func (SkirtingCalculator) Category() string { return CategorySkirting }

func (SkirtingCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	plankLength := model.Param(params, "plankLength") // m
	if m.Perimeter == 0 || plankLength == 0 {
		return nil
	}
	waste := model.ParamOr(params, "waste", 10)
	price := model.Param(params, "price")

	length := m.Perimeter * (1 + waste/100)
	planks := int(math.Ceil(length / plankLength))
	cost := float64(planks) * price

	return &model.MaterialResult{
		Category: CategorySkirting,
		Quantity: fmt.Sprintf("%d planks (%.1f m)", planks, length),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Perimeter", Value: fmt.Sprintf("%.2f m", m.Perimeter)},
			{Label: "Length with waste", Value: fmt.Sprintf("%.1f m", length)},
			{Label: "Plank length", Value: fmt.Sprintf("%.2f m", plankLength)},
			{Label: "Planks", Value: fmt.Sprintf("%d", planks)},
		},
	}
}

// LaminateCalculator computes laminate flooring packs.
//
// packs = ceil(area x (1 + margin/100) / pack-coverage)
// cost  = packs x price
type LaminateCalculator struct{}

func (LaminateCalculator) Category() string { return CategoryLaminate }

func (LaminateCalculator) Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult {
	area := areaFor(m, params, model.SurfaceFloor)
	packCoverage := model.Param(params, "packCoverage") // sq m per pack
	if area == 0 || packCoverage == 0 {
		return nil
	}
	margin := model.ParamOr(params, "margin", 5)
	price := model.Param(params, "price")

	needed := area * (1 + margin/100)
	packs := int(math.Ceil(needed / packCoverage))
	cost := float64(packs) * price

	return &model.MaterialResult{
		Category: CategoryLaminate,
		Quantity: fmt.Sprintf("%d packs", packs),
		Cost:     cost,
		Details: []model.Detail{
			{Label: "Area", Value: fmt.Sprintf("%.2f sq m", area)},
			{Label: "Area with margin", Value: fmt.Sprintf("%.2f sq m", needed)},
			{Label: "Pack coverage", Value: fmt.Sprintf("%.2f sq m", packCoverage)},
			{Label: "Packs", Value: fmt.Sprintf("%d", packs)},
		},
	}
}
