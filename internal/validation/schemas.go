package validation

import (
	"fmt"

	"github.com/renocalc/renocalc/internal/model"
)

var dimensionRules = []Rule{required, numeric, positive, withinMax}

// RoomSchema validates the three box dimensions of a room.
func RoomSchema() Schema {
	return Schema{
		"length": dimensionRules,
		"width":  dimensionRules,
		"height": dimensionRules,
	}
}

// ValidateRoom checks a room's own dimensions plus every opening,
// exclusion zone, and geometric element it contains. Sub-entity errors
// are prefixed with the entity identifier.
func ValidateRoom(room model.RoomData) Result {
	result := Validate(RoomSchema(), map[string]string{
		"length": room.Length,
		"width":  room.Width,
		"height": room.Height,
	}, Context{})

	ctx := Context{Room: &room}
	for _, o := range room.Openings {
		result.merge("openings."+o.ID, ValidateOpening(o, ctx))
	}
	for _, z := range room.Exclusions {
		result.merge("exclusions."+z.ID, ValidateExclusion(z))
	}
	for _, e := range room.Elements {
		result.merge("elements."+e.ID, ValidateElement(e))
	}
	return result
}

// openingFitsWall is the cross-field rule: the total opening area must
// stay below the room's gross wall area. It is attached to the width
// field so the message lands next to the dimension inputs.
func openingFitsWall(o model.Opening) Rule {
	return func(_ string, ctx Context) string {
		if ctx.Room == nil {
			return ""
		}
		grossWall := 2 * (model.ParseDimension(ctx.Room.Length) + model.ParseDimension(ctx.Room.Width)) *
			model.ParseDimension(ctx.Room.Height)
		area := model.ParseDimension(o.Width) * model.ParseDimension(o.Height) *
			float64(model.ParseCount(o.Count))
		if grossWall > 0 && area >= grossWall {
			return "opening area exceeds the room wall area"
		}
		return ""
	}
}

// OpeningSchema validates a door or window.
func OpeningSchema(o model.Opening) Schema {
	widthRules := make([]Rule, 0, len(dimensionRules)+1)
	widthRules = append(widthRules, dimensionRules...)
	widthRules = append(widthRules, openingFitsWall(o))
	return Schema{
		"width":  widthRules,
		"height": dimensionRules,
		"count":  {required, countAtLeastOne},
	}
}

// ValidateOpening checks one opening in the context of its room.
func ValidateOpening(o model.Opening, ctx Context) Result {
	return Validate(OpeningSchema(o), map[string]string{
		"width":  o.Width,
		"height": o.Height,
		"count":  o.Count,
	}, ctx)
}

// ExclusionSchema validates an exclusion zone.
func ExclusionSchema() Schema {
	return Schema{
		"width":   dimensionRules,
		"height":  dimensionRules,
		"surface": {validSurface},
	}
}

func validSurface(value string, _ Context) string {
	switch model.Surface(value) {
	case model.SurfaceWall, model.SurfaceFloor, model.SurfaceCeiling:
		return ""
	}
	return fmt.Sprintf("%q is not a valid surface", value)
}

// ValidateExclusion checks one exclusion zone.
func ValidateExclusion(z model.ExclusionZone) Result {
	return Validate(ExclusionSchema(), map[string]string{
		"width":   z.Width,
		"height":  z.Height,
		"surface": string(z.Surface),
	}, Context{})
}

// ElementSchema validates a geometric element. The required fields
// depend on the variant: columns need a diameter, niches and
// protrusions need width and depth.
func ElementSchema(kind model.ElementKind) Schema {
	schema := Schema{
		"height": dimensionRules,
		"count":  {required, countAtLeastOne},
	}
	switch kind {
	case model.ElementColumn:
		schema["diameter"] = dimensionRules
	case model.ElementNiche, model.ElementProtrusion:
		schema["width"] = dimensionRules
		schema["depth"] = dimensionRules
	}
	return schema
}

// ValidateElement checks one geometric element against its variant schema.
func ValidateElement(e model.GeometricElement) Result {
	switch e.Kind {
	case model.ElementNiche, model.ElementProtrusion, model.ElementColumn:
	default:
		result := newResult()
		result.add("kind", fmt.Sprintf("%q is not a valid element kind", e.Kind))
		return result
	}
	return Validate(ElementSchema(e.Kind), map[string]string{
		"width":    e.Width,
		"depth":    e.Depth,
		"diameter": e.Diameter,
		"height":   e.Height,
		"count":    e.Count,
	}, Context{})
}

// MaterialSchema validates a saved material: its category must match a
// registered plugin and every parameter must parse as a number.
func MaterialSchema() Schema {
	return Schema{
		"name":     {required},
		"category": {required, registeredCategory},
	}
}

func registeredCategory(value string, ctx Context) string {
	for _, c := range ctx.Categories {
		if c == value {
			return ""
		}
	}
	return fmt.Sprintf("%q is not a registered material category", value)
}

// ValidateMaterial checks one saved material against the registered
// categories.
func ValidateMaterial(m model.SavedMaterial, categories []string) Result {
	result := Validate(MaterialSchema(), map[string]string{
		"name":     m.Name,
		"category": m.Category,
	}, Context{Categories: categories})

	for key, value := range m.Params {
		// Non-numeric params like "pattern" and "surface" are exempt.
		if key == "pattern" || key == "surface" {
			continue
		}
		if msg := numeric(value, Context{}); msg != "" {
			result.add("params."+key, msg)
		}
	}
	return result
}

// ValidateProject composes per-entity results for all rooms and saved
// materials into one aggregate result, field-prefixed by entity
// identifier so keys never collide.
func ValidateProject(rooms []model.RoomData, mats []model.SavedMaterial, categories []string) Result {
	result := newResult()
	for _, room := range rooms {
		result.merge("rooms."+room.ID, ValidateRoom(room))
	}
	for _, m := range mats {
		result.merge(fmt.Sprintf("materials.%d", m.ID), ValidateMaterial(m, categories))
	}
	return result
}
