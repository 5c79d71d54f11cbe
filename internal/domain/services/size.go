package services

import "github.com/ersonp/planner-catalog/internal/domain/entities"

// Size is a placement footprint in grid tiles.
type Size struct {
	Width  int
	Height int
}

// Positive reports whether both dimensions are above zero.
func (s Size) Positive() bool {
	return s.Width > 0 && s.Height > 0
}

// ResolveSize reads the footprint from the direct width/length fields, or
// from components.AllAge.placement.size for component-style records.
// It returns false when neither shape yields two whole numbers.
func ResolveSize(e entities.RawEntity) (Size, bool) {
	if e.Has(entities.FieldWidth) && e.Has(entities.FieldLength) {
		w, okW := entities.AsInt(e[entities.FieldWidth])
		h, okH := entities.AsInt(e[entities.FieldLength])
		if !okW || !okH {
			return Size{}, false
		}
		return Size{Width: w, Height: h}, true
	}

	size, ok := entities.Lookup(map[string]any(e), entities.FieldComponents, "AllAge", "placement", "size")
	if !ok {
		return Size{}, false
	}
	obj := entities.AsObject(size)
	x, okX := entities.AsInt(obj["x"])
	y, okY := entities.AsInt(obj["y"])
	if !okX || !okY {
		return Size{}, false
	}
	return Size{Width: x, Height: y}, true
}
