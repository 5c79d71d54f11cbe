package entities

import (
	"math"
	"strings"
)

// RawEntity is one undecoded record from the vendor building catalog.
// Values follow encoding/json's generic decoding: objects are
// map[string]any, arrays []any, numbers float64.
// All accessors tolerate missing or wrong-shaped fields and return zero values.
type RawEntity map[string]any

// Field names used by the vendor catalog.
const (
	FieldID           = "id"
	FieldType         = "type"
	FieldName         = "name"
	FieldClass        = "__class__"
	FieldWidth        = "width"
	FieldLength       = "length"
	FieldRequirements = "requirements"
	FieldLevels       = "entity_levels"
	FieldComponents   = "components"
)

// ID returns the entity ID, or "" if absent or not a string.
func (e RawEntity) ID() string {
	return e.String(FieldID)
}

// Type returns the raw type tag.
func (e RawEntity) Type() string {
	return e.String(FieldType)
}

// Class returns the class marker (e.g. "GenericCityEntity").
func (e RawEntity) Class() string {
	return e.String(FieldClass)
}

// Name returns the display name, falling back to the ID.
func (e RawEntity) Name() string {
	if name := e.String(FieldName); name != "" {
		return name
	}
	return e.ID()
}

// Segments splits the ID on "_".
func (e RawEntity) Segments() IDSegments {
	return IDSegments(strings.Split(e.ID(), "_"))
}

// String returns the string stored under key.
func (e RawEntity) String(key string) string {
	s, _ := e[key].(string)
	return s
}

// Number returns the number stored under key.
func (e RawEntity) Number(key string) (float64, bool) {
	return AsNumber(e[key])
}

// Has reports whether key is present, whatever its value.
func (e RawEntity) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Object returns the nested object under key, or nil.
func (e RawEntity) Object(key string) map[string]any {
	return AsObject(e[key])
}

// List returns the nested array under key, or nil.
func (e RawEntity) List(key string) []any {
	return AsList(e[key])
}

// Requirements returns the requirements sub-structure.
func (e RawEntity) Requirements() map[string]any {
	return e.Object(FieldRequirements)
}

// Components returns the era -> component data mapping.
func (e RawEntity) Components() map[string]any {
	return e.Object(FieldComponents)
}

// IDSegments is an entity ID split on "_".
// Segment 0 is the class prefix, 1 the world, 2 the event/suffix code.
type IDSegments []string

// At returns segment i, or "" when the ID is too short.
func (s IDSegments) At(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// Prefix returns segment 0.
func (s IDSegments) Prefix() string { return s.At(0) }

// World returns segment 1.
func (s IDSegments) World() string { return s.At(1) }

// Code returns segment 2.
func (s IDSegments) Code() string { return s.At(2) }

// AsObject returns v as an object, or nil.
func AsObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// AsList returns v as an array, or nil.
func AsList(v any) []any {
	l, _ := v.([]any)
	return l
}

// AsString returns v as a string, or "".
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsNumber returns v as a float64. Booleans and strings are not numbers.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsInt returns v as an int when it is a whole number.
func AsInt(v any) (int, bool) {
	n, ok := AsNumber(v)
	if !ok || n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return int(n), true
}

// Lookup walks nested objects along path and returns the value found.
func Lookup(v any, path ...string) (any, bool) {
	cur := v
	for _, key := range path {
		m := AsObject(cur)
		if m == nil {
			return nil, false
		}
		next, ok := m[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Truthy follows the catalog's loose flag semantics: any nonzero number,
// true, or non-empty string/collection.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		n, ok := AsNumber(v)
		return ok && n != 0
	}
}
