package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// JSONParser parses the catalog from its JSON form.
type JSONParser struct{}

// Parse reads a JSON array of entity objects. Array elements that are not
// objects become empty entities so the classifiers can count them.
func (p *JSONParser) Parse(r io.Reader) ([]entities.RawEntity, error) {
	var doc any

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, kindOf(doc))
	}

	result := make([]entities.RawEntity, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			result[i] = entities.RawEntity(obj)
		} else {
			result[i] = entities.RawEntity{}
		}
	}

	return result, nil
}

// kindOf names the JSON kind of a decoded value.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
