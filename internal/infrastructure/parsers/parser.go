// Package parsers decodes the raw vendor building catalog.
package parsers

import (
	"errors"
	"io"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// ErrNotArray is returned when the catalog's top-level value is not a JSON array.
var ErrNotArray = errors.New("catalog is not a JSON array")

// Parser defines the interface for decoding a raw catalog.
type Parser interface {
	Parse(r io.Reader) ([]entities.RawEntity, error)
}
