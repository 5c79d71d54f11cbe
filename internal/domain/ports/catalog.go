// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"io"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// CatalogLoader retrieves and decodes the raw building catalog.
type CatalogLoader interface {
	// Load reads the catalog at source (URL or local path).
	// It fails if the decoded top-level value is not an array.
	Load(ctx context.Context, source string) ([]entities.RawEntity, error)
}

// TableWriter serializes a building table as a loadable module.
type TableWriter interface {
	// Write emits table under exportName in a deterministic order.
	Write(w io.Writer, table entities.Table, exportName string) error
}
