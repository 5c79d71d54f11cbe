package ports

import (
	"context"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// BuildHistory stores per-run counters so data-quality changes between
// catalog versions can be compared.
type BuildHistory interface {
	// SaveRun records a completed build.
	SaveRun(ctx context.Context, run *entities.BuildRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]entities.BuildRun, error)

	// Close closes the underlying store.
	Close() error
}

// SchemaManager prepares a store before first use.
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}
