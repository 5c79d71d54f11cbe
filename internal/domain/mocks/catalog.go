// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// CatalogLoader is a mock implementation of ports.CatalogLoader.
type CatalogLoader struct {
	Raws []entities.RawEntity
	Err  error

	// Call tracking
	LoadCallCount int
	LastSource    string
}

// Load returns the configured entities or error.
func (m *CatalogLoader) Load(_ context.Context, source string) ([]entities.RawEntity, error) {
	m.LoadCallCount++
	m.LastSource = source
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Raws, nil
}
