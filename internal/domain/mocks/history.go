package mocks

import (
	"context"
	"fmt"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// BuildHistory is an in-memory implementation of ports.BuildHistory.
// Runs are stored in insertion order.
type BuildHistory struct {
	Runs    []entities.BuildRun
	SaveErr error
	ListErr error

	// Call tracking
	SaveRunCallCount int
	Closed           bool
}

// SaveRun appends run unless SaveErr is set. An empty ID is filled in.
func (m *BuildHistory) SaveRun(_ context.Context, run *entities.BuildRun) error {
	m.SaveRunCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if run.ID == "" {
		run.ID = fmt.Sprintf("run-%d", len(m.Runs)+1)
	}
	m.Runs = append(m.Runs, *run)
	return nil
}

// ListRuns returns up to limit runs, newest first.
func (m *BuildHistory) ListRuns(_ context.Context, limit int) ([]entities.BuildRun, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var result []entities.BuildRun
	for i := len(m.Runs) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Runs[i])
	}
	return result, nil
}

// Close marks the mock closed.
func (m *BuildHistory) Close() error {
	m.Closed = true
	return nil
}

// SchemaManager is a mock implementation of ports.SchemaManager.
type SchemaManager struct {
	EnsureErr error

	// Call tracking
	EnsureSchemaCallCount int
}

// EnsureSchema returns the configured error.
func (m *SchemaManager) EnsureSchema(_ context.Context) error {
	m.EnsureSchemaCallCount++
	return m.EnsureErr
}
