package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/ports"
)

// DefaultHistoryLimit is the number of runs listed when none is given.
const DefaultHistoryLimit = 10

// HistoryHandler lists recorded builds.
type HistoryHandler struct {
	history ports.BuildHistory
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(history ports.BuildHistory) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HistoryEntry is one run plus the change in included records against
// the run before it.
type HistoryEntry struct {
	Run         entities.BuildRun
	MainDelta   int
	QIDelta     int
	HasPrevious bool
}

// Handle returns up to limit runs, newest first.
func (h *HistoryHandler) Handle(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	// One extra run gives the oldest listed entry its delta.
	runs, err := h.history.ListRuns(ctx, limit+1)
	if err != nil {
		return nil, fmt.Errorf("listing build runs: %w", err)
	}

	n := min(len(runs), limit)
	entries := make([]HistoryEntry, n)
	for i := 0; i < n; i++ {
		entries[i].Run = runs[i]
		if i+1 < len(runs) {
			prev := runs[i+1]
			entries[i].HasPrevious = true
			entries[i].MainDelta = runs[i].Main.Included - prev.Main.Included
			entries[i].QIDelta = runs[i].QI.Included - prev.QI.Included
		}
	}
	return entries, nil
}
