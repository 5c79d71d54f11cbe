package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/planner-catalog/internal/domain/ports"
	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
)

// InitHandler handles project initialization.
type InitHandler struct {
	schema ports.SchemaManager
}

// NewInitHandler creates a new init handler. schema may be nil when
// history is disabled.
func NewInitHandler(schema ports.SchemaManager) *InitHandler {
	return &InitHandler{schema: schema}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	HistoryPath string
}

// Handle writes the default config and prepares the history store.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("planner already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if h.schema != nil {
		if err := h.schema.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating history schema: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		HistoryPath: cfg.History.Path,
	}, nil
}
