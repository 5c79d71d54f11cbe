package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/application/handlers"
	"github.com/ersonp/planner-catalog/internal/domain/ports"
	"github.com/ersonp/planner-catalog/internal/domain/services"
	"github.com/ersonp/planner-catalog/internal/infrastructure/catalog"
	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
	"github.com/ersonp/planner-catalog/internal/infrastructure/jsmodule"
	"github.com/ersonp/planner-catalog/internal/infrastructure/logging"
	"github.com/ersonp/planner-catalog/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/planner-catalog/internal/infrastructure/server"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Logger         *zap.Logger
	BuildHandler   *handlers.BuildHandler
	InspectHandler *handlers.InspectHandler
	// HistoryHandler is nil when history is disabled.
	HistoryHandler *handlers.HistoryHandler
	Server         *server.Static
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, globalVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	tx, err := config.LoadTaxonomy(cfg.Taxonomy.Path)
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	var history ports.BuildHistory
	var historyHandler *handlers.HistoryHandler
	if cfg.History.Path != "" {
		repo, err := openHistory(ctx, cfg.History)
		if err != nil {
			return err
		}
		defer repo.Close()
		history = repo
		historyHandler = handlers.NewHistoryHandler(repo)
	}

	loader := catalog.NewLoader(cfg.Source, logger)
	catalogService := services.NewCatalogService(tx, logger)

	deps := &Deps{
		Config:         cfg,
		Logger:         logger,
		BuildHandler:   handlers.NewBuildHandler(loader, catalogService, jsmodule.NewWriter(tx), history, logger),
		InspectHandler: handlers.NewInspectHandler(loader, catalogService),
		HistoryHandler: historyHandler,
		Server:         server.NewStatic(cfg.Server, logger),
	}

	return fn(deps)
}

// openHistory opens the SQLite history store and ensures its schema.
func openHistory(ctx context.Context, cfg config.HistoryConfig) (*sqlite.Repository, error) {
	repo, err := sqlite.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return repo, nil
}
