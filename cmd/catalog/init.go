package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/planner-catalog/internal/application/handlers"
	"github.com/ersonp/planner-catalog/internal/domain/ports"
	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
	"github.com/ersonp/planner-catalog/internal/infrastructure/relationaldb/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize planner configuration",
		Long:  "Creates a .planner directory with default configuration and the build history database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	// The history path is only known once the default config is written,
	// so the handler opens the store lazily.
	schema := &lazySchema{basePath: cwd}
	defer schema.Close()

	result, err := handlers.NewInitHandler(schema).Handle(ctx, cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	if result.HistoryPath != "" {
		fmt.Printf("Created history database: %s\n", result.HistoryPath)
	}
	fmt.Println("Planner initialized successfully!")

	return nil
}

// lazySchema opens the configured history store on first EnsureSchema.
type lazySchema struct {
	basePath string
	repo     *sqlite.Repository
}

var _ ports.SchemaManager = (*lazySchema)(nil)

func (l *lazySchema) EnsureSchema(ctx context.Context) error {
	cfg, err := config.Load(l.basePath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.History.Path == "" {
		return nil
	}
	repo, err := openHistory(ctx, cfg.History)
	if err != nil {
		return err
	}
	l.repo = repo
	return nil
}

func (l *lazySchema) Close() {
	if l.repo != nil {
		l.repo.Close()
	}
}
