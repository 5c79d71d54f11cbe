package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// PassResult is the table and counters produced by one classifier pass.
type PassResult struct {
	Name  string
	Table entities.Table
	Stats entities.PassStats
}

// BuildResult holds both output tables for one catalog.
type BuildResult struct {
	Entities int
	Main     PassResult
	QI       PassResult
}

// CatalogService converts a raw catalog into the main-city and QI tables.
type CatalogService struct {
	main   *Classifier
	qi     *Classifier
	logger *zap.Logger
}

// NewCatalogService creates the service with the standard pass policies.
func NewCatalogService(tx *taxonomy.Taxonomy, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		main:   NewClassifier(MainCityPolicy(tx), tx, logger),
		qi:     NewClassifier(QIPolicy(tx), tx, logger),
		logger: logger,
	}
}

// Build runs both passes concurrently. The passes share only the read-only
// input slice and taxonomy.
func (s *CatalogService) Build(ctx context.Context, raws []entities.RawEntity) (*BuildResult, error) {
	result := &BuildResult{Entities: len(raws)}

	g, gctx := errgroup.WithContext(ctx)
	run := func(c *Classifier, out *PassResult) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, stats := c.Classify(raws)
			*out = PassResult{Name: c.Name(), Table: table, Stats: stats}
			return nil
		}
	}
	g.Go(run(s.main, &result.Main))
	g.Go(run(s.qi, &result.QI))

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classifying catalog: %w", err)
	}

	s.logger.Debug("catalog built",
		zap.Int("entities", result.Entities),
		zap.Int("main", len(result.Main.Table)),
		zap.Int("qi", len(result.QI.Table)))

	return result, nil
}
