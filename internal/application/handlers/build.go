// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/ports"
	"github.com/ersonp/planner-catalog/internal/domain/services"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// BuildHandler converts a catalog source into the two planner modules.
type BuildHandler struct {
	loader  ports.CatalogLoader
	service *services.CatalogService
	writer  ports.TableWriter
	history ports.BuildHistory
	logger  *zap.Logger
}

// NewBuildHandler creates a new build handler. history may be nil.
func NewBuildHandler(
	loader ports.CatalogLoader,
	service *services.CatalogService,
	writer ports.TableWriter,
	history ports.BuildHistory,
	logger *zap.Logger,
) *BuildHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuildHandler{
		loader:  loader,
		service: service,
		writer:  writer,
		history: history,
		logger:  logger,
	}
}

// ModuleTarget names an output file and the export it binds.
type ModuleTarget struct {
	Path   string
	Export string
}

// BuildRequest describes one build.
type BuildRequest struct {
	Source string
	Main   ModuleTarget
	QI     ModuleTarget
}

// BuildResult contains the outcome of a build.
type BuildResult struct {
	Run       entities.BuildRun
	MainPath  string
	QIPath    string
	MainCount int
	QICount   int
	Recorded  bool
}

// Handle loads the catalog, classifies it, writes both modules and records
// the run. Nothing is written when loading or classification fails.
func (h *BuildHandler) Handle(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	started := timeNow()

	raws, err := h.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	built, err := h.service.Build(ctx, raws)
	if err != nil {
		return nil, err
	}

	if err := h.writeModule(req.Main, built.Main.Table); err != nil {
		return nil, err
	}
	if err := h.writeModule(req.QI, built.QI.Table); err != nil {
		return nil, err
	}

	result := &BuildResult{
		Run: entities.BuildRun{
			Source:    req.Source,
			Entities:  built.Entities,
			Main:      built.Main.Stats,
			QI:        built.QI.Stats,
			StartedAt: started,
		},
		MainPath:  req.Main.Path,
		QIPath:    req.QI.Path,
		MainCount: len(built.Main.Table),
		QICount:   len(built.QI.Table),
	}

	if h.history != nil {
		if err := h.history.SaveRun(ctx, &result.Run); err != nil {
			return nil, fmt.Errorf("recording build run: %w", err)
		}
		result.Recorded = true
	}

	h.logger.Info("build complete",
		zap.String("source", req.Source),
		zap.Int("main", result.MainCount),
		zap.Int("qi", result.QICount))

	return result, nil
}

// writeModule writes to a temp file beside the target and renames it into
// place, so a failed write never leaves a truncated module.
func (h *BuildHandler) writeModule(target ModuleTarget, table entities.Table) error {
	dir := filepath.Dir(target.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", target.Path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if err := h.writer.Write(tmp, table, target.Export); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", target.Path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target.Path); err != nil {
		cleanup()
		return fmt.Errorf("renaming into %s: %w", target.Path, err)
	}

	h.logger.Debug("module written",
		zap.String("path", target.Path),
		zap.String("export", target.Export),
		zap.Int("records", len(table)))
	return nil
}
