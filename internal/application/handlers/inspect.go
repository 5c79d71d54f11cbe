package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/ports"
	"github.com/ersonp/planner-catalog/internal/domain/services"
)

// MaxSuggestions caps the near-match IDs returned for an unknown ID.
const MaxSuggestions = 5

// InspectHandler shows how a single catalog entry was classified.
type InspectHandler struct {
	loader  ports.CatalogLoader
	service *services.CatalogService
}

// NewInspectHandler creates a new inspect handler.
func NewInspectHandler(loader ports.CatalogLoader, service *services.CatalogService) *InspectHandler {
	return &InspectHandler{
		loader:  loader,
		service: service,
	}
}

// InspectResult contains the normalized records for one ID.
type InspectResult struct {
	ID string
	// Raw is the catalog entry with this ID, nil if the catalog has none.
	Raw  entities.RawEntity
	Main *entities.Building
	QI   *entities.Building
	// Suggestions lists the closest table IDs when the ID is in neither table.
	Suggestions []string
}

// Found reports whether the ID landed in at least one table.
func (r *InspectResult) Found() bool {
	return r.Main != nil || r.QI != nil
}

// Handle builds both tables from source and looks up id.
func (h *InspectHandler) Handle(ctx context.Context, source, id string) (*InspectResult, error) {
	raws, err := h.loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	built, err := h.service.Build(ctx, raws)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{ID: id}
	for _, raw := range raws {
		if raw.ID() == id {
			result.Raw = raw
			break
		}
	}
	if b, ok := built.Main.Table[id]; ok {
		b.ID = id
		result.Main = &b
	}
	if b, ok := built.QI.Table[id]; ok {
		b.ID = id
		result.QI = &b
	}

	if !result.Found() {
		result.Suggestions = Suggest(id, append(built.Main.Table.IDs(), built.QI.Table.IDs()...), MaxSuggestions)
	}
	return result, nil
}

// Suggest returns up to limit candidates closest to id by edit distance,
// ties broken by ID.
func Suggest(id string, candidates []string, limit int) []string {
	type scored struct {
		id   string
		dist int
	}

	seen := make(map[string]bool, len(candidates))
	list := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		list = append(list, scored{id: c, dist: levenshtein.ComputeDistance(id, c)})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].dist != list[j].dist {
			return list[i].dist < list[j].dist
		}
		return list[i].id < list[j].id
	})

	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.id
	}
	return out
}
