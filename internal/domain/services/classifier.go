package services

import (
	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// Gate is an admission check applied before size resolution.
type Gate int

const (
	// GateType rejects non-placeable type tags.
	GateType Gate = iota
	// GateWorld rejects entities from worlds outside the pass.
	GateWorld
)

// Placement is the category, color and era label assigned to an entity.
type Placement struct {
	Category entities.Category
	Color    string
	EraLabel string
}

// Policy configures one classifier pass. Both output tables are built by
// the same Classifier driven by different policies.
type Policy struct {
	Name string
	// Gates run in order; the first rejecting gate decides the skip counter.
	Gates []Gate
	// SkipType reports whether a raw type tag is non-placeable.
	SkipType func(rawType string) bool
	// AdmitWorld reports whether an ID world segment belongs to this pass.
	AdmitWorld func(world string) bool
	// Place assigns category, color and era label.
	Place func(e entities.RawEntity) Placement
	// ForcedEraLabel, when set, replaces every era label.
	ForcedEraLabel string
	// DedupImpediments keeps only the first impediment of each footprint.
	DedupImpediments bool
}

// Classifier turns raw catalog records into a normalized table.
type Classifier struct {
	policy Policy
	tx     *taxonomy.Taxonomy
	logger *zap.Logger
}

// NewClassifier creates a classifier for the given policy.
func NewClassifier(policy Policy, tx *taxonomy.Taxonomy, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		policy: policy,
		tx:     tx,
		logger: logger.With(zap.String("pass", policy.Name)),
	}
}

// Name returns the policy name.
func (c *Classifier) Name() string {
	return c.policy.Name
}

// Classify runs the pass over raws in input order. It never fails: records
// that cannot be placed are counted and left out.
func (c *Classifier) Classify(raws []entities.RawEntity) (entities.Table, entities.PassStats) {
	table := make(entities.Table)
	var stats entities.PassStats
	seenImpediments := make(map[Size]struct{})

	for _, e := range raws {
		if !c.admit(e, &stats) {
			continue
		}

		id := e.ID()
		if id == "" {
			stats.SkippedNoID++
			c.logger.Debug("skipping entity without id")
			continue
		}

		size, ok := ResolveSize(e)
		if !ok || !size.Positive() {
			stats.SkippedNoSize++
			c.logger.Debug("skipping entity without size", zap.String("id", id))
			continue
		}

		placement := c.policy.Place(e)
		if c.policy.ForcedEraLabel != "" {
			placement.EraLabel = c.policy.ForcedEraLabel
		}

		if c.policy.DedupImpediments && placement.Category == entities.CategoryImpediment {
			if _, dup := seenImpediments[size]; dup {
				stats.SkippedImpedimentDup++
				c.logger.Debug("skipping duplicate impediment",
					zap.String("id", id), zap.Int("width", size.Width), zap.Int("height", size.Height))
				continue
			}
			seenImpediments[size] = struct{}{}
		}

		needsRoad, _ := entities.AsInt(e.Requirements()["street_connection_level"])

		table[id] = entities.Building{
			ID:        id,
			Name:      e.Name(),
			Width:     size.Width,
			Height:    size.Height,
			Category:  placement.Category,
			EraLabel:  placement.EraLabel,
			Color:     placement.Color,
			NeedsRoad: needsRoad,
			Prod:      ExtractProduction(e, c.tx),
			Boosts:    ExtractBoosts(e, c.tx),
		}
		stats.Included++
	}

	c.logger.Info("pass complete",
		zap.Int("included", stats.Included),
		zap.Int("skipped_type", stats.SkippedType),
		zap.Int("skipped_world", stats.SkippedWorld),
		zap.Int("skipped_no_id", stats.SkippedNoID),
		zap.Int("skipped_no_size", stats.SkippedNoSize),
		zap.Int("skipped_impediment_dup", stats.SkippedImpedimentDup))

	return table, stats
}

// admit runs the policy gates and bumps the matching skip counter.
func (c *Classifier) admit(e entities.RawEntity, stats *entities.PassStats) bool {
	for _, g := range c.policy.Gates {
		switch g {
		case GateType:
			if c.policy.SkipType != nil && c.policy.SkipType(e.Type()) {
				stats.SkippedType++
				return false
			}
		case GateWorld:
			if c.policy.AdmitWorld != nil && !c.policy.AdmitWorld(e.Segments().World()) {
				stats.SkippedWorld++
				return false
			}
		}
	}
	return true
}

// MainCityPolicy builds the main-city pass: type gate then world gate,
// type-table categories and min-era labels. Event buildings are detected
// by class marker. Settlement and QI worlds are left to their own tables.
func MainCityPolicy(tx *taxonomy.Taxonomy) Policy {
	return Policy{
		Name:     "main",
		Gates:    []Gate{GateType, GateWorld},
		SkipType: tx.SkipMainCity,
		AdmitWorld: func(world string) bool {
			return !tx.IsNonMainCityWorld(world) && !tx.IsQIWorld(world)
		},
		Place: func(e entities.RawEntity) Placement {
			if tx.IsEventEntity(e.Type(), e.Class()) {
				return Placement{
					Category: entities.CategoryEvent,
					Color:    tx.EventColor(),
					EraLabel: tx.EventName(e.Segments().Code()),
				}
			}
			style := tx.StyleFor(e.Type())
			return Placement{
				Category: style.Category,
				Color:    style.Color,
				EraLabel: tx.EraLabel(entities.AsString(e.Requirements()["min_era"])),
			}
		},
	}
}

// QIPolicy builds the Quantum Incursion pass: world gate first, categories
// inferred from the ID, a fixed era label, and impediments deduplicated by
// footprint.
func QIPolicy(tx *taxonomy.Taxonomy) Policy {
	return Policy{
		Name:       "qi",
		Gates:      []Gate{GateWorld, GateType},
		SkipType:   tx.SkipQI,
		AdmitWorld: tx.IsQIWorld,
		Place: func(e entities.RawEntity) Placement {
			category := tx.QICategory(e.Segments(), e.Type())
			return Placement{
				Category: category,
				Color:    tx.QIColor(category),
			}
		},
		ForcedEraLabel:   tx.QIEraLabel(),
		DedupImpediments: true,
	}
}
