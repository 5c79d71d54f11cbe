package services

import (
	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// DefaultBoostTarget is used when a boost names no targeted feature.
const DefaultBoostTarget = "all"

type boostKey struct {
	kind   string
	target string
}

// ExtractBoosts collects percentage boosts from every era's components,
// visiting eras in canonical order. A boost repeated for the same
// (kind, target) keeps the first value seen. Returns nil when none.
func ExtractBoosts(e entities.RawEntity, tx *taxonomy.Taxonomy) []entities.Boost {
	components := e.Components()
	if len(components) == 0 {
		return nil
	}

	seen := make(map[boostKey]struct{})
	var boosts []entities.Boost

	for _, era := range sortedEras(components, tx) {
		data := entities.AsObject(components[era])
		if data == nil {
			continue
		}
		declared, _ := entities.Lookup(data, "boosts", "boosts")
		for _, b := range entities.AsList(declared) {
			decl := entities.AsObject(b)
			kind := entities.AsString(decl["type"])
			value, _ := entities.AsNumber(decl["value"])
			if kind == "" || value == 0 {
				continue
			}
			target := entities.AsString(decl["targetedFeature"])
			if target == "" {
				target = DefaultBoostTarget
			}

			key := boostKey{kind: kind, target: target}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			boosts = append(boosts, entities.Boost{Kind: kind, Value: value, Target: target})
		}
	}

	return boosts
}
