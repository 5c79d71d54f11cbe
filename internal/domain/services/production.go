package services

import (
	"sort"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// Stat keys shared by both catalog schemas.
const (
	StatHappiness       = "happiness"
	StatPopulation      = "population"
	StatDemandHappiness = "demandHappiness"
	StatMoney24h        = "money_24h"
)

// levelFields maps flat entity_levels fields to stat keys, in output order.
var levelFields = []struct {
	field string
	stat  string
}{
	{"provided_happiness", StatHappiness},
	{"provided_population", StatPopulation},
	{"demand_for_happiness", StatDemandHappiness},
	{"produced_money", StatMoney24h},
}

// ExtractProduction returns per-era passive stats keyed by era code, or nil.
//
// Older records carry flat per-era fields in entity_levels; newer ones nest
// them under components[era]. When entity_levels has any entries the
// components are not consulted.
func ExtractProduction(e entities.RawEntity, tx *taxonomy.Taxonomy) entities.ProductionStats {
	if levels := e.List(entities.FieldLevels); len(levels) > 0 {
		return levelStats(levels)
	}
	if components := e.Components(); len(components) > 0 {
		return componentStats(components, tx)
	}
	return nil
}

func levelStats(levels []any) entities.ProductionStats {
	result := entities.ProductionStats{}
	for _, l := range levels {
		level := entities.AsObject(l)
		era := entities.AsString(level["era"])
		if era == "" {
			continue
		}
		stats := map[string]float64{}
		for _, f := range levelFields {
			if v, ok := entities.AsNumber(level[f.field]); ok && v != 0 {
				stats[f.stat] = v
			}
		}
		if len(stats) > 0 {
			result[era] = stats
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func componentStats(components map[string]any, tx *taxonomy.Taxonomy) entities.ProductionStats {
	result := entities.ProductionStats{}
	for _, era := range sortedEras(components, tx) {
		data := entities.AsObject(components[era])
		if data == nil {
			continue
		}
		stats := map[string]float64{}

		if pop, ok := entities.Lookup(data, "staticResources", "resources", "resources", "population"); ok {
			if v, ok := entities.AsNumber(pop); ok && v != 0 {
				stats[StatPopulation] = v
			}
		}

		happiness := entities.AsObject(data["happiness"])
		if v, ok := entities.AsNumber(happiness["provided"]); ok && v != 0 {
			stats[StatHappiness] = v
		}
		if v, ok := entities.AsNumber(happiness["demanded"]); ok && v != 0 {
			stats[StatDemandHappiness] = v
		}

		addAutoStartProduction(stats, entities.AsObject(data["production"]), tx)

		if len(stats) > 0 {
			result[era] = stats
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// addAutoStartProduction adds "<resource>_<timer>" stats for passive
// production. Later options overwrite earlier identical keys.
func addAutoStartProduction(stats map[string]float64, production map[string]any, tx *taxonomy.Taxonomy) {
	if !entities.Truthy(production["autoStart"]) {
		return
	}
	blockTimer, _ := entities.AsInt(production["time"])

	for _, o := range entities.AsList(production["options"]) {
		option := entities.AsObject(o)
		timer, ok := entities.AsInt(option["time"])
		if !ok || timer == 0 {
			timer = blockTimer
		}
		suffix := tx.TimerSuffix(timer)

		for _, p := range entities.AsList(option["products"]) {
			resources, _ := entities.Lookup(p, "playerResources", "resources")
			amounts := entities.AsObject(resources)
			for _, name := range sortedKeys(amounts) {
				if v, ok := entities.AsNumber(amounts[name]); ok && v != 0 {
					stats[name+"_"+suffix] = v
				}
			}
		}
	}
}

// sortedEras returns component keys in canonical era order.
func sortedEras(components map[string]any, tx *taxonomy.Taxonomy) []string {
	eras := make([]string, 0, len(components))
	for era := range components {
		eras = append(eras, era)
	}
	tx.SortEras(eras)
	return eras
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
