package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

func TestExtractProduction_Levels(t *testing.T) {
	tx := taxonomy.Default()
	e := raw(t, `{
		"entity_levels": [
			{"era": "BronzeAge", "provided_happiness": 10, "provided_population": 0, "produced_money": 50},
			{"era": "IronAge", "provided_population": 20, "demand_for_happiness": 5},
			{"era": "", "provided_happiness": 99},
			{"era": "EarlyMiddleAge", "provided_happiness": 0}
		]
	}`)

	assert.Equal(t, entities.ProductionStats{
		"BronzeAge": {"happiness": 10, "money_24h": 50},
		"IronAge":   {"population": 20, "demandHappiness": 5},
	}, ExtractProduction(e, tx))
}

func TestExtractProduction_LevelsTakePrecedence(t *testing.T) {
	tx := taxonomy.Default()
	e := raw(t, `{
		"entity_levels": [{"era": "BronzeAge"}],
		"components": {
			"IronAge": {"happiness": {"provided": 300}}
		}
	}`)

	assert.Nil(t, ExtractProduction(e, tx))
}

func TestExtractProduction_Components(t *testing.T) {
	tx := taxonomy.Default()

	t.Run("autoStart production with block timer", func(t *testing.T) {
		e := raw(t, `{
			"components": {
				"IronAge": {
					"production": {
						"autoStart": true,
						"time": 86400,
						"options": [
							{"products": [{"playerResources": {"resources": {"supplies": 120}}}]}
						]
					}
				}
			}
		}`)

		assert.Equal(t, entities.ProductionStats{
			"IronAge": {"supplies_24h": 120},
		}, ExtractProduction(e, tx))
	})

	t.Run("option timer overrides block timer", func(t *testing.T) {
		e := raw(t, `{
			"components": {
				"AllAge": {
					"production": {
						"autoStart": true,
						"time": 86400,
						"options": [
							{"time": 3600, "products": [{"playerResources": {"resources": {"medals": 5}}}]},
							{"time": 7200, "products": [{"playerResources": {"resources": {"strategy_points": 2, "money": 0}}}]}
						]
					}
				}
			}
		}`)

		assert.Equal(t, entities.ProductionStats{
			"AllAge": {"medals_1h": 5, "strategy_points_t7200s": 2},
		}, ExtractProduction(e, tx))
	})

	t.Run("manual production is ignored", func(t *testing.T) {
		e := raw(t, `{
			"components": {
				"IronAge": {
					"production": {
						"autoStart": false,
						"time": 86400,
						"options": [{"products": [{"playerResources": {"resources": {"supplies": 120}}}]}]
					}
				}
			}
		}`)

		assert.Nil(t, ExtractProduction(e, tx))
	})

	t.Run("population and happiness", func(t *testing.T) {
		e := raw(t, `{
			"components": {
				"BronzeAge": {
					"staticResources": {"resources": {"resources": {"population": 80}}},
					"happiness": {"provided": 120, "demanded": 0}
				},
				"IronAge": {
					"happiness": {"demanded": 40}
				},
				"AllAge": {"placement": {"size": {"x": 2, "y": 2}}},
				"Broken": "not an object"
			}
		}`)

		assert.Equal(t, entities.ProductionStats{
			"BronzeAge": {"population": 80, "happiness": 120},
			"IronAge":   {"demandHappiness": 40},
		}, ExtractProduction(e, tx))
	})

	t.Run("later identical keys overwrite earlier ones", func(t *testing.T) {
		e := raw(t, `{
			"components": {
				"IronAge": {
					"production": {
						"autoStart": true,
						"time": 86400,
						"options": [
							{"products": [{"playerResources": {"resources": {"supplies": 100}}}]},
							{"products": [{"playerResources": {"resources": {"supplies": 150}}}]}
						]
					}
				}
			}
		}`)

		assert.Equal(t, float64(150), ExtractProduction(e, tx)["IronAge"]["supplies_24h"])
	})
}

func TestExtractProduction_Absent(t *testing.T) {
	tx := taxonomy.Default()

	tests := []struct {
		name  string
		input string
	}{
		{name: "no levels or components", input: `{"id": "A_Town_X"}`},
		{name: "empty levels and components", input: `{"entity_levels": [], "components": {}}`},
		{name: "levels with nothing nonzero", input: `{"entity_levels": [{"era": "IronAge", "provided_happiness": 0}]}`},
		{name: "null fields", input: `{"entity_levels": null, "components": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ExtractProduction(raw(t, tt.input), tx))
		})
	}
}
