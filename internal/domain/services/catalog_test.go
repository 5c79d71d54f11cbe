package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

const sampleCatalog = `[
	{"id": "A_Town_X1", "type": "main_building", "width": 5, "length": 4, "requirements": {"min_era": "BronzeAge"}},
	{"id": "R_BronzeAge_House", "type": "residential", "width": 2, "length": 2, "requirements": {"min_era": "BronzeAge", "street_connection_level": 1},
	 "entity_levels": [{"era": "BronzeAge", "provided_population": 14, "produced_money": 20}]},
	{"id": "S_Town_Road", "type": "street", "width": 1, "length": 1},
	{"id": "R_Vikings_Hut", "type": "residential", "width": 2, "length": 2},
	{"id": "H_GuildRaidsIronAge_Hall", "type": "main_building", "width": 4, "length": 4},
	{"id": "I_GuildRaidsIronAge_Rock1", "type": "impediment", "width": 2, "length": 2},
	{"id": "I_GuildRaidsIronAge_Rock2", "type": "impediment", "width": 2, "length": 2}
]`

func TestCatalogService_Build(t *testing.T) {
	service := NewCatalogService(taxonomy.Default(), zap.NewNop())

	result, err := service.Build(context.Background(), raws(t, sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 7, result.Entities)
	assert.Equal(t, "main", result.Main.Name)
	assert.Equal(t, "qi", result.QI.Name)

	assert.ElementsMatch(t, []string{"A_Town_X1", "R_BronzeAge_House"}, result.Main.Table.IDs())
	assert.Equal(t, entities.PassStats{SkippedType: 3, SkippedWorld: 2, Included: 2}, result.Main.Stats)

	assert.ElementsMatch(t, []string{"H_GuildRaidsIronAge_Hall", "I_GuildRaidsIronAge_Rock1"}, result.QI.Table.IDs())
	assert.Equal(t, entities.PassStats{SkippedWorld: 4, SkippedImpedimentDup: 1, Included: 2}, result.QI.Stats)

	house := result.Main.Table["R_BronzeAge_House"]
	assert.Equal(t, 1, house.NeedsRoad)
	assert.Equal(t, entities.ProductionStats{"BronzeAge": {"population": 14, "money_24h": 20}}, house.Prod)
}

func TestCatalogService_BuildReproducible(t *testing.T) {
	service := NewCatalogService(taxonomy.Default(), nil)
	input := raws(t, sampleCatalog)

	first, err := service.Build(context.Background(), input)
	require.NoError(t, err)
	second, err := service.Build(context.Background(), input)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("build not reproducible (-first +second):\n%s", diff)
	}
}

func TestCatalogService_BuildCanceled(t *testing.T) {
	service := NewCatalogService(taxonomy.Default(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Build(ctx, raws(t, sampleCatalog))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogService_BuildEmpty(t *testing.T) {
	service := NewCatalogService(taxonomy.Default(), nil)

	result, err := service.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Main.Table)
	assert.Empty(t, result.QI.Table)
	assert.Equal(t, 0, result.Main.Stats.Total())
}
