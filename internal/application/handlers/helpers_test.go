package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/services"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

const sampleCatalog = `[
	{"id": "A_Town_X1", "type": "main_building", "width": 5, "length": 4, "requirements": {"min_era": "BronzeAge"}},
	{"id": "R_BronzeAge_House", "type": "residential", "width": 2, "length": 2, "requirements": {"min_era": "BronzeAge"}},
	{"id": "S_Town_Road", "type": "street", "width": 1, "length": 1},
	{"id": "H_GuildRaidsIronAge_Hall", "type": "main_building", "width": 4, "length": 4},
	{"id": "I_GuildRaidsIronAge_Rock1", "type": "impediment", "width": 2, "length": 2},
	{"id": "I_GuildRaidsIronAge_Rock2", "type": "impediment", "width": 2, "length": 2}
]`

func sampleRaws(t *testing.T) []entities.RawEntity {
	t.Helper()
	var out []entities.RawEntity
	require.NoError(t, json.Unmarshal([]byte(sampleCatalog), &out))
	return out
}

func newService() *services.CatalogService {
	return services.NewCatalogService(taxonomy.Default(), nil)
}
