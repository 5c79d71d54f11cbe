package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

func TestTaxonomy_EventName(t *testing.T) {
	tx := Default()

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "short prefix", code: "HAL42", expected: "Halloween Event"},
		{name: "longest prefix wins", code: "HalloweenBonusGP3", expected: "Halloween Event"},
		{name: "GBG watchtower before GBG", code: "GBGWatchtower1", expected: "Guild Battleground"},
		{name: "FALL vs FallBonus", code: "FallBonus7", expected: "Fall Event"},
		{name: "two letter prefix", code: "GR12", expected: "Spring Event"},
		{name: "GEX before GR is irrelevant", code: "GEX5", expected: "Guild Expedition"},
		{name: "unknown code", code: "ZZZ1", expected: "Event Building"},
		{name: "empty code", code: "", expected: "Event Building"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tx.EventName(tt.code))
		})
	}
}

func TestNew_SortsPrefixesLongestFirstStable(t *testing.T) {
	tables := DefaultTables()
	tables.EventPrefixes = []PrefixRule{
		{Prefix: "A", Name: "short"},
		{Prefix: "AB", Name: "first"},
		{Prefix: "AC", Name: "second"},
		{Prefix: "ABC", Name: "longest"},
	}
	tx := New(tables)

	assert.Equal(t, "longest", tx.EventName("ABC1"))
	assert.Equal(t, "first", tx.EventName("AB1"))
	assert.Equal(t, "second", tx.EventName("AC1"))
	assert.Equal(t, "short", tx.EventName("AZ"))
	assert.Equal(t, []PrefixRule{
		{Prefix: "ABC", Name: "longest"},
		{Prefix: "AB", Name: "first"},
		{Prefix: "AC", Name: "second"},
		{Prefix: "A", Name: "short"},
	}, tx.eventPrefixes)
}

func TestNew_DoesNotShareTables(t *testing.T) {
	tables := DefaultTables()
	tx := New(tables)

	tables.EraLabels["BronzeAge"] = "changed"
	tables.TypeStyles["military"] = Style{Category: entities.CategoryEvent}

	assert.Equal(t, "Bronze Age", tx.EraLabel("BronzeAge"))
	assert.Equal(t, entities.CategoryMilitary, tx.StyleFor("military").Category)
}

func TestTaxonomy_EraLabel(t *testing.T) {
	tx := Default()

	assert.Equal(t, "Bronze Age", tx.EraLabel("BronzeAge"))
	assert.Equal(t, "Post-Modern Era", tx.EraLabel("PostModernEra"))
	assert.Equal(t, "All Ages", tx.EraLabel("MultiAge"))
	assert.Equal(t, "All Ages", tx.EraLabel(""))
	assert.Equal(t, "All Ages", tx.EraLabel("SomeFutureAge"))
}

func TestTaxonomy_StyleFor(t *testing.T) {
	tx := Default()

	assert.Equal(t, Style{entities.CategoryTownhall, "#E8D679"}, tx.StyleFor("main_building"))
	assert.Equal(t, Style{entities.CategoryGoods, "#F4E16B"}, tx.StyleFor("cultural_goods_production"))
	assert.Equal(t, Style{entities.CategoryCulture, "#6B8E7F"}, tx.StyleFor("brand_new_type"))
	assert.Equal(t, Style{entities.CategoryCulture, "#6B8E7F"}, tx.StyleFor(""))
}

func TestTaxonomy_SkipSets(t *testing.T) {
	tx := Default()

	assert.True(t, tx.SkipMainCity("street"))
	assert.True(t, tx.SkipMainCity("impediment"))
	assert.False(t, tx.SkipMainCity("main_building"))
	assert.False(t, tx.SkipMainCity("residential"))

	assert.True(t, tx.SkipQI("street"))
	assert.False(t, tx.SkipQI("impediment"))
	assert.False(t, tx.SkipQI("main_building"))
}

func TestTaxonomy_Worlds(t *testing.T) {
	tx := Default()

	assert.True(t, tx.IsNonMainCityWorld("Vikings"))
	assert.False(t, tx.IsNonMainCityWorld("MultiAge"))
	assert.True(t, tx.IsQIWorld("GuildRaidsIronAge"))
	assert.False(t, tx.IsQIWorld("Town"))
}

func TestTaxonomy_QICategory(t *testing.T) {
	tx := Default()

	tests := []struct {
		name     string
		id       string
		rawType  string
		expected entities.Category
	}{
		{name: "H prefix", id: "H_GuildRaidsIronAge_Townhall", expected: entities.CategoryMainBuilding},
		{name: "H prefix overrides type", id: "H_GuildRaidsIronAge_X", rawType: "military", expected: entities.CategoryMainBuilding},
		{name: "I prefix", id: "I_GuildRaidsIronAge_Rock1", expected: entities.CategoryImpediment},
		{name: "I prefix overrides type", id: "I_GuildRaidsIronAge_Rock1", rawType: "residential", expected: entities.CategoryImpediment},
		{name: "declared impediment", id: "X_GuildRaidsIronAge_Rock", rawType: "impediment", expected: entities.CategoryImpediment},
		{name: "declared main building", id: "X_GuildRaidsIronAge_Hall", rawType: "main_building", expected: entities.CategoryMainBuilding},
		{name: "declared type table", id: "W_GuildRaidsIronAge_Foo", rawType: "goods", expected: entities.CategoryGoods},
		{name: "suffix table", id: "W_GuildRaidsIronAge_Bakery", expected: entities.CategoryProduction},
		{name: "suffix military", id: "W_GuildRaidsIronAge_Stablecataphract", expected: entities.CategoryMilitary},
		{name: "residential prefix", id: "W_GuildRaidsIronAge_ResidentialSmall", expected: entities.CategoryResidential},
		{name: "unknown suffix", id: "W_GuildRaidsIronAge_Statue", expected: entities.CategoryCulture},
		{name: "short id", id: "W", expected: entities.CategoryCulture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := entities.RawEntity{"id": tt.id}
			assert.Equal(t, tt.expected, tx.QICategory(raw.Segments(), tt.rawType))
		})
	}
}

func TestTaxonomy_QIColor(t *testing.T) {
	tx := Default()

	assert.Equal(t, "#607080", tx.QIColor(entities.CategoryImpediment))
	assert.Equal(t, "#E8D679", tx.QIColor(entities.CategoryMainBuilding))
	assert.Equal(t, "#6B8E7F", tx.QIColor(entities.CategoryGreat))
}

func TestTaxonomy_TimerSuffix(t *testing.T) {
	tx := Default()

	assert.Equal(t, "24h", tx.TimerSuffix(86400))
	assert.Equal(t, "5m", tx.TimerSuffix(300))
	assert.Equal(t, "t7200s", tx.TimerSuffix(7200))
	assert.Equal(t, "t0s", tx.TimerSuffix(0))
}

func TestTaxonomy_Ranks(t *testing.T) {
	tx := Default()

	assert.Less(t, tx.EraRank("StoneAge"), tx.EraRank("BronzeAge"))
	assert.Less(t, tx.EraRank("SpaceAgeSpaceHub"), tx.EraRank("AllAge"))
	assert.Greater(t, tx.EraRank("Unknown"), tx.EraRank("NoAge"))

	assert.Equal(t, tx.EraRank("AllAge"), tx.LabelRank("All Ages"))
	assert.Less(t, tx.LabelRank("Iron Age"), tx.LabelRank("All Ages"))
	assert.Greater(t, tx.LabelRank("Quantum Incursion"), tx.LabelRank("All Ages"))
	assert.Equal(t, tx.LabelRank("Halloween Event"), tx.LabelRank("Quantum Incursion"))
}

func TestTaxonomy_SortEras(t *testing.T) {
	tx := Default()
	codes := []string{"Zeta", "IronAge", "AllAge", "BronzeAge", "Alpha"}

	tx.SortEras(codes)

	assert.Equal(t, []string{"BronzeAge", "IronAge", "AllAge", "Alpha", "Zeta"}, codes)
}

func TestTaxonomy_IsEventEntity(t *testing.T) {
	tx := Default()

	assert.True(t, tx.IsEventEntity("", "GenericCityEntity"))
	assert.False(t, tx.IsEventEntity("culture", "GenericCityEntity"))
	assert.False(t, tx.IsEventEntity("", "CityEntity"))
	assert.False(t, tx.IsEventEntity("", ""))
}
