// Package taxonomy holds the static lookup tables that classify catalog records.
package taxonomy

import "github.com/ersonp/planner-catalog/internal/domain/entities"

// Style is the category and palette color assigned to a raw type tag.
type Style struct {
	Category entities.Category `yaml:"category"`
	Color    string            `yaml:"color"`
}

// PrefixRule maps an event code prefix to an event name.
type PrefixRule struct {
	Prefix string `yaml:"prefix"`
	Name   string `yaml:"name"`
}

// SegmentRule maps an ID segment to a category. With Prefix set the
// segment only has to start with Value.
type SegmentRule struct {
	Value    string            `yaml:"value"`
	Prefix   bool              `yaml:"prefix,omitempty"`
	Category entities.Category `yaml:"category"`
}

// Matches reports whether segment satisfies the rule.
func (r SegmentRule) Matches(segment string) bool {
	if r.Prefix {
		return len(segment) >= len(r.Value) && segment[:len(r.Value)] == r.Value
	}
	return segment == r.Value
}

// Tables is the editable form of the taxonomy, decoded from YAML overrides.
// Build a Taxonomy with New before use.
type Tables struct {
	TypeStyles        map[string]Style `yaml:"type_styles"`
	DefaultStyle      Style            `yaml:"default_style"`
	EventClass        string           `yaml:"event_class"`
	EventColor        string           `yaml:"event_color"`
	EventPrefixes     []PrefixRule     `yaml:"event_prefixes"`
	EventFallback     string           `yaml:"event_fallback"`
	SkipTypes         []string         `yaml:"skip_types"`
	NonMainCityWorlds []string         `yaml:"non_main_city_worlds"`

	QIWorlds        []string                     `yaml:"qi_worlds"`
	QISkipExempt    []string                     `yaml:"qi_skip_exempt"`
	QIEraLabel      string                       `yaml:"qi_era_label"`
	QIPrefixRules   []SegmentRule                `yaml:"qi_prefix_rules"`
	QITypeOverrides map[string]entities.Category `yaml:"qi_type_overrides"`
	QISuffixRules   []SegmentRule                `yaml:"qi_suffix_rules"`
	QIColors        map[entities.Category]string `yaml:"qi_colors"`

	EraOrder      []string          `yaml:"era_order"`
	EraLabels     map[string]string `yaml:"era_labels"`
	AllAgesLabel  string            `yaml:"all_ages_label"`
	TimerSuffixes map[int]string    `yaml:"timer_suffixes"`
}

const (
	colorResidential = "#87CEEB"
	colorProduction  = "#5F8DC3"
	colorGoods       = "#F4E16B"
	colorCulture     = "#6B8E7F"
	colorMilitary    = "#8B7BAA"
	colorGreat       = "#D46A4F"
	colorTownhall    = "#E8D679"
	colorEvent       = "#D4884B"
	colorImpediment  = "#607080"
)

// DefaultTables returns the built-in tables for the Forge of Empires catalog.
// Each call returns fresh maps and slices.
func DefaultTables() Tables {
	return Tables{
		TypeStyles: map[string]Style{
			"residential":               {entities.CategoryResidential, colorResidential},
			"production":                {entities.CategoryProduction, colorProduction},
			"goods":                     {entities.CategoryGoods, colorGoods},
			"cultural_goods_production": {entities.CategoryGoods, colorGoods},
			"culture":                   {entities.CategoryCulture, colorCulture},
			"decoration":                {entities.CategoryCulture, colorCulture},
			"military":                  {entities.CategoryMilitary, colorMilitary},
			"greatbuilding":             {entities.CategoryGreat, colorGreat},
			"main_building":             {entities.CategoryTownhall, colorTownhall},
		},
		DefaultStyle:  Style{entities.CategoryCulture, colorCulture},
		EventClass:    "GenericCityEntity",
		EventColor:    colorEvent,
		EventFallback: "Event Building",
		EventPrefixes: []PrefixRule{
			{"HalloweenBonusGP", "Halloween Event"},
			{"HalloweenBonus", "Halloween Event"},
			{"HistoricalAllies", "Historical Allies Event"},
			{"GBGWatchtower", "Guild Battleground"},
			{"SummerBonus", "Summer Event"},
			{"PassBonus", "Season Pass"},
			{"Expedition", "Guild Expedition"},
			{"FallBonus", "Fall Event"},
			{"AgeBonus", "Age Bonus"},
			{"ONBOARD", "Starter Buildings"},
			{"ANNI", "Anniversary Event"},
			{"ARCH", "Archaeology Event"},
			{"BOWL", "Bowl Event"},
			{"CARE", "Care Event"},
			{"FELL", "Fellowship Event"},
			{"HERO", "Heroes Event"},
			{"TEMP", "Temporal Rift Event"},
			{"WILD", "Wildfire Event"},
			{"FALL", "Fall Event"},
			{"GBG", "Guild Battleground"},
			{"GEX", "Guild Expedition"},
			{"COP", "Carnival of Peace"},
			{"CUP", "Football Cup Event"},
			{"GR", "Spring Event"},
			{"HAL", "Halloween Event"},
			{"LTE", "Event Building"},
			{"PAT", "Passion Event"},
			{"SPR", "Spring Event"},
			{"SUM", "Summer Event"},
			{"WIN", "Winter Event"},
		},
		SkipTypes: []string{
			"street",
			"off_grid",
			"impediment",
			"static_provider",
			"outpost_ship",
			"friends_tavern",
			"hub_part",
			"hub_main",
			"tower",
			"clan_power_production",
			"random_production",
			"diplomacy",
		},
		NonMainCityWorlds: []string{
			"Vikings", "Egyptians", "Japanese", "Mughals", "Polynesia", "Pirates", "Aztecs",
			"Feudal", "China", "Mughal",
		},

		QIWorlds: []string{
			"GuildRaidsIronAge", "GuildRaidsEarlyMiddleAge",
			"GuildRaidsHighMiddleAge", "GuildRaidsLateMiddleAge",
		},
		QISkipExempt: []string{"main_building", "impediment"},
		QIEraLabel:   "Quantum Incursion",
		QIPrefixRules: []SegmentRule{
			{Value: "H", Category: entities.CategoryMainBuilding},
			{Value: "I", Category: entities.CategoryImpediment},
		},
		QITypeOverrides: map[string]entities.Category{
			"main_building": entities.CategoryMainBuilding,
			"impediment":    entities.CategoryImpediment,
		},
		QISuffixRules: defaultQISuffixRules(),
		QIColors: map[entities.Category]string{
			entities.CategoryMilitary:     colorMilitary,
			entities.CategoryProduction:   colorProduction,
			entities.CategoryGoods:        colorGoods,
			entities.CategoryResidential:  colorResidential,
			entities.CategoryCulture:      colorCulture,
			entities.CategoryImpediment:   colorImpediment,
			entities.CategoryMainBuilding: colorTownhall,
		},

		EraOrder: []string{
			"StoneAge", "BronzeAge", "IronAge", "EarlyMiddleAge", "HighMiddleAge",
			"LateMiddleAge", "ColonialAge", "IndustrialAge", "ProgressiveEra",
			"ModernEra", "PostModernEra", "ContemporaryEra", "TomorrowEra", "FutureEra",
			"ArcticFuture", "OceanicFuture", "VirtualFuture",
			"SpaceAgeMars", "SpaceAgeAsteroidBelt", "SpaceAgeVenus", "SpaceAgeTitan",
			"SpaceAgeJupiterMoon", "SpaceAgeSpaceHub",
			"AllAge", "MultiAge", "NoAge",
		},
		EraLabels: map[string]string{
			"StoneAge":             "Stone Age",
			"BronzeAge":            "Bronze Age",
			"IronAge":              "Iron Age",
			"EarlyMiddleAge":       "Early Middle Ages",
			"HighMiddleAge":        "High Middle Ages",
			"LateMiddleAge":        "Late Middle Ages",
			"ColonialAge":          "Colonial Age",
			"IndustrialAge":        "Industrial Age",
			"ProgressiveEra":       "Progressive Era",
			"ModernEra":            "Modern Era",
			"PostModernEra":        "Post-Modern Era",
			"ContemporaryEra":      "Contemporary Era",
			"TomorrowEra":          "Tomorrow Era",
			"FutureEra":            "Future Era",
			"ArcticFuture":         "Arctic Future",
			"OceanicFuture":        "Oceanic Future",
			"VirtualFuture":        "Virtual Future",
			"SpaceAgeMars":         "Space Age Mars",
			"SpaceAgeAsteroidBelt": "Space Age Asteroid Belt",
			"SpaceAgeVenus":        "Space Age Venus",
			"SpaceAgeTitan":        "Space Age Titan",
			"SpaceAgeJupiterMoon":  "Space Age Jupiter Moon",
			"SpaceAgeSpaceHub":     "Space Age Space Hub",
			"AllAge":               "All Ages",
			"MultiAge":             "All Ages",
			"NoAge":                "All Ages",
		},
		AllAgesLabel: "All Ages",
		TimerSuffixes: map[int]string{
			300:    "5m",
			900:    "15m",
			3600:   "1h",
			14400:  "4h",
			28800:  "8h",
			86400:  "24h",
			172800: "2d",
			604800: "7d",
		},
	}
}

func defaultQISuffixRules() []SegmentRule {
	rules := []SegmentRule{{Value: "Residential", Prefix: true, Category: entities.CategoryResidential}}

	add := func(category entities.Category, suffixes ...string) {
		for _, s := range suffixes {
			rules = append(rules, SegmentRule{Value: s, Category: category})
		}
	}
	add(entities.CategoryMilitary,
		"Archery", "Archeryrange", "Armoredswordsmsanbarracks", "Axehammer",
		"BidenhnderMercenaryBarracks", "Dismountedknight", "Legionairebarracks",
		"Militiamanbarracks", "Pikemanbarracks", "Siege", "Siegecamp",
		"Spearmanbarracks", "Stable", "Stablecataphract")
	add(entities.CategoryProduction,
		"Alchimist", "Bakery", "Barrelproducer", "Brewery", "Butcher", "Goatbreed",
		"Shoemaker", "Spicefarm", "Tailor", "Tannery", "Wheatfarm", "Windmill")
	add(entities.CategoryGoods,
		"Beekeeper", "BronzeFoundry", "Brickworks", "Carpenter", "Gunpowder",
		"JewelryManufacturer", "Leadfoundry", "LimestoneMason", "Ropery", "Weavingmill")

	return rules
}
