// Package entities contains core domain data structures.
package entities

// Category is the planner's building category.
type Category string

// Planner categories.
const (
	CategoryResidential  Category = "residential"
	CategoryProduction   Category = "production"
	CategoryGoods        Category = "goods"
	CategoryCulture      Category = "culture"
	CategoryMilitary     Category = "military"
	CategoryGreat        Category = "great"
	CategoryTownhall     Category = "townhall"
	CategoryEvent        Category = "event"
	CategoryMainBuilding Category = "main_building"
	CategoryImpediment   Category = "impediment"
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryResidential,
	CategoryProduction,
	CategoryGoods,
	CategoryCulture,
	CategoryMilitary,
	CategoryGreat,
	CategoryTownhall,
	CategoryEvent,
	CategoryMainBuilding,
	CategoryImpediment,
}

// IsValid checks if the category is one of the planner categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ProductionStats maps era code -> stat name -> amount.
type ProductionStats map[string]map[string]float64

// Boost is a passive percentage modifier.
type Boost struct {
	Kind   string  `json:"type"`
	Value  float64 `json:"value"`
	Target string  `json:"feature"`
}

// Building is the normalized record consumed by the planner front-end.
type Building struct {
	ID        string          `json:"-"`
	Name      string          `json:"name"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Category  Category        `json:"type"`
	EraLabel  string          `json:"age"`
	Color     string          `json:"color"`
	NeedsRoad int             `json:"needsRoad"`
	Prod      ProductionStats `json:"prod,omitempty"`
	Boosts    []Boost         `json:"boosts,omitempty"`
}

// Table is a named output table keyed by building ID.
type Table map[string]Building

// IDs returns the table keys in no particular order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	return ids
}
