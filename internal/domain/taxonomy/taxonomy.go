package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// Taxonomy is the read-only lookup bundle shared by the classifier passes.
// It is safe for concurrent use; nothing mutates it after New.
type Taxonomy struct {
	typeStyles        map[string]Style
	defaultStyle      Style
	eventClass        string
	eventColor        string
	eventPrefixes     []PrefixRule
	eventFallback     string
	skipTypes         map[string]struct{}
	nonMainCityWorlds map[string]struct{}

	qiWorlds        map[string]struct{}
	qiSkipTypes     map[string]struct{}
	qiEraLabel      string
	qiPrefixRules   []SegmentRule
	qiTypeOverrides map[string]entities.Category
	qiSuffixRules   []SegmentRule
	qiColors        map[entities.Category]string

	eraRank       map[string]int
	labelRank     map[string]int
	eraLabels     map[string]string
	allAgesLabel  string
	timerSuffixes map[int]string
}

// Default returns the taxonomy built from DefaultTables.
func Default() *Taxonomy {
	return New(DefaultTables())
}

// New copies t into a Taxonomy. Event prefixes are ordered longest first;
// prefixes of equal length keep their table order.
func New(t Tables) *Taxonomy {
	tx := &Taxonomy{
		typeStyles:        make(map[string]Style, len(t.TypeStyles)),
		defaultStyle:      t.DefaultStyle,
		eventClass:        t.EventClass,
		eventColor:        t.EventColor,
		eventPrefixes:     append([]PrefixRule(nil), t.EventPrefixes...),
		eventFallback:     t.EventFallback,
		skipTypes:         toSet(t.SkipTypes),
		nonMainCityWorlds: toSet(t.NonMainCityWorlds),
		qiWorlds:          toSet(t.QIWorlds),
		qiSkipTypes:       toSet(t.SkipTypes),
		qiEraLabel:        t.QIEraLabel,
		qiPrefixRules:     append([]SegmentRule(nil), t.QIPrefixRules...),
		qiTypeOverrides:   make(map[string]entities.Category, len(t.QITypeOverrides)),
		qiSuffixRules:     append([]SegmentRule(nil), t.QISuffixRules...),
		qiColors:          make(map[entities.Category]string, len(t.QIColors)),
		eraRank:           make(map[string]int, len(t.EraOrder)),
		labelRank:         make(map[string]int, len(t.EraOrder)),
		eraLabels:         make(map[string]string, len(t.EraLabels)),
		allAgesLabel:      t.AllAgesLabel,
		timerSuffixes:     make(map[int]string, len(t.TimerSuffixes)),
	}

	for k, v := range t.TypeStyles {
		tx.typeStyles[k] = v
	}
	for _, exempt := range t.QISkipExempt {
		delete(tx.qiSkipTypes, exempt)
	}
	for k, v := range t.QITypeOverrides {
		tx.qiTypeOverrides[k] = v
	}
	for k, v := range t.QIColors {
		tx.qiColors[k] = v
	}
	for k, v := range t.EraLabels {
		tx.eraLabels[k] = v
	}
	for k, v := range t.TimerSuffixes {
		tx.timerSuffixes[k] = v
	}

	for i, era := range t.EraOrder {
		if _, ok := tx.eraRank[era]; !ok {
			tx.eraRank[era] = i
		}
		label, ok := t.EraLabels[era]
		if !ok {
			continue
		}
		if _, seen := tx.labelRank[label]; !seen {
			tx.labelRank[label] = i
		}
	}

	sort.SliceStable(tx.eventPrefixes, func(i, j int) bool {
		return len(tx.eventPrefixes[i].Prefix) > len(tx.eventPrefixes[j].Prefix)
	})

	return tx
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// StyleFor returns the category and color for a raw type tag.
// Unknown tags get the default style.
func (t *Taxonomy) StyleFor(rawType string) Style {
	if s, ok := t.typeStyles[rawType]; ok {
		return s
	}
	return t.defaultStyle
}

// KnownType reports whether rawType has an explicit style.
func (t *Taxonomy) KnownType(rawType string) bool {
	_, ok := t.typeStyles[rawType]
	return ok
}

// IsEventEntity reports whether a record with this type tag and class marker
// is an event building.
func (t *Taxonomy) IsEventEntity(rawType, class string) bool {
	return rawType == "" && class != "" && class == t.eventClass
}

// EventColor returns the palette color for event buildings.
func (t *Taxonomy) EventColor() string {
	return t.eventColor
}

// EventName returns the event name for an ID code using the longest
// matching prefix.
func (t *Taxonomy) EventName(code string) string {
	for _, rule := range t.eventPrefixes {
		if strings.HasPrefix(code, rule.Prefix) {
			return rule.Name
		}
	}
	return t.eventFallback
}

// SkipMainCity reports whether rawType is non-placeable in the main city.
func (t *Taxonomy) SkipMainCity(rawType string) bool {
	_, ok := t.skipTypes[rawType]
	return ok
}

// SkipQI reports whether rawType is non-placeable in Quantum Incursion.
func (t *Taxonomy) SkipQI(rawType string) bool {
	_, ok := t.qiSkipTypes[rawType]
	return ok
}

// IsNonMainCityWorld reports whether the world segment belongs to another game mode.
func (t *Taxonomy) IsNonMainCityWorld(world string) bool {
	_, ok := t.nonMainCityWorlds[world]
	return ok
}

// IsQIWorld reports whether the world segment is a Quantum Incursion world.
func (t *Taxonomy) IsQIWorld(world string) bool {
	_, ok := t.qiWorlds[world]
	return ok
}

// QIEraLabel is the era label forced onto every QI building.
func (t *Taxonomy) QIEraLabel() string {
	return t.qiEraLabel
}

// QICategory infers a QI building category. Precedence: ID prefix rules,
// declared-type overrides, declared type styles, ID suffix rules, default.
func (t *Taxonomy) QICategory(segments entities.IDSegments, rawType string) entities.Category {
	prefix := segments.Prefix()
	for _, rule := range t.qiPrefixRules {
		if rule.Matches(prefix) {
			return rule.Category
		}
	}
	if c, ok := t.qiTypeOverrides[rawType]; ok {
		return c
	}
	if rawType != "" && t.KnownType(rawType) {
		return t.typeStyles[rawType].Category
	}
	suffix := segments.Code()
	for _, rule := range t.qiSuffixRules {
		if rule.Matches(suffix) {
			return rule.Category
		}
	}
	return t.defaultStyle.Category
}

// QIColor returns the QI palette color for a category.
func (t *Taxonomy) QIColor(c entities.Category) string {
	if color, ok := t.qiColors[c]; ok {
		return color
	}
	return t.defaultStyle.Color
}

// EraLabel maps an era code to its display label, falling back to "All Ages".
func (t *Taxonomy) EraLabel(code string) string {
	if label, ok := t.eraLabels[code]; ok {
		return label
	}
	return t.allAgesLabel
}

// EraRank returns the position of an era code in the era order.
// Unknown codes rank after every known era.
func (t *Taxonomy) EraRank(code string) int {
	if r, ok := t.eraRank[code]; ok {
		return r
	}
	return len(t.eraRank) + len(t.eraLabels) + 1
}

// LabelRank returns the sort position of a display label.
// Labels outside the era table (event names, QI) rank last.
func (t *Taxonomy) LabelRank(label string) int {
	if r, ok := t.labelRank[label]; ok {
		return r
	}
	return len(t.eraRank) + len(t.eraLabels) + 1
}

// SortEras orders era codes by era rank, then lexically.
func (t *Taxonomy) SortEras(codes []string) {
	sort.Slice(codes, func(i, j int) bool {
		ri, rj := t.EraRank(codes[i]), t.EraRank(codes[j])
		if ri != rj {
			return ri < rj
		}
		return codes[i] < codes[j]
	})
}

// TimerSuffix returns the stat-key suffix for a production timer.
// Unlisted timers become "t<seconds>s".
func (t *Taxonomy) TimerSuffix(seconds int) string {
	if s, ok := t.timerSuffixes[seconds]; ok {
		return s
	}
	return fmt.Sprintf("t%ds", seconds)
}
