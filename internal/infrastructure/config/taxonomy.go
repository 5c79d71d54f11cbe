package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// LoadTaxonomy returns the built-in taxonomy, or the built-in tables with the
// YAML file at path decoded on top. Keys of map-valued tables are merged into
// the defaults; list-valued tables are replaced.
func LoadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}

	tables, err := decodeTables(data)
	if err != nil {
		return nil, err
	}

	return taxonomy.New(tables), nil
}

func decodeTables(data []byte) (taxonomy.Tables, error) {
	tables := taxonomy.DefaultTables()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&tables); err != nil {
		return taxonomy.Tables{}, fmt.Errorf("parsing taxonomy file: %w", err)
	}

	if err := validateTables(&tables); err != nil {
		return taxonomy.Tables{}, err
	}
	return tables, nil
}

// validateTables rejects categories the planner cannot render.
func validateTables(t *taxonomy.Tables) error {
	check := func(where string, c entities.Category) error {
		if !c.IsValid() {
			return fmt.Errorf("taxonomy %s: unknown category %q", where, c)
		}
		return nil
	}

	for tag, style := range t.TypeStyles {
		if err := check("type_styles."+tag, style.Category); err != nil {
			return err
		}
	}
	if err := check("default_style", t.DefaultStyle.Category); err != nil {
		return err
	}
	for tag, c := range t.QITypeOverrides {
		if err := check("qi_type_overrides."+tag, c); err != nil {
			return err
		}
	}
	for _, rule := range t.QIPrefixRules {
		if err := check("qi_prefix_rules."+rule.Value, rule.Category); err != nil {
			return err
		}
	}
	for _, rule := range t.QISuffixRules {
		if err := check("qi_suffix_rules."+rule.Value, rule.Category); err != nil {
			return err
		}
	}
	for c := range t.QIColors {
		if err := check("qi_colors", c); err != nil {
			return err
		}
	}
	return nil
}
