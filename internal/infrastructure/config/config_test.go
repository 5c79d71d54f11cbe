package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 60, cfg.Source.Timeout)
	assert.Equal(t, "Mozilla/5.0", cfg.Source.UserAgent)
	assert.Equal(t, "data", cfg.Output.Dir)
	assert.Equal(t, "foe_buildings_database.js", cfg.Output.MainFile)
	assert.Equal(t, "qi_buildings_database.js", cfg.Output.QIFile)
	assert.Equal(t, "BUILDINGS", cfg.Output.MainExport)
	assert.Equal(t, "QI_BUILDINGS", cfg.Output.QIExport)
	assert.Equal(t, filepath.Join(".planner", "history.db"), cfg.History.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data"), cfg.Output.Dir)
	assert.Equal(t, filepath.Join(dir, ".planner", "history.db"), cfg.History.Path)
	assert.Equal(t, filepath.Join(dir, "data", "foe_buildings_database.js"), cfg.MainOutputPath())
	assert.Equal(t, filepath.Join(dir, "data", "qi_buildings_database.js"), cfg.QIOutputPath())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
output:
  dir: public/data
  main_export: MAIN
history:
  path: ""
server:
  port: 9000
taxonomy:
  path: tax.yaml
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "public", "data"), cfg.Output.Dir)
	assert.Equal(t, "MAIN", cfg.Output.MainExport)
	assert.Equal(t, "QI_BUILDINGS", cfg.Output.QIExport)
	assert.Empty(t, cfg.History.Path)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, filepath.Join(dir, "tax.yaml"), cfg.Taxonomy.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNER_OUTPUT_DIR", "/tmp/planner-out")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")
	t.Setenv("PLANNER_HISTORY_PATH", "")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/planner-out", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.History.Path)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "malformed yaml", content: "output: [", errMsg: "parsing config file"},
		{name: "same output files", content: "output:\n  qi_file: foe_buildings_database.js\n", errMsg: "must differ"},
		{name: "bad port", content: "server:\n  port: 70000\n", errMsg: "server.port"},
		{name: "bad timeout", content: "source:\n  timeout: -1\n", errMsg: "source.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "BUILDINGS", cfg.Output.MainExport)

	err = WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoadTaxonomy_Default(t *testing.T) {
	tx, err := LoadTaxonomy("")
	require.NoError(t, err)
	assert.Equal(t, "Bronze Age", tx.EraLabel("BronzeAge"))
}

func TestLoadTaxonomy_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
type_styles:
  hero_statue:
    category: great
    color: "#FFFFFF"
event_prefixes:
  - prefix: HAL
    name: Spooky Season
  - prefix: HALX
    name: Extra Spooky
timer_suffixes:
  7200: 2h
qi_era_label: Guild Raids
`), 0644))

	tx, err := LoadTaxonomy(path)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryGreat, tx.StyleFor("hero_statue").Category)
	assert.Equal(t, entities.CategoryResidential, tx.StyleFor("residential").Category)
	assert.Equal(t, "Extra Spooky", tx.EventName("HALX1"))
	assert.Equal(t, "Spooky Season", tx.EventName("HAL42"))
	assert.Equal(t, "Event Building", tx.EventName("WIN1"))
	assert.Equal(t, "2h", tx.TimerSuffix(7200))
	assert.Equal(t, "24h", tx.TimerSuffix(86400))
	assert.Equal(t, "Guild Raids", tx.QIEraLabel())
}

func TestLoadTaxonomy_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "unknown key", content: "colours: {}\n", errMsg: "parsing taxonomy file"},
		{name: "unknown category", content: "type_styles:\n  x:\n    category: castle\n", errMsg: "unknown category"},
		{name: "unknown qi rule category", content: "qi_suffix_rules:\n  - value: Tower\n    category: tower\n", errMsg: "qi_suffix_rules.Tower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "taxonomy.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadTaxonomy(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := LoadTaxonomy(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
