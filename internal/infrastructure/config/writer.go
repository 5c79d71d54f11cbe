package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# City Planner Catalog Configuration

source:
  timeout: 60
  user_agent: Mozilla/5.0

output:
  dir: data
  main_file: foe_buildings_database.js
  qi_file: qi_buildings_database.js
  main_export: BUILDINGS
  qi_export: QI_BUILDINGS

history:
  path: .planner/history.db
  # path: "" disables build history

server:
  port: 8080
  root: .

# taxonomy:
#   path: .planner/taxonomy.yaml

log:
  level: info
`

// WriteDefault creates the .planner directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
