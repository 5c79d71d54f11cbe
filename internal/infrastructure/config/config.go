// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for planner configuration.
	DefaultConfigDir = ".planner"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryFile is the default build-history database name.
	DefaultHistoryFile = "history.db"
)

// Config holds static build configuration (read-only after init).
type Config struct {
	Source   SourceConfig   `yaml:"source,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	History  HistoryConfig  `yaml:"history,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// SourceConfig controls catalog retrieval.
type SourceConfig struct {
	// Timeout is the HTTP timeout in seconds.
	Timeout   int    `yaml:"timeout,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// OutputConfig names the generated module files and their exports.
type OutputConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	MainFile   string `yaml:"main_file,omitempty"`
	QIFile     string `yaml:"qi_file,omitempty"`
	MainExport string `yaml:"main_export,omitempty"`
	QIExport   string `yaml:"qi_export,omitempty"`
}

// HistoryConfig holds configuration for the SQLite build-history store.
type HistoryConfig struct {
	// Path is the database file. Empty disables history.
	Path string `yaml:"path"`
}

// ServerConfig holds configuration for the static file host.
type ServerConfig struct {
	Port int    `yaml:"port,omitempty"`
	Root string `yaml:"root,omitempty"`
}

// TaxonomyConfig points at an optional YAML taxonomy override.
type TaxonomyConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Timeout:   60,
			UserAgent: "Mozilla/5.0",
		},
		Output: OutputConfig{
			Dir:        "data",
			MainFile:   "foe_buildings_database.js",
			QIFile:     "qi_buildings_database.js",
			MainExport: "BUILDINGS",
			QIExport:   "QI_BUILDINGS",
		},
		History: HistoryConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultHistoryFile),
		},
		Server: ServerConfig{
			Port: 8080,
			Root: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .planner directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(basePath)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("PLANNER_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
	if level := os.Getenv("PLANNER_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if path, ok := os.LookupEnv("PLANNER_HISTORY_PATH"); ok {
		c.History.Path = path
	}
}

// Validate checks values that would otherwise fail late in a build.
func (c *Config) Validate() error {
	if c.Output.MainFile == "" || c.Output.QIFile == "" {
		return fmt.Errorf("output file names must not be empty")
	}
	if c.Output.MainFile == c.Output.QIFile {
		return fmt.Errorf("output.main_file and output.qi_file must differ (both %q)", c.Output.MainFile)
	}
	if c.Output.MainExport == "" || c.Output.QIExport == "" {
		return fmt.Errorf("output export names must not be empty")
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive, got %d", c.Source.Timeout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// resolvePaths anchors relative paths at basePath.
func (c *Config) resolvePaths(basePath string) {
	c.Output.Dir = resolve(basePath, c.Output.Dir)
	if c.History.Path != "" && c.History.Path != ":memory:" {
		c.History.Path = resolve(basePath, c.History.Path)
	}
	if c.Taxonomy.Path != "" {
		c.Taxonomy.Path = resolve(basePath, c.Taxonomy.Path)
	}
	c.Server.Root = resolve(basePath, c.Server.Root)
}

func resolve(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// MainOutputPath returns the main-city module path.
func (c *Config) MainOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.MainFile)
}

// QIOutputPath returns the QI module path.
func (c *Config) QIOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.QIFile)
}

// ConfigDir returns the path to the .planner config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a planner config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
