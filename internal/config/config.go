package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the per-directory configuration folder.
const ConfigDirName = ".cstexports"

// GlobConfig tunes export discovery.
type GlobConfig struct {
	// MaxDepth bounds the walk below a pattern's literal root (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`
}

// CatalogConfig represents the verification history store.
type CatalogConfig struct {
	// Enabled turns on recording of verify runs
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database path; relative paths resolve against the home directory
	DBPath string `yaml:"db_path"`
}

// VerifyConfig controls how exports are discovered during verification.
type VerifyConfig struct {
	// Extension is the export file extension, including the dot
	Extension string `yaml:"extension"`
}

// Config represents cstexports configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	Glob    GlobConfig    `yaml:"glob"`
	Catalog CatalogConfig `yaml:"catalog"`
	Verify  VerifyConfig  `yaml:"verify"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Glob: GlobConfig{
			MaxDepth: 0,
		},
		Catalog: CatalogConfig{
			Enabled: false,
			DBPath:  "catalog.db",
		},
		Verify: VerifyConfig{
			Extension: ".h5",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Booleans and zero values need presence checks, so decode a raw map too
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if section, ok := rawMap["glob"].(map[string]interface{}); ok {
		if _, exists := section["max_depth"]; exists {
			cfg.Glob.MaxDepth = fileCfg.Glob.MaxDepth
		}
	}
	if section, ok := rawMap["catalog"].(map[string]interface{}); ok {
		if _, exists := section["enabled"]; exists {
			cfg.Catalog.Enabled = fileCfg.Catalog.Enabled
		}
		if _, exists := section["db_path"]; exists {
			cfg.Catalog.DBPath = fileCfg.Catalog.DBPath
		}
	}
	if fileCfg.Verify.Extension != "" {
		cfg.Verify.Extension = fileCfg.Verify.Extension
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .cstexports/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ConfigDirName, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, maxDepth *int, record *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if maxDepth != nil {
		c.Glob.MaxDepth = *maxDepth
	}
	if record != nil {
		c.Catalog.Enabled = *record
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Glob.MaxDepth < 0 {
		return fmt.Errorf("glob.max_depth must be >= 0, got %d", c.Glob.MaxDepth)
	}

	if c.Catalog.Enabled && c.Catalog.DBPath == "" {
		return fmt.Errorf("catalog.db_path cannot be empty when catalog is enabled")
	}

	if !strings.HasPrefix(c.Verify.Extension, ".") || len(c.Verify.Extension) < 2 {
		return fmt.Errorf("verify.extension must start with a dot, got %q", c.Verify.Extension)
	}

	return nil
}
