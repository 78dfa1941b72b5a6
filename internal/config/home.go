package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the cstexports home directory.
const HomeEnvVar = "CSTEXPORTS_HOME"

// GetHome returns the cstexports home directory
// Priority order:
//  1. CSTEXPORTS_HOME environment variable (if set)
//  2. .cstexports under the current working directory
//
// The directory is created if it doesn't exist
func GetHome() (string, error) {
	home := os.Getenv(HomeEnvVar)
	if home == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		home = filepath.Join(cwd, ConfigDirName)
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create home directory: %w", err)
	}
	return home, nil
}

// GetCatalogDBPath resolves the catalog database path. ":memory:" and
// absolute paths are returned unchanged; relative paths are placed under the
// home directory.
func (c *Config) GetCatalogDBPath() (string, error) {
	dbPath := c.Catalog.DBPath
	if dbPath == ":memory:" || filepath.IsAbs(dbPath) {
		return dbPath, nil
	}

	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dbPath), nil
}
