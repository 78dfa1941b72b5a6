package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetHomeWithEnvVar tests CSTEXPORTS_HOME takes precedence
func TestGetHomeWithEnvVar(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "custom")
	t.Setenv(HomeEnvVar, customHome)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != customHome {
		t.Errorf("GetHome() = %q, want %q", home, customHome)
	}
	if _, err := os.Stat(home); err != nil {
		t.Errorf("home directory not created: %v", err)
	}
}

// TestGetHomeFallsBackToWorkingDir tests the ./.cstexports fallback
func TestGetHomeFallsBackToWorkingDir(t *testing.T) {
	t.Setenv(HomeEnvVar, "")
	dir := t.TempDir()
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}

	want, _ := filepath.EvalSymlinks(filepath.Join(dir, ConfigDirName))
	got, _ := filepath.EvalSymlinks(home)
	if got != want {
		t.Errorf("GetHome() = %q, want %q", got, want)
	}
}

// TestGetCatalogDBPath covers memory, absolute and relative database paths
func TestGetCatalogDBPath(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv(HomeEnvVar, homeDir)

	abs := filepath.Join(t.TempDir(), "runs.db")
	tests := []struct {
		dbPath string
		want   string
	}{
		{":memory:", ":memory:"},
		{abs, abs},
		{"catalog.db", filepath.Join(homeDir, "catalog.db")},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Catalog.DBPath = tt.dbPath
		got, err := cfg.GetCatalogDBPath()
		if err != nil {
			t.Fatalf("GetCatalogDBPath(%q) error = %v", tt.dbPath, err)
		}
		if got != tt.want {
			t.Errorf("GetCatalogDBPath(%q) = %q, want %q", tt.dbPath, got, tt.want)
		}
	}
}
