// Package project creates and opens mock simulation projects: a "<name>.cst"
// marker file next to a "<name>/Export/3d" export directory.
package project

import (
	"errors"
	"os"
	"strings"

	"github.com/harrison/cstexports/internal/filelock"
	"github.com/harrison/cstexports/internal/models"
)

var errBadName = errors.New("project name must be a single non-empty path element")

// Scaffold creates a mock project under root:
//
//	<root>/<name>/Export/3d/  created with any missing parents, root included
//	<root>/<name>.cst         empty marker file, truncated if present
//
// Calling it again is safe: existing directories are kept and the marker
// file is truncated. Failures are *models.ExportError of kind
// KindScaffoldIO naming the path that could not be created.
//
// Concurrent scaffolding of the same project is not synchronized; use
// ScaffoldLocked when callers share a root.
func Scaffold(root, name string) error {
	layout, err := newLayout(root, name)
	if err != nil {
		return err
	}

	// The export tree goes first so that a missing root is created too.
	exportDir := layout.ExportDir()
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return scaffoldError(exportDir, err)
	}

	projectFile := layout.ProjectFile()
	file, err := os.Create(projectFile)
	if err != nil {
		return scaffoldError(projectFile, err)
	}
	if err := file.Close(); err != nil {
		return scaffoldError(projectFile, err)
	}

	return nil
}

// ScaffoldLocked runs Scaffold while holding an exclusive lock on
// "<root>/<name>.cst.lock", serializing scaffolders across processes.
func ScaffoldLocked(root, name string) error {
	layout, err := newLayout(root, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return scaffoldError(root, err)
	}

	lock := filelock.ForTarget(layout.ProjectFile())
	if err := lock.Lock(); err != nil {
		return scaffoldError(lock.Path(), err)
	}
	defer lock.Unlock()

	return Scaffold(root, name)
}

func newLayout(root, name string) (models.ScaffoldLayout, error) {
	layout := models.ScaffoldLayout{Root: root, Name: name}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return layout, &models.ExportError{
			Kind: models.KindScaffoldIO,
			Op:   "scaffold",
			Path: name,
			Err:  errBadName,
		}
	}
	return layout, nil
}

func scaffoldError(path string, err error) error {
	return &models.ExportError{
		Kind: models.KindScaffoldIO,
		Op:   "scaffold",
		Path: path,
		Err:  err,
	}
}
