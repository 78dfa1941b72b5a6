package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/harrison/cstexports/internal/models"
)

// ListDirectory returns the immediate children of dir (files and
// directories), each joined onto dir, sorted ascending by path string.
// It never returns partial results: any failure yields a nil slice and an
// *models.ExportError of kind KindNotFound or KindAccessDenied.
func ListDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classifyPathError("list", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	// Sorted by full path string, not by entry name
	sort.Strings(paths)

	return paths, nil
}

// classifyPathError maps an os error onto the export error taxonomy.
func classifyPathError(op, path string, err error) error {
	kind := models.KindAccessDenied
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = models.KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = models.KindAccessDenied
	default:
		// ReadDir on a regular file fails with ENOTDIR; treat it as a
		// missing directory.
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			kind = models.KindNotFound
			err = errors.New("not a directory")
		}
	}
	return &models.ExportError{Kind: kind, Op: op, Path: path, Err: err}
}
