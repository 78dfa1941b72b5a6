package display

import (
	"path/filepath"

	"github.com/harrison/cstexports/internal/exportname"
	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/models"
)

// IsExportFile reports whether filename is a canonical field-data export
// name such as "e-field (f=447) [AC1].h5".
func IsExportFile(filename string) bool {
	_, err := exportname.Parse(filename)
	return err == nil
}

// FindExportFiles scans dir (non-recursive) and returns the base names of
// canonical export files, sorted.
func FindExportFiles(dir string) ([]string, error) {
	opts := fileutil.ScanOptions{
		Extensions: []string{models.FieldDataExt},
		Recursive:  false,
	}

	result, err := fileutil.ScanDirectory(dir, opts)
	if err != nil {
		return nil, err
	}

	exports := make([]string, 0, len(result.Files))
	for _, absPath := range result.Files {
		basename := filepath.Base(absPath)
		if IsExportFile(basename) {
			exports = append(exports, basename)
		}
	}
	return exports, nil
}
