// Package binding exposes the export discovery operations to an embedding
// host as flat, stateless functions. Every failure is returned through the
// error result so the host can surface it as its own exception type.
package binding

import (
	"strconv"

	"github.com/harrison/cstexports/internal/exportname"
	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/project"
)

// CstExportsList returns the sorted immediate children of path.
func CstExportsList(path string) ([]string, error) {
	return fileutil.ListDirectory(path)
}

// CstExportsGlob returns every path matching pattern, case-insensitively.
// Entries that cannot be resolved are skipped silently.
func CstExportsGlob(pattern string) ([]string, error) {
	return fileutil.Glob(pattern)
}

// FieldDataExportName formats an export filename from exactly four parts.
func FieldDataExportName(args []string) (string, error) {
	return exportname.FieldDataName(args...)
}

// CstProjectMock creates an empty mock project named name under root.
func CstProjectMock(root, name string) error {
	return project.Scaffold(root, name)
}

// SumAsString returns the decimal sum of a and b. Hosts call it to check
// the binding is loaded.
func SumAsString(a, b uint64) string {
	return strconv.FormatUint(a+b, 10)
}
