package project

import (
	"os"

	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/models"
)

// DefaultExportPattern selects every field-data export.
const DefaultExportPattern = "*" + models.FieldDataExt

// Project is an existing project on disk.
type Project struct {
	models.ScaffoldLayout
}

// Open checks that root holds the marker file and export directory of
// project name. A missing piece is a KindNotFound error naming it.
func Open(root, name string) (*Project, error) {
	layout, err := newLayout(root, name)
	if err != nil {
		return nil, err
	}

	for _, required := range []struct {
		path  string
		isDir bool
	}{
		{layout.ProjectFile(), false},
		{layout.ExportDir(), true},
	} {
		info, err := os.Stat(required.path)
		if err != nil {
			kind := models.KindAccessDenied
			if os.IsNotExist(err) {
				kind = models.KindNotFound
			}
			return nil, &models.ExportError{Kind: kind, Op: "open", Path: required.path, Err: err}
		}
		if info.IsDir() != required.isDir {
			return nil, &models.ExportError{Kind: models.KindNotFound, Op: "open", Path: required.path}
		}
	}

	return &Project{ScaffoldLayout: layout}, nil
}

// Exports expands pattern below the export directory with m. An empty
// pattern means DefaultExportPattern. The pattern is glob syntax, so literal
// export names must be quoted first (see exportname.GlobPattern).
func (p *Project) Exports(m *fileutil.Matcher, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultExportPattern
	}
	if m == nil {
		m = fileutil.NewMatcher()
	}
	return m.Match(fileutil.JoinPattern(p.ExportDir(), pattern))
}
