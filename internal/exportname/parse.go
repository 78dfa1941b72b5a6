package exportname

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/harrison/cstexports/internal/models"
)

// fieldDataRegex splits a canonical name into field, frequency, label and
// index. The label is taken lazily so that trailing digits go to the index.
var fieldDataRegex = regexp.MustCompile(`^(.+) \((?i:f)=([^)]*)\) \[([^\]]*?)(\d*)\](?i:\.h5)$`)

// Parse recovers the export parts from a canonical filename. Directory
// components are ignored. It is the inverse of FieldDataName for names whose
// label does not end in a digit.
func Parse(filename string) (models.FieldExport, error) {
	base := filepath.Base(filename)
	m := fieldDataRegex.FindStringSubmatch(base)
	if m == nil {
		return models.FieldExport{}, fmt.Errorf("not a field export name: %q", base)
	}
	return models.FieldExport{
		Field:     m[1],
		Frequency: m[2],
		Label:     m[3],
		Index:     m[4],
	}, nil
}

// GlobPattern returns a glob matching canonical names of exports like e.
// Empty parts become wildcards; the others are quoted so brackets in the
// name are not read as character classes.
//
//	GlobPattern(models.FieldExport{Field: "e-field", Label: "AC"})
//	// `e-field (f=*) \[AC*\].h5`
func GlobPattern(e models.FieldExport) string {
	part := func(s string) string {
		if s == "" {
			return "*"
		}
		return glob.QuoteMeta(s)
	}

	var sb strings.Builder
	sb.WriteString(part(e.Field))
	sb.WriteString(" (f=")
	sb.WriteString(part(e.Frequency))
	sb.WriteString(") ")
	sb.WriteString(glob.QuoteMeta("["))
	switch {
	case e.Label == "" && e.Index == "":
		sb.WriteString("*")
	case e.Index == "":
		sb.WriteString(glob.QuoteMeta(e.Label))
		sb.WriteString("*")
	case e.Label == "":
		sb.WriteString("*")
		sb.WriteString(glob.QuoteMeta(e.Index))
	default:
		sb.WriteString(glob.QuoteMeta(e.Label + e.Index))
	}
	sb.WriteString(glob.QuoteMeta("]"))
	sb.WriteString(models.FieldDataExt)
	return sb.String()
}

// Filter keeps the names whose base name matches GlobPattern(e), compared
// case-insensitively, in their original order.
func Filter(names []string, e models.FieldExport) ([]string, error) {
	pattern := GlobPattern(e)
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, &models.ExportError{Kind: models.KindInvalidPattern, Op: "filter", Pattern: pattern, Err: err}
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if g.Match(strings.ToLower(filepath.Base(name))) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}
