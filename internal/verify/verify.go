// Package verify compares the exports a manifest expects with the exports
// actually present in a project's export directory.
package verify

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/manifest"
	"github.com/harrison/cstexports/internal/models"
	"github.com/harrison/cstexports/internal/project"
)

// Result is the outcome of one verification.
type Result struct {
	Project string
	// Found holds the discovered paths of expected exports, in manifest order.
	Found []string
	// Missing holds expected filenames with no match, ordered by label then index.
	Missing []string
	// Unexpected holds discovered paths the manifest does not name, sorted.
	Unexpected []string
}

// Complete reports whether every expected export was found.
func (r *Result) Complete() bool {
	return len(r.Missing) == 0
}

// Expected returns the number of exports the manifest named.
func (r *Result) Expected() int {
	return len(r.Found) + len(r.Missing)
}

type options struct {
	extension string
	onCheck   func(name string, found bool)
}

// Option configures Run.
type Option func(*options)

// WithExtension sets the extension of files considered exports (default ".h5").
func WithExtension(ext string) Option {
	return func(o *options) {
		if ext != "" {
			o.extension = ext
		}
	}
}

// WithCheckFunc calls fn once per expected export, in manifest order, as
// soon as it is known whether the export is present.
func WithCheckFunc(fn func(name string, found bool)) Option {
	return func(o *options) {
		o.onCheck = fn
	}
}

// Run discovers the exports directly inside p's export directory with
// matcher and checks them against m. Filenames are compared
// case-insensitively. A nil matcher uses a default one.
func Run(p *project.Project, m *manifest.Manifest, matcher *fileutil.Matcher, opts ...Option) (*Result, error) {
	o := options{extension: models.FieldDataExt}
	for _, opt := range opts {
		opt(&o)
	}

	discovered, err := p.Exports(matcher, "*"+o.extension)
	if err != nil {
		return nil, fmt.Errorf("discover exports of %s: %w", p.Name, err)
	}

	present := make(map[string]string, len(discovered))
	for _, path := range discovered {
		if !strings.EqualFold(filepath.Dir(path), p.ExportDir()) {
			continue
		}
		present[strings.ToLower(filepath.Base(path))] = path
	}

	result := &Result{Project: p.Name}
	var missing []models.FieldExport
	for i, name := range m.FileNames() {
		key := strings.ToLower(name)
		path, ok := present[key]
		if o.onCheck != nil {
			o.onCheck(name, ok)
		}
		if !ok {
			missing = append(missing, m.Exports[i])
			continue
		}
		result.Found = append(result.Found, path)
		delete(present, key)
	}

	sortByLabelIndex(missing)
	for _, e := range missing {
		result.Missing = append(result.Missing, e.FileName())
	}

	for _, path := range present {
		result.Unexpected = append(result.Unexpected, path)
	}
	sort.Strings(result.Unexpected)

	return result, nil
}

// sortByLabelIndex orders exports by label, then numeric index, then field.
// Non-numeric indexes sort after numeric ones within a label.
func sortByLabelIndex(exports []models.FieldExport) {
	sort.SliceStable(exports, func(i, j int) bool {
		a, b := exports[i], exports[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		ai, aErr := strconv.Atoi(a.Index)
		bi, bErr := strconv.Atoi(b.Index)
		switch {
		case aErr == nil && bErr == nil && ai != bi:
			return ai < bi
		case (aErr == nil) != (bErr == nil):
			return aErr == nil
		case aErr != nil && a.Index != b.Index:
			return a.Index < b.Index
		}
		return a.Field < b.Field
	})
}
