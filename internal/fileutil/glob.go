package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/harrison/cstexports/internal/models"
)

// globMeta holds the characters that make a path segment a wildcard segment.
const globMeta = `*?[{\`

var errEmptyPattern = errors.New("empty pattern")

// DiagnosticSink receives glob candidates that were skipped because they
// could not be resolved. Implementations decide whether to log, collect or
// ignore them; the match itself always continues.
type DiagnosticSink interface {
	EntrySkipped(err error)
}

type discardSink struct{}

func (discardSink) EntrySkipped(error) {}

// Collector is a DiagnosticSink that keeps every skipped-entry error.
type Collector struct {
	Errors []error
}

// EntrySkipped records err.
func (c *Collector) EntrySkipped(err error) {
	c.Errors = append(c.Errors, err)
}

// Matcher expands glob patterns against the filesystem.
//
// Matching is case-insensitive, wildcards may cross path separators, and a
// leading "." is not special, so "*" also finds hidden entries. Results
// follow walk order and are not sorted.
type Matcher struct {
	maxDepth int
	sink     DiagnosticSink
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMaxDepth bounds how far below the pattern's literal root the walk
// descends (0 = unlimited, 1 = immediate children only).
func WithMaxDepth(depth int) MatcherOption {
	return func(m *Matcher) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithDiagnostics routes skipped-entry errors to sink. A nil sink discards them.
func WithDiagnostics(sink DiagnosticSink) MatcherOption {
	return func(m *Matcher) {
		if sink != nil {
			m.sink = sink
		}
	}
}

// NewMatcher creates a Matcher. Without options it walks to unlimited depth
// and discards diagnostics.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{sink: discardSink{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Glob expands pattern with a default Matcher.
func Glob(pattern string) ([]string, error) {
	return NewMatcher().Match(pattern)
}

// JoinPattern appends pattern to dir, quoting any glob metacharacters in
// dir so that only pattern is interpreted.
func JoinPattern(dir, pattern string) string {
	return strings.TrimSuffix(glob.QuoteMeta(filepath.ToSlash(dir)), "/") + "/" + pattern
}

// Match returns every existing path that satisfies pattern.
//
// A malformed pattern returns an *models.ExportError of kind
// KindInvalidPattern. A pattern whose literal leading directories do not
// exist matches nothing and is not an error. Candidates that fail to
// resolve are reported to the sink as KindEntryResolution and skipped.
//
// The walk starts at the pattern's literal leading directories. Because
// wildcards cross separators, "/data/*" visits the whole tree below /data;
// use WithMaxDepth(1) when only the immediate children matter. Symlinked
// directories are followed, and each real directory is visited once.
func (m *Matcher) Match(pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, &models.ExportError{
			Kind:    models.KindInvalidPattern,
			Op:      "glob",
			Pattern: pattern,
			Err:     errEmptyPattern,
		}
	}

	cleaned := path.Clean(filepath.ToSlash(pattern))
	root, rest := splitLiteralPrefix(cleaned)

	var compiled glob.Glob
	if len(rest) > 0 {
		g, err := glob.Compile(strings.ToLower(strings.Join(rest, "/")))
		if err != nil {
			return nil, &models.ExportError{
				Kind:    models.KindInvalidPattern,
				Op:      "glob",
				Pattern: pattern,
				Err:     err,
			}
		}
		compiled = g
	}

	matches := make([]string, 0)

	resolvedRoot, ok := resolveLiteral(root)
	if !ok {
		return matches, nil
	}

	// Fully literal pattern: the resolved path is the only candidate.
	if compiled == nil {
		return append(matches, filepath.FromSlash(resolvedRoot)), nil
	}

	walkRoot := filepath.FromSlash(resolvedRoot)
	if walkRoot == "" {
		walkRoot = "."
	}

	info, err := os.Stat(walkRoot)
	if err != nil {
		m.skip(walkRoot, err)
		return matches, nil
	}
	if !info.IsDir() {
		return matches, nil
	}

	realRoot, err := filepath.EvalSymlinks(walkRoot)
	if err != nil {
		m.skip(walkRoot, err)
		return matches, nil
	}

	w := &walker{
		matcher:  m,
		compiled: compiled,
		visited:  map[string]bool{realRoot: true},
		matches:  matches,
	}
	w.walk(walkRoot, realRoot, "", 1)

	return w.matches, nil
}

// walker holds the state of one Match traversal.
type walker struct {
	matcher  *Matcher
	compiled glob.Glob
	visited  map[string]bool
	matches  []string
}

// walk visits the entries of dir in lexical order. realDir is dir with every
// symlink resolved, rel is dir relative to the walk root in slash form and
// depth is the depth of dir's entries below the root.
func (w *walker) walk(dir, realDir, rel string, depth int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.matcher.skip(dir, err)
		return
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		entryRel := joinSlash(rel, entry.Name())

		var info fs.FileInfo
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(p)
		} else {
			info, err = entry.Info()
		}
		if err != nil {
			w.matcher.skip(p, err)
			continue
		}

		if w.compiled.Match(strings.ToLower(entryRel)) {
			w.matches = append(w.matches, p)
		}

		if !info.IsDir() {
			continue
		}
		if w.matcher.maxDepth > 0 && depth >= w.matcher.maxDepth {
			continue
		}

		entryReal := filepath.Join(realDir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			entryReal, err = filepath.EvalSymlinks(p)
			if err != nil {
				w.matcher.skip(p, err)
				continue
			}
		}
		if w.visited[entryReal] {
			continue
		}
		w.visited[entryReal] = true

		w.walk(p, entryReal, entryRel, depth+1)
	}
}

func (m *Matcher) skip(p string, err error) {
	m.sink.EntrySkipped(&models.ExportError{
		Kind: models.KindEntryResolution,
		Op:   "glob",
		Path: p,
		Err:  err,
	})
}

// splitLiteralPrefix splits a cleaned slash pattern into the literal
// directories that lead it and the segments from the first wildcard on.
// An absolute pattern keeps its leading "/" in root. Segments whose
// metacharacters are all escaped are literal and come back unescaped.
func splitLiteralPrefix(pattern string) (root []string, rest []string) {
	segments := strings.Split(pattern, "/")
	root = make([]string, 0, len(segments))
	for i, seg := range segments {
		literal, ok := unescapeSegment(seg)
		if !ok {
			return root, segments[i:]
		}
		root = append(root, literal)
	}
	return root, nil
}

// unescapeSegment removes the backslash escapes from seg. ok is false when
// seg holds an unescaped metacharacter or ends in a lone backslash.
func unescapeSegment(seg string) (string, bool) {
	if !strings.ContainsAny(seg, globMeta) {
		return seg, true
	}
	var b strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '\\':
			if i+1 == len(seg) {
				return "", false
			}
			i++
			b.WriteByte(seg[i])
		case strings.IndexByte(globMeta, c) >= 0:
			return "", false
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// resolveLiteral walks the literal segments from the start, matching each
// against the disk case-insensitively. It returns the slash path with the
// on-disk spelling, or ok=false when some segment does not exist.
func resolveLiteral(segments []string) (resolved string, ok bool) {
	for i, seg := range segments {
		if i == 0 && seg == "" {
			// Absolute pattern
			resolved = "/"
			continue
		}
		next, found := resolveSegment(resolved, seg)
		if !found {
			return "", false
		}
		resolved = next
	}
	return resolved, true
}

func resolveSegment(parent, name string) (string, bool) {
	candidate := joinSlash(parent, name)
	if _, err := os.Lstat(filepath.FromSlash(candidate)); err == nil {
		return candidate, true
	}
	if name == "." || name == ".." {
		return "", false
	}

	dir := parent
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(filepath.FromSlash(dir))
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), name) {
			return joinSlash(parent, entry.Name()), true
		}
	}
	return "", false
}

func joinSlash(parent, name string) string {
	switch {
	case parent == "":
		return name
	case strings.HasSuffix(parent, "/"):
		return parent + name
	default:
		return parent + "/" + name
	}
}
