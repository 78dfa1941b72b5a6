// Package manifest reads expected-export manifests: the list of field
// exports a simulation run should have produced, in YAML or Markdown.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/cstexports/internal/models"
)

// Format represents the format of a manifest file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) manifest
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) manifest
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Manifest lists the exports a project is expected to contain.
type Manifest struct {
	Project  string
	Exports  []models.FieldExport
	FilePath string
}

// FileNames returns the canonical filename of every expected export, in
// manifest order.
func (m *Manifest) FileNames() []string {
	names := make([]string, len(m.Exports))
	for i, e := range m.Exports {
		names[i] = e.FileName()
	}
	return names
}

// Parser is the interface that all manifest parsers implement
type Parser interface {
	Parse(r io.Reader) (*Manifest, error)
}

// DetectFormat detects the manifest format from the file extension
//   - .md, .markdown -> FormatMarkdown
//   - .yaml, .yml -> FormatYAML
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a parser for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	case FormatYAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the format of path, parses it and validates the result.
// FilePath is set to the absolute path of the manifest.
func ParseFile(path string) (*Manifest, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	m, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filepath.Base(path), err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	m.FilePath = absPath

	return m, nil
}

// Validate checks that the manifest names at least one export, that every
// export has a field and a label, and that no two exports share a filename
// (compared case-insensitively, as discovery does).
func (m *Manifest) Validate() error {
	if len(m.Exports) == 0 {
		return fmt.Errorf("manifest lists no exports")
	}

	seen := make(map[string]int, len(m.Exports))
	for i, e := range m.Exports {
		if strings.TrimSpace(e.Field) == "" {
			return fmt.Errorf("export %d: field is required", i+1)
		}
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("export %d: label is required", i+1)
		}
		key := strings.ToLower(e.FileName())
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("export %d duplicates export %d: %s", i+1, prev, e.FileName())
		}
		seen[key] = i + 1
	}
	return nil
}
