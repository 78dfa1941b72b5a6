package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/cstexports/internal/models"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"exports.md":       FormatMarkdown,
		"EXPORTS.Markdown": FormatMarkdown,
		"exports.yaml":     FormatYAML,
		"exports.YML":      FormatYAML,
		"exports.json":     FormatUnknown,
		"exports":          FormatUnknown,
	}
	for name, want := range tests {
		assert.Equal(t, want, DetectFormat(name), name)
	}
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", Format(99).String())
}

func TestNewParser_Unknown(t *testing.T) {
	_, err := NewParser(FormatUnknown)
	assert.Error(t, err)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeManifest(t, "coil.yaml", `project: coil
exports:
  - field: e-field
    frequency: "447"
    label: AC
    index: 1
sweep:
  - field: h-field
    frequency: 447
    label: AC
    from: 1
    to: 3
`)

	m, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "coil", m.Project)
	assert.True(t, filepath.IsAbs(m.FilePath))
	assert.Equal(t, []string{
		"e-field (f=447) [AC1].h5",
		"h-field (f=447) [AC1].h5",
		"h-field (f=447) [AC2].h5",
		"h-field (f=447) [AC3].h5",
	}, m.FileNames())
}

func TestParseFile_Markdown(t *testing.T) {
	path := writeManifest(t, "coil.md", `# coil

Expected exports for the 447 MHz run.

- e-field, 447, AC, 1
- `+"`h-field`"+`, 447, AC, 2

## Ports

* e-field, 447, port, 10
  - h-field, 447, port, 10
`)

	m, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "coil", m.Project)
	assert.Equal(t, []models.FieldExport{
		{Field: "e-field", Frequency: "447", Label: "AC", Index: "1"},
		{Field: "h-field", Frequency: "447", Label: "AC", Index: "2"},
		{Field: "e-field", Frequency: "447", Label: "port", Index: "10"},
		{Field: "h-field", Frequency: "447", Label: "port", Index: "10"},
	}, m.Exports)
}

func TestParseFile_MarkdownBadItem(t *testing.T) {
	path := writeManifest(t, "coil.md", "# coil\n\n- e-field, 447, AC, 1\n- e-field, 447, AC\n")

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidArgumentCount), "got %v", err)
	assert.Contains(t, err.Error(), "list item 2")
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown format", "coil.txt", "", "unknown file format"},
		{"malformed yaml", "coil.yaml", "exports: [\n", "failed to parse manifest"},
		{"empty", "coil.yaml", "project: coil\n", "no exports"},
		{"reversed sweep", "coil.yaml", "sweep:\n  - {field: e, label: AC, from: 3, to: 1}\n", "sweep 1"},
		{"missing field", "coil.yaml", "exports:\n  - {label: AC, index: 1}\n", "field is required"},
		{"missing label", "coil.yaml", "exports:\n  - {field: e, index: 1}\n", "label is required"},
		{"duplicate", "coil.yaml", "exports:\n  - {field: e, label: AC, index: 1}\n  - {field: E, label: ac, index: 1}\n", "duplicates export 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(writeManifest(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarkdownParser_NoHeading(t *testing.T) {
	m, err := NewMarkdownParser().Parse(strings.NewReader("- e-field, 1, AC, 1\n"))
	require.NoError(t, err)
	assert.Empty(t, m.Project)
	assert.Len(t, m.Exports, 1)
}
