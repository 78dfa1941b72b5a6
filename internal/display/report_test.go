package display

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPaths(t *testing.T) {
	var buf bytes.Buffer
	PrintPaths(&buf, []string{"/a", "/b c"})
	assert.Equal(t, "/a\n/b c\n", buf.String())

	buf.Reset()
	PrintPaths(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestRenderReport(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   []string
	}{
		{
			name: "complete",
			report: Report{
				Project: "coil",
				Found:   []string{"/p/coil/Export/3d/e-field (f=447) [AC1].h5"},
			},
			want: []string{"Project coil\n", "  ✓ e-field (f=447) [AC1].h5\n", "OK: 1/1 expected exports found, 0 unexpected\n"},
		},
		{
			name: "incomplete",
			report: Report{
				Project:    "coil",
				Found:      []string{"a.h5"},
				Missing:    []string{"b.h5"},
				Unexpected: []string{"/p/x.h5"},
			},
			want: []string{"  ✗ b.h5\n", "  ? x.h5\n", "INCOMPLETE: 1/2 expected exports found, 1 unexpected\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderReport(&buf, tt.report)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "\x1b[")
		})
	}
}

func TestProgressIndicator(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, "Checking exports", 2)

	p.Start()
	p.Step("/x/e-field (f=447) [AC1].h5", true)
	p.Step("b.h5", false)
	p.Complete()

	assert.Equal(t,
		"Checking exports:\n  [1/2] ✓ e-field (f=447) [AC1].h5\n  [2/2] ✗ b.h5\n✗ Checked 2 of 2, 1 missing\n",
		buf.String())

	buf.Reset()
	p = NewProgressIndicator(&buf, "Checking exports", 1)
	p.Step("a.h5", true)
	p.Complete()
	assert.Equal(t, "  [1/1] ✓ a.h5\n✓ Checked 1 of 1, 0 missing\n", buf.String())
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(f), "regular files are not terminals")
}

func TestPainter(t *testing.T) {
	assert.Equal(t, "plain", painter{}.paint("plain"))
	assert.Contains(t, painter{enabled: true}.paint("hot"), "\x1b[")
}
