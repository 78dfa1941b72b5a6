package fileutil

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

// makeExportTree builds:
//
//	root/
//	  README.md
//	  .hidden.h5
//	  e-field (f=447) [AC1].h5
//	  E-Field (f=447) [AC2].H5
//	  Export/
//	    3d/
//	      h-field (f=447) [AC1].h5
func makeExportTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"README.md",
		".hidden.h5",
		"e-field (f=447) [AC1].h5",
		"E-Field (f=447) [AC2].H5",
		"Export/3d/h-field (f=447) [AC1].h5",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	return root
}

func TestMatcher_Match(t *testing.T) {
	root := makeExportTree(t)

	tests := []struct {
		name    string
		pattern string
		opts    []MatcherOption
		want    []string
	}{
		{
			name:    "wildcard crosses separators and finds hidden entries",
			pattern: "*.h5",
			want: []string{
				".hidden.h5",
				"e-field (f=447) [AC1].h5",
				"E-Field (f=447) [AC2].H5",
				"Export/3d/h-field (f=447) [AC1].h5",
			},
		},
		{
			name:    "max depth keeps to immediate children",
			pattern: "*.h5",
			opts:    []MatcherOption{WithMaxDepth(1)},
			want: []string{
				".hidden.h5",
				"e-field (f=447) [AC1].h5",
				"E-Field (f=447) [AC2].H5",
			},
		},
		{
			name:    "upper-case pattern matches lower-case names",
			pattern: "E-FIELD*",
			want: []string{
				"e-field (f=447) [AC1].h5",
				"E-Field (f=447) [AC2].H5",
			},
		},
		{
			name:    "literal directories resolve case-insensitively",
			pattern: "export/3D/*",
			want: []string{
				"Export/3d/h-field (f=447) [AC1].h5",
			},
		},
		{
			name:    "question mark and character class",
			pattern: "?-field (f=447) ?AC[12]?.h5",
			want: []string{
				"e-field (f=447) [AC1].h5",
				"E-Field (f=447) [AC2].H5",
			},
		},
		{
			name:    "fully literal pattern",
			pattern: "README.md",
			want:    []string{"README.md"},
		},
		{
			name:    "fully literal pattern with different case",
			pattern: "readme.MD",
			want:    []string{"README.md"},
		},
		{
			name:    "missing literal root matches nothing",
			pattern: "Results/*.m3d",
			want:    []string{},
		},
		{
			name:    "no match",
			pattern: "*.m3d",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMatcher(tt.opts...).Match(filepath.Join(root, tt.pattern))
			require.NoError(t, err)
			require.NotNil(t, got)

			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.Join(root, filepath.FromSlash(w))
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestMatcher_ResultsSatisfyPattern(t *testing.T) {
	root := makeExportTree(t)

	for _, pattern := range []string{"*.h5", "*.H5", "*[ac1]*"} {
		got, err := Glob(filepath.Join(root, pattern))
		require.NoError(t, err)
		require.NotEmpty(t, got)

		for _, p := range got {
			lower := strings.ToLower(filepath.Base(p))
			switch pattern {
			case "*.h5", "*.H5":
				assert.True(t, strings.HasSuffix(lower, ".h5"), "%s does not satisfy %s", p, pattern)
			default:
				assert.True(t, strings.ContainsAny(lower, "ac1"), "%s does not satisfy %s", p, pattern)
			}
		}
	}
}

func TestMatcher_RelativePattern(t *testing.T) {
	root := makeExportTree(t)
	{
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(root); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	got, err := Glob("export/3d/*.h5")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("Export", "3d", "h-field (f=447) [AC1].h5")}, got)
}

func TestMatcher_InvalidPattern(t *testing.T) {
	root := makeExportTree(t)

	for _, pattern := range []string{filepath.Join(root, "[abc"), "", "   "} {
		got, err := Glob(pattern)
		assert.Nil(t, got)
		require.Error(t, err, "pattern %q", pattern)
		assert.True(t, errors.Is(err, models.ErrInvalidPattern), "pattern %q: got %v", pattern, err)

		var exportErr *models.ExportError
		require.True(t, errors.As(err, &exportErr))
		assert.Equal(t, pattern, exportErr.Pattern)
	}
}

func TestMatcher_SkipsUnreadableEntries(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := makeExportTree(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "b-field (f=447) [AC1].h5"), nil, 0644))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	var skipped Collector
	got, err := NewMatcher(WithDiagnostics(&skipped)).Match(filepath.Join(root, "*.h5"))
	require.NoError(t, err, "a bad entry must not fail the whole match")
	assert.Len(t, got, 4)

	require.Len(t, skipped.Errors, 1)
	assert.True(t, errors.Is(skipped.Errors[0], models.ErrEntryResolution))
	assert.Contains(t, skipped.Errors[0].Error(), "locked")
}

func TestMatcher_NilSinkDiscards(t *testing.T) {
	root := makeExportTree(t)

	got, err := NewMatcher(WithDiagnostics(nil), WithMaxDepth(0)).Match(filepath.Join(root, "*.md"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "README.md")}, got)
}

func TestSplitLiteralPrefix(t *testing.T) {
	tests := []struct {
		pattern  string
		wantRoot []string
		wantRest []string
	}{
		{"a/b/*.h5", []string{"a", "b"}, []string{"*.h5"}},
		{"/data/run/*/3d", []string{"", "data", "run"}, []string{"*", "3d"}},
		{"*.h5", []string{}, []string{"*.h5"}},
		{"a/b/c", []string{"a", "b", "c"}, nil},
		{`a/\[x\]/*.h5`, []string{"a", "[x]"}, []string{"*.h5"}},
		{`a/\[x]/b\*/c`, []string{"a", "[x]", "b*", "c"}, nil},
		{`a/x\`, []string{"a"}, []string{`x\`}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			root, rest := splitLiteralPrefix(tt.pattern)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestMatcher_SymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "a.h5"), nil, 0644))
	symlinkOrSkip(t, realDir, filepath.Join(dir, "link"))

	got, err := Glob(filepath.Join(dir, "link", "*.h5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link", "a.h5")}, got)

	got, err = NewMatcher(WithMaxDepth(1)).Match(filepath.Join(dir, "LINK", "*.H5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link", "a.h5")}, got)
}

func TestMatcher_FollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "b.h5"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.h5"), nil, 0644))
	symlinkOrSkip(t, outside, filepath.Join(root, "linked"))

	got, err := Glob(filepath.Join(root, "*.h5"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.h5"),
		filepath.Join(root, "linked", "b.h5"),
	}, got)

	got, err = NewMatcher(WithMaxDepth(1)).Match(filepath.Join(root, "*.h5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.h5")}, got)
}

func TestMatcher_SymlinkCycle(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.h5"), nil, 0644))
	symlinkOrSkip(t, root, filepath.Join(sub, "loop"))

	got, err := Glob(filepath.Join(root, "*.h5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(sub, "a.h5")}, got)
}

func TestMatcher_DanglingSymlinkIsSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.h5"), nil, 0644))
	symlinkOrSkip(t, filepath.Join(root, "gone"), filepath.Join(root, "b.h5"))

	var skipped Collector
	got, err := NewMatcher(WithDiagnostics(&skipped)).Match(filepath.Join(root, "*.h5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.h5")}, got)
	require.Len(t, skipped.Errors, 1)
	assert.True(t, errors.Is(skipped.Errors[0], models.ErrEntryResolution))
}

func TestJoinPattern_BracketedParent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "run[1]")
	exportDir := filepath.Join(base, "coil", "Export", "3d")
	require.NoError(t, os.MkdirAll(filepath.Join(exportDir, "nested"), 0755))
	for _, f := range []string{"e-field (f=447) [AC1].h5", "nested/deep.h5"} {
		require.NoError(t, os.WriteFile(filepath.Join(exportDir, filepath.FromSlash(f)), nil, 0644))
	}

	got, err := NewMatcher(WithMaxDepth(1)).Match(JoinPattern(exportDir, "*.h5"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(exportDir, "e-field (f=447) [AC1].h5")}, got)
}
