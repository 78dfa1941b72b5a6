package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/harrison/cstexports/internal/models"
)

// ScanOptions configures the export tree scanning behavior
type ScanOptions struct {
	// Pattern is a case-insensitive glob matched against the base filename
	Pattern string
	// Extensions is a list of file extensions to include (e.g., ".h5", ".cst")
	Extensions []string
	// Recursive enables recursive directory scanning
	Recursive bool
	// ExcludeDirs is a list of directory names to skip (compared case-insensitively)
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = current dir only)
	MaxDepth int
	// IncludeHidden descends into directories whose name starts with "."
	IncludeHidden bool
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched files, sorted
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory scans dir for files matching opts.
// Only a missing or unreadable root and a malformed pattern are fatal;
// everything else is collected in ScanResult.Errors.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, classifyPathError("scan", dir, err)
	}
	if !info.IsDir() {
		return nil, &models.ExportError{
			Kind: models.KindNotFound,
			Op:   "scan",
			Path: dir,
			Err:  fmt.Errorf("path is not a directory"),
		}
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	var nameGlob glob.Glob
	if opts.Pattern != "" {
		nameGlob, err = glob.Compile(strings.ToLower(opts.Pattern))
		if err != nil {
			return nil, &models.ExportError{
				Kind:    models.KindInvalidPattern,
				Op:      "scan",
				Pattern: opts.Pattern,
				Err:     err,
			}
		}
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[strings.ToLower(name)] = true
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, &models.ExportError{
				Kind: models.KindEntryResolution,
				Op:   "scan",
				Path: path,
				Err:  err,
			})
			return nil // Continue walking
		}

		if path == dir {
			return nil
		}

		if d.IsDir() {
			name := d.Name()
			if excludeMap[strings.ToLower(name)] {
				return filepath.SkipDir
			}
			if strings.HasPrefix(name, ".") && !opts.IncludeHidden {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 {
				relPath, _ := filepath.Rel(dir, path)
				depth := strings.Count(relPath, string(filepath.Separator)) + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			return nil
		}

		filename := d.Name()

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(filename))] {
			return nil
		}

		if nameGlob != nil && !nameGlob.Match(strings.ToLower(filename)) {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, &models.ExportError{
				Kind: models.KindEntryResolution,
				Op:   "scan",
				Path: path,
				Err:  err,
			})
			return nil
		}

		result.Files = append(result.Files, absPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)

	return result, nil
}
