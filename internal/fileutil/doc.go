// Package fileutil provides the filesystem discovery primitives used to find
// exported simulation artifacts.
//
// # Main Components
//
// ListDirectory - non-recursive snapshot of a directory:
//   - Returns every immediate child (files and directories) joined onto dir
//   - Output is sorted ascending by full path string
//   - Fails with KindNotFound or KindAccessDenied, never with partial results
//
// Matcher - glob expansion over the filesystem:
//   - Case-insensitive on both pattern and filename
//   - Wildcards cross path separators ("Export/*" also finds "Export/3d/a.h5")
//   - "*" matches names beginning with "."
//   - Results follow walk order; callers must not assume sorting
//   - Malformed patterns fail with KindInvalidPattern
//   - Unresolvable candidates are skipped and handed to a DiagnosticSink
//
// ScanDirectory - filtered scan of an export tree:
//   - Extension and base-name glob filters
//   - Optional recursion with depth limit and directory exclusion
//   - Non-fatal errors collected in ScanResult.Errors
//   - Sorted absolute paths
//
// # Ordering Contracts
//
// ListDirectory and ScanDirectory sort. Matcher does not. The two contracts
// are kept apart on purpose and tests rely on each of them.
//
// # Usage Examples
//
// Listing a project's export directory:
//
//	entries, err := fileutil.ListDirectory("/data/run1/coil/Export/3d")
//	if errors.Is(err, models.ErrNotFound) {
//	    // not scaffolded yet
//	}
//
// Discovering every e-field export regardless of case, logging skipped entries:
//
//	m := fileutil.NewMatcher(fileutil.WithDiagnostics(consoleLogger))
//	paths, err := m.Match("/data/run1/coil/Export/3d/E-FIELD*.h5")
//
// Collecting skipped entries instead of logging them:
//
//	var skipped fileutil.Collector
//	paths, err := fileutil.NewMatcher(fileutil.WithDiagnostics(&skipped)).Match(pattern)
package fileutil
