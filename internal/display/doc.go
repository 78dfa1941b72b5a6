// Package display renders user-facing output for the cstexports CLI.
//
// It centralizes terminal formatting: warnings, path listings, verification
// reports and progress lines. Everything writes to an io.Writer; ANSI colors
// are only emitted when the writer is a terminal and NO_COLOR is unset.
//
// # Warning Messages
//
//	warning := display.WarnMissingExports("coil", missing)
//	warning.Display(os.Stderr)
//
// # Listings
//
//	display.PrintPaths(os.Stdout, paths)
//
// # Verification Reports
//
//	display.RenderReport(os.Stdout, display.Report{
//	    Project: "coil",
//	    Found:   found,
//	    Missing: missing,
//	})
//
// # Export Files
//
// Check whether a base name is a canonical field-data export:
//
//	if display.IsExportFile(filename) {
//	    // "e-field (f=447) [AC1].h5"
//	}
package display
