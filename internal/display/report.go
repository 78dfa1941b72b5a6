package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// PrintPaths writes one path per line.
func PrintPaths(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// Report is the outcome of verifying a project against a manifest.
type Report struct {
	Project    string
	Found      []string
	Missing    []string
	Unexpected []string
}

// RenderReport writes a verification report: one line per export prefixed
// with a status mark, followed by a summary line.
func RenderReport(w io.Writer, r Report) {
	p := newPainter(w)

	fmt.Fprintf(w, "Project %s\n", r.Project)
	for _, f := range r.Found {
		fmt.Fprintf(w, "  %s %s\n", p.paint("✓", color.FgGreen), filepath.Base(f))
	}
	for _, f := range r.Missing {
		fmt.Fprintf(w, "  %s %s\n", p.paint("✗", color.FgRed), f)
	}
	for _, f := range r.Unexpected {
		fmt.Fprintf(w, "  %s %s\n", p.paint("?", color.FgYellow), filepath.Base(f))
	}

	total := len(r.Found) + len(r.Missing)
	status := p.paint("OK", color.FgGreen, color.Bold)
	if len(r.Missing) > 0 {
		status = p.paint("INCOMPLETE", color.FgRed, color.Bold)
	}
	fmt.Fprintf(w, "%s: %d/%d expected exports found, %d unexpected\n",
		status, len(r.Found), total, len(r.Unexpected))
}
