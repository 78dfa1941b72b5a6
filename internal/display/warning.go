package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, yellow on a terminal
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newPainter(out).paint(b.String(), color.FgYellow))
}

// WarnMissingExports creates a warning for expected exports that were not found
func WarnMissingExports(project string, files []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%d expected export(s) missing from %s", len(files), project),
		Files:      files,
		Suggestion: "Re-run the export step or check the manifest entries",
	}
}

// WarnUnexpectedExports creates a warning for exports not named in the manifest
func WarnUnexpectedExports(project string, files []string) Warning {
	return Warning{
		Title: fmt.Sprintf("%d export(s) in %s not listed in the manifest", len(files), project),
		Files: files,
	}
}
