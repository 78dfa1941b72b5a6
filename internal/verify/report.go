package verify

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/cstexports/internal/filelock"
)

// Markdown renders the result as a Markdown report.
func (r *Result) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Export verification: %s\n\n", r.Project)
	fmt.Fprintf(&sb, "- Expected: %d\n", r.Expected())
	fmt.Fprintf(&sb, "- Found: %d\n", len(r.Found))
	fmt.Fprintf(&sb, "- Missing: %d\n", len(r.Missing))
	fmt.Fprintf(&sb, "- Unexpected: %d\n", len(r.Unexpected))

	section := func(title string, names []string, base bool) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", title)
		for _, n := range names {
			if base {
				n = filepath.Base(n)
			}
			fmt.Fprintf(&sb, "- `%s`\n", n)
		}
	}
	section("Found", r.Found, true)
	section("Missing", r.Missing, false)
	section("Unexpected", r.Unexpected, true)

	return sb.String()
}

// WriteReport writes the Markdown report to path under a file lock.
func (r *Result) WriteReport(path string) error {
	if err := filelock.LockAndWrite(path, []byte(r.Markdown())); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
