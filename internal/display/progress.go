package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// ProgressIndicator shows per-export progress of a verification
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	missing int
	label   string
	painter painter
}

// NewProgressIndicator creates a new progress indicator for total items
func NewProgressIndicator(w io.Writer, label string, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		total:   total,
		label:   label,
		painter: newPainter(w),
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "%s:\n", p.label)
}

// Step displays the outcome for one export: [N/Total] ✓ name, or ✗ when
// the export was not found
func (p *ProgressIndicator) Step(name string, found bool) {
	p.current++
	mark, attr := "✓", color.FgGreen
	if !found {
		p.missing++
		mark, attr = "✗", color.FgRed
	}
	fmt.Fprintf(p.writer, "  [%d/%d] %s %s\n", p.current, p.total, p.painter.paint(mark, attr), filepath.Base(name))
}

// Complete displays the final count
func (p *ProgressIndicator) Complete() {
	mark := p.painter.paint("✓", color.FgGreen)
	if p.missing > 0 {
		mark = p.painter.paint("✗", color.FgRed)
	}
	fmt.Fprintf(p.writer, "%s Checked %d of %d, %d missing\n", mark, p.current, p.total, p.missing)
}
