package manifest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/cstexports/internal/exportname"
)

// MarkdownParser parses Markdown manifests. The first level-1 heading names
// the project and every list item is one export written as
// "field, frequency, label, index":
//
//	# coil
//
//	- e-field, 447, AC, 1
//	- e-field, 447, AC, 2
type MarkdownParser struct {
	markdown goldmark.Markdown
}

// NewMarkdownParser creates a Markdown manifest parser
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

// Parse reads a Markdown manifest from r
func (p *MarkdownParser) Parse(r io.Reader) (*Manifest, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))

	m := &Manifest{}
	item := 0
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && m.Project == "" {
				m.Project = strings.TrimSpace(extractText(node, content))
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			item++
			line := itemText(node, content)
			export, err := exportname.FromArgs(splitParts(line))
			if err != nil {
				return ast.WalkStop, fmt.Errorf("list item %d %q: %w", item, line, err)
			}
			m.Exports = append(m.Exports, export)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// itemText returns the text of a list item's own paragraph, excluding any
// nested lists.
func itemText(item *ast.ListItem, source []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if _, nested := c.(*ast.List); nested {
			continue
		}
		parts = append(parts, extractText(c, source))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// extractText collects the plain text below n, including text inside code
// spans and emphasis.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func splitParts(line string) []string {
	raw := strings.Split(line, ",")
	parts := make([]string, len(raw))
	for i, p := range raw {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
