package assist

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// ExtractText renders markdown down to plain text for indexing. Block
// boundaries become newlines so headings and list items stay separated.
func ExtractText(source []byte) string {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && b.Len() > 0 {
				b.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// AddMarkdown extracts text from a markdown body and indexes it.
func (s *Store) AddMarkdown(id, title, url, category string, markdown []byte) error {
	return s.Add(Document{
		ID:       id,
		Title:    title,
		URL:      url,
		Category: category,
		Content:  ExtractText(markdown),
	})
}
