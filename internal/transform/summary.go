// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// firstParagraph returns the source text of the first top-level paragraph
// in body, with its lines joined by single spaces. Paragraphs made up only
// of images (plot outputs) are skipped. It returns "" when none is found.
func firstParagraph(body []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		p, ok := n.(*ast.Paragraph)
		if !ok || imageOnly(p) {
			continue
		}

		lines := p.Lines()
		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if s := strings.TrimSpace(string(seg.Value(body))); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func imageOnly(p *ast.Paragraph) bool {
	if p.ChildCount() == 0 {
		return false
	}
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.Image); !ok {
			return false
		}
	}
	return true
}
