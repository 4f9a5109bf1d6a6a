package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// DefaultTagline is shown for hubs without a tagline
const DefaultTagline = "Global hub of the WTF Network."

// StripMarkdown removes markdown formatting from text and returns plain text
func StripMarkdown(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				buf.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				buf.Write(n.Literal)
			}
		case *ast.Hardbreak, *ast.Softbreak:
			if entering {
				buf.WriteString(" ")
			}
		case *ast.HTMLBlock, *ast.HTMLSpan:
			return ast.SkipChildren
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if !entering {
				buf.WriteString(" ")
			}
		}
		return ast.GoToNext
	})

	return strings.TrimSpace(buf.String())
}

// PlainTagline converts a hub tagline to a single plain-text line.
// Empty taglines fall back to the network default.
func PlainTagline(tagline string) string {
	plain := StripMarkdown(tagline)
	if plain == "" {
		return DefaultTagline
	}
	return strings.Join(strings.Fields(plain), " ")
}
