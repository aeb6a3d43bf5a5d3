package search

import (
	"html"
	"strings"
)

// PartKind classifies a colored part for rendering
type PartKind string

const (
	PartQualifier PartKind = "qualifier"
	PartValue     PartKind = "value"
	PartNormal    PartKind = "normal"
	PartSpace     PartKind = "space"
)

// ColoredPart is a rendering-only projection of a token
type ColoredPart struct {
	Text string   `json:"text" yaml:"text"`
	Kind PartKind `json:"kind" yaml:"kind"`
}

// Project maps tokens to colored parts. A qualifier becomes a qualifier part
// for "name:" followed by a value part.
func Project(tokens []Token) []ColoredPart {
	parts := make([]ColoredPart, 0, len(tokens)+len(tokens)/2)
	for _, tok := range tokens {
		switch tok.Type {
		case TokenQualifier:
			parts = append(parts, ColoredPart{Text: tok.Qualifier + ":", Kind: PartQualifier})
			if tok.Value != "" {
				parts = append(parts, ColoredPart{Text: tok.Value, Kind: PartValue})
			}
		case TokenSpace:
			parts = append(parts, ColoredPart{Text: " ", Kind: PartSpace})
		default:
			parts = append(parts, ColoredPart{Text: tok.Value, Kind: PartNormal})
		}
	}
	return parts
}

// ColorText tokenizes input and projects it to colored parts
func (l *Lexer) ColorText(input string) []ColoredPart {
	return Project(l.Tokenize(input))
}

// ColorText projects input using the built-in registry
func ColorText(input string) []ColoredPart {
	return defaultLexer.ColorText(input)
}

// MarkupClasses names the CSS class used for each part kind
type MarkupClasses struct {
	Qualifier string
	Value     string
	Normal    string
	Space     string
}

// DefaultMarkupClasses renders qualifier names like plain text and only the
// value in a distinct class
var DefaultMarkupClasses = MarkupClasses{
	Qualifier: "search-token-text",
	Value:     "search-token-value",
	Normal:    "search-token-text",
	Space:     "search-token-space",
}

func (c MarkupClasses) forKind(kind PartKind) string {
	switch kind {
	case PartQualifier:
		return c.Qualifier
	case PartValue:
		return c.Value
	case PartSpace:
		return c.Space
	default:
		return c.Normal
	}
}

// Markup renders parts as HTML spans. Text is escaped.
func (c MarkupClasses) Markup(parts []ColoredPart) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(`<span class="`)
		b.WriteString(html.EscapeString(c.forKind(part.Kind)))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(part.Text))
		b.WriteString("</span>")
	}
	return b.String()
}

// Highlight tokenizes input and renders it as HTML markup
func (l *Lexer) Highlight(input string) string {
	if input == "" {
		return ""
	}
	return DefaultMarkupClasses.Markup(l.ColorText(input))
}

// Highlight renders input as HTML markup using the built-in registry
func Highlight(input string) string {
	return defaultLexer.Highlight(input)
}
