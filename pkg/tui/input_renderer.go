package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/reposearch/pkg/search"
)

// PartPending styles a qualifier that has no value yet
const PartPending search.PartKind = "pending"

var pendingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(ColorActive)).
	Faint(true)

// segment is a run of input drawn in one style
type segment struct {
	text string
	kind search.PartKind
}

// InputRenderer draws search input with syntax highlighting and a block cursor
type InputRenderer struct {
	lexer *search.Lexer
}

// NewInputRenderer creates a new input renderer
func NewInputRenderer(lexer *search.Lexer) *InputRenderer {
	if lexer == nil {
		lexer = search.NewLexer(nil)
	}
	return &InputRenderer{lexer: lexer}
}

// segments splits text into styled runs. Unlike the token stream, the runs
// cover every typed byte, including qualifiers still waiting for a value.
func (ir *InputRenderer) segments(text string) []segment {
	var segs []segment
	for _, sp := range ir.lexer.Scan(text) {
		raw := text[sp.Start:sp.End]
		switch {
		case sp.Pending:
			segs = append(segs, segment{text: raw, kind: PartPending})
		case sp.Token.Type == search.TokenQualifier:
			nameLen := len(sp.Token.Qualifier) + 1
			segs = append(segs,
				segment{text: raw[:nameLen], kind: search.PartQualifier},
				segment{text: raw[nameLen:], kind: search.PartValue},
			)
		case sp.Token.Type == search.TokenSpace:
			segs = append(segs, segment{text: raw, kind: search.PartSpace})
		default:
			segs = append(segs, segment{text: raw, kind: search.PartNormal})
		}
	}
	return segs
}

func segmentStyle(kind search.PartKind) lipgloss.Style {
	if kind == PartPending {
		return pendingStyle
	}
	return PartStyle(kind)
}

// RenderInputField renders highlighted text with the cursor on the rune at
// cursorPos. An empty input shows the placeholder.
func (ir *InputRenderer) RenderInputField(text string, cursorPos int, placeholder string, showCursor bool) string {
	var content strings.Builder

	if text == "" {
		if showCursor {
			content.WriteString(CursorStyle.Render(" "))
		}
		if placeholder != "" {
			content.WriteString(PlaceholderStyle.Render(placeholder))
		}
		return content.String()
	}

	runeCount := len([]rune(text))
	if cursorPos < 0 {
		cursorPos = 0
	}
	if cursorPos > runeCount {
		cursorPos = runeCount
	}

	idx := 0
	for _, seg := range ir.segments(text) {
		style := segmentStyle(seg.kind)
		runes := []rune(seg.text)

		if !showCursor || cursorPos < idx || cursorPos >= idx+len(runes) {
			content.WriteString(style.Render(seg.text))
			idx += len(runes)
			continue
		}

		at := cursorPos - idx
		if at > 0 {
			content.WriteString(style.Render(string(runes[:at])))
		}
		content.WriteString(CursorStyle.Render(string(runes[at])))
		if at+1 < len(runes) {
			content.WriteString(style.Render(string(runes[at+1:])))
		}
		idx += len(runes)
	}

	if showCursor && cursorPos == runeCount {
		content.WriteString(CursorStyle.Render(" "))
	}

	return content.String()
}
