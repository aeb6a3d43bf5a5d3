package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/reposearch/pkg/qualifiers"
	"github.com/pluqqy/reposearch/pkg/search"
)

const dropdownWidth = 44

// DropdownItem is one row of the suggestion dropdown
type DropdownItem struct {
	search.Suggestion
	Recent bool
}

// SuggestionDropdown lists qualifiers matching the word being typed
type SuggestionDropdown struct {
	lexer     *search.Lexer
	items     []DropdownItem
	cursor    int
	offset    int
	maxRows   int
	showIcons bool
	column    int
}

// NewSuggestionDropdown creates a dropdown over the lexer's registry
func NewSuggestionDropdown(lexer *search.Lexer, maxRows int, showIcons bool) *SuggestionDropdown {
	if maxRows <= 0 {
		maxRows = 8
	}
	return &SuggestionDropdown{lexer: lexer, maxRows: maxRows, showIcons: showIcons}
}

// Refresh rebuilds the rows for input. Recently used qualifiers come first.
func (d *SuggestionDropdown) Refresh(input string, recent []string) {
	var selected string
	if item, ok := d.Selected(); ok {
		selected = item.Prefix
	}

	matched := make(map[string]bool)
	for _, def := range search.MatchSuggestions(d.lexer.Registry(), input) {
		matched[def.Prefix] = true
	}

	all := d.lexer.ListSuggestions(d.lexer.Tokenize(input))
	byPrefix := make(map[string]search.Suggestion, len(all))
	for _, s := range all {
		byPrefix[s.Prefix] = s
	}

	items := make([]DropdownItem, 0, len(all))
	seen := make(map[string]bool)
	for _, prefix := range recent {
		s, ok := byPrefix[prefix]
		if !ok || !matched[prefix] || !search.IsValidFilter(d.lexer.Registry(), prefix) {
			continue
		}
		items = append(items, DropdownItem{Suggestion: s, Recent: true})
		seen[prefix] = true
	}
	for _, s := range all {
		if matched[s.Prefix] && !seen[s.Prefix] {
			items = append(items, DropdownItem{Suggestion: s})
		}
	}

	d.items = items
	d.cursor = 0
	for i, item := range items {
		if item.Prefix == selected {
			d.cursor = i
			break
		}
	}
	d.offset = 0
	d.scrollToCursor()
}

// Len returns the number of rows
func (d *SuggestionDropdown) Len() int {
	return len(d.items)
}

// Items returns the current rows' suggestions
func (d *SuggestionDropdown) Items() []search.Suggestion {
	out := make([]search.Suggestion, len(d.items))
	for i, item := range d.items {
		out[i] = item.Suggestion
	}
	return out
}

// Selected returns the highlighted row
func (d *SuggestionDropdown) Selected() (DropdownItem, bool) {
	if d.cursor < 0 || d.cursor >= len(d.items) {
		return DropdownItem{}, false
	}
	return d.items[d.cursor], true
}

// MoveUp moves the highlight up, wrapping to the bottom
func (d *SuggestionDropdown) MoveUp() {
	if len(d.items) == 0 {
		return
	}
	d.cursor = (d.cursor - 1 + len(d.items)) % len(d.items)
	d.scrollToCursor()
}

// MoveDown moves the highlight down, wrapping to the top
func (d *SuggestionDropdown) MoveDown() {
	if len(d.items) == 0 {
		return
	}
	d.cursor = (d.cursor + 1) % len(d.items)
	d.scrollToCursor()
}

func (d *SuggestionDropdown) scrollToCursor() {
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+d.maxRows {
		d.offset = d.cursor - d.maxRows + 1
	}
}

// SetColumn anchors the dropdown under the given terminal column
func (d *SuggestionDropdown) SetColumn(column int) {
	d.column = column
}

// View renders the dropdown indented to its column, kept within width
func (d *SuggestionDropdown) View(width int) string {
	if len(d.items) == 0 {
		return ""
	}

	end := d.offset + d.maxRows
	if end > len(d.items) {
		end = len(d.items)
	}

	rows := make([]string, 0, end-d.offset)
	for i := d.offset; i < end; i++ {
		rows = append(rows, d.renderRow(d.items[i], i == d.cursor))
	}

	box := InactiveBorderStyle.Padding(0, 1).Render(strings.Join(rows, "\n"))

	indent := d.column
	if boxWidth := lipgloss.Width(box); indent+boxWidth > width {
		indent = width - boxWidth
	}
	if indent < 0 {
		indent = 0
	}
	return lipgloss.NewStyle().MarginLeft(indent).Render(box)
}

func (d *SuggestionDropdown) renderRow(item DropdownItem, selected bool) string {
	var b strings.Builder

	if d.showIcons {
		b.WriteString(runewidth.FillRight(qualifiers.Glyph(item.Icon), 3))
	}
	b.WriteString(runewidth.FillRight(item.Prefix, 10))
	b.WriteString(item.Label)

	switch {
	case item.IsUsed:
		b.WriteString(" = " + item.CurrentValue)
	case item.Recent:
		b.WriteString(" (recent)")
	}

	row := truncate.StringWithTail(b.String(), dropdownWidth, "…")
	row = runewidth.FillRight(row, dropdownWidth)

	switch {
	case selected:
		return SelectedStyle.Render(row)
	case item.IsUsed:
		return UsedStyle.Render(row)
	default:
		return NormalStyle.Render(row)
	}
}
