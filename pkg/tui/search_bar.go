package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/pluqqy/reposearch/pkg/search"
)

// searchBarInset is the number of cells left of the first input character:
// outer padding, border, inner padding, icon and the gap after it
const searchBarInset = 1 + 1 + 1 + 3 + 1

// SearchBar is the highlighted search input. Editing is delegated to a
// textinput; rendering re-tokenizes the value on every frame.
type SearchBar struct {
	input    textinput.Model
	renderer *InputRenderer
	isActive bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar(lexer *search.Lexer) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search repositories, e.g. language:go stars:>100 cli"
	ti.CharLimit = 256
	ti.Prompt = ""

	return &SearchBar{
		input:    ti,
		renderer: NewInputRenderer(lexer),
	}
}

// SetActive sets whether the search bar has focus
func (s *SearchBar) SetActive(active bool) tea.Cmd {
	s.isActive = active
	if active {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// Active reports whether the search bar has focus
func (s *SearchBar) Active() bool {
	return s.isActive
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = width - searchBarInset - 3
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the search text and moves the cursor to the end
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
	s.input.CursorEnd()
}

// Position returns the cursor position in runes
func (s *SearchBar) Position() int {
	return s.input.Position()
}

// CaretColumn returns the terminal column of the cursor, measured in cells
// so wide characters are accounted for
func (s *SearchBar) CaretColumn() int {
	runes := []rune(s.input.Value())
	pos := s.input.Position()
	if pos > len(runes) {
		pos = len(runes)
	}
	return searchBarInset + runewidth.StringWidth(string(runes[:pos]))
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	searchStyle := GetActiveBorderStyle(s.isActive).Padding(0, 1)
	if s.width > 4 {
		searchStyle = searchStyle.Width(s.width - 4)
	}

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	field := s.renderer.RenderInputField(s.input.Value(), s.input.Position(), s.input.Placeholder, s.isActive)
	searchContent := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", field)

	outerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return outerPadding.Render(searchStyle.Render(searchContent))
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
