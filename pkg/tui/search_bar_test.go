package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchBar_CaretColumn(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", searchBarInset},
		{"ascii", "cli", searchBarInset + 3},
		{"wide characters count twice", "日本", searchBarInset + 4},
		{"mixed", "topic:日本 go", searchBarInset + 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewSearchBar(nil)
			bar.SetActive(true)
			bar.SetValue(tt.value)
			if got := bar.CaretColumn(); got != tt.want {
				t.Errorf("CaretColumn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSearchBar_Editing(t *testing.T) {
	bar := NewSearchBar(nil)
	bar.SetWidth(80)

	bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ignored")})
	if bar.Value() != "" {
		t.Errorf("Expected inactive bar to ignore keys, got %q", bar.Value())
	}

	bar.SetActive(true)
	bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("stars:>5")})
	if bar.Value() != "stars:>5" {
		t.Errorf("Expected typed value, got %q", bar.Value())
	}
	if bar.Position() != 8 {
		t.Errorf("Expected cursor at 8, got %d", bar.Position())
	}

	view := bar.View()
	if !strings.Contains(view, "stars:>5") {
		t.Errorf("Expected view to show the value, got:\n%s", view)
	}

	bar.Reset()
	if bar.Value() != "" {
		t.Error("Expected Reset to clear the value")
	}
}
