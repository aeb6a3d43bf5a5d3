package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pluqqy/reposearch/pkg/search"
)

func TestInputRenderer_Segments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []segment
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "qualifier splits into name and value",
			input: "language:go  cli",
			want: []segment{
				{"language:", search.PartQualifier},
				{"go", search.PartValue},
				{" ", search.PartSpace},
				{" ", search.PartSpace},
				{"cli", search.PartNormal},
			},
		},
		{
			name:  "qualifier without value stays visible",
			input: "stars: x",
			want: []segment{
				{"stars: ", PartPending},
				{"x", search.PartNormal},
			},
		},
		{
			name:  "typed case kept",
			input: "Topic:CLI",
			want: []segment{
				{"Topic:", search.PartQualifier},
				{"CLI", search.PartValue},
			},
		},
	}

	ir := NewInputRenderer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ir.segments(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("segments(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputRenderer_RenderInputField(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		cursorPos   int
		placeholder string
		showCursor  bool
		want        string
	}{
		{
			name:        "empty input shows placeholder after cursor",
			placeholder: "Search...",
			showCursor:  true,
			want:        " Search...",
		},
		{
			name:        "empty unfocused input",
			placeholder: "Search...",
			want:        "Search...",
		},
		{
			name:       "cursor at end adds a cell",
			text:       "language:go",
			cursorPos:  11,
			showCursor: true,
			want:       "language:go ",
		},
		{
			name:       "cursor inside text keeps every rune",
			text:       "日本 stars:",
			cursorPos:  1,
			showCursor: true,
			want:       "日本 stars:",
		},
		{
			name:       "out of range cursor is clamped",
			text:       "cli",
			cursorPos:  10,
			showCursor: true,
			want:       "cli ",
		},
		{
			name:      "no cursor",
			text:      "cli",
			cursorPos: 1,
			want:      "cli",
		},
	}

	ir := NewInputRenderer(search.NewLexer(nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ir.RenderInputField(tt.text, tt.cursorPos, tt.placeholder, tt.showCursor)
			if got != tt.want {
				t.Errorf("RenderInputField() = %q, want %q", got, tt.want)
			}
			if tt.text != "" && !strings.Contains(got, tt.text) {
				t.Errorf("expected output to contain %q", tt.text)
			}
		})
	}
}
