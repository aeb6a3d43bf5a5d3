package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorText(t *testing.T) {
	parts := ColorText("repo:foo/bar hello")

	assert.Equal(t, []ColoredPart{
		{Text: "repo:", Kind: PartQualifier},
		{Text: "foo/bar", Kind: PartValue},
		{Text: " ", Kind: PartSpace},
		{Text: "hello", Kind: PartNormal},
	}, parts)
}

func TestProjectKeepsTypedCase(t *testing.T) {
	parts := Project(Tokenize("STARS:>5"))

	assert.Equal(t, []ColoredPart{
		{Text: "STARS:", Kind: PartQualifier},
		{Text: ">5", Kind: PartValue},
	}, parts)
}

func TestProjectEmpty(t *testing.T) {
	assert.Empty(t, Project(nil))
	assert.Empty(t, ColorText(""))
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:  "qualifier and text",
			input: "language:go cli",
			expected: `<span class="search-token-text">language:</span>` +
				`<span class="search-token-value">go</span>` +
				`<span class="search-token-space"> </span>` +
				`<span class="search-token-text">cli</span>`,
		},
		{
			name:  "markup in values is escaped",
			input: `topic:<script> "x"&y`,
			expected: `<span class="search-token-text">topic:</span>` +
				`<span class="search-token-value">&lt;script&gt;</span>` +
				`<span class="search-token-space"> </span>` +
				`<span class="search-token-text">&#34;x&#34;&amp;y</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.input))
		})
	}
}

func TestCustomMarkupClasses(t *testing.T) {
	classes := MarkupClasses{Qualifier: "q", Value: "v", Normal: "n", Space: "s"}
	out := classes.Markup(ColorText("is:public x"))

	assert.Equal(t,
		`<span class="q">is:</span><span class="v">public</span><span class="s"> </span><span class="n">x</span>`,
		out)
}
