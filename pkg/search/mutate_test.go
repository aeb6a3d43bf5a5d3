package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveQualifier(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		qualifier string
		value     string
		expected  string
	}{
		{
			name:      "leading qualifier",
			input:     "stars:100 language:go test",
			qualifier: "stars:",
			value:     "100",
			expected:  "language:go test",
		},
		{
			name:      "middle qualifier",
			input:     "react topic:ui hooks",
			qualifier: "topic:",
			value:     "ui",
			expected:  "react hooks",
		},
		{
			name:      "trailing qualifier",
			input:     "react topic:ui",
			qualifier: "topic:",
			value:     "ui",
			expected:  "react",
		},
		{
			name:      "only qualifier",
			input:     "is:public",
			qualifier: "is:",
			value:     "public",
			expected:  "",
		},
		{
			name:      "qualifier without colon",
			input:     "cli language:rust",
			qualifier: "language",
			value:     "rust",
			expected:  "cli",
		},
		{
			name:      "typed case is matched",
			input:     "Language:Go cli",
			qualifier: "language:",
			value:     "Go",
			expected:  "cli",
		},
		{
			name:      "value is case sensitive",
			input:     "language:Go cli",
			qualifier: "language:",
			value:     "go",
			expected:  "language:Go cli",
		},
		{
			name:      "only first duplicate removed",
			input:     "topic:a x topic:a",
			qualifier: "topic:",
			value:     "a",
			expected:  "x topic:a",
		},
		{
			name:      "missing qualifier is a no-op",
			input:     "  language:go test ",
			qualifier: "stars:",
			value:     "100",
			expected:  "language:go test",
		},
		{
			name:      "double spaces collapse after removal",
			input:     "a  stars:1  b",
			qualifier: "stars:",
			value:     "1",
			expected:  "a b",
		},
		{
			name:      "removal between adjacent text keeps words apart",
			input:     "foorepo:x bar",
			qualifier: "repo:",
			value:     "x",
			expected:  "foo bar",
		},
		{
			name:      "empty input",
			input:     "",
			qualifier: "repo:",
			value:     "x",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveQualifier(tt.input, tt.qualifier, tt.value))
		})
	}
}

func TestRemoveQualifierIdempotent(t *testing.T) {
	input := "language:go test"
	once := RemoveQualifier(input, "stars:", "1")
	twice := RemoveQualifier(once, "stars:", "1")

	assert.Equal(t, input, once)
	assert.Equal(t, once, twice)
}

func TestSelectSuggestion(t *testing.T) {
	assert.Equal(t, "language:", SelectSuggestion("language"))
	assert.Equal(t, "language:", SelectSuggestion("language:"))
}

func TestAppendSuggestion(t *testing.T) {
	assert.Equal(t, "topic:", AppendSuggestion("", "topic:"))
	assert.Equal(t, "cli topic:", AppendSuggestion("cli", "topic:"))
	assert.Equal(t, "cli topic:", AppendSuggestion("cli ", "topic:"))
}

func TestCompleteSuggestion(t *testing.T) {
	tests := []struct {
		current    string
		suggestion string
		want       string
	}{
		{"", "language", "language:"},
		{"cli ", "stars:", "cli stars:"},
		{"lan", "language:", "language:"},
		{"cli lan", "language:", "cli language:"},
		{"cli  st", "stars", "cli  stars:"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompleteSuggestion(tt.current, tt.suggestion), tt.current)
	}
}
