package search

import (
	"fmt"
	"strings"
)

// Filters are structured search filters supplied outside the free text
type Filters struct {
	MinStars   int      `json:"min_stars,omitempty" yaml:"min_stars,omitempty"`
	Language   string   `json:"language,omitempty" yaml:"language,omitempty"`
	Topics     []string `json:"topics,omitempty" yaml:"topics,omitempty"`
	HasTests   bool     `json:"has_tests,omitempty" yaml:"has_tests,omitempty"`
	IsTemplate bool     `json:"is_template,omitempty" yaml:"is_template,omitempty"`
}

// AnyLanguage is the language filter value meaning "no restriction"
const AnyLanguage = "all"

// BuildQuery composes the upstream query string from free text and filters
// using the built-in registry
func BuildQuery(freeText string, filters Filters) string {
	return defaultLexer.BuildQuery(freeText, filters)
}

// BuildQuery composes the upstream query string.
//
// The normalized free text comes first, followed by the clauses for stars,
// language, topics, tests and template, in that order. A structured filter is
// skipped when the raw free text already contains its qualifier, ignoring case.
func (l *Lexer) BuildQuery(freeText string, filters Filters) string {
	var conditions []string

	if normalized := l.NormalizeFreeText(freeText); normalized != "" {
		conditions = append(conditions, normalized)
	}

	existing := strings.ToLower(freeText)

	if filters.MinStars > 0 && !strings.Contains(existing, "stars:") {
		conditions = append(conditions, fmt.Sprintf("stars:>=%d", filters.MinStars))
	}

	language := strings.TrimSpace(filters.Language)
	if language != "" && !strings.EqualFold(language, AnyLanguage) && !strings.Contains(existing, "language:") {
		conditions = append(conditions, "language:"+language)
	}

	addedTesting := false
	if len(filters.Topics) > 0 && !strings.Contains(existing, "topic:") {
		for _, topic := range filters.Topics {
			topic = strings.TrimSpace(topic)
			if topic == "" {
				continue
			}
			conditions = append(conditions, "topic:"+topic)
			if strings.EqualFold(topic, "testing") {
				addedTesting = true
			}
		}
	}

	if filters.HasTests && !addedTesting && !strings.Contains(existing, "topic:testing") {
		conditions = append(conditions, "topic:testing")
	}

	if filters.IsTemplate && !strings.Contains(existing, "is:template") {
		conditions = append(conditions, "is:template")
	}

	return strings.Join(conditions, " ")
}

// NormalizeFreeText prepares typed text for the upstream API. A repo
// qualifier at the start of a word whose value is not owner/name shaped
// degrades to its bare value. Space runs collapse to one space and the result
// is trimmed; qualifiers with empty values are dropped by the lexer.
func (l *Lexer) NormalizeFreeText(freeText string) string {
	tokens := l.Tokenize(freeText)

	var b strings.Builder
	pendingSpace := false
	atWordStart := true

	for _, tok := range tokens {
		if tok.Type == TokenSpace {
			pendingSpace = true
			atWordStart = true
			continue
		}

		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false

		if tok.IsQualifier("repo") && atWordStart && !strings.Contains(tok.Value, "/") {
			b.WriteString(tok.Value)
		} else {
			b.WriteString(tok.Text())
		}
		atWordStart = false
	}

	return b.String()
}
