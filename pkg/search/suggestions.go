package search

import (
	"strings"

	"github.com/pluqqy/reposearch/pkg/qualifiers"
)

// Suggestion is a qualifier offered in the suggestion dropdown
type Suggestion struct {
	Prefix       string `json:"prefix" yaml:"prefix"`
	Label        string `json:"label" yaml:"label"`
	Icon         string `json:"icon" yaml:"icon"`
	IsUsed       bool   `json:"is_used" yaml:"is_used"`
	CurrentValue string `json:"current_value,omitempty" yaml:"current_value,omitempty"`
}

// ListSuggestions cross-references the lexer's registry against the
// qualifier tokens present in tokens
func (l *Lexer) ListSuggestions(tokens []Token) []Suggestion {
	used := Qualifiers(tokens)
	defs := l.registry.Definitions()
	suggestions := make([]Suggestion, 0, len(defs))

	for _, def := range defs {
		s := Suggestion{Prefix: def.Prefix, Label: def.Label, Icon: def.Icon}
		for _, tok := range used {
			if tok.IsQualifier(def.Prefix) {
				s.IsUsed = true
				s.CurrentValue = tok.Value
				break
			}
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}

// ListSuggestions uses the built-in registry
func ListSuggestions(tokens []Token) []Suggestion {
	return defaultLexer.ListSuggestions(tokens)
}

// MatchSuggestions filters registry definitions by the last word of query.
// A definition matches when its prefix or label contains that word, ignoring
// case. An empty last word matches everything.
func MatchSuggestions(registry *qualifiers.Registry, query string) []qualifiers.Definition {
	defs := registry.Definitions()

	words := strings.Split(query, " ")
	lastWord := strings.ToLower(words[len(words)-1])
	if lastWord == "" {
		return defs
	}

	var matches []qualifiers.Definition
	for _, def := range defs {
		if strings.Contains(strings.ToLower(def.Prefix), lastWord) ||
			strings.Contains(strings.ToLower(def.Label), lastWord) {
			matches = append(matches, def)
		}
	}
	return matches
}

// IsValidFilter reports whether text starts with a registered prefix, case
// sensitively
func IsValidFilter(registry *qualifiers.Registry, text string) bool {
	for _, prefix := range registry.Prefixes() {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

// MaxRecentFilters is how many recent filters are remembered
const MaxRecentFilters = 5

// RecentFilters is a most-recently-used list of filters, newest first
type RecentFilters struct {
	items []string
}

// NewRecentFilters restores a list saved with Items. Entries beyond
// MaxRecentFilters and repeats are dropped.
func NewRecentFilters(items []string) *RecentFilters {
	r := &RecentFilters{}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] || len(r.items) == MaxRecentFilters {
			continue
		}
		seen[item] = true
		r.items = append(r.items, item)
	}
	return r
}

// Add records filter unless it is already present
func (r *RecentFilters) Add(filter string) {
	for _, existing := range r.items {
		if existing == filter {
			return
		}
	}
	r.items = append([]string{filter}, r.items...)
	if len(r.items) > MaxRecentFilters {
		r.items = r.items[:MaxRecentFilters]
	}
}

// Items returns the remembered filters, newest first
func (r *RecentFilters) Items() []string {
	items := make([]string, len(r.items))
	copy(items, r.items)
	return items
}
