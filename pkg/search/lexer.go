package search

import (
	"github.com/pluqqy/reposearch/pkg/qualifiers"
)

// Lexer splits raw search input into qualifier, text and space tokens.
//
// It performs a single left-to-right scan with no backtracking. A qualifier
// prefix is recognized wherever it textually appears, including mid-word, and
// matching is case-insensitive while token text keeps the case as typed.
type Lexer struct {
	registry *qualifiers.Registry
}

// NewLexer creates a lexer for the given registry. A nil registry uses the
// built-in qualifiers.
func NewLexer(registry *qualifiers.Registry) *Lexer {
	if registry == nil {
		registry = qualifiers.Default()
	}
	return &Lexer{registry: registry}
}

var defaultLexer = NewLexer(nil)

// Tokenize splits input using the built-in qualifier registry
func Tokenize(input string) []Token {
	return defaultLexer.Tokenize(input)
}

// Registry returns the registry the lexer matches against
func (l *Lexer) Registry() *qualifiers.Registry {
	return l.registry
}

// Span is a token together with the byte range of input it was read from
type Span struct {
	Token Token
	Start int
	End   int
	// Pending marks a qualifier typed without a value. Tokenize drops these.
	Pending bool
}

// Tokenize splits input into tokens. It never fails: unknown prefixes and
// malformed fragments become text.
//
// A qualifier followed directly by a space or the end of input has no value.
// Such a qualifier produces no token at all: its prefix and the single space
// that terminated it are dropped.
func (l *Lexer) Tokenize(input string) []Token {
	spans := l.Scan(input)
	tokens := make([]Token, 0, len(spans))
	for _, sp := range spans {
		if !sp.Pending {
			tokens = append(tokens, sp.Token)
		}
	}
	return tokens
}

// Scan splits input like Tokenize but keeps byte offsets and reports
// value-less qualifiers as pending spans. The spans cover input exactly,
// which lets editors style every typed character.
func (l *Lexer) Scan(input string) []Span {
	spans := make([]Span, 0)
	n := len(input)
	i := 0

	for i < n {
		if def, ok := l.registry.Lookup(input, i); ok {
			nameEnd := i + len(def.Prefix) - 1
			valueStart := nameEnd + 1
			valueEnd := valueStart
			for valueEnd < n && input[valueEnd] != ' ' {
				valueEnd++
			}

			if valueEnd > valueStart {
				spans = append(spans, Span{
					Token: QualifierToken(input[i:nameEnd], input[valueStart:valueEnd]),
					Start: i,
					End:   valueEnd,
				})
				i = valueEnd
				continue
			}

			end := valueEnd
			if end < n && input[end] == ' ' {
				end++
			}
			spans = append(spans, Span{
				Token:   QualifierToken(input[i:nameEnd], ""),
				Start:   i,
				End:     end,
				Pending: true,
			})
			i = end
			continue
		}

		if input[i] == ' ' {
			spans = append(spans, Span{Token: SpaceToken(), Start: i, End: i + 1})
			i++
			continue
		}

		// Text runs stop at a space or wherever a qualifier prefix begins
		j := i + 1
		for j < n && input[j] != ' ' && !l.registry.MatchesAt(input, j) {
			j++
		}
		spans = append(spans, Span{Token: TextToken(input[i:j]), Start: i, End: j})
		i = j
	}

	return spans
}
