package search

import "strings"

// TokenType represents the kind of a search token
type TokenType int

const (
	TokenText TokenType = iota
	TokenQualifier
	TokenSpace
)

// String returns the lowercase name used in JSON output and markup
func (t TokenType) String() string {
	switch t {
	case TokenQualifier:
		return "qualifier"
	case TokenSpace:
		return "space"
	default:
		return "text"
	}
}

// MarshalText lets token types serialize by name
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Token is one classified unit of parsed search input.
//
// Qualifier tokens carry the qualifier name as typed (without the trailing
// colon) in Qualifier and a non-empty Value. Text tokens carry a non-empty
// Value. Space tokens always carry a single " ".
type Token struct {
	Type      TokenType `json:"type" yaml:"type"`
	Qualifier string    `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	Value     string    `json:"value" yaml:"value"`
}

// QualifierToken builds a qualifier token
func QualifierToken(name, value string) Token {
	return Token{Type: TokenQualifier, Qualifier: name, Value: value}
}

// TextToken builds a text token
func TextToken(value string) Token {
	return Token{Type: TokenText, Value: value}
}

// SpaceToken builds a space token
func SpaceToken() Token {
	return Token{Type: TokenSpace, Value: " "}
}

// Text reconstructs the source text of the token
func (t Token) Text() string {
	if t.Type == TokenQualifier {
		return t.Qualifier + ":" + t.Value
	}
	return t.Value
}

// IsQualifier reports whether the token is a qualifier named name, ignoring
// case and an optional trailing colon on name
func (t Token) IsQualifier(name string) bool {
	return t.Type == TokenQualifier && strings.EqualFold(t.Qualifier, strings.TrimSuffix(name, ":"))
}

// Join concatenates the reconstructed text of every token
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text())
	}
	return b.String()
}

// Qualifiers returns only the qualifier tokens, in order
func Qualifiers(tokens []Token) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Type == TokenQualifier {
			out = append(out, tok)
		}
	}
	return out
}
