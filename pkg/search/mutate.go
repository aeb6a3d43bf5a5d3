package search

import "strings"

// RemoveQualifier removes the first qualifier matching qualifier and value
// using the built-in registry
func RemoveQualifier(input, qualifier, value string) string {
	return defaultLexer.RemoveQualifier(input, qualifier, value)
}

// RemoveQualifier drops the first qualifier token whose name matches
// qualifier (case-insensitive, trailing colon optional) and whose value equals
// value, together with the space that follows it.
//
// The remaining tokens are rejoined with single spaces and trimmed. Tokens
// that were adjacent without a space stay adjacent. When nothing matches the
// input is returned trimmed but otherwise untouched.
func (l *Lexer) RemoveQualifier(input, qualifier, value string) string {
	tokens := l.Tokenize(input)

	removeAt := -1
	for i, tok := range tokens {
		if tok.IsQualifier(qualifier) && tok.Value == value {
			removeAt = i
			break
		}
	}
	if removeAt < 0 {
		return strings.TrimSpace(input)
	}

	var b strings.Builder
	pendingSpace := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if i == removeAt {
			if i+1 < len(tokens) && tokens[i+1].Type == TokenSpace {
				i++
			}
			pendingSpace = true
			continue
		}

		if tok.Type == TokenSpace {
			pendingSpace = true
			continue
		}

		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteString(tok.Text())
	}

	return strings.TrimSpace(b.String())
}

// SelectSuggestion returns the qualifier ready to insert, ensuring it ends
// with a colon
func SelectSuggestion(qualifier string) string {
	if strings.HasSuffix(qualifier, ":") {
		return qualifier
	}
	return qualifier + ":"
}

// AppendSuggestion appends a selected suggestion to the current input,
// separating it with a single space when needed
func AppendSuggestion(current, suggestion string) string {
	if current != "" && !strings.HasSuffix(current, " ") {
		return current + " " + suggestion
	}
	return current + suggestion
}

// CompleteSuggestion inserts a selected suggestion in place of the word being
// typed at the end of current. When no word is being typed it appends like
// AppendSuggestion.
func CompleteSuggestion(current, suggestion string) string {
	q := SelectSuggestion(suggestion)
	if current == "" || strings.HasSuffix(current, " ") {
		return AppendSuggestion(current, q)
	}
	i := strings.LastIndex(current, " ")
	return current[:i+1] + q
}
