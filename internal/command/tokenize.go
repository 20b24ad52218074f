package command

// Tokenize splits a raw argument string into argv-style tokens. Double quotes
// group spaces into a single token without being emitted, a backslash escapes
// the next character verbatim, and empty tokens are dropped. Malformed
// quoting is tolerated: an unterminated quote swallows the rest of the input.
func Tokenize(text string) []string {
	var (
		tokens  []string
		current []rune
		quoted  bool
		escaped bool
	)

	for _, r := range text {
		switch {
		case escaped:
			current = append(current, r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if len(current) > 0 {
				tokens = append(tokens, string(current))
				current = current[:0]
			}
		default:
			current = append(current, r)
		}
	}

	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}
	return tokens
}
