package latex

// NoMatch is the sentinel returned by MatchBrace when no matching
// closing brace exists in the remaining text.
const NoMatch = -1

// MatchBrace returns the position immediately past the closing brace
// that matches an already-consumed opening brace. start is the index of
// the first character after that opening brace. Escaped braces (those
// preceded by an odd number of consecutive backslashes) do not affect
// nesting depth. Returns NoMatch if the text is exhausted before the
// depth returns to zero.
func MatchBrace(text string, start int) int {
	if text == "" || start < 0 || start >= len(text) {
		return NoMatch
	}

	depth := 1
	pos := start

	for pos < len(text) && depth > 0 {
		if !escapedAt(text, pos) {
			switch text[pos] {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		pos++
	}

	if depth != 0 {
		return NoMatch
	}
	return pos
}

// escapedAt reports whether the character at pos is escaped, i.e.
// preceded by an odd number of consecutive backslashes. A run like
// `\\` contributes two backslashes, so the next character is NOT
// escaped.
func escapedAt(text string, pos int) bool {
	backslashes := 0
	for i := pos - 1; i >= 0 && text[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// isArgSpace reports whether c may separate command arguments.
func isArgSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
