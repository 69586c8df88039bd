package lexer

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isSpace matches ASCII whitespace, including vertical tab and form feed.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isNumberStart reports whether b may begin a numeric literal.
func isNumberStart(b byte) bool {
	return isDec(b) || b == '-' || b == '+' || b == '.'
}

// isNumberByte reports whether b may continue a numeric literal.
func isNumberByte(b byte) bool {
	return isNumberStart(b) || b == 'e' || b == 'E'
}

// isHeaderEnd matches the bytes that terminate the solid name.
func isHeaderEnd(b byte) bool {
	return b == 0 || b == '\r' || b == '\n'
}
