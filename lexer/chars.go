package lexer

// Character classification. Pure predicates over single bytes; no
// locale assumptions. Non-ASCII bytes are never identifier characters.

func isBinaryDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isUpperAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || isUpperAlpha(b) || b == '_'
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDecimalDigit(b)
}

// isInlineSpace reports non-newline whitespace.
func isInlineSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

// isWhitespace reports any whitespace including newline.
func isWhitespace(b byte) bool {
	return isInlineSpace(b) || b == '\n'
}

// isRegexpOption reports a valid regexp trailing option letter.
func isRegexpOption(b byte) bool {
	switch b {
	case 'e', 'i', 'm', 'n', 's', 'u', 'x':
		return true
	default:
		return false
	}
}
