package lexer

import "github.com/rubytools/rubylex/token"

// lexNumeric scans a numeric literal. One digit has already been
// consumed. Underscores may only appear between digits of the same
// run; a trailing underscore makes the whole token INVALID.
func (l *Lexer) lexNumeric(first byte) token.Token {
	if first == '0' {
		if c, ok := l.peek(); ok {
			switch {
			case c == 'b' || c == 'B':
				l.advance()
				return l.lexBasedInteger(isBinaryDigit)
			case c == 'o' || c == 'O':
				l.advance()
				return l.lexBasedInteger(isOctalDigit)
			case c == 'x' || c == 'X':
				l.advance()
				return l.lexBasedInteger(isHexDigit)
			case c == 'd' || c == 'D':
				l.advance()
				return l.lexBasedInteger(isDecimalDigit)
			case isOctalDigit(c):
				// Leading zero followed by an octal digit.
				return l.lexBasedInteger(isOctalDigit)
			}
		}
	}

	// Decimal integer part; the first digit is already consumed.
	if !l.continueDigitRun(isDecimalDigit) {
		return l.invalidNumber()
	}

	kind := token.Integer

	// Fractional part: only when the '.' is followed by a digit, so
	// '1.foo' leaves the '.' for a method call.
	if c, ok := l.peek(); ok && c == '.' {
		if n, ok := l.peekAt(1); ok && isDecimalDigit(n) {
			l.advance()
			if !l.scanDigitRun(isDecimalDigit) {
				return l.invalidNumber()
			}
			kind = token.Float
		}
	}

	// Exponent: sign optional, digits mandatory.
	if c, ok := l.peek(); ok && (c == 'e' || c == 'E') {
		l.advance()
		if c, ok := l.peek(); ok && (c == '+' || c == '-') {
			l.advance()
		}
		if !l.scanDigitRun(isDecimalDigit) {
			return l.invalidNumber()
		}
		kind = token.Float
	}

	return l.numericSuffix(kind)
}

// lexBasedInteger scans the digit run of a based literal (0b, 0o, 0x,
// 0d, or leading-zero octal). At least one digit is required.
func (l *Lexer) lexBasedInteger(digit func(byte) bool) token.Token {
	if !l.scanDigitRun(digit) {
		return l.invalidNumber()
	}
	return l.numericSuffix(token.Integer)
}

// scanDigitRun consumes a run of digits separated by underscores,
// requiring at least one digit.
func (l *Lexer) scanDigitRun(digit func(byte) bool) bool {
	c, ok := l.peek()
	if !ok || !digit(c) {
		return false
	}
	l.advance()
	return l.continueDigitRun(digit)
}

// continueDigitRun extends a digit run already holding one digit.
// Returns false when an underscore is not followed by a digit.
func (l *Lexer) continueDigitRun(digit func(byte) bool) bool {
	for {
		c, ok := l.peek()
		if !ok {
			return true
		}
		switch {
		case digit(c):
			l.advance()
		case c == '_':
			n, ok := l.peekAt(1)
			if !ok || !digit(n) {
				l.advance() // include the bad underscore in the span
				return false
			}
			l.advance()
			l.advance()
		default:
			return true
		}
	}
}

// numericSuffix consumes at most one 'r' (rational) and one 'i'
// (imaginary) suffix, in either order. The last suffix applied
// determines the kind.
func (l *Lexer) numericSuffix(kind token.Kind) token.Token {
	var sawRational, sawImaginary bool
	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		if c == 'r' && !sawRational {
			l.advance()
			sawRational = true
			kind = token.RationalNumber
			continue
		}
		if c == 'i' && !sawImaginary {
			l.advance()
			sawImaginary = true
			kind = token.ImaginaryNumber
			continue
		}
		break
	}
	return l.token(kind)
}

func (l *Lexer) invalidNumber() token.Token {
	l.error(l.spanFrom(l.start), "invalid-number", "malformed numeric literal")
	return l.token(token.Invalid)
}
