package lexer

import "github.com/rubytools/rubylex/token"

// lexGlobalVariable scans a '$'-prefixed variable: punctuation
// specials, regexp back-references, numbered match references, and
// identifier-form globals.
func (l *Lexer) lexGlobalVariable() token.Token {
	c, ok := l.peek()
	if !ok {
		return l.invalidVariable()
	}

	switch c {
	case '~', '*', '$', '?', '!', '@', '/', '\\', ';', ',', '.', '=', ':', '<', '>', '"':
		l.advance()
		return l.token(token.GlobalVariable)
	case '&', '`', '\'', '+':
		l.advance()
		return l.token(token.BackReference)
	}

	if isDecimalDigit(c) {
		for {
			d, ok := l.peek()
			if !ok || !isDecimalDigit(d) {
				break
			}
			l.advance()
		}
		return l.token(token.NthReference)
	}

	if isIdentChar(c) {
		l.consumeIdentifierRun()
		return l.token(token.GlobalVariable)
	}

	return l.invalidVariable()
}

// lexAtVariable scans '@'-prefixed instance variables and
// '@@'-prefixed class variables.
func (l *Lexer) lexAtVariable() token.Token {
	kind := token.InstanceVariable
	if l.match('@') {
		kind = token.ClassVariable
	}

	c, ok := l.peek()
	if !ok || !isIdentStart(c) {
		return l.invalidVariable()
	}
	l.consumeIdentifierRun()
	return l.token(kind)
}

// consumeIdentifierRun consumes a run of identifier characters.
func (l *Lexer) consumeIdentifierRun() {
	for {
		c, ok := l.peek()
		if !ok || !isIdentChar(c) {
			return
		}
		l.advance()
	}
}

func (l *Lexer) invalidVariable() token.Token {
	l.error(l.spanFrom(l.start), "invalid-variable", "malformed variable prefix")
	return l.token(token.Invalid)
}
