package lexer

import "github.com/rubytools/rubylex/token"

// definedLexeme is the one keyword carrying a predicate suffix.
const definedLexeme = "defined?"

// lexIdentifierOrKeyword classifies an identifier run whose first byte
// has already been consumed. A trailing '!' or '?' is part of the
// identifier unless followed by '=' (so 'a!=b' stays a comparison).
// Keywords are only recognized when the previous token is not '.',
// which keeps 'foo.class' a method call.
func (l *Lexer) lexIdentifierOrKeyword() token.Kind {
	l.consumeIdentifierRun()

	if c, ok := l.peek(); ok && (c == '!' || c == '?') {
		if n, ok := l.peekAt(1); !ok || n != '=' {
			l.advance()
			if string(l.source[l.start:l.pos]) == definedLexeme && l.prev.Kind != token.Dot {
				return token.KeywordDefined
			}
			return token.Identifier
		}
	}

	text := string(l.source[l.start:l.pos])
	if l.prev.Kind != token.Dot {
		if kind, ok := token.LookupKeyword(text); ok {
			return kind
		}
	}
	if isUpperAlpha(l.source[l.start]) {
		return token.Constant
	}
	return token.Identifier
}
