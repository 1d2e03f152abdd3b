package lexer

import (
	"bytes"

	"github.com/rubytools/rubylex/token"
)

// embdocClose is matched at the start of a line inside an embdoc.
var embdocClose = []byte("=end\n")

// lexEmbDoc scans one line of an embedded documentation block. The
// mode is entered immediately after '=begin\n', so the cursor is
// always at a line start here.
func (l *Lexer) lexEmbDoc() token.Token {
	l.start = l.pos

	if l.pos >= len(l.source) {
		return l.unterminated(l.recovery.UnterminatedEmbDoc,
			"unterminated-embdoc", "embedded documentation never closed by =end")
	}

	if bytes.HasPrefix(l.source[l.pos:], embdocClose) {
		l.pos += len(embdocClose)
		l.line++
		l.modes.pop()
		return l.token(token.EmbDocEnd)
	}

	for {
		b, ok := l.advance()
		if !ok {
			return l.unterminated(l.recovery.UnterminatedEmbDoc,
				"unterminated-embdoc", "embedded documentation never closed by =end")
		}
		if b == '\n' {
			l.line++
			return l.token(token.EmbDocLine)
		}
	}
}

// lexList scans the body of a %w/%W/%i/%I word list: whitespace runs
// become WORDS_SEP, everything else up to the terminator becomes
// STRING_CONTENT.
func (l *Lexer) lexList() token.Token {
	l.start = l.pos
	term := l.modes.top().term

	b, ok := l.peek()
	if !ok {
		return l.unterminated(l.recovery.UnterminatedList,
			"unterminated-list", "word list never closed")
	}

	if isWhitespace(b) {
		for {
			c, ok := l.peek()
			if !ok || !isWhitespace(c) {
				break
			}
			if c == '\n' {
				l.line++
			}
			l.advance()
		}
		return l.token(token.WordsSep)
	}

	if b == term {
		l.advance()
		l.modes.pop()
		return l.token(token.StringEnd)
	}

	for {
		c, ok := l.peek()
		if !ok {
			return l.unterminated(l.recovery.UnterminatedList,
				"unterminated-list", "word list never closed")
		}
		if isWhitespace(c) || c == term {
			break
		}
		l.advance()
	}
	return l.token(token.StringContent)
}

// lexRegexp scans the body of a regular expression literal. The
// terminator consumes any trailing option letters.
func (l *Lexer) lexRegexp() token.Token {
	l.start = l.pos
	top := l.modes.top()

	b, ok := l.peek()
	if !ok {
		return l.unterminated(l.recovery.UnterminatedRegexp,
			"unterminated-regexp", "regular expression never closed")
	}

	if b == top.term {
		l.advance()
		for {
			c, ok := l.peek()
			if !ok || !isRegexpOption(c) {
				break
			}
			l.advance()
		}
		l.modes.pop()
		return l.token(token.RegexpEnd)
	}

	if tok, ok := l.interpolationPush(top); ok {
		return tok
	}
	return l.lexLiteralContent(top, l.recovery.UnterminatedRegexp,
		"unterminated-regexp", "regular expression never closed")
}

// lexString scans the body of a string, command string, or percent
// string literal.
func (l *Lexer) lexString() token.Token {
	l.start = l.pos
	top := l.modes.top()

	b, ok := l.peek()
	if !ok {
		return l.unterminated(l.recovery.UnterminatedString,
			"unterminated-string", "string literal never closed")
	}

	if b == top.term {
		l.advance()
		l.modes.pop()
		return l.token(token.StringEnd)
	}

	if tok, ok := l.interpolationPush(top); ok {
		return tok
	}
	return l.lexLiteralContent(top, l.recovery.UnterminatedString,
		"unterminated-string", "string literal never closed")
}

// interpolationPush recognizes '#{' at the start of a token in an
// interpolating literal, pushes ModeEmbExpr, and emits EMBEXPR_BEGIN.
// A '#' followed by anything else (including '@' and '$') is ordinary
// content and is not consumed here.
func (l *Lexer) interpolationPush(top *frame) (token.Token, bool) {
	if !top.interp {
		return token.Token{}, false
	}
	b, ok := l.peek()
	if !ok || b != '#' {
		return token.Token{}, false
	}
	if c, ok := l.peekAt(1); !ok || c != '{' {
		return token.Token{}, false
	}
	l.pos += 2
	l.modes.push(frame{mode: ModeEmbExpr})
	return l.token(token.EmbExprBegin), true
}

// lexLiteralContent consumes a STRING_CONTENT run: bytes up to the
// terminator or, in interpolating literals, up to a '#{' trigger. When
// content precedes '#{', the content is emitted first and the trigger
// is left for the next call.
func (l *Lexer) lexLiteralContent(top *frame, fn RecoveryFunc, code, message string) token.Token {
	for {
		c, ok := l.peek()
		if !ok {
			return l.unterminated(fn, code, message)
		}
		if c == top.term {
			break
		}
		if top.interp && c == '#' {
			if n, ok := l.peekAt(1); ok && n == '{' {
				break
			}
		}
		if c == '\n' {
			l.line++
		}
		l.advance()
	}
	return l.token(token.StringContent)
}

// lexSymbol scans the identifier of a bare symbol. The mode pops
// unconditionally on entry; a trailing '=' collapses the kind to
// IDENTIFIER (setter form).
func (l *Lexer) lexSymbol() token.Token {
	l.modes.pop()
	l.start = l.pos

	// The dispatcher only pushes this mode when an identifier-start
	// byte follows the ':'.
	l.advance()
	kind := l.lexIdentifierOrKeyword()
	if l.match('=') {
		kind = token.Identifier
	}
	return l.token(kind)
}
