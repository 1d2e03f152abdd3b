package lexer

import (
	"bytes"
	"log/slog"

	"github.com/rubytools/rubylex/token"
)

// embdocOpen is matched after '=' at the start of a line.
var embdocOpen = []byte("begin\n")

// lexDefault scans the next token in code context. ModeEmbExpr uses
// the same dispatcher; '}' consults the mode stack to decide between
// BRACE_RIGHT and EMBEXPR_END.
func (l *Lexer) lexDefault() token.Token {
	l.skipInlineWhitespace()
	l.start = l.pos

	b, ok := l.advance()
	if !ok {
		return l.token(token.EOF)
	}

	switch b {
	case 0, 0x04, 0x1A:
		// NUL, ^D, and ^Z all end the script.
		return l.token(token.EOF)

	case '#':
		return l.lexComment()

	case '\n':
		l.line++
		return l.token(token.Newline)

	case ',':
		return l.token(token.Comma)
	case '(':
		return l.token(token.ParenthesisLeft)
	case ')':
		return l.token(token.ParenthesisRight)
	case ';':
		return l.token(token.Semicolon)
	case ']':
		return l.token(token.BracketRight)

	case '[':
		if l.prev.Kind == token.Dot && l.match(']') {
			return l.token(token.BracketLeftRight)
		}
		return l.token(token.BracketLeft)

	case '{':
		if l.prev.Kind == token.MinusGreater {
			return l.token(token.LambdaBegin)
		}
		return l.token(token.BraceLeft)

	case '}':
		if l.modes.top().mode == ModeEmbExpr {
			l.modes.pop()
			return l.token(token.EmbExprEnd)
		}
		return l.token(token.BraceRight)

	case '*':
		if l.match('*') {
			if l.match('=') {
				return l.token(token.StarStarEqual)
			}
			return l.token(token.StarStar)
		}
		if l.match('=') {
			return l.token(token.StarEqual)
		}
		return l.token(token.Star)

	case '!':
		if l.match('=') {
			return l.token(token.BangEqual)
		}
		if l.match('~') {
			return l.token(token.BangTilde)
		}
		if l.afterUnaryMethodContext() && l.match('@') {
			return l.token(token.BangAt)
		}
		return l.token(token.Bang)

	case '=':
		if l.atEmbDocOpener() {
			l.pos += len(embdocOpen)
			l.line++
			l.modes.push(frame{mode: ModeEmbDoc})
			l.Log(slog.LevelDebug, "entering embdoc", slog.Int("offset", l.start))
			return l.token(token.EmbDocBegin)
		}
		if l.match('=') {
			if l.match('=') {
				return l.token(token.EqualEqualEqual)
			}
			return l.token(token.EqualEqual)
		}
		if l.match('~') {
			return l.token(token.EqualTilde)
		}
		if l.match('>') {
			return l.token(token.EqualGreater)
		}
		return l.token(token.Equal)

	case '<':
		if l.match('<') {
			if l.match('=') {
				return l.token(token.LessLessEqual)
			}
			// Heredoc openers are deliberately unsupported; the stream
			// ends here rather than producing misleading tokens.
			if l.match('-') || l.match('~') {
				return l.token(token.EOF)
			}
			return l.token(token.LessLess)
		}
		if l.match('=') {
			if l.match('>') {
				return l.token(token.LessEqualGreater)
			}
			return l.token(token.LessEqual)
		}
		return l.token(token.Less)

	case '>':
		if l.match('>') {
			if l.match('=') {
				return l.token(token.GreaterGreaterEqual)
			}
			return l.token(token.GreaterGreater)
		}
		if l.match('=') {
			return l.token(token.GreaterEqual)
		}
		return l.token(token.Greater)

	case '&':
		if l.match('&') {
			if l.match('=') {
				return l.token(token.AmpersandAmpersandEqual)
			}
			return l.token(token.AmpersandAmpersand)
		}
		if l.match('=') {
			return l.token(token.AmpersandEqual)
		}
		return l.token(token.Ampersand)

	case '|':
		if l.match('|') {
			if l.match('=') {
				return l.token(token.PipePipeEqual)
			}
			return l.token(token.PipePipe)
		}
		if l.match('=') {
			return l.token(token.PipeEqual)
		}
		return l.token(token.Pipe)

	case '+':
		if l.match('=') {
			return l.token(token.PlusEqual)
		}
		if l.afterUnaryMethodContext() && l.match('@') {
			return l.token(token.PlusAt)
		}
		return l.token(token.Plus)

	case '-':
		if l.match('=') {
			return l.token(token.MinusEqual)
		}
		if l.match('>') {
			return l.token(token.MinusGreater)
		}
		if l.afterUnaryMethodContext() && l.match('@') {
			return l.token(token.MinusAt)
		}
		return l.token(token.Minus)

	case '.':
		if l.match('.') {
			if l.match('.') {
				return l.token(token.DotDotDot)
			}
			return l.token(token.DotDot)
		}
		return l.token(token.Dot)

	case '^':
		if l.match('=') {
			return l.token(token.CaretEqual)
		}
		return l.token(token.Caret)

	case '~':
		if l.afterUnaryMethodContext() && l.match('@') {
			return l.token(token.TildeAt)
		}
		return l.token(token.Tilde)

	case '%':
		return l.lexPercent()

	case '/':
		if l.match('=') {
			return l.token(token.SlashEqual)
		}
		if c, ok := l.peek(); ok && c == ' ' {
			// Followed by a space: division, not a regexp opener.
			return l.token(token.Slash)
		}
		l.modes.push(frame{mode: ModeRegexp, term: '/', interp: true})
		return l.token(token.RegexpBegin)

	case ':':
		if l.match(':') {
			return l.token(token.ColonColon)
		}
		if c, ok := l.peek(); ok && isIdentStart(c) {
			l.modes.push(frame{mode: ModeSymbol})
			return l.token(token.SymbolBegin)
		}
		return l.token(token.Colon)

	case '?':
		if c, ok := l.peek(); ok && isIdentChar(c) {
			l.advance()
			return l.token(token.CharacterLiteral)
		}
		return l.token(token.QuestionMark)

	case '"':
		l.modes.push(frame{mode: ModeString, term: '"', interp: true})
		return l.token(token.StringBegin)

	case '\'':
		l.modes.push(frame{mode: ModeString, term: '\''})
		return l.token(token.StringBegin)

	case '`':
		l.modes.push(frame{mode: ModeString, term: '`', interp: true})
		return l.token(token.Backtick)

	case '$':
		return l.lexGlobalVariable()

	case '@':
		return l.lexAtVariable()

	case '\\':
		// Line continuations are not handled yet.
		return l.invalidToken()

	default:
		if isDecimalDigit(b) {
			return l.lexNumeric(b)
		}
		if isIdentStart(b) {
			kind := l.lexIdentifierOrKeyword()
			// Label detection: identifier followed by a single ':' that
			// is not the start of '::'.
			if c, ok := l.peek(); ok && c == ':' {
				if c2, ok2 := l.peekAt(1); !ok2 || c2 != ':' {
					l.advance()
					kind = token.Label
				}
			}
			return l.token(kind)
		}
		return l.invalidToken()
	}
}

// afterUnaryMethodContext reports whether the previous token allows the
// operator-method forms !@, +@, -@, ~@ (after 'def' or '.').
func (l *Lexer) afterUnaryMethodContext() bool {
	return l.prev.Kind == token.KeywordDef || l.prev.Kind == token.Dot
}

// atEmbDocOpener reports whether the '=' just consumed starts
// '=begin\n' at the beginning of a line. Buffer start counts as a line
// start.
func (l *Lexer) atEmbDocOpener() bool {
	if l.start > 0 && l.source[l.start-1] != '\n' {
		return false
	}
	return bytes.HasPrefix(l.source[l.pos:], embdocOpen)
}

// skipInlineWhitespace skips non-newline whitespace. Whitespace-only
// runs in code context never become tokens.
func (l *Lexer) skipInlineWhitespace() {
	for {
		b, ok := l.peek()
		if !ok || !isInlineSpace(b) {
			return
		}
		l.advance()
	}
}

// lexComment consumes a '#' comment through the end of the line,
// including the trailing newline when present.
func (l *Lexer) lexComment() token.Token {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == 0 {
			break
		}
		l.advance()
	}
	if l.match('\n') {
		l.line++
	}
	return l.token(token.Comment)
}

// lexPercent scans '%' and its literal openers. The byte after the
// type letter is taken raw as the delimiter; the paired closers of
// ( [ { < apply, any other byte terminates itself.
func (l *Lexer) lexPercent() token.Token {
	c, ok := l.peek()
	if !ok {
		return l.token(token.Percent)
	}

	switch c {
	case '=':
		l.advance()
		return l.token(token.PercentEqual)

	case 'i':
		return l.openPercentLiteral(ModeList, false, token.PercentLowerI)
	case 'I':
		return l.openPercentLiteral(ModeList, true, token.PercentUpperI)
	case 'w':
		return l.openPercentLiteral(ModeList, false, token.PercentLowerW)
	case 'W':
		return l.openPercentLiteral(ModeList, true, token.PercentUpperW)
	case 'q':
		return l.openPercentLiteral(ModeString, false, token.StringBegin)
	case 'Q':
		return l.openPercentLiteral(ModeString, true, token.StringBegin)
	case 'x':
		return l.openPercentLiteral(ModeString, true, token.PercentLowerX)
	case 'r':
		return l.openPercentLiteral(ModeRegexp, true, token.RegexpBegin)

	default:
		return l.token(token.Percent)
	}
}

// openPercentLiteral consumes the type letter and the delimiter byte,
// pushes the literal mode, and emits the opener kind.
func (l *Lexer) openPercentLiteral(mode Mode, interp bool, kind token.Kind) token.Token {
	l.advance() // type letter
	delim, _ := l.advance()
	l.modes.push(frame{mode: mode, term: closingDelimiter(delim), interp: interp})
	return l.token(kind)
}

// closingDelimiter maps an opening delimiter to its balanced closer.
func closingDelimiter(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

// invalidToken emits INVALID for the bytes consumed so far and records
// a diagnostic. The cursor has advanced past at least one byte, so
// forward progress is guaranteed.
func (l *Lexer) invalidToken() token.Token {
	l.error(l.spanFrom(l.start), "invalid-token", "unrecognized byte sequence")
	return l.token(token.Invalid)
}
