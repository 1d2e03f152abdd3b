// Package lexer tokenizes Ruby source text.
//
// The lexer is a mode-stacked state machine: the meaning of each byte
// depends on a stack of lexical contexts (code, string body, regexp
// body, word list, embedded documentation, embedded expression, bare
// symbol). The stack is pushed when a literal opens and popped on the
// matching terminator, so arbitrary nesting of interpolation is
// handled without lookahead.
//
// The lexer is lenient and collects diagnostics rather than failing
// early. It operates on raw bytes; non-ASCII bytes in identifier
// position produce INVALID tokens.
package lexer

import (
	"log/slog"
	"slices"

	"github.com/rubytools/rubylex/internal/types"
	"github.com/rubytools/rubylex/token"
)

// Lexer tokenizes a single source buffer. A Lexer is not safe for
// concurrent use, but distinct Lexers over the same buffer may run in
// parallel because the buffer is never mutated.
type Lexer struct {
	source []byte
	start  int // start of the token being scanned
	pos    int // cursor: next unread byte
	line   int // 1-based, incremented on every consumed '\n'

	prev    token.Token
	current token.Token
	done    bool

	modes       modeStack
	recovery    Recovery
	diagnostics []Diagnostic
	types.Logger
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithRecovery sets the unterminated-literal recovery table. Nil slots
// keep the default behavior of returning token.EOF.
func WithRecovery(r Recovery) Option {
	return func(l *Lexer) { l.recovery = r.fill() }
}

// New creates a new lexer for the given source bytes.
// The logger parameter is optional; pass nil to disable logging.
func New(source []byte, logger *slog.Logger, opts ...Option) *Lexer {
	l := &Lexer{
		source:   source,
		line:     1,
		modes:    newModeStack(),
		recovery: DefaultRecovery(),
		Logger:   types.Logger{L: logger},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("source_len", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
// The returned slice is owned by the caller.
func (l *Lexer) Diagnostics() []Diagnostic {
	return slices.Clone(l.diagnostics)
}

// Previous returns the token emitted before the current one.
func (l *Lexer) Previous() token.Token {
	return l.prev
}

// Current returns the most recently emitted token.
func (l *Lexer) Current() token.Token {
	return l.current
}

// Offset returns the cursor's byte offset.
func (l *Lexer) Offset() int {
	return l.pos
}

// Line returns the 1-based line number at the cursor.
func (l *Lexer) Line() int {
	return l.line
}

// PopMode pops the top lexical mode. Intended for recovery callbacks
// that want to resynchronize instead of halting.
func (l *Lexer) PopMode() {
	l.modes.pop()
}

// Next advances to the next token and returns it. The previous token
// rotates into Previous. Once the EOF token has been emitted, further
// calls keep returning it.
func (l *Lexer) Next() token.Token {
	if l.done {
		return l.current
	}
	l.prev = l.current

	var tok token.Token
	switch l.modes.top().mode {
	case ModeEmbDoc:
		tok = l.lexEmbDoc()
	case ModeList:
		tok = l.lexList()
	case ModeRegexp:
		tok = l.lexRegexp()
	case ModeString:
		tok = l.lexString()
	case ModeSymbol:
		tok = l.lexSymbol()
	default:
		// ModeDefault and ModeEmbExpr share the dispatcher; the only
		// difference is the '}' rule, which consults the mode stack.
		tok = l.lexDefault()
	}

	l.current = tok
	if tok.Kind == token.EOF {
		l.done = true
	}
	l.traceToken(tok)
	return tok
}

// Tokenize tokenizes the entire source and returns all tokens
// (including the trailing EOF) and diagnostics.
func (l *Lexer) Tokenize() ([]token.Token, []Diagnostic) {
	// Ruby source averages roughly 4-6 bytes per token.
	estimated := len(l.source) / 4
	if estimated < 64 {
		estimated = 64
	}
	tokens := make([]token.Token, 0, estimated)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("diagnostics", len(l.diagnostics)))
	return tokens, l.diagnostics
}

// === Cursor primitives ===

// peek returns the byte at the cursor without advancing.
func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

// peekAt returns the byte at offset from the cursor.
func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

// advance returns the byte at the cursor and moves past it.
func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

// match advances iff the byte at the cursor equals b.
func (l *Lexer) match(b byte) bool {
	if l.pos < len(l.source) && l.source[l.pos] == b {
		l.pos++
		return true
	}
	return false
}

// === Token and diagnostic helpers ===

// spanFrom creates a span from start to the cursor.
func (l *Lexer) spanFrom(start int) token.Span {
	return token.Span{
		Start: token.ByteOffset(start),
		End:   token.ByteOffset(l.pos),
	}
}

// token creates a token from the current token start to the cursor.
func (l *Lexer) token(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Span: l.spanFrom(l.start)}
}

// error adds an error diagnostic.
func (l *Lexer) error(span token.Span, code, message string) {
	l.diagnostics = append(l.diagnostics, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Span:     span,
		Message:  message,
	})
}

// unterminated records a diagnostic for an unterminated literal and
// delegates the resulting token kind to the recovery callback.
func (l *Lexer) unterminated(fn RecoveryFunc, code, message string) token.Token {
	l.error(l.spanFrom(l.start), code, message)
	return l.token(fn(l))
}

// traceToken logs a token at trace level with inline guard for zero
// cost when disabled. This is a hot path.
func (l *Lexer) traceToken(tok token.Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}
