package lexer

import "github.com/rubytools/rubylex/token"

// RecoveryFunc is invoked when the lexer reaches the end of the buffer
// inside a literal mode without finding its terminator. The callback
// may mutate lexer state for recovery and returns the token kind to
// emit for the error token. Returning token.EOF halts the stream.
//
// Callbacks must not re-enter Next.
type RecoveryFunc func(*Lexer) token.Kind

// Recovery holds one callback per unterminated-literal class.
// Nil slots fall back to the default, which returns token.EOF.
type Recovery struct {
	UnterminatedEmbDoc RecoveryFunc
	UnterminatedList   RecoveryFunc
	UnterminatedRegexp RecoveryFunc
	UnterminatedString RecoveryFunc
}

func haltAtEOF(*Lexer) token.Kind {
	return token.EOF
}

// DefaultRecovery returns the default recovery table: every class
// terminates the stream cleanly with token.EOF.
func DefaultRecovery() Recovery {
	return Recovery{
		UnterminatedEmbDoc: haltAtEOF,
		UnterminatedList:   haltAtEOF,
		UnterminatedRegexp: haltAtEOF,
		UnterminatedString: haltAtEOF,
	}
}

// fill replaces nil slots with the default handler.
func (r Recovery) fill() Recovery {
	if r.UnterminatedEmbDoc == nil {
		r.UnterminatedEmbDoc = haltAtEOF
	}
	if r.UnterminatedList == nil {
		r.UnterminatedList = haltAtEOF
	}
	if r.UnterminatedRegexp == nil {
		r.UnterminatedRegexp = haltAtEOF
	}
	if r.UnterminatedString == nil {
		r.UnterminatedString = haltAtEOF
	}
	return r
}
