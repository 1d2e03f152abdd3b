// Package rubylex provides Ruby tokenization for tooling.
package rubylex

import (
	"github.com/rubytools/rubylex/lexer"
	"github.com/rubytools/rubylex/token"
)

// Token is a lexed token with kind and byte span.
type Token = token.Token

// Kind identifies a token type.
type Kind = token.Kind

// Span represents a byte range in source text.
type Span = token.Span

// ByteOffset is a byte position in source text.
type ByteOffset = token.ByteOffset

// Lexer is the mode-stacked lexer over a single buffer.
type Lexer = lexer.Lexer

// Recovery holds the unterminated-literal callbacks.
type Recovery = lexer.Recovery

// RecoveryFunc is one unterminated-literal callback.
type RecoveryFunc = lexer.RecoveryFunc

// Severity represents how critical a diagnostic is.
type Severity = lexer.Severity
