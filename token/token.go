// Package token defines the token vocabulary emitted by the rubylex lexer.
package token

// ByteOffset is a byte position in source text.
type ByteOffset uint32

// Span represents a range in source text.
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// NewSpan creates a Span from start and end byte offsets.
func NewSpan(start, end ByteOffset) Span {
	return Span{Start: start, End: end}
}

// Token is a token with kind and source span. The byte slice
// source[Span.Start:Span.End] is the token's lexeme; interpretation
// (numeric value, unescaping) is the consumer's responsibility.
type Token struct {
	Kind Kind
	Span Span
}

// New creates a new token.
func New(kind Kind, span Span) Token {
	return Token{Kind: kind, Span: span}
}

// Text returns the token's lexeme within source.
func (t Token) Text(source []byte) string {
	return string(source[t.Span.Start:t.Span.End])
}

// Kind identifies a token type. The enumeration is closed and stable.
type Kind int

const (
	// === Special ===

	// Invalid is a malformed token (bad numeric suffix, stray byte, ...).
	Invalid Kind = iota
	// EOF is end of input.
	EOF

	// === Punctuators ===

	// Ampersand is '&'.
	Ampersand
	// AmpersandAmpersand is '&&'.
	AmpersandAmpersand
	// AmpersandAmpersandEqual is '&&='.
	AmpersandAmpersandEqual
	// AmpersandEqual is '&='.
	AmpersandEqual
	// Backtick is '`', opening a command string.
	Backtick
	// Bang is '!'.
	Bang
	// BangAt is '!@', valid only after 'def' or '.'.
	BangAt
	// BangEqual is '!='.
	BangEqual
	// BangTilde is '!~'.
	BangTilde
	// BraceLeft is '{'.
	BraceLeft
	// BraceRight is '}'.
	BraceRight
	// BracketLeft is '['.
	BracketLeft
	// BracketLeftRight is '[]' after '.'.
	BracketLeftRight
	// BracketRight is ']'.
	BracketRight
	// Caret is '^'.
	Caret
	// CaretEqual is '^='.
	CaretEqual
	// Colon is ':'.
	Colon
	// ColonColon is '::'.
	ColonColon
	// Comma is ','.
	Comma
	// Dot is '.'.
	Dot
	// DotDot is '..'.
	DotDot
	// DotDotDot is '...'.
	DotDotDot
	// Equal is '='.
	Equal
	// EqualEqual is '=='.
	EqualEqual
	// EqualEqualEqual is '==='.
	EqualEqualEqual
	// EqualGreater is '=>'.
	EqualGreater
	// EqualTilde is '=~'.
	EqualTilde
	// Greater is '>'.
	Greater
	// GreaterEqual is '>='.
	GreaterEqual
	// GreaterGreater is '>>'.
	GreaterGreater
	// GreaterGreaterEqual is '>>='.
	GreaterGreaterEqual
	// LambdaBegin is '{' immediately after '->'.
	LambdaBegin
	// Less is '<'.
	Less
	// LessEqual is '<='.
	LessEqual
	// LessEqualGreater is '<=>'.
	LessEqualGreater
	// LessLess is '<<'.
	LessLess
	// LessLessEqual is '<<='.
	LessLessEqual
	// Minus is '-'.
	Minus
	// MinusAt is '-@', valid only after 'def' or '.'.
	MinusAt
	// MinusEqual is '-='.
	MinusEqual
	// MinusGreater is '->'.
	MinusGreater
	// Newline is '\n' in code context.
	Newline
	// ParenthesisLeft is '('.
	ParenthesisLeft
	// ParenthesisRight is ')'.
	ParenthesisRight
	// Percent is '%'.
	Percent
	// PercentEqual is '%='.
	PercentEqual
	// Pipe is '|'.
	Pipe
	// PipeEqual is '|='.
	PipeEqual
	// PipePipe is '||'.
	PipePipe
	// PipePipeEqual is '||='.
	PipePipeEqual
	// Plus is '+'.
	Plus
	// PlusAt is '+@', valid only after 'def' or '.'.
	PlusAt
	// PlusEqual is '+='.
	PlusEqual
	// QuestionMark is '?'.
	QuestionMark
	// Semicolon is ';'.
	Semicolon
	// Slash is '/' used as division.
	Slash
	// SlashEqual is '/='.
	SlashEqual
	// Star is '*'.
	Star
	// StarEqual is '*='.
	StarEqual
	// StarStar is '**'.
	StarStar
	// StarStarEqual is '**='.
	StarStarEqual
	// Tilde is '~'.
	Tilde
	// TildeAt is '~@', valid only after 'def' or '.'.
	TildeAt

	// === Literals and identifiers ===

	// BackReference is a regexp back-reference global ($&, $`, $', $+).
	BackReference
	// CharacterLiteral is a '?c' character literal.
	CharacterLiteral
	// ClassVariable is an '@@'-prefixed variable.
	ClassVariable
	// Comment is a '#' comment through end of line.
	Comment
	// Constant is an identifier with an uppercase first byte.
	Constant
	// EmbDocBegin is '=begin' at the start of a line.
	EmbDocBegin
	// EmbDocEnd is '=end' at the start of a line.
	EmbDocEnd
	// EmbDocLine is one line of an embedded documentation block.
	EmbDocLine
	// EmbExprBegin is '#{' inside an interpolating literal.
	EmbExprBegin
	// EmbExprEnd is the '}' closing an embedded expression.
	EmbExprEnd
	// Float is a floating point literal.
	Float
	// GlobalVariable is a '$'-prefixed variable.
	GlobalVariable
	// Identifier is a plain identifier.
	Identifier
	// ImaginaryNumber is a numeric literal with an 'i' suffix.
	ImaginaryNumber
	// InstanceVariable is an '@'-prefixed variable.
	InstanceVariable
	// Integer is an integer literal in any base.
	Integer
	// Label is an identifier immediately followed by a single ':'.
	Label
	// NthReference is a numbered match reference ($1, $2, ...).
	NthReference
	// RationalNumber is a numeric literal with an 'r' suffix.
	RationalNumber
	// RegexpBegin opens a regular expression literal.
	RegexpBegin
	// RegexpEnd closes a regular expression literal, including options.
	RegexpEnd
	// StringBegin opens a string literal.
	StringBegin
	// StringContent is a run of literal content bytes.
	StringContent
	// StringEnd closes a string or word-list literal.
	StringEnd
	// SymbolBegin is the ':' opening a bare symbol.
	SymbolBegin
	// WordsSep is a whitespace run separating word-list entries.
	WordsSep

	// === Percent literal openers ===

	// PercentLowerI is '%i', a non-interpolating symbol list.
	PercentLowerI
	// PercentLowerW is '%w', a non-interpolating word list.
	PercentLowerW
	// PercentLowerX is '%x', an interpolating command string.
	PercentLowerX
	// PercentUpperI is '%I', an interpolating symbol list.
	PercentUpperI
	// PercentUpperW is '%W', an interpolating word list.
	PercentUpperW

	// === Keywords ===

	// KeywordEncoding is '__ENCODING__'.
	KeywordEncoding
	// KeywordFile is '__FILE__'.
	KeywordFile
	// KeywordLine is '__LINE__'.
	KeywordLine
	// KeywordAlias is 'alias'.
	KeywordAlias
	// KeywordAnd is 'and'.
	KeywordAnd
	// KeywordBegin is 'begin'.
	KeywordBegin
	// KeywordBeginUpcase is 'BEGIN'.
	KeywordBeginUpcase
	// KeywordBreak is 'break'.
	KeywordBreak
	// KeywordCase is 'case'.
	KeywordCase
	// KeywordClass is 'class'.
	KeywordClass
	// KeywordDef is 'def'.
	KeywordDef
	// KeywordDefined is 'defined?'.
	KeywordDefined
	// KeywordDo is 'do'.
	KeywordDo
	// KeywordElse is 'else'.
	KeywordElse
	// KeywordElsif is 'elsif'.
	KeywordElsif
	// KeywordEnd is 'end'.
	KeywordEnd
	// KeywordEndUpcase is 'END'.
	KeywordEndUpcase
	// KeywordEnsure is 'ensure'.
	KeywordEnsure
	// KeywordFalse is 'false'.
	KeywordFalse
	// KeywordFor is 'for'.
	KeywordFor
	// KeywordIf is 'if'.
	KeywordIf
	// KeywordIn is 'in'.
	KeywordIn
	// KeywordModule is 'module'.
	KeywordModule
	// KeywordNext is 'next'.
	KeywordNext
	// KeywordNil is 'nil'.
	KeywordNil
	// KeywordNot is 'not'.
	KeywordNot
	// KeywordOr is 'or'.
	KeywordOr
	// KeywordRedo is 'redo'.
	KeywordRedo
	// KeywordRescue is 'rescue'.
	KeywordRescue
	// KeywordRetry is 'retry'.
	KeywordRetry
	// KeywordReturn is 'return'.
	KeywordReturn
	// KeywordSelf is 'self'.
	KeywordSelf
	// KeywordSuper is 'super'.
	KeywordSuper
	// KeywordThen is 'then'.
	KeywordThen
	// KeywordTrue is 'true'.
	KeywordTrue
	// KeywordUndef is 'undef'.
	KeywordUndef
	// KeywordUnless is 'unless'.
	KeywordUnless
	// KeywordUntil is 'until'.
	KeywordUntil
	// KeywordWhen is 'when'.
	KeywordWhen
	// KeywordWhile is 'while'.
	KeywordWhile
	// KeywordYield is 'yield'.
	KeywordYield
)

// IsKeyword returns true if this kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= KeywordEncoding && k <= KeywordYield
}

// IsOperator returns true if this kind is a punctuator or operator.
func (k Kind) IsOperator() bool {
	return k >= Ampersand && k <= TildeAt
}

// BeginsLiteral returns true if this kind opens a lexical mode that
// continues in subsequent tokens.
func (k Kind) BeginsLiteral() bool {
	switch k {
	case StringBegin, Backtick, RegexpBegin, SymbolBegin, EmbDocBegin,
		EmbExprBegin, PercentLowerI, PercentLowerW, PercentLowerX,
		PercentUpperI, PercentUpperW:
		return true
	default:
		return false
	}
}
