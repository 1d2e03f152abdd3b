package lexer

import (
	"testing"

	"github.com/rubytools/rubylex/internal/testutil"
	"github.com/rubytools/rubylex/token"
)

// Helper to tokenize and get kinds only.
func tokenKinds(source string) []token.Kind {
	lx := New([]byte(source), nil)
	tokens, _ := lx.Tokenize()
	kinds := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

// Helper to tokenize and get text slices, excluding EOF.
func tokenTexts(source string) []string {
	lx := New([]byte(source), nil)
	tokens, _ := lx.Tokenize()
	var texts []string
	for _, t := range tokens {
		if t.Kind != token.EOF {
			texts = append(texts, source[t.Span.Start:t.Span.End])
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	kinds := tokenKinds("")
	testutil.SliceEqual(t, []token.Kind{token.EOF}, kinds, "empty input")
}

func TestWhitespaceOnly(t *testing.T) {
	kinds := tokenKinds("   \t  ")
	testutil.SliceEqual(t, []token.Kind{token.EOF}, kinds, "whitespace only")
}

func TestEOFSentinels(t *testing.T) {
	testutil.SliceEqual(t, []token.Kind{token.Identifier, token.EOF}, tokenKinds("a\x00b"), "NUL")
	testutil.SliceEqual(t, []token.Kind{token.EOF}, tokenKinds("\x04rest"), "^D")
	testutil.SliceEqual(t, []token.Kind{token.EOF}, tokenKinds("\x1arest"), "^Z")
}

func TestSimplePunctuation(t *testing.T) {
	kinds := tokenKinds(", ( ) ; ] [ { }")
	expected := []token.Kind{
		token.Comma, token.ParenthesisLeft, token.ParenthesisRight,
		token.Semicolon, token.BracketRight, token.BracketLeft,
		token.BraceLeft, token.BraceRight, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestNewline(t *testing.T) {
	kinds := tokenKinds("a\nb")
	expected := []token.Kind{token.Identifier, token.Newline, token.Identifier, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestComment(t *testing.T) {
	texts := tokenTexts("# a comment\nx")
	testutil.SliceEqual(t, []string{"# a comment\n", "x"}, texts, "token texts")

	kinds := tokenKinds("# a comment\nx")
	expected := []token.Kind{token.Comment, token.Identifier, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestCommentAtEOF(t *testing.T) {
	kinds := tokenKinds("# no newline")
	expected := []token.Kind{token.Comment, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestStarOperators(t *testing.T) {
	kinds := tokenKinds("** *= * **=")
	expected := []token.Kind{
		token.StarStar, token.StarEqual, token.Star, token.StarStarEqual, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestBangOperators(t *testing.T) {
	kinds := tokenKinds("!= !~ !")
	expected := []token.Kind{
		token.BangEqual, token.BangTilde, token.Bang, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestEqualOperators(t *testing.T) {
	kinds := tokenKinds("=== == =~ => =")
	expected := []token.Kind{
		token.EqualEqualEqual, token.EqualEqual, token.EqualTilde,
		token.EqualGreater, token.Equal, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestLessOperators(t *testing.T) {
	kinds := tokenKinds("<=> <= <<= << <")
	expected := []token.Kind{
		token.LessEqualGreater, token.LessEqual, token.LessLessEqual,
		token.LessLess, token.Less, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestHeredocOpenersAreStubbed(t *testing.T) {
	// Heredocs are deliberately unsupported: the opener ends the stream.
	kinds := tokenKinds("a <<-END")
	expected := []token.Kind{token.Identifier, token.EOF, token.EOF}
	testutil.SliceEqual(t, expected[:2], kinds[:2], "squiggly-less heredoc")

	kinds = tokenKinds("a <<~END")
	testutil.Equal(t, token.EOF, kinds[1], "squiggly heredoc")
}

func TestGreaterOperators(t *testing.T) {
	kinds := tokenKinds(">>= >> >= >")
	expected := []token.Kind{
		token.GreaterGreaterEqual, token.GreaterGreater,
		token.GreaterEqual, token.Greater, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestAmpersandPipeOperators(t *testing.T) {
	kinds := tokenKinds("&&= && &= & ||= || |= |")
	expected := []token.Kind{
		token.AmpersandAmpersandEqual, token.AmpersandAmpersand,
		token.AmpersandEqual, token.Ampersand,
		token.PipePipeEqual, token.PipePipe,
		token.PipeEqual, token.Pipe, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestArithmeticOperators(t *testing.T) {
	kinds := tokenKinds("+= + -= -> - ^= ^ ~ %=")
	expected := []token.Kind{
		token.PlusEqual, token.Plus, token.MinusEqual, token.MinusGreater,
		token.Minus, token.CaretEqual, token.Caret, token.Tilde,
		token.PercentEqual, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestDotOperators(t *testing.T) {
	kinds := tokenKinds("... .. .")
	expected := []token.Kind{token.DotDotDot, token.DotDot, token.Dot, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestUnaryMethodOperators(t *testing.T) {
	// !@, +@, -@, ~@ are only operator methods after 'def' or '.'.
	kinds := tokenKinds("def !@")
	testutil.SliceEqual(t, []token.Kind{token.KeywordDef, token.BangAt, token.EOF},
		kinds, "def !@")

	kinds = tokenKinds("x.-@")
	testutil.SliceEqual(t,
		[]token.Kind{token.Identifier, token.Dot, token.MinusAt, token.EOF},
		kinds, "x.-@")

	kinds = tokenKinds("def +@")
	testutil.SliceEqual(t, []token.Kind{token.KeywordDef, token.PlusAt, token.EOF},
		kinds, "def +@")

	kinds = tokenKinds("def ~@")
	testutil.SliceEqual(t, []token.Kind{token.KeywordDef, token.TildeAt, token.EOF},
		kinds, "def ~@")

	// Without the context the '@' starts a variable instead.
	kinds = tokenKinds("!@a")
	testutil.SliceEqual(t,
		[]token.Kind{token.Bang, token.InstanceVariable, token.EOF},
		kinds, "bare !@a")
}

func TestBracketAfterDot(t *testing.T) {
	kinds := tokenKinds("x.[] 1")
	expected := []token.Kind{
		token.Identifier, token.Dot, token.BracketLeftRight,
		token.Integer, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "x.[]")

	kinds = tokenKinds("x[1]")
	expected = []token.Kind{
		token.Identifier, token.BracketLeft, token.Integer,
		token.BracketRight, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "x[1]")
}

func TestLambda(t *testing.T) {
	kinds := tokenKinds("-> { 1 }")
	expected := []token.Kind{
		token.MinusGreater, token.LambdaBegin, token.Integer,
		token.BraceRight, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestSlashDivisionVersusRegexp(t *testing.T) {
	kinds := tokenKinds("a / b")
	expected := []token.Kind{
		token.Identifier, token.Slash, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "division")

	kinds = tokenKinds("a /= b")
	expected = []token.Kind{
		token.Identifier, token.SlashEqual, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "slash equal")
}

func TestColonForms(t *testing.T) {
	kinds := tokenKinds("a::b")
	expected := []token.Kind{
		token.Identifier, token.ColonColon, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "scope operator")

	kinds = tokenKinds("x ? y : z")
	expected = []token.Kind{
		token.Identifier, token.QuestionMark, token.Identifier,
		token.Colon, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "ternary")
}

func TestCharacterLiteral(t *testing.T) {
	texts := tokenTexts("?a")
	testutil.SliceEqual(t, []string{"?a"}, texts, "token texts")

	kinds := tokenKinds("?a ?_ ?9")
	expected := []token.Kind{
		token.CharacterLiteral, token.CharacterLiteral,
		token.CharacterLiteral, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestKeywords(t *testing.T) {
	kinds := tokenKinds("def end if unless while module class begin rescue ensure")
	expected := []token.Kind{
		token.KeywordDef, token.KeywordEnd, token.KeywordIf,
		token.KeywordUnless, token.KeywordWhile, token.KeywordModule,
		token.KeywordClass, token.KeywordBegin, token.KeywordRescue,
		token.KeywordEnsure, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestUpcaseKeywords(t *testing.T) {
	kinds := tokenKinds("BEGIN END __FILE__ __LINE__ __ENCODING__")
	expected := []token.Kind{
		token.KeywordBeginUpcase, token.KeywordEndUpcase, token.KeywordFile,
		token.KeywordLine, token.KeywordEncoding, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestKeywordAfterDotIsIdentifier(t *testing.T) {
	kinds := tokenKinds("x.class")
	expected := []token.Kind{
		token.Identifier, token.Dot, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "x.class")

	kinds = tokenKinds("class")
	testutil.SliceEqual(t, []token.Kind{token.KeywordClass, token.EOF}, kinds, "bare class")
}

func TestConstantsAndIdentifiers(t *testing.T) {
	kinds := tokenKinds("Foo bar _baz FOO_BAR")
	expected := []token.Kind{
		token.Constant, token.Identifier, token.Identifier,
		token.Constant, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestPredicateAndBangSuffix(t *testing.T) {
	texts := tokenTexts("empty? save!")
	testutil.SliceEqual(t, []string{"empty?", "save!"}, texts, "token texts")

	kinds := tokenKinds("empty? save!")
	expected := []token.Kind{token.Identifier, token.Identifier, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	// The suffix is not consumed when '=' follows, so comparisons survive.
	kinds = tokenKinds("a!=b")
	expected = []token.Kind{
		token.Identifier, token.BangEqual, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "a!=b")
}

func TestDefined(t *testing.T) {
	kinds := tokenKinds("defined?(x)")
	expected := []token.Kind{
		token.KeywordDefined, token.ParenthesisLeft, token.Identifier,
		token.ParenthesisRight, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "defined?(x)")

	// After '.' it is a plain method call.
	kinds = tokenKinds("x.defined?")
	expected = []token.Kind{
		token.Identifier, token.Dot, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "x.defined?")
}

func TestLabels(t *testing.T) {
	kinds := tokenKinds("{a: 1}")
	expected := []token.Kind{
		token.BraceLeft, token.Label, token.Integer,
		token.BraceRight, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "{a: 1}")

	texts := tokenTexts("{a: 1}")
	testutil.SliceEqual(t, []string{"{", "a:", "1", "}"}, texts, "label text")

	// '::' after an identifier is scope resolution, not a label.
	kinds = tokenKinds("A::B")
	expected = []token.Kind{
		token.Constant, token.ColonColon, token.Constant, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "A::B")
}

func TestGlobalVariables(t *testing.T) {
	texts := tokenTexts("$foo $LOAD_PATH $~ $? $!")
	testutil.SliceEqual(t, []string{"$foo", "$LOAD_PATH", "$~", "$?", "$!"},
		texts, "token texts")

	kinds := tokenKinds("$foo $~ $\"")
	expected := []token.Kind{
		token.GlobalVariable, token.GlobalVariable, token.GlobalVariable, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestBackReferences(t *testing.T) {
	kinds := tokenKinds("$& $` $' $+")
	expected := []token.Kind{
		token.BackReference, token.BackReference,
		token.BackReference, token.BackReference, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestNthReferences(t *testing.T) {
	texts := tokenTexts("$1 $12")
	testutil.SliceEqual(t, []string{"$1", "$12"}, texts, "token texts")

	kinds := tokenKinds("$1 $12")
	expected := []token.Kind{token.NthReference, token.NthReference, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestInstanceAndClassVariables(t *testing.T) {
	texts := tokenTexts("@foo @@bar")
	testutil.SliceEqual(t, []string{"@foo", "@@bar"}, texts, "token texts")

	kinds := tokenKinds("@foo @@bar")
	expected := []token.Kind{
		token.InstanceVariable, token.ClassVariable, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	// '@' must be followed by an identifier start.
	kinds = tokenKinds("@1")
	expected = []token.Kind{token.Invalid, token.Integer, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "@1")
}

func TestInvalidBytes(t *testing.T) {
	kinds := tokenKinds("\\")
	testutil.SliceEqual(t, []token.Kind{token.Invalid, token.EOF}, kinds, "backslash")

	// Non-ASCII bytes are not identifier characters.
	kinds = tokenKinds("\xc3\xa9")
	testutil.Equal(t, token.Invalid, kinds[0], "non-ASCII byte")

	lx := New([]byte("\\"), nil)
	lx.Tokenize()
	diags := lx.Diagnostics()
	testutil.Len(t, diags, 1, "diagnostic count")
	testutil.Equal(t, "invalid-token", diags[0].Code, "diagnostic code")
}

func TestMethodDefinitionScenario(t *testing.T) {
	kinds := tokenKinds("def foo!(x); x.class; end")
	expected := []token.Kind{
		token.KeywordDef, token.Identifier, token.ParenthesisLeft,
		token.Identifier, token.ParenthesisRight, token.Semicolon,
		token.Identifier, token.Dot, token.Identifier, token.Semicolon,
		token.KeywordEnd, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	texts := tokenTexts("def foo!(x); x.class; end")
	testutil.Equal(t, "foo!", texts[1], "bang method name")
	testutil.Equal(t, "class", texts[8], "method call, not keyword")
}

func TestEOFIdempotence(t *testing.T) {
	lx := New([]byte("a"), nil)
	var last token.Token
	for i := 0; i < 5; i++ {
		last = lx.Next()
	}
	testutil.Equal(t, token.EOF, last.Kind, "EOF is sticky")
	testutil.Equal(t, token.EOF, lx.Next().Kind, "EOF stays sticky")
}

func TestSpanInvariants(t *testing.T) {
	sources := []string{
		"def foo!(x); x.class; end",
		"\"a#{b}c\" + %w[x y] # done\n",
		"0xFF 1.5e-3 :sym /re/i",
		"=begin\ndoc\n=end\n$stdout << @x",
	}
	for _, source := range sources {
		lx := New([]byte(source), nil)
		tokens, _ := lx.Tokenize()
		var prevStart token.ByteOffset
		for _, tok := range tokens {
			testutil.True(t, tok.Span.Start <= tok.Span.End, "start <= end in %q", source)
			testutil.True(t, int(tok.Span.End) <= len(source), "end <= len in %q", source)
			testutil.True(t, tok.Span.Start >= prevStart, "monotone starts in %q", source)
			prevStart = tok.Span.Start
		}
		testutil.Equal(t, token.EOF, tokens[len(tokens)-1].Kind, "stream ends with EOF")
	}
}

func TestDeterministicStreams(t *testing.T) {
	source := []byte("\"a#{\"b#{c}\"}\" % %w[d e]")
	first, _ := New(source, nil).Tokenize()
	second, _ := New(source, nil).Tokenize()
	testutil.SliceEqual(t, first, second, "independent lexers agree")
}

func TestLineCounting(t *testing.T) {
	lx := New([]byte("a\nb\n# c\nd"), nil)
	lx.Tokenize()
	testutil.Equal(t, 4, lx.Line(), "line counter")
}
