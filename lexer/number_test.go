package lexer

import (
	"testing"

	"github.com/rubytools/rubylex/internal/testutil"
	"github.com/rubytools/rubylex/token"
)

func TestDecimalIntegers(t *testing.T) {
	texts := tokenTexts("0 1 42 1_000_000")
	testutil.SliceEqual(t, []string{"0", "1", "42", "1_000_000"}, texts, "token texts")

	kinds := tokenKinds("0 1 42 1_000_000")
	expected := []token.Kind{
		token.Integer, token.Integer, token.Integer, token.Integer, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestIntegerBases(t *testing.T) {
	kinds := tokenKinds("0xFF 0b11 0o17 017 0d9")
	expected := []token.Kind{
		token.Integer, token.Integer, token.Integer,
		token.Integer, token.Integer, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	texts := tokenTexts("0xFF 0b11 0o17 017 0d9")
	testutil.SliceEqual(t, []string{"0xFF", "0b11", "0o17", "017", "0d9"}, texts, "token texts")
}

func TestBaseCaseVariants(t *testing.T) {
	kinds := tokenKinds("0XaB 0B01 0O7 0D1_2")
	expected := []token.Kind{
		token.Integer, token.Integer, token.Integer, token.Integer, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestUnderscoreRules(t *testing.T) {
	kinds := tokenKinds("1_000_")
	expected := []token.Kind{token.Invalid, token.EOF}
	testutil.SliceEqual(t, expected, kinds, "trailing underscore")

	kinds = tokenKinds("0b1_1")
	testutil.SliceEqual(t, []token.Kind{token.Integer, token.EOF}, kinds, "based underscore")

	kinds = tokenKinds("0x_1")
	testutil.Equal(t, token.Invalid, kinds[0], "underscore before first digit")
}

func TestMissingBaseDigits(t *testing.T) {
	for _, source := range []string{"0b", "0o", "0x", "0d"} {
		kinds := tokenKinds(source)
		testutil.Equal(t, token.Invalid, kinds[0], "kind for %s", source)
	}

	lx := New([]byte("0x"), nil)
	lx.Tokenize()
	diags := lx.Diagnostics()
	testutil.Len(t, diags, 1, "diagnostic count")
	testutil.Equal(t, "invalid-number", diags[0].Code, "diagnostic code")
}

func TestFloats(t *testing.T) {
	texts := tokenTexts("1.5 0.25 1.5e-3 2e10 3E+4")
	testutil.SliceEqual(t, []string{"1.5", "0.25", "1.5e-3", "2e10", "3E+4"}, texts, "token texts")

	kinds := tokenKinds("1.5 0.25 1.5e-3 2e10 3E+4")
	expected := []token.Kind{
		token.Float, token.Float, token.Float, token.Float, token.Float, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestDotWithoutDigitIsMethodCall(t *testing.T) {
	kinds := tokenKinds("1.succ")
	expected := []token.Kind{
		token.Integer, token.Dot, token.Identifier, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestExponentRequiresDigits(t *testing.T) {
	kinds := tokenKinds("1e")
	testutil.Equal(t, token.Invalid, kinds[0], "bare exponent")

	kinds = tokenKinds("1e+")
	testutil.Equal(t, token.Invalid, kinds[0], "signed exponent without digits")
}

func TestRationalAndImaginarySuffixes(t *testing.T) {
	kinds := tokenKinds("2r 3i 1.5r 2ri")
	expected := []token.Kind{
		token.RationalNumber, token.ImaginaryNumber,
		token.RationalNumber, token.ImaginaryNumber, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	texts := tokenTexts("2ri")
	testutil.SliceEqual(t, []string{"2ri"}, texts, "both suffixes consumed")
}

func TestNumericScannerScenario(t *testing.T) {
	kinds := tokenKinds("0xFF 0b11 0o17 017 0d9 1.5e-3 2r 3i")
	expected := []token.Kind{
		token.Integer, token.Integer, token.Integer, token.Integer,
		token.Integer, token.Float, token.RationalNumber,
		token.ImaginaryNumber, token.EOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestIntegerRoundTrip(t *testing.T) {
	// Any lexeme emitted as INTEGER lexes to INTEGER again.
	sources := []string{"0xFF 0b11 0o17 017 0d9 42 1_0", "0 99_99"}
	for _, source := range sources {
		lx := New([]byte(source), nil)
		tokens, _ := lx.Tokenize()
		for _, tok := range tokens {
			if tok.Kind != token.Integer {
				continue
			}
			again := tokenKinds(source[tok.Span.Start:tok.Span.End])
			testutil.SliceEqual(t, []token.Kind{token.Integer, token.EOF}, again,
				"round trip of %q", source[tok.Span.Start:tok.Span.End])
		}
	}
}
