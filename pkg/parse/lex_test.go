package parse

import (
	"testing"

	"github.com/keyplexex/itmoscript/pkg/tt"
)

func kinds(src string) []TokenKind {
	var ks []TokenKind
	for _, t := range NewLexer(src).AllTokens() {
		ks = append(ks, t.Kind)
	}
	return ks
}

func lexemes(src string) []string {
	var ls []string
	for _, t := range NewLexer(src).AllTokens() {
		ls = append(ls, t.Lexeme)
	}
	return ls
}

func lines(src string) []int {
	var ls []int
	for _, t := range NewLexer(src).AllTokens() {
		ls = append(ls, t.Line)
	}
	return ls
}

func TestLexer_Kinds(t *testing.T) {
	tt.Test(t, tt.Fn("kinds", kinds), tt.Table{
		tt.Args("").Rets([]TokenKind{EOF}),
		tt.Args("  \t\r\n // only a comment").Rets([]TokenKind{EOF}),
		tt.Args("x = 1").Rets([]TokenKind{Identifier, Assign, Number, EOF}),
		tt.Args(`s += "a"`).Rets([]TokenKind{Identifier, PlusAssign, String, EOF}),
		tt.Args("a-=b*=c/=d%=e^=f").Rets([]TokenKind{
			Identifier, MinusAssign, Identifier, StarAssign, Identifier,
			SlashAssign, Identifier, PercentAssign, Identifier, CaretAssign,
			Identifier, EOF}),
		tt.Args("a<=b!=c==d>=e<f>g").Rets([]TokenKind{
			Identifier, LessEqual, Identifier, NotEqual, Identifier, Equal,
			Identifier, GreaterEqual, Identifier, Less, Identifier, Greater,
			Identifier, EOF}),
		tt.Args("+-*/%^").Rets([]TokenKind{
			Plus, Minus, Star, Slash, Percent, Caret, EOF}),
		tt.Args("()[],:").Rets([]TokenKind{
			LParen, RParen, LBracket, RBracket, Comma, Colon, EOF}),
		tt.Args("if then else while for in function return").Rets([]TokenKind{
			If, Then, Else, While, For, In, Function, Return, EOF}),
		tt.Args("nil true false and or not break continue").Rets([]TokenKind{
			Nil, True, False, And, Or, Not, Break, Continue, EOF}),
		tt.Args("end if end while end for end function").Rets([]TokenKind{
			EndIf, EndWhile, EndFor, EndFunction, EOF}),
		tt.Args("ending end_if iffy").Rets([]TokenKind{
			Identifier, Identifier, Identifier, EOF}),
		// Lexing stops at the first error.
		tt.Args("a ! b").Rets([]TokenKind{Identifier, Illegal}),
	})
}

func TestLexer_Lexemes(t *testing.T) {
	tt.Test(t, tt.Fn("lexemes", lexemes), tt.Table{
		tt.Args("x1 _y").Rets([]string{"x1", "_y", ""}),
		tt.Args("12 3.25 .5 1e10 2.5E-3 7e+2").Rets(
			[]string{"12", "3.25", ".5", "1e10", "2.5E-3", "7e+2", ""}),
		tt.Args(`"a\"b\\c\nd\te\q"`).Rets([]string{"a\"b\\c\nd\te" + "q", ""}),
		tt.Args(`""`).Rets([]string{"", ""}),
		tt.Args("end   while end\tfor").Rets([]string{"end while", "end for", ""}),
		tt.Args("a // comment\nb").Rets([]string{"a", "b", ""}),

		tt.Args("!").Rets([]string{"unexpected character '!'"}),
		tt.Args("@").Rets([]string{"unexpected character '@'"}),
		tt.Args("x = é").Rets([]string{"x", "=", "unexpected character 'é'"}),
		tt.Args("1e").Rets([]string{"malformed exponent in number"}),
		tt.Args("1e+x").Rets([]string{"malformed exponent in number"}),
		tt.Args(`"abc`).Rets([]string{"unterminated string"}),
		tt.Args(`"abc\`).Rets([]string{"unterminated string"}),
		tt.Args("\"a\nb\"").Rets([]string{"newline in string"}),
		tt.Args("end foo").Rets([]string{"unknown block terminator 'end foo'"}),
		tt.Args("end").Rets([]string{"unknown block terminator 'end'"}),
	})
}

func TestLexer_Lines(t *testing.T) {
	tt.Test(t, tt.Fn("lines", lines), tt.Table{
		tt.Args("a\nb\n\nc").Rets([]int{1, 2, 4, 4}),
		tt.Args("a // x\n\r\nb").Rets([]int{1, 3, 3}),
	})
}

func TestLexer_Ranges(t *testing.T) {
	tokens := NewLexer(`ab += "x"`).AllTokens()
	wantRanges := [][2]int{{0, 2}, {3, 5}, {6, 9}, {9, 9}}
	if len(tokens) != len(wantRanges) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantRanges))
	}
	for i, tok := range tokens {
		if got := [2]int{tok.From, tok.To}; got != wantRanges[i] {
			t.Errorf("token %d has range %v, want %v", i, got, wantRanges[i])
		}
	}
}

func TestLexer_KeepsReturningEOF(t *testing.T) {
	lx := NewLexer("a")
	lx.NextToken()
	for i := 0; i < 3; i++ {
		if tok := lx.NextToken(); tok.Kind != EOF {
			t.Errorf("got %v, want EOF", tok)
		}
	}
}

func TestKeywords(t *testing.T) {
	if Keywords["if"] != If {
		t.Errorf(`Keywords["if"] = %v, want If`, Keywords["if"])
	}
	if Keywords["end function"] != EndFunction {
		t.Errorf(`Keywords["end function"] = %v, want EndFunction`, Keywords["end function"])
	}
	if _, ok := Keywords["+"]; ok {
		t.Errorf("operators should not be keywords")
	}
}

func TestTokenKind_BinaryOf(t *testing.T) {
	tt.Test(t, tt.Fn("BinaryOf", TokenKind.BinaryOf), tt.Table{
		tt.Args(PlusAssign).Rets(Plus),
		tt.Args(MinusAssign).Rets(Minus),
		tt.Args(StarAssign).Rets(Star),
		tt.Args(SlashAssign).Rets(Slash),
		tt.Args(PercentAssign).Rets(Percent),
		tt.Args(CaretAssign).Rets(Caret),
		tt.Args(Assign).Rets(Illegal),
		tt.Args(Plus).Rets(Illegal),
	})
}
