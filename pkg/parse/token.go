package parse

import (
	"fmt"

	"github.com/keyplexex/itmoscript/pkg/diag"
)

// TokenKind classifies tokens.
type TokenKind uint8

// Possible values of TokenKind.
const (
	Illegal TokenKind = iota // lexical error; Lexeme holds the message
	EOF

	Identifier
	Number
	String

	If
	Then
	Else
	EndIf
	While
	EndWhile
	For
	In
	EndFor
	Function
	EndFunction
	Return
	Break
	Continue
	Nil
	True
	False
	And
	Or
	Not

	Plus
	Minus
	Star
	Slash
	Percent
	Caret

	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	CaretAssign

	Equal
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual

	LParen
	RParen
	LBracket
	RBracket
	Comma
	Colon
)

var kindNames = [...]string{
	Illegal:    "illegal token",
	EOF:        "end of input",
	Identifier: "identifier",
	Number:     "number",
	String:     "string",
}

// Source text of fixed tokens.
var fixedText = map[TokenKind]string{
	If: "if", Then: "then", Else: "else", EndIf: "end if",
	While: "while", EndWhile: "end while",
	For: "for", In: "in", EndFor: "end for",
	Function: "function", EndFunction: "end function",
	Return: "return", Break: "break", Continue: "continue",
	Nil: "nil", True: "true", False: "false",
	And: "and", Or: "or", Not: "not",

	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Caret: "^",

	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	SlashAssign: "/=", PercentAssign: "%=", CaretAssign: "^=",

	Equal: "==", NotEqual: "!=", Less: "<", Greater: ">",
	LessEqual: "<=", GreaterEqual: ">=",

	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Comma: ",", Colon: ":",
}

// Keywords maps reserved words, including the two-word block terminators, to
// their token kinds.
var Keywords = map[string]TokenKind{}

func init() {
	for k := If; k <= Not; k++ {
		Keywords[fixedText[k]] = k
	}
}

// Text returns the source text of a fixed token, like "end while" or "+=". It
// returns an empty string for kinds whose text varies.
func (k TokenKind) Text() string { return fixedText[k] }

func (k TokenKind) String() string {
	if s, ok := fixedText[k]; ok {
		return "'" + s + "'"
	}
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// IsAssign reports whether the kind is one of the assignment operators.
func (k TokenKind) IsAssign() bool { return Assign <= k && k <= CaretAssign }

// BinaryOf returns the binary operator that a compound assignment operator
// applies. For example, BinaryOf(PlusAssign) is Plus. It returns Illegal for
// plain assignment and non-assignment kinds.
func (k TokenKind) BinaryOf() TokenKind {
	if PlusAssign <= k && k <= CaretAssign {
		return Plus + (k - PlusAssign)
	}
	return Illegal
}

// Token is a lexical unit of the source. For strings, Lexeme is the unquoted
// value; for Illegal tokens it is the error message.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	diag.Ranging
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q (line %d)", t.Kind, t.Lexeme, t.Line)
}

// Describes the token in an error message.
func (t Token) describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case String:
		return fmt.Sprintf("%q", t.Lexeme)
	}
	return "'" + t.Lexeme + "'"
}
