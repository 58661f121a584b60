// Package parse implements the lexer and parser of ITMOScript.
//
// Parsing builds an abstract syntax tree rooted at a *Program. The tree only
// records what is semantically significant; each node also keeps its line and
// byte range in the source for diagnostics.
package parse

import (
	"errors"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
	// Whether the source is from a file.
	IsFile bool
}

// Error is a lexical or syntax error. Its Type is one of LexicalError and
// SyntaxError.
type Error = diag.Error

// Values of Error.Type.
const (
	LexicalError = "lexical error"
	SyntaxError  = "syntax error"
)

// Parse parses the given source as a program. The returned error always has
// type *Error if it is not nil; parsing stops at the first error.
func Parse(src Source) (prog *Program, err error) {
	ps := newParser(src)
	defer ps.recover(&err)
	return ps.program(), nil
}

// GetError returns the *Error wrapped in err, or nil.
func GetError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Errors.
var (
	errShouldBeExpr        = newError("", "expression")
	errShouldBeIdent       = newError("", "identifier")
	errShouldBeThen        = newError("", Then.String())
	errShouldBeIn          = newError("", In.String())
	errShouldBeEndIf       = newError("", EndIf.String())
	errShouldBeEndWhile    = newError("", EndWhile.String())
	errShouldBeEndFor      = newError("", EndFor.String())
	errShouldBeEndFunc     = newError("", EndFunction.String())
	errShouldBeLParen      = newError("", LParen.String())
	errShouldBeRParen      = newError("", RParen.String())
	errShouldBeRBracket    = newError("", RBracket.String())
	errShouldBeArgsSep     = newError("", Comma.String(), RParen.String())
	errShouldBeElemsSep    = newError("", Comma.String(), RBracket.String())
	errEmptySubscript      = newError("empty subscript")
	errBadAssignTarget     = newError("cannot assign to this expression")
	errBreakOutsideLoop    = newError("break outside of a loop")
	errContinueOutsideLoop = newError("continue outside of a loop")
)

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var sb strings.Builder
	if len(text) > 0 {
		sb.WriteString(text + ", ")
	}
	sb.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			sb.WriteString(" or ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(opt)
	}
	return errors.New(sb.String())
}
