package parse

import (
	"errors"
	"strconv"

	"github.com/keyplexex/itmoscript/pkg/diag"
)

// parser maintains the mutable states of parsing. It keeps exactly one token
// of lookahead.
type parser struct {
	src  Source
	lx   *Lexer
	tok  Token // current token, not yet consumed
	prev Token // last consumed token
	// Number of loops enclosing the current position, reset inside function
	// literals.
	loops int
}

// Panic payload used to abort parsing at the first error.
type abort struct{ err *Error }

func newParser(src Source) *parser {
	ps := &parser{src: src, lx: NewLexer(src.Code)}
	ps.advance()
	return ps
}

func (ps *parser) recover(perr *error) {
	r := recover()
	if r == nil {
		return
	}
	if a, ok := r.(abort); ok {
		*perr = a.err
		return
	}
	panic(r)
}

func (ps *parser) advance() Token {
	ps.prev = ps.tok
	ps.tok = ps.lx.NextToken()
	if ps.tok.Kind == Illegal {
		ps.fail(LexicalError, ps.tok, errors.New(ps.tok.Lexeme))
	}
	return ps.prev
}

func (ps *parser) accept(k TokenKind) bool {
	if ps.tok.Kind == k {
		ps.advance()
		return true
	}
	return false
}

func (ps *parser) expect(k TokenKind, e error) Token {
	if ps.tok.Kind != k {
		ps.unexpected(e)
	}
	return ps.advance()
}

// Fails with "unexpected <current token>, <e>".
func (ps *parser) unexpected(e error) {
	ps.fail(SyntaxError, ps.tok,
		errors.New("unexpected "+ps.tok.describe()+", "+e.Error()))
}

func (ps *parser) fail(typ string, r diag.Ranger, e error) {
	panic(abort{&Error{
		Type:    typ,
		Message: e.Error(),
		Context: *diag.NewContext(ps.src.Name, ps.src.Code, r),
		Partial: r.Range().From == len(ps.src.Code),
	}})
}

// Fills in the position of a node that starts at the given token and ends at
// the last consumed token.
func (ps *parser) finish(b *base, begin Token) {
	b.Ranging = diag.Ranging{From: begin.From, To: ps.prev.To}
	if b.To < b.From {
		b.To = b.From
	}
	b.line = begin.Line
}

// Program = { Stmt } EOF
func (ps *parser) program() *Program {
	begin := ps.tok
	n := &Program{Source: ps.src}
	for ps.tok.Kind != EOF {
		n.Stmts = append(n.Stmts, ps.stmt())
	}
	ps.finish(n.node(), begin)
	return n
}

func (ps *parser) stmt() Stmt {
	switch ps.tok.Kind {
	case If:
		return ps.ifStmt(true)
	case While:
		return ps.whileStmt()
	case For:
		return ps.forStmt()
	case Return:
		return ps.returnStmt()
	case Break:
		if ps.loops == 0 {
			ps.fail(SyntaxError, ps.tok, errBreakOutsideLoop)
		}
		n := &BreakStmt{}
		ps.finish(n.node(), ps.advance())
		return n
	case Continue:
		if ps.loops == 0 {
			ps.fail(SyntaxError, ps.tok, errContinueOutsideLoop)
		}
		n := &ContinueStmt{}
		ps.finish(n.node(), ps.advance())
		return n
	}
	begin := ps.tok
	n := &ExprStmt{Expr: ps.expr()}
	ps.finish(n.node(), begin)
	return n
}

// Reports whether the current token ends a block.
func (ps *parser) atBlockEnd() bool {
	switch ps.tok.Kind {
	case EndIf, EndWhile, EndFor, EndFunction, Else, EOF:
		return true
	}
	return false
}

// Block = { Stmt }, terminated by a block terminator, "else" or EOF. The
// terminator is left for the caller.
func (ps *parser) block() *Block {
	begin := ps.tok
	n := &Block{}
	for !ps.atBlockEnd() {
		n.Stmts = append(n.Stmts, ps.stmt())
	}
	if len(n.Stmts) == 0 {
		n.Ranging = diag.PointRanging(begin.From)
		n.line = begin.Line
	} else {
		ps.finish(n.node(), begin)
	}
	return n
}

// IfStmt = "if" Expr "then" Block [ "else" ( IfStmt | Block ) ] "end if"
//
// In an else-if chain, only the outermost IfStmt consumes "end if".
func (ps *parser) ifStmt(outermost bool) *IfStmt {
	begin := ps.advance()
	n := &IfStmt{Cond: ps.expr()}
	ps.expect(Then, errShouldBeThen)
	n.Then = ps.block()
	if ps.accept(Else) {
		if ps.tok.Kind == If {
			n.Else = ps.ifStmt(false)
		} else {
			n.Else = ps.block()
		}
	}
	if outermost {
		ps.expect(EndIf, errShouldBeEndIf)
	}
	ps.finish(n.node(), begin)
	return n
}

// WhileStmt = "while" Expr Block "end while"
func (ps *parser) whileStmt() *WhileStmt {
	begin := ps.advance()
	n := &WhileStmt{Cond: ps.expr()}
	n.Body = ps.loopBody()
	ps.expect(EndWhile, errShouldBeEndWhile)
	ps.finish(n.node(), begin)
	return n
}

// ForStmt = "for" Identifier "in" Expr Block "end for"
func (ps *parser) forStmt() *ForStmt {
	begin := ps.advance()
	n := &ForStmt{Var: ps.ident()}
	ps.expect(In, errShouldBeIn)
	n.Iterable = ps.expr()
	n.Body = ps.loopBody()
	ps.expect(EndFor, errShouldBeEndFor)
	ps.finish(n.node(), begin)
	return n
}

func (ps *parser) loopBody() *Block {
	ps.loops++
	defer func() { ps.loops-- }()
	return ps.block()
}

// ReturnStmt = "return" [ Expr ]
func (ps *parser) returnStmt() *ReturnStmt {
	begin := ps.advance()
	n := &ReturnStmt{}
	if startsExpr(ps.tok.Kind) {
		n.Value = ps.expr()
	}
	ps.finish(n.node(), begin)
	return n
}

func startsExpr(k TokenKind) bool {
	switch k {
	case Identifier, Number, String, True, False, Nil, Function,
		LParen, LBracket, Minus, Plus, Not:
		return true
	}
	return false
}

func (ps *parser) expr() Expr {
	return ps.assignment()
}

// Assignment = Binary [ AssignOp Assignment ]
func (ps *parser) assignment() Expr {
	begin := ps.tok
	lhs := ps.binary(precOr)
	if !ps.tok.Kind.IsAssign() {
		return lhs
	}
	switch lhs.(type) {
	case *Ident, *IndexExpr, *SliceExpr:
	default:
		ps.fail(SyntaxError, lhs, errBadAssignTarget)
	}
	op := ps.advance()
	n := &AssignExpr{Op: op.Kind, Target: lhs, Value: ps.assignment()}
	ps.finish(n.node(), begin)
	return n
}

// Binding powers of binary operators. Assignment binds the loosest and is
// handled separately.
const (
	precNone = iota
	precAssign
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
)

func binaryPrec(k TokenKind) int {
	switch k {
	case Or:
		return precOr
	case And:
		return precAnd
	case Equal, NotEqual:
		return precEquality
	case Less, Greater, LessEqual, GreaterEqual:
		return precRelational
	case Plus, Minus:
		return precAdditive
	case Star, Slash, Percent:
		return precMultiplicative
	case Caret:
		return precPower
	}
	return precNone
}

// Parses a chain of binary operators that bind at least as tightly as
// minPrec. All operators are left-associative except "^".
func (ps *parser) binary(minPrec int) Expr {
	begin := ps.tok
	left := ps.unary()
	for {
		prec := binaryPrec(ps.tok.Kind)
		if prec == precNone || prec < minPrec {
			return left
		}
		op := ps.advance()
		nextMin := prec + 1
		if op.Kind == Caret {
			nextMin = prec
		}
		n := &BinaryExpr{Op: op.Kind, Left: left, Right: ps.binary(nextMin)}
		ps.finish(n.node(), begin)
		left = n
	}
}

// Unary = ( "-" | "+" | "not" ) Unary | Postfix
func (ps *parser) unary() Expr {
	switch ps.tok.Kind {
	case Minus, Plus, Not:
		op := ps.advance()
		n := &UnaryExpr{Op: op.Kind, Operand: ps.unary()}
		ps.finish(n.node(), op)
		return n
	}
	return ps.postfix()
}

// Postfix = Primary { "(" Args ")" | "[" Expr "]" | "[" [ Expr ] ":" [ Expr ] "]" }
func (ps *parser) postfix() Expr {
	begin := ps.tok
	e := ps.primary()
	for {
		switch ps.tok.Kind {
		case LParen:
			ps.advance()
			n := &CallExpr{Callee: e, Args: ps.exprList(RParen, errShouldBeArgsSep)}
			ps.finish(n.node(), begin)
			e = n
		case LBracket:
			e = ps.subscript(e, begin)
		default:
			return e
		}
	}
}

func (ps *parser) subscript(obj Expr, begin Token) Expr {
	ps.advance()
	if ps.tok.Kind == RBracket {
		ps.fail(SyntaxError, ps.tok, errEmptySubscript)
	}
	var first Expr
	if ps.tok.Kind != Colon {
		first = ps.expr()
	}
	if !ps.accept(Colon) {
		ps.expect(RBracket, errShouldBeRBracket)
		n := &IndexExpr{Object: obj, Index: first}
		ps.finish(n.node(), begin)
		return n
	}
	n := &SliceExpr{Object: obj, Start: first}
	if ps.tok.Kind != RBracket {
		n.End = ps.expr()
	}
	ps.expect(RBracket, errShouldBeRBracket)
	ps.finish(n.node(), begin)
	return n
}

// Parses a possibly empty list of comma-separated expressions and the closing
// token. The opening token must have been consumed.
func (ps *parser) exprList(closing TokenKind, sepErr error) []Expr {
	var exprs []Expr
	if ps.accept(closing) {
		return exprs
	}
	for {
		exprs = append(exprs, ps.expr())
		if ps.accept(closing) {
			return exprs
		}
		ps.expect(Comma, sepErr)
	}
}

func (ps *parser) primary() Expr {
	begin := ps.tok
	var e Expr
	switch begin.Kind {
	case Number:
		ps.advance()
		v, err := strconv.ParseFloat(begin.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			ps.fail(LexicalError, begin, err)
		}
		e = &NumberLit{Value: v, Text: begin.Lexeme}
	case String:
		ps.advance()
		e = &StringLit{Value: begin.Lexeme}
	case True, False:
		ps.advance()
		e = &BoolLit{Value: begin.Kind == True}
	case Nil:
		ps.advance()
		e = &NilLit{}
	case Identifier:
		return ps.ident()
	case LParen:
		ps.advance()
		inner := ps.expr()
		ps.expect(RParen, errShouldBeRParen)
		return inner
	case LBracket:
		ps.advance()
		e = &ListLit{Elems: ps.exprList(RBracket, errShouldBeElemsSep)}
	case Function:
		return ps.funcLit()
	default:
		ps.unexpected(errShouldBeExpr)
	}
	ps.finish(e.node(), begin)
	return e
}

func (ps *parser) ident() *Ident {
	t := ps.expect(Identifier, errShouldBeIdent)
	n := &Ident{Name: t.Lexeme}
	ps.finish(n.node(), t)
	return n
}

// FuncLit = "function" "(" [ Identifier { "," Identifier } ] ")" Block "end function"
func (ps *parser) funcLit() *FuncLit {
	begin := ps.advance()
	n := &FuncLit{}
	ps.expect(LParen, errShouldBeLParen)
	if !ps.accept(RParen) {
		for {
			n.Params = append(n.Params, ps.ident())
			if ps.accept(RParen) {
				break
			}
			ps.expect(Comma, errShouldBeArgsSep)
		}
	}
	// Loops outside the function literal do not make break and continue
	// valid inside it.
	savedLoops := ps.loops
	ps.loops = 0
	n.Body = ps.block()
	ps.loops = savedLoops
	ps.expect(EndFunction, errShouldBeEndFunc)
	ps.finish(n.node(), begin)
	return n
}
