package parse

import "github.com/keyplexex/itmoscript/pkg/diag"

// Node is implemented by all AST nodes. The set of nodes is closed; Expr and
// Stmt further partition it.
type Node interface {
	diag.Ranger
	// Line returns the 1-based line where the node starts.
	Line() int
	node() *base
}

// Expr is a node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node that is executed for its effects.
type Stmt interface {
	Node
	stmtNode()
}

type base struct {
	diag.Ranging
	line int
}

func (b *base) Line() int   { return b.line }
func (b *base) node() *base { return b }

type exprBase struct{ base }

func (*exprBase) exprNode() {}

type stmtBase struct{ base }

func (*stmtBase) stmtNode() {}

// NumberLit is a number literal. Text keeps the lexeme as written.
type NumberLit struct {
	exprBase
	Value float64
	Text  string
}

// StringLit is a string literal with escape sequences already processed.
type StringLit struct {
	exprBase
	Value string
}

// BoolLit is true or false.
type BoolLit struct {
	exprBase
	Value bool
}

// NilLit is nil.
type NilLit struct {
	exprBase
}

// Ident is a reference to a variable.
type Ident struct {
	exprBase
	Name string
}

// ListLit is [elem, ...].
type ListLit struct {
	exprBase
	Elems []Expr
}

// FuncLit is function(params) body end function.
type FuncLit struct {
	exprBase
	Params []*Ident
	Body   *Block
}

// BinaryExpr is a binary operation, including the short-circuiting and/or.
type BinaryExpr struct {
	exprBase
	Op          TokenKind
	Left, Right Expr
}

// UnaryExpr is -x, +x or not x.
type UnaryExpr struct {
	exprBase
	Op      TokenKind
	Operand Expr
}

// AssignExpr is an assignment. Target is an *Ident, *IndexExpr or *SliceExpr;
// Op is Assign or one of the compound assignment operators.
type AssignExpr struct {
	exprBase
	Op     TokenKind
	Target Expr
	Value  Expr
}

// CallExpr is callee(args...).
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// IndexExpr is object[index].
type IndexExpr struct {
	exprBase
	Object, Index Expr
}

// SliceExpr is object[start:end]. Either bound may be nil.
type SliceExpr struct {
	exprBase
	Object, Start, End Expr
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	stmtBase
	Expr Expr
}

// Block is a sequence of statements.
type Block struct {
	stmtBase
	Stmts []Stmt
}

// IfStmt is if cond then ... [else ...] end if. Else is nil, a *Block or an
// *IfStmt for an "else if" chain.
type IfStmt struct {
	stmtBase
	Cond Expr
	Then *Block
	Else Stmt
}

// WhileStmt is while cond ... end while.
type WhileStmt struct {
	stmtBase
	Cond Expr
	Body *Block
}

// ForStmt is for var in iterable ... end for.
type ForStmt struct {
	stmtBase
	Var      *Ident
	Iterable Expr
	Body     *Block
}

// ReturnStmt is return [value]. Value is nil when omitted.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// BreakStmt is break.
type BreakStmt struct {
	stmtBase
}

// ContinueStmt is continue.
type ContinueStmt struct {
	stmtBase
}

// Program is the root of a parsed source.
type Program struct {
	stmtBase
	Stmts  []Stmt
	Source Source
}
