package parse

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

const (
	maxL      = 10
	maxR      = 10
	indentInc = 2
)

// Pprint pretty-prints the tree rooted at n to w, one node per line.
func Pprint(w io.Writer, n Node) {
	pprintRec(w, n, 0, "")
}

// PprintString is like Pprint, but returns the output as a string.
func PprintString(n Node) string {
	var sb strings.Builder
	Pprint(&sb, n)
	return sb.String()
}

func pprintRec(w io.Writer, n Node, indent int, label string) {
	fmt.Fprintf(w, "%*s%s%s\n", indent, "", label, summary(n))
	fields, list := children(n)
	for _, f := range fields {
		if f.node == nil {
			continue
		}
		label := ""
		if len(fields) > 1 || len(list) > 0 {
			label = f.name + ": "
		}
		pprintRec(w, f.node, indent+indentInc, label)
	}
	for _, ch := range list {
		pprintRec(w, ch, indent+indentInc, "")
	}
}

type field struct {
	name string
	node Node
}

// Returns the children held in single-node fields, and those held in a list.
func children(n Node) ([]field, []Node) {
	switch n := n.(type) {
	case *ListLit:
		return nil, exprNodes(n.Elems)
	case *FuncLit:
		return []field{{"Body", n.Body}}, nil
	case *BinaryExpr:
		return []field{{"Left", n.Left}, {"Right", n.Right}}, nil
	case *UnaryExpr:
		return []field{{"Operand", n.Operand}}, nil
	case *AssignExpr:
		return []field{{"Target", n.Target}, {"Value", n.Value}}, nil
	case *CallExpr:
		return []field{{"Callee", n.Callee}}, exprNodes(n.Args)
	case *IndexExpr:
		return []field{{"Object", n.Object}, {"Index", n.Index}}, nil
	case *SliceExpr:
		return []field{{"Object", n.Object}, {"Start", n.Start}, {"End", n.End}}, nil
	case *ExprStmt:
		return []field{{"Expr", n.Expr}}, nil
	case *Block:
		return nil, stmtNodes(n.Stmts)
	case *IfStmt:
		return []field{{"Cond", n.Cond}, {"Then", n.Then}, {"Else", n.Else}}, nil
	case *WhileStmt:
		return []field{{"Cond", n.Cond}, {"Body", n.Body}}, nil
	case *ForStmt:
		return []field{{"Iterable", n.Iterable}, {"Body", n.Body}}, nil
	case *ReturnStmt:
		return []field{{"Value", n.Value}}, nil
	case *Program:
		return nil, stmtNodes(n.Stmts)
	}
	return nil, nil
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}

func summary(n Node) string {
	var sb strings.Builder
	sb.WriteString(reflect.TypeOf(n).Elem().Name())
	prop := func(name string, value any) {
		fmt.Fprintf(&sb, " %s=%v", name, value)
	}
	switch n := n.(type) {
	case *NumberLit:
		prop("Value", n.Text)
	case *StringLit:
		prop("Value", compactQuote(n.Value))
	case *BoolLit:
		prop("Value", n.Value)
	case *Ident:
		prop("Name", strconv.Quote(n.Name))
	case *FuncLit:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		prop("Params", "("+strings.Join(names, ", ")+")")
	case *BinaryExpr:
		prop("Op", strconv.Quote(n.Op.Text()))
	case *UnaryExpr:
		prop("Op", strconv.Quote(n.Op.Text()))
	case *AssignExpr:
		prop("Op", strconv.Quote(n.Op.Text()))
	case *ForStmt:
		prop("Var", strconv.Quote(n.Var.Name))
	}
	fmt.Fprintf(&sb, " (line %d)", n.Line())
	return sb.String()
}

func compactQuote(text string) string {
	if len(text) > maxL+maxR+3 {
		text = text[0:maxL] + "..." + text[len(text)-maxR:]
	}
	return strconv.Quote(text)
}
