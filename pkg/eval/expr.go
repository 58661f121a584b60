package eval

import (
	"fmt"

	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

func (ip *Interpreter) eval(expr parse.Expr) (vals.Value, error) {
	v, err := ip.evalInner(expr)
	if err != nil {
		return vals.Nil, ip.wrap(expr, err)
	}
	return v, nil
}

func (ip *Interpreter) evalInner(expr parse.Expr) (vals.Value, error) {
	switch e := expr.(type) {
	case *parse.NumberLit:
		return vals.Num(e.Value), nil
	case *parse.StringLit:
		return vals.Str(e.Value), nil
	case *parse.BoolLit:
		return vals.Bool(e.Value), nil
	case *parse.NilLit:
		return vals.Nil, nil
	case *parse.Ident:
		return ip.scope.Get(e.Name)
	case *parse.ListLit:
		elems, err := ip.evalAll(e.Elems)
		if err != nil {
			return vals.Nil, err
		}
		return vals.MakeList(elems...), nil
	case *parse.FuncLit:
		return vals.Func(&Closure{e, ip.src}), nil
	case *parse.UnaryExpr:
		return ip.evalUnary(e)
	case *parse.BinaryExpr:
		return ip.evalBinary(e)
	case *parse.AssignExpr:
		return ip.evalAssign(e)
	case *parse.CallExpr:
		return ip.evalCall(e)
	case *parse.IndexExpr:
		obj, err := ip.eval(e.Object)
		if err != nil {
			return vals.Nil, err
		}
		idx, err := ip.eval(e.Index)
		if err != nil {
			return vals.Nil, err
		}
		return vals.Index(obj, idx)
	case *parse.SliceExpr:
		obj, start, end, err := ip.evalSliceOperands(e)
		if err != nil {
			return vals.Nil, err
		}
		return vals.Slice(obj, start, end)
	default:
		panic(fmt.Sprintf("unexpected expression type %T", expr))
	}
}

func (ip *Interpreter) evalAll(exprs []parse.Expr) ([]vals.Value, error) {
	vs := make([]vals.Value, len(exprs))
	for i, expr := range exprs {
		v, err := ip.eval(expr)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// Evaluates the object and bounds of a slice expression. A bound that is
// omitted is returned as nil.
func (ip *Interpreter) evalSliceOperands(e *parse.SliceExpr) (obj vals.Value, start, end *vals.Value, err error) {
	obj, err = ip.eval(e.Object)
	if err != nil {
		return
	}
	if start, err = ip.evalOptional(e.Start); err != nil {
		return
	}
	end, err = ip.evalOptional(e.End)
	return
}

func (ip *Interpreter) evalOptional(expr parse.Expr) (*vals.Value, error) {
	if expr == nil {
		return nil, nil
	}
	v, err := ip.eval(expr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (ip *Interpreter) evalUnary(e *parse.UnaryExpr) (vals.Value, error) {
	v, err := ip.eval(e.Operand)
	if err != nil {
		return vals.Nil, err
	}
	switch e.Op {
	case parse.Minus:
		return vals.Neg(v)
	case parse.Plus:
		return vals.Pos(v)
	case parse.Not:
		return vals.Not(v), nil
	default:
		panic("unexpected unary operator " + e.Op.String())
	}
}

func (ip *Interpreter) evalBinary(e *parse.BinaryExpr) (vals.Value, error) {
	left, err := ip.eval(e.Left)
	if err != nil {
		return vals.Nil, err
	}
	switch e.Op {
	case parse.And, parse.Or:
		// Short-circuit: the right operand is only evaluated when the left
		// one does not decide the result.
		if vals.Truthy(left) == (e.Op == parse.Or) {
			return vals.Bool(e.Op == parse.Or), nil
		}
		right, err := ip.eval(e.Right)
		if err != nil {
			return vals.Nil, err
		}
		return vals.Bool(vals.Truthy(right)), nil
	}
	right, err := ip.eval(e.Right)
	if err != nil {
		return vals.Nil, err
	}
	return binaryOp(e.Op, left, right)
}
