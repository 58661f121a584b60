package eval

import (
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

// Evaluates an assignment. The right-hand side is always evaluated before the
// target. The value of the expression is the value stored.
func (ip *Interpreter) evalAssign(e *parse.AssignExpr) (vals.Value, error) {
	rhs, err := ip.eval(e.Value)
	if err != nil {
		return vals.Nil, err
	}
	var update func(old vals.Value) (vals.Value, error)
	if op := e.Op.BinaryOf(); op != parse.Illegal {
		update = func(old vals.Value) (vals.Value, error) {
			return binaryOp(op, old, rhs)
		}
	}

	switch target := e.Target.(type) {
	case *parse.Ident:
		return ip.assignVar(target.Name, rhs, update)
	case *parse.IndexExpr:
		return ip.assignIndex(target, rhs, update)
	case *parse.SliceExpr:
		return ip.assignSlice(target, rhs, update)
	default:
		panic("unexpected assignment target")
	}
}

// Plain assignment updates the nearest binding, or defines the variable in the
// current scope. Compound assignment requires an existing binding.
func (ip *Interpreter) assignVar(name string, rhs vals.Value, update func(vals.Value) (vals.Value, error)) (vals.Value, error) {
	if update == nil {
		if !ip.scope.Assign(name, rhs) {
			ip.scope.Define(name, rhs)
		}
		return rhs, nil
	}
	old, err := ip.scope.Get(name)
	if err != nil {
		return vals.Nil, err
	}
	v, err := update(old)
	if err != nil {
		return vals.Nil, err
	}
	ip.scope.Assign(name, v)
	return v, nil
}

func (ip *Interpreter) assignIndex(target *parse.IndexExpr, rhs vals.Value, update func(vals.Value) (vals.Value, error)) (vals.Value, error) {
	obj, err := ip.eval(target.Object)
	if err != nil {
		return vals.Nil, err
	}
	idx, err := ip.eval(target.Index)
	if err != nil {
		return vals.Nil, err
	}
	if update == nil {
		return rhs, vals.SetIndex(obj, idx, rhs)
	}
	if obj.Kind() != vals.ListKind {
		// Reports that only list elements can be assigned.
		return vals.Nil, vals.SetIndex(obj, idx, rhs)
	}
	i, err := vals.ListIndex(obj.List(), idx)
	if err != nil {
		return vals.Nil, err
	}
	v, err := update(obj.List().At(i))
	if err != nil {
		return vals.Nil, err
	}
	obj.List().Set(i, v)
	return v, nil
}

func (ip *Interpreter) assignSlice(target *parse.SliceExpr, rhs vals.Value, update func(vals.Value) (vals.Value, error)) (vals.Value, error) {
	obj, start, end, err := ip.evalSliceOperands(target)
	if err != nil {
		return vals.Nil, err
	}
	v := rhs
	if update != nil {
		old, err := vals.Slice(obj, start, end)
		if err != nil {
			return vals.Nil, err
		}
		if v, err = update(old); err != nil {
			return vals.Nil, err
		}
	}
	if err := vals.SetSlice(obj, start, end, v); err != nil {
		return vals.Nil, err
	}
	return v, nil
}
