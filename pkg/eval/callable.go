package eval

import (
	"strconv"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

// Callable is a function value. Arguments have already been evaluated; the
// callee checks their number and types itself.
type Callable interface {
	vals.Function
	Call(ip *Interpreter, args []vals.Value) (vals.Value, error)
}

// GoFn is a builtin function implemented in Go.
type GoFn struct {
	name string
	impl func(ip *Interpreter, args []vals.Value) (vals.Value, error)
}

var _ Callable = (*GoFn)(nil)

// NewGoFn wraps a Go function into a builtin.
func NewGoFn(name string, impl func(*Interpreter, []vals.Value) (vals.Value, error)) *GoFn {
	return &GoFn{name, impl}
}

// Name returns the name of the builtin.
func (b *GoFn) Name() string { return b.name }

// Repr returns "<builtin name>".
func (b *GoFn) Repr() string { return "<builtin " + b.name + ">" }

// Call calls the implementation.
func (b *GoFn) Call(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	return b.impl(ip, args)
}

// Closure is a function defined in ITMOScript code.
type Closure struct {
	Op *parse.FuncLit
	// Source the function literal was parsed from, used for error contexts
	// when the closure is called from code parsed later.
	Src parse.Source
}

var _ Callable = (*Closure)(nil)

// Repr returns "<function at line N>".
func (c *Closure) Repr() string {
	return "<function at line " + strconv.Itoa(c.Op.Line()) + ">"
}

// Call binds the arguments to the parameters in a fresh scope and executes the
// body. The new scope's parent is the scope of the caller, not the scope in
// which the function was defined.
func (c *Closure) Call(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if len(args) != len(c.Op.Params) {
		return vals.Nil, errs.ArityMismatch{
			What:     c.Repr(),
			ValidLow: len(c.Op.Params), ValidHigh: len(c.Op.Params),
			Actual: len(args)}
	}
	sc := NewScope(ip.scope)
	for i, param := range c.Op.Params {
		sc.Define(param.Name, args[i])
	}

	savedSrc := ip.src
	ip.src = c.Src
	defer func() { ip.src = savedSrc }()

	err := ip.execBlock(c.Op.Body, sc)
	switch err := err.(type) {
	case nil:
		return vals.Nil, nil
	case Return:
		return err.Value, nil
	case Flow:
		return vals.Nil, errStrayFlow(err)
	default:
		return vals.Nil, err
	}
}

type errStrayFlow Flow

func (e errStrayFlow) Error() string {
	return Flow(e).Error() + " outside of a loop"
}
