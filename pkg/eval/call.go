package eval

import (
	"fmt"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

func (ip *Interpreter) evalCall(e *parse.CallExpr) (vals.Value, error) {
	if ip.depth >= ip.cfg.RecursionLimit {
		logger.Printf("recursion limit %d reached at line %d", ip.cfg.RecursionLimit, e.Line())
		return vals.Nil, errs.RecursionLimit{Limit: ip.cfg.RecursionLimit}
	}
	callee, err := ip.eval(e.Callee)
	if err != nil {
		return vals.Nil, err
	}
	fn, ok := callee.Func().(Callable)
	if callee.Kind() != vals.FunctionKind || !ok {
		return vals.Nil, errs.NotCallable{Callee: vals.ToString(callee)}
	}
	args, err := ip.evalAll(e.Args)
	if err != nil {
		return vals.Nil, err
	}
	return ip.call(e, fn, args)
}

func (ip *Interpreter) call(e *parse.CallExpr, fn Callable, args []vals.Value) (vals.Value, error) {
	ip.depth++
	ip.pushFrame(fmt.Sprintf("function %q (line %d)", fn.Repr(), e.Line()))
	defer func() {
		ip.popFrame()
		ip.depth--
	}()
	v, err := fn.Call(ip, args)
	if err != nil {
		// Wrap before the frame is popped, so that the trace includes the
		// failed call.
		return vals.Nil, ip.wrap(e, err)
	}
	return v, nil
}
