package eval

import (
	"fmt"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

func (ip *Interpreter) exec(stmt parse.Stmt) error {
	switch s := stmt.(type) {
	case *parse.ExprStmt:
		v, err := ip.eval(s.Expr)
		ip.lastValue = v
		return err
	case *parse.Block:
		for _, st := range s.Stmts {
			if err := ip.exec(st); err != nil {
				return err
			}
		}
		return nil
	case *parse.IfStmt:
		return ip.execIf(s)
	case *parse.WhileStmt:
		return ip.execWhile(s)
	case *parse.ForStmt:
		return ip.execFor(s)
	case *parse.ReturnStmt:
		if s.Value == nil {
			return Return{vals.Nil}
		}
		v, err := ip.eval(s.Value)
		if err != nil {
			return err
		}
		return Return{v}
	case *parse.BreakStmt:
		return Break
	case *parse.ContinueStmt:
		return Continue
	default:
		panic(fmt.Sprintf("unexpected statement type %T", stmt))
	}
}

// Executes the statements of b with sc as the current scope. The previous
// scope is restored however the block exits.
func (ip *Interpreter) execBlock(b *parse.Block, sc *Scope) error {
	saved := ip.scope
	ip.scope = sc
	defer func() { ip.scope = saved }()
	return ip.exec(b)
}

func (ip *Interpreter) execIf(s *parse.IfStmt) error {
	cond, err := ip.eval(s.Cond)
	if err != nil {
		return err
	}
	if vals.Truthy(cond) {
		return ip.execBlock(s.Then, NewScope(ip.scope))
	}
	switch e := s.Else.(type) {
	case nil:
		return nil
	case *parse.Block:
		return ip.execBlock(e, NewScope(ip.scope))
	default:
		return ip.exec(e)
	}
}

func (ip *Interpreter) execWhile(s *parse.WhileStmt) error {
	ip.pushFrame(fmt.Sprintf("while (line %d)", s.Line()))
	defer ip.popFrame()
	for {
		cond, err := ip.eval(s.Cond)
		if err != nil {
			return err
		}
		if !vals.Truthy(cond) {
			return nil
		}
		if brk, err := ip.loopBody(s.Body, nil, vals.Nil); brk || err != nil {
			return err
		}
	}
}

func (ip *Interpreter) execFor(s *parse.ForStmt) error {
	iterable, err := ip.eval(s.Iterable)
	if err != nil {
		return err
	}
	var elems []vals.Value
	switch iterable.Kind() {
	case vals.ListKind:
		// Iterate over a snapshot, so that the body may modify the list.
		elems = iterable.List().Copy().Elems()
	case vals.StringKind:
		str := iterable.Str()
		elems = make([]vals.Value, len(str))
		for i := 0; i < len(str); i++ {
			elems[i] = vals.Str(str[i : i+1])
		}
	default:
		return ip.wrap(s.Iterable, errs.NotIterable{Value: vals.ToString(iterable)})
	}

	ip.pushFrame(fmt.Sprintf("for (line %d)", s.Line()))
	defer ip.popFrame()
	for _, elem := range elems {
		if brk, err := ip.loopBody(s.Body, s.Var, elem); brk || err != nil {
			return err
		}
	}
	return nil
}

// Executes one iteration of a loop body in a fresh scope, binding v to the
// loop variable if there is one. It returns true if the loop should stop,
// either because of a break or an error.
func (ip *Interpreter) loopBody(body *parse.Block, loopVar *parse.Ident, v vals.Value) (bool, error) {
	sc := NewScope(ip.scope)
	if loopVar != nil {
		sc.Define(loopVar.Name, v)
	}
	switch err := ip.execBlock(body, sc); err {
	case nil, Continue:
		return false, nil
	case Break:
		return true, nil
	default:
		return true, err
	}
}
