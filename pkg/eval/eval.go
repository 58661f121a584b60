// Package eval implements the tree-walking interpreter of ITMOScript.
//
// An Interpreter executes a *parse.Program in a root scope prepopulated with
// the builtin functions. Non-local control flow (break, continue and return)
// is implemented with the special error values Flow and Return; runtime errors
// are wrapped into an *Exception that carries the call trace.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/keyplexex/itmoscript/pkg/diag"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/logutil"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// DefaultRecursionLimit is the default maximum depth of nested calls.
const DefaultRecursionLimit = 1000

// EvalCfg keeps configuration for an Interpreter.
type EvalCfg struct {
	// Maximum depth of nested function calls. Defaults to
	// DefaultRecursionLimit when not positive.
	RecursionLimit int
	// Input of read(). Defaults to an empty input.
	Stdin io.Reader
	// Output of print(), println(), read() prompts, help() and show_ast().
	// Defaults to io.Discard.
	Stdout io.Writer
	// Width of the terminal, used to lay out help(). Not positive means
	// unknown.
	Width int
	// If not nil, called with the value of every top-level expression
	// statement that is not an assignment, when the value is not nil.
	PutValue func(vals.Value)
}

// Interpreter executes programs. It keeps the root scope, so that bindings
// survive between programs passed to Eval.
type Interpreter struct {
	cfg    EvalCfg
	prog   *parse.Program
	src    parse.Source
	global *Scope
	scope  *Scope
	depth  int
	trace  []string
	stdin  *bufio.Reader
	rand   *rand.Rand

	// Value of the last expression statement.
	lastValue vals.Value
}

// NewInterpreter creates an Interpreter for prog, with the builtin functions
// installed in the root scope.
func NewInterpreter(prog *parse.Program, cfg EvalCfg) *Interpreter {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = DefaultRecursionLimit
	}
	if cfg.Stdin == nil {
		cfg.Stdin = strings.NewReader("")
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	global := NewScope(nil)
	for _, fn := range builtinFns {
		global.Define(fn.name, vals.Func(fn))
	}
	ip := &Interpreter{
		cfg: cfg, global: global, scope: global,
		stdin: bufio.NewReader(cfg.Stdin),
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if prog != nil {
		ip.prog = prog
		ip.src = prog.Source
	}
	return ip
}

// Global returns the root scope.
func (ip *Interpreter) Global() *Scope { return ip.global }

// Run executes the program the Interpreter was created with.
func (ip *Interpreter) Run() error {
	if ip.prog == nil {
		return nil
	}
	return ip.Eval(ip.prog)
}

// Eval executes prog in the root scope. A return statement at the top level
// ends the program without error. It returns ErrExit if the program called
// exit(), and an *Exception for runtime errors.
func (ip *Interpreter) Eval(prog *parse.Program) error {
	ip.prog = prog
	ip.src = prog.Source
	ip.scope = ip.global
	ip.depth = 0
	ip.trace = ip.trace[:0]
	logger.Printf("running %s (%d statements)", prog.Source.Name, len(prog.Stmts))

	for _, stmt := range prog.Stmts {
		err := ip.exec(stmt)
		if err == nil {
			if es, ok := stmt.(*parse.ExprStmt); ok && ip.cfg.PutValue != nil {
				ip.putValue(es)
			}
			continue
		}
		switch err := err.(type) {
		case Return:
			logger.Println("return at top level")
			return nil
		case Flow:
			return &Exception{Reason: errStrayFlow(err)}
		}
		if err == ErrExit {
			logger.Println("exit() called")
		} else {
			logger.Println("runtime error:", err)
		}
		return err
	}
	return nil
}

func (ip *Interpreter) putValue(es *parse.ExprStmt) {
	if _, ok := es.Expr.(*parse.AssignExpr); ok {
		return
	}
	if !ip.lastValue.IsNil() {
		ip.cfg.PutValue(ip.lastValue)
	}
}

// StackTrace returns the frames of the current call trace, most recent first.
func (ip *Interpreter) StackTrace() []string {
	frames := make([]string, len(ip.trace))
	for i, frame := range ip.trace {
		frames[len(frames)-1-i] = frame
	}
	return frames
}

// Interpret parses src and executes it with a new Interpreter. Calling exit()
// is not an error.
func Interpret(src parse.Source, cfg EvalCfg) error {
	prog, err := parse.Parse(src)
	if err != nil {
		return err
	}
	err = NewInterpreter(prog, cfg).Run()
	if err == ErrExit {
		return nil
	}
	return err
}

func (ip *Interpreter) pushFrame(frame string) {
	ip.trace = append(ip.trace, frame)
}

func (ip *Interpreter) popFrame() {
	ip.trace = ip.trace[:len(ip.trace)-1]
}

// Wraps a runtime error into an *Exception pointing at n. Signals and errors
// that are already exceptions are returned unchanged.
func (ip *Interpreter) wrap(n parse.Node, err error) error {
	if err == nil || isSignal(err) {
		return err
	}
	if _, ok := err.(*Exception); ok {
		return err
	}
	return &Exception{
		Reason:     err,
		StackTrace: ip.StackTrace(),
		Context:    diag.NewContext(ip.src.Name, ip.src.Code, n),
	}
}
