package eval

import (
	"io"

	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/parse"
)

// Introspection and control of the interpreter.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		"stacktrace": stacktrace,
		"show_ast":   showAST,
		"exit":       exit,
		"help":       help,
	})
}

// Returns the frames of the call trace as strings, most recent first. The
// call of stacktrace itself is the first frame.
func stacktrace(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("stacktrace", args, 0); err != nil {
		return vals.Nil, err
	}
	frames := ip.StackTrace()
	elems := make([]vals.Value, len(frames))
	for i, frame := range frames {
		elems[i] = vals.Str(frame)
	}
	return vals.MakeList(elems...), nil
}

// Prints the tree of the program being run.
func showAST(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("show_ast", args, 0); err != nil {
		return vals.Nil, err
	}
	w := ip.cfg.Stdout
	if _, err := io.WriteString(w, "Abstract Syntax Tree(AST):\n"); err != nil {
		return vals.Nil, err
	}
	if ip.prog != nil {
		parse.Pprint(w, ip.prog)
	}
	_, err := io.WriteString(w, "End of AST\n")
	return vals.Nil, err
}

func exit(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("exit", args, 0); err != nil {
		return vals.Nil, err
	}
	return vals.Nil, ErrExit
}

func help(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("help", args, 0); err != nil {
		return vals.Nil, err
	}
	_, err := io.WriteString(ip.cfg.Stdout, helpText(ip.cfg.Width))
	return vals.Nil, err
}
