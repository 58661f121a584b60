package eval

import (
	"strings"

	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// String functions. len also accepts lists.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		"len":     length,
		"lower":   strFn("lower", strings.ToLower),
		"upper":   strFn("upper", strings.ToUpper),
		"split":   split,
		"join":    join,
		"replace": replace,
	})
}

func length(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("len", args, 1); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("len", args, 0, vals.StringKind, vals.ListKind); err != nil {
		return vals.Nil, err
	}
	if args[0].Kind() == vals.StringKind {
		return vals.Num(float64(len(args[0].Str()))), nil
	}
	return vals.Num(float64(args[0].List().Len())), nil
}

func strFn(name string, f func(string) string) builtinImpl {
	return func(_ *Interpreter, args []vals.Value) (vals.Value, error) {
		if err := checkExactArity(name, args, 1); err != nil {
			return vals.Nil, err
		}
		if err := checkArg(name, args, 0, vals.StringKind); err != nil {
			return vals.Nil, err
		}
		return vals.Str(f(args[0].Str())), nil
	}
}

// An empty delimiter splits s into single-byte strings.
func split(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkStrArgs("split", args, 2); err != nil {
		return vals.Nil, err
	}
	s, delim := args[0].Str(), args[1].Str()
	var parts []vals.Value
	if delim == "" {
		for i := 0; i < len(s); i++ {
			parts = append(parts, vals.Str(s[i:i+1]))
		}
	} else {
		for _, part := range strings.Split(s, delim) {
			parts = append(parts, vals.Str(part))
		}
	}
	return vals.MakeList(parts...), nil
}

func join(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("join", args, 2); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("join", args, 0, vals.ListKind); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("join", args, 1, vals.StringKind); err != nil {
		return vals.Nil, err
	}
	elems := args[0].List().Elems()
	strs := make([]string, len(elems))
	for i, elem := range elems {
		strs[i] = vals.ToString(elem)
	}
	return vals.Str(strings.Join(strs, args[1].Str())), nil
}

func replace(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkStrArgs("replace", args, 3); err != nil {
		return vals.Nil, err
	}
	s, old, repl := args[0].Str(), args[1].Str(), args[2].Str()
	if old == "" {
		return args[0], nil
	}
	return vals.Str(strings.ReplaceAll(s, old, repl)), nil
}

func checkStrArgs(name string, args []vals.Value, n int) error {
	if err := checkExactArity(name, args, n); err != nil {
		return err
	}
	for i := range args {
		if err := checkArg(name, args, i, vals.StringKind); err != nil {
			return err
		}
	}
	return nil
}
