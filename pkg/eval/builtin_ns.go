package eval

import (
	"sort"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// Builtin functions, in the order they are registered.
var builtinFns []*GoFn

type builtinImpl = func(ip *Interpreter, args []vals.Value) (vals.Value, error)

func addBuiltinFns(fns map[string]builtinImpl) {
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		builtinFns = append(builtinFns, NewGoFn(name, fns[name]))
	}
}

// BuiltinNames returns the sorted names of all builtin functions.
func BuiltinNames() []string {
	names := make([]string, len(builtinFns))
	for i, fn := range builtinFns {
		names[i] = fn.name
	}
	sort.Strings(names)
	return names
}

func checkArity(name string, args []vals.Value, low, high int) error {
	if len(args) < low || (high >= 0 && len(args) > high) {
		return errs.ArityMismatch{What: name, ValidLow: low, ValidHigh: high, Actual: len(args)}
	}
	return nil
}

func checkExactArity(name string, args []vals.Value, n int) error {
	return checkArity(name, args, n, n)
}

// Checks that args[i] has one of the given kinds. The first kind is used to
// describe what was expected.
func checkArg(name string, args []vals.Value, i int, kinds ...vals.Kind) error {
	actual := args[i].Kind()
	for _, k := range kinds {
		if actual == k {
			return nil
		}
	}
	valid := kinds[0].String()
	for _, k := range kinds[1:] {
		valid += " or " + k.String()
	}
	return errs.ArgType{What: name, Index: i + 1, Valid: valid, Actual: actual.TypeName()}
}
