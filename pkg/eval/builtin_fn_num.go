package eval

import (
	"math"
	"strconv"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// Numerical functions.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		"abs":   mathFn("abs", math.Abs),
		"ceil":  mathFn("ceil", math.Ceil),
		"floor": mathFn("floor", math.Floor),
		"round": mathFn("round", math.Round),
		"sqrt":  sqrt,

		"rnd":       rnd,
		"parse_num": parseNum,
		"to_string": toString,
	})
}

func mathFn(name string, f func(float64) float64) builtinImpl {
	return func(_ *Interpreter, args []vals.Value) (vals.Value, error) {
		if err := checkNumArg(name, args); err != nil {
			return vals.Nil, err
		}
		return vals.Num(f(args[0].Num())), nil
	}
}

func checkNumArg(name string, args []vals.Value) error {
	if err := checkExactArity(name, args, 1); err != nil {
		return err
	}
	return checkArg(name, args, 0, vals.NumberKind)
}

func sqrt(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkNumArg("sqrt", args); err != nil {
		return vals.Nil, err
	}
	x := args[0].Num()
	if x < 0 {
		return vals.Nil, errs.BadValue{
			What: "argument of sqrt", Valid: "non-negative", Actual: vals.FormatNum(x)}
	}
	return vals.Num(math.Sqrt(x)), nil
}

// Largest argument accepted by rnd.
const maxRndBound = math.MaxInt32

func rnd(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkNumArg("rnd", args); err != nil {
		return vals.Nil, err
	}
	n := args[0].Num()
	if !(n > 0 && n <= maxRndBound) {
		return vals.Nil, errs.BadValue{
			What:   "argument of rnd",
			Valid:  "positive and at most " + strconv.Itoa(maxRndBound),
			Actual: vals.FormatNum(n)}
	}
	// The result is an integer in [0, n).
	return vals.Num(float64(ip.rand.Intn(int(math.Ceil(n))))), nil
}

// Returns nil when the string is not a number.
func parseNum(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("parse_num", args, 1); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("parse_num", args, 0, vals.StringKind); err != nil {
		return vals.Nil, err
	}
	s := strings.TrimLeft(args[0].Str(), " \t\n\r\f\v")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return vals.Nil, nil
	}
	return vals.Num(f), nil
}

func toString(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkExactArity("to_string", args, 1); err != nil {
		return vals.Nil, err
	}
	return vals.Str(vals.ToString(args[0])), nil
}
