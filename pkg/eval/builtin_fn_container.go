package eval

import (
	"math"
	"sort"
	"strconv"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// List functions.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		"range":  rangeFn,
		"push":   push,
		"pop":    pop,
		"insert": insert,
		"remove": remove,
		"sort":   sortFn,
	})
}

// Maximum number of elements range() may produce.
const maxRangeLen = 1 << 24

// range(end), range(start, end) or range(start, end, step).
func rangeFn(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkArity("range", args, 1, 3); err != nil {
		return vals.Nil, err
	}
	for i := range args {
		if err := checkArg("range", args, i, vals.NumberKind); err != nil {
			return vals.Nil, err
		}
	}
	start, end, step := 0.0, 0.0, 1.0
	switch len(args) {
	case 1:
		end = args[0].Num()
	case 2:
		start, end = args[0].Num(), args[1].Num()
	case 3:
		start, end, step = args[0].Num(), args[1].Num(), args[2].Num()
	}
	if step == 0 || math.IsNaN(step) {
		return vals.Nil, errs.BadValue{What: "step of range", Valid: "non-zero", Actual: vals.FormatNum(step)}
	}

	n := math.Ceil((end - start) / step)
	if n > maxRangeLen {
		return vals.Nil, errs.BadValue{
			What:   "length of range",
			Valid:  "at most " + strconv.Itoa(maxRangeLen),
			Actual: vals.FormatNum(n)}
	}
	// n is NaN when start or end is; the loop is then empty.
	var elems []vals.Value
	for i := 0; float64(i) < n; i++ {
		x := start + float64(i)*step
		if (step > 0 && x >= end) || (step < 0 && x <= end) {
			break
		}
		elems = append(elems, vals.Num(x))
	}
	return vals.MakeList(elems...), nil
}

func push(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkListArg("push", args, 2); err != nil {
		return vals.Nil, err
	}
	args[0].List().Append(args[1])
	return vals.Nil, nil
}

// Returns nil when the list is empty.
func pop(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkListArg("pop", args, 1); err != nil {
		return vals.Nil, err
	}
	v, _ := args[0].List().Pop()
	return v, nil
}

// A negative index counts from the end, with -1 meaning after the last
// element. The index is then clamped into the list.
func insert(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkListArg("insert", args, 3); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("insert", args, 1, vals.NumberKind); err != nil {
		return vals.Nil, err
	}
	l := args[0].List()
	n := l.Len()
	i := clampInt(args[1].Num())
	if i < 0 {
		i += n + 1
	}
	if i < 0 {
		i = 0
	} else if i > n {
		i = n
	}
	l.Insert(i, args[2])
	return vals.Nil, nil
}

// Returns the removed element, or nil when the index is out of range.
func remove(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkListArg("remove", args, 2); err != nil {
		return vals.Nil, err
	}
	if err := checkArg("remove", args, 1, vals.NumberKind); err != nil {
		return vals.Nil, err
	}
	l := args[0].List()
	n := l.Len()
	i := clampInt(args[1].Num())
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return vals.Nil, nil
	}
	return l.Remove(i), nil
}

// Sorts the list in place, keeping the order of equal elements.
func sortFn(_ *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := checkListArg("sort", args, 1); err != nil {
		return vals.Nil, err
	}
	elems := args[0].List().Elems()
	sort.SliceStable(elems, func(i, j int) bool {
		return vals.Compare(elems[i], elems[j]) < 0
	})
	return vals.Nil, nil
}

func checkListArg(name string, args []vals.Value, n int) error {
	if err := checkExactArity(name, args, n); err != nil {
		return err
	}
	return checkArg(name, args, 0, vals.ListKind)
}

// Truncates f toward zero, saturating at the bounds of int32 so that index
// arithmetic cannot overflow.
func clampInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
