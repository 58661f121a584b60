package vals

import (
	"math"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
)

// Names of operators in error messages.
const (
	OpAdd       = "add (+)"
	OpSub       = "subtract (-)"
	OpMul       = "multiply (*)"
	OpDiv       = "divide (/)"
	OpMod       = "modulo (%)"
	OpPow       = "power (^)"
	OpLess      = "less than (<)"
	OpGreater   = "greater than (>)"
	OpLessEq    = "less than or equal (<=)"
	OpGreaterEq = "greater than or equal (>=)"
	OpNeg       = "negate (-)"
	OpPos       = "unary plus (+)"
)

// Upper bound of the length of a string or list built by repetition.
const maxRepeatLen = 1 << 30

func typeError(op string, operands ...Value) error {
	names := make([]string, len(operands))
	for i, v := range operands {
		names[i] = v.kind.TypeName()
	}
	return errs.TypeError{Op: op, Operands: names}
}

// Add adds two numbers, or concatenates two strings or two lists. The result
// of concatenating lists is a new list.
func Add(x, y Value) (Value, error) {
	switch {
	case x.kind == NumberKind && y.kind == NumberKind:
		return Num(x.num + y.num), nil
	case x.kind == StringKind && y.kind == StringKind:
		return Str(x.str + y.str), nil
	case x.kind == ListKind && y.kind == ListKind:
		elems := make([]Value, 0, x.list.Len()+y.list.Len())
		elems = append(elems, x.list.Elems()...)
		elems = append(elems, y.list.Elems()...)
		return MakeList(elems...), nil
	}
	return Nil, typeError(OpAdd, x, y)
}

// Sub subtracts two numbers, or removes the first occurrence of y from the
// string x.
func Sub(x, y Value) (Value, error) {
	switch {
	case x.kind == NumberKind && y.kind == NumberKind:
		return Num(x.num - y.num), nil
	case x.kind == StringKind && y.kind == StringKind:
		return Str(strings.Replace(x.str, y.str, "", 1)), nil
	}
	return Nil, typeError(OpSub, x, y)
}

// Mul multiplies two numbers, or repeats a string or list by a number in either
// operand position. Booleans are treated as 1 and 0.
//
// Repeating by n <= 0 gives an empty string or list. Otherwise the result is
// floor(n) copies followed by a prefix covering the fractional part of n,
// rounded up: "abc" * 2.5 is "abcabcab".
func Mul(x, y Value) (Value, error) {
	l, r := boolToNum(x), boolToNum(y)
	switch {
	case l.kind == NumberKind && r.kind == NumberKind:
		return Num(l.num * r.num), nil
	case l.kind == NumberKind && (r.kind == StringKind || r.kind == ListKind):
		return repeat(r, l.num)
	case r.kind == NumberKind && (l.kind == StringKind || l.kind == ListKind):
		return repeat(l, r.num)
	}
	return Nil, typeError(OpMul, x, y)
}

func boolToNum(v Value) Value {
	if v.kind == BoolKind {
		return Num(v.num)
	}
	return v
}

func repeat(seq Value, n float64) (Value, error) {
	var length int
	if seq.kind == StringKind {
		length = len(seq.str)
	} else {
		length = seq.list.Len()
	}
	if n <= 0 || length == 0 {
		return emptyLike(seq), nil
	}
	if total := float64(length) * n; total > maxRepeatLen || math.IsNaN(total) {
		return Nil, errs.BadValue{
			What:   "length of the result of " + OpMul,
			Valid:  "at most " + FormatNum(maxRepeatLen),
			Actual: FormatNum(total)}
	}
	whole := math.Floor(n)
	k := int(whole)
	prefix := 0
	if frac := n - whole; frac > 0 {
		prefix = int(math.Ceil(float64(length) * frac))
		if prefix > length {
			prefix = length
		}
	}
	if seq.kind == StringKind {
		return Str(strings.Repeat(seq.str, k) + seq.str[:prefix]), nil
	}
	src := seq.list.Elems()
	elems := make([]Value, 0, k*length+prefix)
	for i := 0; i < k; i++ {
		elems = append(elems, src...)
	}
	elems = append(elems, src[:prefix]...)
	return MakeList(elems...), nil
}

func emptyLike(seq Value) Value {
	if seq.kind == StringKind {
		return Str("")
	}
	return MakeList()
}

// Div divides two numbers. Dividing by zero is an error.
func Div(x, y Value) (Value, error) {
	if x.kind == NumberKind && y.kind == NumberKind {
		if y.num == 0 {
			return Nil, errs.DivisionByZero{Op: OpDiv}
		}
		return Num(x.num / y.num), nil
	}
	return Nil, typeError(OpDiv, x, y)
}

// Mod returns the floating-point remainder of x/y, with the sign of x.
func Mod(x, y Value) (Value, error) {
	if x.kind == NumberKind && y.kind == NumberKind {
		return Num(math.Mod(x.num, y.num)), nil
	}
	return Nil, typeError(OpMod, x, y)
}

// Pow raises x to the power of y.
func Pow(x, y Value) (Value, error) {
	if x.kind == NumberKind && y.kind == NumberKind {
		return Num(math.Pow(x.num, y.num)), nil
	}
	return Nil, typeError(OpPow, x, y)
}

// Less compares two numbers, or two strings lexicographically.
func Less(x, y Value) (Value, error) {
	return compare(OpLess, x, y, func(c int) bool { return c < 0 })
}

// Greater is like Less, but tests for x > y.
func Greater(x, y Value) (Value, error) {
	return compare(OpGreater, x, y, func(c int) bool { return c > 0 })
}

// LessEq is like Less, but tests for x <= y.
func LessEq(x, y Value) (Value, error) {
	return compare(OpLessEq, x, y, func(c int) bool { return c <= 0 })
}

// GreaterEq is like Less, but tests for x >= y.
func GreaterEq(x, y Value) (Value, error) {
	return compare(OpGreaterEq, x, y, func(c int) bool { return c >= 0 })
}

func compare(op string, x, y Value, test func(int) bool) (Value, error) {
	switch {
	case x.kind == NumberKind && y.kind == NumberKind:
		// Every comparison involving NaN is false.
		if math.IsNaN(x.num) || math.IsNaN(y.num) {
			return Bool(false), nil
		}
		return Bool(test(compareNum(x.num, y.num))), nil
	case x.kind == StringKind && y.kind == StringKind:
		return Bool(test(strings.Compare(x.str, y.str))), nil
	}
	return Nil, typeError(op, x, y)
}

func compareNum(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Neg negates a number.
func Neg(x Value) (Value, error) {
	if x.kind == NumberKind {
		return Num(-x.num), nil
	}
	return Nil, typeError(OpNeg, x)
}

// Pos returns a number unchanged.
func Pos(x Value) (Value, error) {
	if x.kind == NumberKind {
		return x, nil
	}
	return Nil, typeError(OpPos, x)
}

// Not negates the truthiness of x.
func Not(x Value) Value {
	return Bool(!Truthy(x))
}
