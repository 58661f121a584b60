// Package vals contains the value model of ITMOScript and the operations on
// values.
package vals

// Kind identifies which of the six shapes a Value has.
type Kind uint8

// Possible values of Kind. The zero Kind is NilKind, so that the zero Value is
// nil.
const (
	NilKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	ListKind
	FunctionKind
)

var kindNames = [...]string{
	NilKind:      "nil",
	NumberKind:   "number",
	StringKind:   "string",
	BoolKind:     "bool",
	ListKind:     "list",
	FunctionKind: "function",
}

var typeNames = [...]string{
	NilKind:      "Nil type",
	NumberKind:   "Double type",
	StringKind:   "String type",
	BoolKind:     "Bool type",
	ListKind:     "List type",
	FunctionKind: "Function type",
}

// String returns a lowercase name of the kind, like "number".
func (k Kind) String() string { return kindNames[k] }

// TypeName returns the name of the kind used in error messages, like
// "Double type".
func (k Kind) TypeName() string { return typeNames[k] }

// Function is the payload of function values. Function values are equal only
// when they hold the same Function, so implementations should be pointers.
type Function interface {
	// Repr returns the display form of the function.
	Repr() string
}

// Value is a tagged union over the six kinds of values. Numbers, booleans and
// nil are values; lists and functions are references, so copies of a Value
// share them. Strings are immutable.
type Value struct {
	kind Kind
	num  float64 // also holds bools as 0 or 1
	str  string
	list *List
	fn   Function
}

// Nil is the nil value.
var Nil = Value{}

// Num returns a number value.
func Num(f float64) Value { return Value{kind: NumberKind, num: f} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: StringKind, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: BoolKind}
	if b {
		v.num = 1
	}
	return v
}

// ListOf returns a value referencing l.
func ListOf(l *List) Value { return Value{kind: ListKind, list: l} }

// MakeList returns a value referencing a new list with the given elements.
func MakeList(elems ...Value) Value { return ListOf(NewList(elems...)) }

// Func returns a function value.
func Func(f Function) Value { return Value{kind: FunctionKind, fn: f} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Num returns the number held by v, or 0 if v is not a number.
func (v Value) Num() float64 {
	if v.kind != NumberKind {
		return 0
	}
	return v.num
}

// Str returns the string held by v, or "" if v is not a string.
func (v Value) Str() string { return v.str }

// Bool returns the boolean held by v, or false if v is not a boolean.
func (v Value) Bool() bool { return v.kind == BoolKind && v.num != 0 }

// List returns the list held by v, or nil if v is not a list.
func (v Value) List() *List { return v.list }

// Func returns the function held by v, or nil if v is not a function.
func (v Value) Func() Function { return v.fn }

// IsNil reports whether v is nil.
func (v Value) IsNil() bool { return v.kind == NilKind }

// Truthy reports whether v counts as true in a condition. Numbers are truthy
// when non-zero, strings and lists when non-empty, and functions always.
func Truthy(v Value) bool {
	switch v.kind {
	case NumberKind:
		return v.num != 0
	case StringKind:
		return v.str != ""
	case BoolKind:
		return v.num != 0
	case ListKind:
		return v.list.Len() > 0
	case FunctionKind:
		return true
	}
	return false
}

// Equal reports whether two values are equal. Values of different kinds are
// never equal. Lists are compared element by element, and functions by
// identity. Two distinct lists that contain themselves are never equal.
func Equal(x, y Value) bool {
	return equal(x, y, nil)
}

// Pairs of lists currently being compared.
type listPairs map[[2]*List]struct{}

func equal(x, y Value, seen listPairs) bool {
	if x.kind != y.kind {
		return false
	}
	switch x.kind {
	case NilKind:
		return true
	case NumberKind, BoolKind:
		return x.num == y.num
	case StringKind:
		return x.str == y.str
	case ListKind:
		return equalList(x.list, y.list, seen)
	case FunctionKind:
		return x.fn == y.fn
	}
	return false
}

func equalList(x, y *List, seen listPairs) bool {
	if x == y {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	key := [2]*List{x, y}
	if _, ok := seen[key]; ok {
		return false
	}
	if seen == nil {
		seen = make(listPairs)
	}
	seen[key] = struct{}{}
	defer delete(seen, key)
	for i := range x.elems {
		if !equal(x.elems[i], y.elems[i], seen) {
			return false
		}
	}
	return true
}
