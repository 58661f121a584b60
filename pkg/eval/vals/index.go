package vals

import (
	"math"
	"strconv"

	"github.com/keyplexex/itmoscript/pkg/eval/errs"
)

var (
	errIndexMustBeNumber      = errs.BadIndex{Reason: "index must be a number"}
	errIndexMustBeInteger     = errs.BadIndex{Reason: "index must be an integer"}
	errSliceIndexMustBeNumber = errs.BadIndex{Reason: "slice indices must be numbers"}
	errSliceIndexMustBeInt    = errs.BadIndex{Reason: "slice indices must be integers"}

	errNotIndexable       = errs.NotIndexable{Op: "indexing operator []", Valid: "lists and strings"}
	errNotSliceable       = errs.NotIndexable{Op: "slicing operator [:]", Valid: "lists and strings"}
	errNotIndexAssignable = errs.NotIndexable{Op: "index assignment", Valid: "lists"}
	errNotSliceAssignable = errs.NotIndexable{Op: "slice assignment", Valid: "lists"}
)

// Index returns obj[idx] for a list or string obj. The index must be an
// integral number; a negative index counts from the end. An index out of range
// gives Nil. Indexing a string gives a one-byte string.
func Index(obj, idx Value) (Value, error) {
	i, err := integralIndex(idx, errIndexMustBeNumber, errIndexMustBeInteger)
	if err != nil {
		return Nil, err
	}
	switch obj.kind {
	case ListKind:
		if j, ok := wrapIndex(i, obj.list.Len()); ok {
			return obj.list.At(j), nil
		}
		return Nil, nil
	case StringKind:
		if j, ok := wrapIndex(i, len(obj.str)); ok {
			return Str(obj.str[j : j+1]), nil
		}
		return Nil, nil
	}
	return Nil, errNotIndexable
}

// ListIndex resolves an index of l for writing. Unlike Index, an index out of
// range is an error.
func ListIndex(l *List, idx Value) (int, error) {
	i, err := integralIndex(idx, errIndexMustBeNumber, errIndexMustBeInteger)
	if err != nil {
		return 0, err
	}
	n := l.Len()
	j, ok := wrapIndex(i, n)
	if !ok {
		return 0, errs.OutOfRange{
			What:     "list index",
			ValidLow: strconv.Itoa(-n), ValidHigh: strconv.Itoa(n - 1),
			Actual: FormatNum(i)}
	}
	return j, nil
}

// SetIndex implements obj[idx] = v. Only lists support index assignment.
func SetIndex(obj, idx, v Value) error {
	if obj.kind != ListKind {
		return errNotIndexAssignable
	}
	i, err := ListIndex(obj.list, idx)
	if err != nil {
		return err
	}
	obj.list.Set(i, v)
	return nil
}

// Slice returns obj[start:end] for a list or string obj. A nil bound takes its
// default, 0 for start and the length for end. Each bound wraps if negative,
// and is then clamped into [0, length]. If start >= end, the result is empty.
// Slicing a list always gives a new list.
func Slice(obj Value, start, end *Value) (Value, error) {
	var n int
	switch obj.kind {
	case ListKind:
		n = obj.list.Len()
	case StringKind:
		n = len(obj.str)
	default:
		return Nil, errNotSliceable
	}
	from, to, err := sliceBounds(start, end, n)
	if err != nil {
		return Nil, err
	}
	if obj.kind == StringKind {
		return Str(obj.str[from:to]), nil
	}
	return MakeList(append([]Value(nil), obj.list.Elems()[from:to]...)...), nil
}

// SetSlice implements obj[start:end] = v, replacing the elements of the list
// obj in the slice with the elements of the list v. The bounds are resolved
// like in Slice; when start >= end, the elements are inserted at start.
func SetSlice(obj Value, start, end *Value, v Value) error {
	if obj.kind != ListKind {
		return errNotSliceAssignable
	}
	if v.kind != ListKind {
		return errs.BadValue{
			What: "value assigned to a slice", Valid: "a list",
			Actual: v.kind.TypeName()}
	}
	from, to, err := sliceBounds(start, end, obj.list.Len())
	if err != nil {
		return err
	}
	obj.list.Splice(from, to, v.list.Elems())
	return nil
}

func sliceBounds(start, end *Value, n int) (int, int, error) {
	from, err := sliceBound(start, n, 0)
	if err != nil {
		return 0, 0, err
	}
	to, err := sliceBound(end, n, n)
	if err != nil {
		return 0, 0, err
	}
	if from > to {
		to = from
	}
	return from, to, nil
}

func sliceBound(v *Value, n, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	f, err := integralIndex(*v, errSliceIndexMustBeNumber, errSliceIndexMustBeInt)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		f += float64(n)
	}
	return int(math.Max(0, math.Min(f, float64(n)))), nil
}

func integralIndex(idx Value, notNumber, notInteger error) (float64, error) {
	if idx.kind != NumberKind {
		return 0, notNumber
	}
	// The floor check also rejects NaN.
	if idx.num != math.Floor(idx.num) || math.IsInf(idx.num, 0) {
		return 0, notInteger
	}
	return idx.num, nil
}

// Converts an integral index to a position in a sequence of length n,
// wrapping negative indices.
func wrapIndex(i float64, n int) (int, bool) {
	if i < 0 {
		i += float64(n)
	}
	if i < 0 || i >= float64(n) {
		return 0, false
	}
	return int(i), true
}
