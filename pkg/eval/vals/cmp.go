package vals

import "strings"

// Position of each kind in the ordering used by Compare.
var kindOrder = [...]int{
	NumberKind:   0,
	StringKind:   1,
	BoolKind:     2,
	NilKind:      3,
	ListKind:     4,
	FunctionKind: 5,
}

// Compare defines a total order on values, used for sorting. Values of
// different kinds are ordered by kind: numbers, strings, booleans, nil, lists,
// functions. Within a kind, numbers and strings are ordered naturally, false
// comes before true, and lists are ordered by length. All nils are equal, and
// so are all functions.
//
// It returns -1, 0 or 1 when a is less than, equal to or greater than b.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return compareInt(kindOrder[a.kind], kindOrder[b.kind])
	}
	switch a.kind {
	case NumberKind, BoolKind:
		return compareNum(a.num, b.num)
	case StringKind:
		return strings.Compare(a.str, b.str)
	case ListKind:
		return compareInt(a.list.Len(), b.list.Len())
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
