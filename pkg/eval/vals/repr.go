package vals

import (
	"math"
	"strconv"
	"strings"
)

// ToString returns the display form of a value, as printed by print. Strings
// are shown as they are; strings inside lists are quoted. A list that contains
// itself is shown as [...] where it repeats.
func ToString(v Value) string {
	return toString(v, nil)
}

// Repr is like ToString, but quotes strings. It is used for list elements.
func Repr(v Value) string {
	return repr(v, nil)
}

func toString(v Value, visiting map[*List]bool) string {
	switch v.kind {
	case NumberKind:
		return FormatNum(v.num)
	case StringKind:
		return v.str
	case BoolKind:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case ListKind:
		if visiting[v.list] {
			return "[...]"
		}
		if visiting == nil {
			visiting = make(map[*List]bool)
		}
		visiting[v.list] = true
		defer delete(visiting, v.list)
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v.list.Elems() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(repr(elem, visiting))
		}
		sb.WriteByte(']')
		return sb.String()
	case FunctionKind:
		return v.fn.Repr()
	}
	return "nil"
}

func repr(v Value, visiting map[*List]bool) string {
	if v.kind == StringKind {
		return `"` + v.str + `"`
	}
	return toString(v, visiting)
}

// FormatNum formats a number with up to 6 decimal places, dropping trailing
// zeros and a trailing decimal point: 3.5, 4, 0.333333.
func FormatNum(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
