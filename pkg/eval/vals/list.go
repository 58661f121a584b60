package vals

// List is a mutable sequence of values. Lists are shared by reference:
// mutating a list is visible through every value that references it.
type List struct {
	elems []Value
}

// NewList returns a new list with the given elements. The list takes
// ownership of the slice.
func NewList(elems ...Value) *List {
	return &List{elems}
}

// Len returns the number of elements. It is safe to call on a nil *List.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// At returns the i-th element. It panics if i is out of range.
func (l *List) At(i int) Value { return l.elems[i] }

// Set replaces the i-th element. It panics if i is out of range.
func (l *List) Set(i int, v Value) { l.elems[i] = v }

// Elems returns the underlying slice of elements. Callers must not retain it
// across mutations of the list.
func (l *List) Elems() []Value {
	if l == nil {
		return nil
	}
	return l.elems
}

// Copy returns a shallow copy of the list.
func (l *List) Copy() *List {
	return NewList(append([]Value(nil), l.Elems()...)...)
}

// Append appends values to the end of the list.
func (l *List) Append(vs ...Value) {
	l.elems = append(l.elems, vs...)
}

// Pop removes and returns the last element. It returns Nil and false if the
// list is empty.
func (l *List) Pop() (Value, bool) {
	n := len(l.elems)
	if n == 0 {
		return Nil, false
	}
	v := l.elems[n-1]
	l.elems[n-1] = Nil
	l.elems = l.elems[:n-1]
	return v, true
}

// Insert inserts v before the i-th element, where 0 <= i <= Len().
func (l *List) Insert(i int, v Value) {
	l.elems = append(l.elems, Nil)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = v
}

// Remove removes and returns the i-th element, where 0 <= i < Len().
func (l *List) Remove(i int) Value {
	v := l.elems[i]
	copy(l.elems[i:], l.elems[i+1:])
	l.elems[len(l.elems)-1] = Nil
	l.elems = l.elems[:len(l.elems)-1]
	return v
}

// Splice replaces the elements in [from, to) with vs.
func (l *List) Splice(from, to int, vs []Value) {
	vs = append([]Value(nil), vs...)
	tail := append([]Value(nil), l.elems[to:]...)
	l.elems = append(append(l.elems[:from], vs...), tail...)
}
