package diag

// Ranger wraps the Range method.
type Ranger interface {
	// Range returns the range associated with the value.
	Range() Ranging
}

// Ranging represents a range [From, To) of byte offsets within a source.
// Structs can embed Ranging to satisfy the [Ranger] interface.
type Ranging struct {
	From int
	To   int
}

// Range returns the Ranging itself.
func (r Ranging) Range() Ranging { return r }

// PointRanging returns a zero-width Ranging at the given point.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}

// MixedRanging returns a Ranging from the start position of a to the end
// position of b.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}

// Position is a 1-based line and column pair.
type Position struct {
	Line, Col int
}

// PositionOf returns the position of the byte offset idx within src. Columns
// count bytes. An offset past the end of src is clamped to the end.
func PositionOf(src string, idx int) Position {
	if idx > len(src) {
		idx = len(src)
	}
	pos := Position{1, 1}
	for i := 0; i < idx; i++ {
		if src[i] == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	return pos
}
