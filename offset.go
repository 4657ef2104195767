package sumrope

// Offset is the capability required of an offset type O: an additive group
// with a total order. The Go zero value of O must act as the group identity.
//
// Implementations should use value receivers; the container stores and
// copies offsets freely.
type Offset[O any] interface {
	// Add returns the sum of the receiver and other.
	Add(other O) O

	// Neg returns the additive inverse of the receiver.
	Neg() O

	// Cmp compares the receiver with other, returning a negative value,
	// zero, or a positive value respectively when the receiver is less
	// than, equal to, or greater than other.
	Cmp(other O) int
}

// Item is the capability required of an element type T: a pure conversion
// to its offset contribution.
//
// ToOffset must be consistent: two calls on an unchanged element must
// return equal offsets. Elements may only change in ways that affect their
// offset through Rope.Update, which re-reads ToOffset before and after.
type Item[O any] interface {
	ToOffset() O
}

// Index is a plain element-count offset. It is the default choice when the
// sequence only needs array-like positions.
type Index int

// Add returns a + b.
func (a Index) Add(b Index) Index { return a + b }

// Neg returns -a.
func (a Index) Neg() Index { return -a }

// Cmp compares two indices.
func (a Index) Cmp(b Index) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IndexOffset pairs an element count with another offset, giving a sequence
// both array-style indexing and a custom metric at once. A virtualized line
// view, for example, tracks line groups with O = IndexOffset[Size]: Index
// counts lines while Value accumulates their total height.
type IndexOffset[O Offset[O]] struct {
	Index Index
	Value O
}

// Add returns the component-wise sum.
func (a IndexOffset[O]) Add(b IndexOffset[O]) IndexOffset[O] {
	return IndexOffset[O]{
		Index: a.Index + b.Index,
		Value: a.Value.Add(b.Value),
	}
}

// Neg returns the component-wise inverse.
func (a IndexOffset[O]) Neg() IndexOffset[O] {
	return IndexOffset[O]{
		Index: -a.Index,
		Value: a.Value.Neg(),
	}
}

// Cmp compares lexicographically: Index first, then Value. Cumulative
// component values are individually monotonic along the sequence, so
// searches normally project out one component with ByKey instead of
// ordering composites directly.
func (a IndexOffset[O]) Cmp(b IndexOffset[O]) int {
	if c := a.Index.Cmp(b.Index); c != 0 {
		return c
	}
	return a.Value.Cmp(b.Value)
}
