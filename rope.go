package sumrope

// Rope is an ordered sequence of elements with logarithmic-time insertion,
// removal, and offset-based search at arbitrary positions.
//
// T is the element type and O its offset type; the rope keeps a cumulative
// offset cache over the whole tree so that OffsetLen is O(1) and searches
// descend without touching every element.
//
// A Rope is a plain in-memory structure with no internal locking. Any number
// of goroutines may read it concurrently as long as none mutates it.
type Rope[T Item[O], O Offset[O]] struct {
	root *node[T, O]
	len  O
}

// New creates an empty rope.
func New[T Item[O], O Offset[O]]() *Rope[T, O] {
	return &Rope[T, O]{root: newLeaf[T, O]()}
}

// FromSlice creates a rope holding the elements of xs in order.
func FromSlice[T Item[O], O Offset[O]](xs []T) *Rope[T, O] {
	r := New[T, O]()
	for _, x := range xs {
		r.PushBack(x)
	}
	return r
}

// ensureRoot lazily initializes the root so the zero Rope value behaves as
// an empty sequence.
func (r *Rope[T, O]) ensureRoot() {
	if r.root == nil {
		r.root = newLeaf[T, O]()
	}
}

// OffsetLen returns the total offset of the rope: the sum of ToOffset over
// all elements. This is not necessarily the element count unless O is Index.
func (r *Rope[T, O]) OffsetLen() O {
	return r.len
}

// IsEmpty reports whether the rope contains no elements.
func (r *Rope[T, O]) IsEmpty() bool {
	return r.root == nil || (r.root.isLeaf() && len(r.root.elems) == 0)
}

// PushBack appends an element to the back of the rope.
func (r *Rope[T, O]) PushBack(x T) {
	r.ensureRoot()
	r.Insert(x, r.End())
}

// PushFront prepends an element to the front of the rope.
func (r *Rope[T, O]) PushFront(x T) {
	r.ensureRoot()
	r.Insert(x, r.Begin())
}

// PopBack removes and returns the last element.
// The second result is false if the rope is empty.
func (r *Rope[T, O]) PopBack() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.Remove(r.LastCursor()), true
}

// PopFront removes and returns the first element.
// The second result is false if the rope is empty.
func (r *Rope[T, O]) PopFront() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.Remove(r.Begin()), true
}

// First returns the first element, or nil if the rope is empty.
// The pointer is valid only until the next mutation.
func (r *Rope[T, O]) First() *T {
	if r.IsEmpty() {
		return nil
	}
	return r.At(r.Begin())
}

// Last returns the last element, or nil if the rope is empty.
// The pointer is valid only until the next mutation.
func (r *Rope[T, O]) Last() *T {
	if r.IsEmpty() {
		return nil
	}
	return r.At(r.LastCursor())
}

// Height returns the height of the tree.
// Useful for debugging and testing balance.
func (r *Rope[T, O]) Height() int {
	if r.root == nil {
		return 1
	}
	return int(r.root.height) + 1
}
