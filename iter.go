package sumrope

// Iter is a lazy, double-ended iterator over a window of the rope. Obtain
// one from Rope.Iter or Rope.Range; it walks elements in tree order by
// replaying cursor advancement, never flattening the sequence.
//
// Next consumes from the front, NextBack from the back; the iterator is
// exhausted once the two ends meet. Mixing the two directions is allowed.
// Mutating the rope invalidates the iterator; re-obtain it afterwards.
type Iter[T Item[O], O Offset[O]] struct {
	rope *Rope[T, O]
	next Cursor // next element yielded by Next
	stop Cursor // one past the last element yielded so far by NextBack
	item *T
}

// Iter returns an iterator over the whole rope, front to back. Iterate
// backwards by calling NextBack instead of Next.
func (r *Rope[T, O]) Iter() *Iter[T, O] {
	return &Iter[T, O]{rope: r, next: r.Begin(), stop: r.End()}
}

// Next advances the front of the iterator.
// It returns false once the iterator is exhausted.
func (it *Iter[T, O]) Next() bool {
	if compareCursors(it.next, it.stop) >= 0 {
		it.item = nil
		return false
	}
	it.item = it.rope.At(it.next)
	it.next = it.rope.cursorAfter(it.next)
	return true
}

// NextBack advances the back of the iterator (reverse iteration).
// It returns false once the iterator is exhausted.
func (it *Iter[T, O]) NextBack() bool {
	if compareCursors(it.next, it.stop) >= 0 {
		it.item = nil
		return false
	}
	it.stop = it.rope.cursorBefore(it.stop)
	it.item = it.rope.At(it.stop)
	return true
}

// Item returns the element produced by the latest successful Next or
// NextBack call. The pointer is valid until the next mutation of the rope.
func (it *Iter[T, O]) Item() *T {
	return it.item
}

// Collect drains the remaining front-to-back elements into a slice.
func (it *Iter[T, O]) Collect() []T {
	var out []T
	for it.Next() {
		out = append(out, *it.Item())
	}
	return out
}
