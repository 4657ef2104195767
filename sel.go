package sumrope

import "cmp"

// Edge specifies one boundary of a range query relative to a key projected
// out of the cumulative offset. A Floor edge sits at the start of the
// element covering the key value (the element is included when the edge
// starts a range and excluded when it ends one); a Ceil edge sits at the
// nearest element boundary at or after the key value.
type Edge[O Offset[O]] struct {
	kind edgeKind
	cmp  func(O) int
}

type edgeKind uint8

const (
	edgeUnbounded edgeKind = iota
	edgeFloor
	edgeCeil
)

// Floor constructs an edge at the start of the element whose extent covers
// x under the key projection.
func Floor[O Offset[O], K cmp.Ordered](key func(O) K, x K) Edge[O] {
	return Edge[O]{kind: edgeFloor, cmp: ByKey(key, x)}
}

// Ceil constructs an edge at the first element boundary at or after x under
// the key projection.
func Ceil[O Offset[O], K cmp.Ordered](key func(O) K, x K) Edge[O] {
	return Edge[O]{kind: edgeCeil, cmp: ByKey(key, x)}
}

// Unbounded constructs an edge clamped to the corresponding end of the
// sequence: the front when used as a range start, the back as a range end.
func Unbounded[O Offset[O]]() Edge[O] {
	return Edge[O]{kind: edgeUnbounded}
}

// OffsetRange is the concrete cumulative-offset span covered by a range
// query result.
type OffsetRange[O Offset[O]] struct {
	Start O
	End   O
}

// Range returns an iterator over the elements between the two edges along
// with the offset sub-range they occupy. An empty or inverted range (end
// boundary before the start boundary) yields an empty iterator, with the
// end boundary degenerated to the start boundary.
func (r *Rope[T, O]) Range(start, end Edge[O]) (*Iter[T, O], OffsetRange[O]) {
	sc, so := r.edgeCut(start, false)
	ec, eo := r.edgeCut(end, true)

	if compareCursors(ec, sc) < 0 {
		ec, eo = sc, so
	}

	return &Iter[T, O]{rope: r, next: sc, stop: ec}, OffsetRange[O]{Start: so, End: eo}
}

// edgeCut resolves an edge to a boundary between elements: the cursor of
// the first element past the boundary (or End) plus the boundary's
// cumulative offset.
func (r *Rope[T, O]) edgeCut(e Edge[O], isEnd bool) (Cursor, O) {
	var zero O
	switch e.kind {
	case edgeFloor:
		c, off, ok := r.InclusiveLowerBoundBy(e.cmp)
		if !ok {
			return r.Begin(), zero
		}
		return c, off

	case edgeCeil:
		c, off, ok := r.InclusiveUpperBoundBy(e.cmp)
		if !ok {
			return r.Begin(), zero
		}
		if compareCursors(c, r.End()) == 0 {
			return c, off
		}
		// The bound is the last element starting before the key; the cut
		// sits just past it.
		elemLen := (*r.At(c)).ToOffset()
		return r.cursorAfter(c), off.Add(elemLen)

	default: // unbounded
		if isEnd {
			return r.End(), r.len
		}
		return r.Begin(), zero
	}
}
