package sumrope

import "cmp"

// ByKey builds a comparator over offsets from a key projection: the
// resulting function compares key(o) against target. Composite offsets use
// this to search by a single component, e.g.
// ByKey(func(o IndexOffset[Size]) Index { return o.Index }, 10).
func ByKey[O Offset[O], K cmp.Ordered](key func(O) K, target K) func(O) int {
	return func(o O) int {
		return cmp.Compare(key(o), target)
	}
}

// searchBy finds the first element whose right-boundary cumulative offset
// satisfies f, returning its cursor and its left-boundary (start) offset.
// f is evaluated over running cumulative offsets front to back and must be
// monotonically non-decreasing (false then true).
//
// The two logical boundaries are capped: ok is false when f holds even
// before any element, and the result is (End, OffsetLen, true) when no real
// element satisfies f.
func (r *Rope[T, O]) searchBy(f func(O) bool) (Cursor, O, bool) {
	var zero O
	if f(zero) {
		return Cursor{}, zero, false
	}
	if !f(r.len) {
		return r.End(), r.len, true
	}

	var c Cursor
	offset := zero

	n := r.root
	for {
		i := 0
		if n.isLeaf() {
			for i+1 < len(n.elems) {
				next := offset.Add(n.elems[i].ToOffset())
				if f(next) {
					break
				}
				offset = next
				i++
			}
			c.push(i)
			return c, offset, true
		}

		// Scan the cumulative cache for the first child whose trailing
		// offset satisfies f. The cache is monotonic, so a binary search
		// would also work; with at most 2*order entries a linear scan is
		// already cheap.
		next := offset
		for i < len(n.offsets) {
			childEnd := offset.Add(n.offsets[i])
			if f(childEnd) {
				break
			}
			next = childEnd
			i++
		}
		offset = next
		c.push(i)
		n = n.children[i]
	}
}

// InclusiveLowerBoundBy returns the cursor and start offset of the first
// element overlapping (x, +inf), where the comparator locates x: the first
// element whose extent ends strictly after x.
//
//	Elements:     [    0    ] [    1    ] [     2     ]
//	          |  |  |  |  |  |  |  |  |  |  |  |  |  |  |
//	Result:   -  0  0  0  0  1  1  1  1  2  2  2  2  2  end
//
// ok is false when x lies before the sequence; the result is
// (End, OffsetLen, true) when x lies at or past its end.
func (r *Rope[T, O]) InclusiveLowerBoundBy(cmp func(O) int) (Cursor, O, bool) {
	return r.searchBy(func(o O) bool { return cmp(o) > 0 })
}

// InclusiveUpperBoundBy returns the cursor and start offset of the last
// element overlapping (-inf, x): the last element whose extent starts
// strictly before x.
//
//	Elements:  [    0    ] [    1    ] [     2     ]
//	          |  |  |  |  |  |  |  |  |  |  |  |  |  |  |
//	Result:   -  0  0  0  0  1  1  1  1  2  2  2  2  2  end
//
// ok is false when x lies at or before the start of the sequence; the
// result is (End, OffsetLen, true) when x lies past its end.
func (r *Rope[T, O]) InclusiveUpperBoundBy(cmp func(O) int) (Cursor, O, bool) {
	return r.searchBy(func(o O) bool { return cmp(o) >= 0 })
}

// FindFirstAfter is InclusiveLowerBoundBy restricted to real elements: the
// one-past-end sentinel is reported as not found.
func (r *Rope[T, O]) FindFirstAfter(cmp func(O) int) (Cursor, O, bool) {
	return r.findOne(r.InclusiveLowerBoundBy(cmp))
}

// FindLastBefore is InclusiveUpperBoundBy restricted to real elements: the
// one-past-end sentinel is reported as not found.
func (r *Rope[T, O]) FindLastBefore(cmp func(O) int) (Cursor, O, bool) {
	return r.findOne(r.InclusiveUpperBoundBy(cmp))
}

func (r *Rope[T, O]) findOne(c Cursor, off O, ok bool) (Cursor, O, bool) {
	if !ok || compareCursors(c, r.End()) == 0 {
		var zero O
		return Cursor{}, zero, false
	}
	return c, off, true
}
