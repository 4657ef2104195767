package sumrope

// Cursor is a transient address of one element, stored as the child indices
// along the path from the root to a leaf. The final index selects an element
// within the leaf and may point one past the last occupied slot (the
// one-past-end position returned by End).
//
// A cursor is only meaningful for the exact rope state it was obtained from:
// any mutation that changes the tree shape at or above the addressed node
// invalidates it. Using a stale or foreign cursor is a precondition
// violation; accessors panic on out-of-range paths rather than guess.
type Cursor struct {
	depth   uint8
	indices [maxDepth]uint8
}

// compareCursors orders two cursors of the same rope by sequence position.
// All cursors of one rope state share the same depth, so this is a plain
// lexicographic comparison of the paths.
func compareCursors(a, b Cursor) int {
	n := int(a.depth)
	if int(b.depth) < n {
		n = int(b.depth)
	}
	for i := 0; i < n; i++ {
		if a.indices[i] != b.indices[i] {
			if a.indices[i] < b.indices[i] {
				return -1
			}
			return 1
		}
	}
	return int(a.depth) - int(b.depth)
}

func (c *Cursor) push(i int) {
	if int(c.depth) >= maxDepth {
		panic("sumrope: tree deeper than the supported maximum")
	}
	c.indices[c.depth] = uint8(i)
	c.depth++
}

// path returns the index path as a slice.
func (c *Cursor) path() []uint8 {
	return c.indices[:c.depth]
}

// Begin returns the cursor of the first element. For an empty rope it
// addresses the leaf's notional position 0, which equals End.
func (r *Rope[T, O]) Begin() Cursor {
	var c Cursor
	n := r.root
	if n == nil {
		c.push(0)
		return c
	}
	for {
		c.push(0)
		if n.isLeaf() {
			return c
		}
		n = n.children[0]
	}
}

// End returns the cursor of the one-past-end position: the last leaf with
// its index advanced one past the final occupied slot.
func (r *Rope[T, O]) End() Cursor {
	return r.endGeneric(true)
}

// LastCursor returns the cursor of the last element. The result is
// meaningless if the rope is empty.
func (r *Rope[T, O]) LastCursor() Cursor {
	return r.endGeneric(false)
}

func (r *Rope[T, O]) endGeneric(pastEnd bool) Cursor {
	var c Cursor
	n := r.root
	if n == nil {
		c.push(0)
		return c
	}
	for {
		if n.isLeaf() {
			i := len(n.elems)
			if !pastEnd {
				i--
			}
			c.push(i)
			return c
		}
		c.push(len(n.children) - 1)
		n = n.children[len(n.children)-1]
	}
}

// At returns a pointer to the element addressed by at.
//
// The pointer is valid until the next mutation. Mutating the element in a
// way that changes its offset through this pointer corrupts the cumulative
// caches; use Update for that instead.
func (r *Rope[T, O]) At(at Cursor) *T {
	n := r.root
	for _, idx := range at.path() {
		i := int(idx)
		if n.isLeaf() {
			if i >= len(n.elems) {
				panic("sumrope: cursor does not address an element")
			}
			return &n.elems[i]
		}
		n = n.children[i]
	}
	panic("sumrope: cursor path shorter than tree height")
}

// Update applies f to the element addressed by at, then propagates the
// resulting offset delta to every ancestor's cumulative cache and the
// rope's total. This is the only safe way to change an element so that its
// offset changes.
func (r *Rope[T, O]) Update(at Cursor, f func(*T)) {
	delta := updateRec(r.root, at.path(), f)
	r.len = r.len.Add(delta)
}

func updateRec[T Item[O], O Offset[O]](n *node[T, O], at []uint8, f func(*T)) O {
	if len(at) == 0 {
		panic("sumrope: cursor path shorter than tree height")
	}
	i := int(at[0])

	if n.isLeaf() {
		if len(at) != 1 || i >= len(n.elems) {
			panic("sumrope: cursor does not address an element")
		}
		e := &n.elems[i]
		old := (*e).ToOffset()
		f(e)
		return (*e).ToOffset().Add(old.Neg())
	}

	delta := updateRec(n.children[i], at[1:], f)
	for j := i; j < len(n.offsets); j++ {
		n.offsets[j] = n.offsets[j].Add(delta)
	}
	return delta
}

// cursorAfter returns the cursor of the element following at, or the
// one-past-end cursor if at addresses the last element.
func (r *Rope[T, O]) cursorAfter(at Cursor) Cursor {
	// Record the nodes along the path so the walk back up can consult
	// sibling counts.
	var nodes [maxDepth]*node[T, O]
	n := r.root
	for d := 0; d < int(at.depth); d++ {
		nodes[d] = n
		if !n.isLeaf() {
			n = n.children[at.indices[d]]
		}
	}

	leafDepth := int(at.depth) - 1
	leaf := nodes[leafDepth]
	if int(at.indices[leafDepth])+1 < len(leaf.elems) {
		at.indices[leafDepth]++
		return at
	}

	// The leaf is exhausted; climb to the nearest ancestor with a right
	// sibling and descend to its leftmost element.
	for d := leafDepth - 1; d >= 0; d-- {
		if int(at.indices[d])+1 < len(nodes[d].children) {
			at.indices[d]++
			n := nodes[d].children[at.indices[d]]
			for dd := d + 1; ; dd++ {
				at.indices[dd] = 0
				if n.isLeaf() {
					return at
				}
				n = n.children[0]
			}
		}
	}

	// at addressed the last element; move to one-past-end.
	at.indices[leafDepth]++
	return at
}

// cursorBefore returns the cursor of the element preceding at. at may be the
// one-past-end cursor. Calling it with the cursor of the first element is a
// precondition violation.
func (r *Rope[T, O]) cursorBefore(at Cursor) Cursor {
	var nodes [maxDepth]*node[T, O]
	n := r.root
	for d := 0; d < int(at.depth); d++ {
		nodes[d] = n
		if !n.isLeaf() {
			n = n.children[at.indices[d]]
		}
	}

	leafDepth := int(at.depth) - 1
	if at.indices[leafDepth] > 0 {
		at.indices[leafDepth]--
		return at
	}

	for d := leafDepth - 1; d >= 0; d-- {
		if at.indices[d] > 0 {
			at.indices[d]--
			n := nodes[d].children[at.indices[d]]
			for dd := d + 1; ; dd++ {
				if n.isLeaf() {
					at.indices[dd] = uint8(len(n.elems) - 1)
					return at
				}
				at.indices[dd] = uint8(len(n.children) - 1)
				n = n.children[len(n.children)-1]
			}
		}
	}

	panic("sumrope: no element precedes the cursor")
}
