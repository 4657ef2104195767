package sumrope

// Insert places x immediately before the element addressed by at. Inserting
// at End appends. The cursor must come from this rope in its current state;
// all cursors are invalidated afterwards.
func (r *Rope[T, O]) Insert(x T, at Cursor) {
	r.ensureRoot()
	xLen := x.ToOffset()

	if sibling, firstLen, split := insertRec(r.root, at.path(), x, xLen); split {
		// The split escaped the root: grow a new internal root holding the
		// two halves of the former root.
		r.root = newInternal(r.root, sibling, firstLen)
	}

	r.len = r.len.Add(xLen)
}

// insertRec descends along at and inserts x at the addressed leaf position.
// When the node had to split it returns (sibling, firstLen, true), where
// sibling is the freshly created right half and firstLen the recomputed
// subtree offset of the retained half. x may have landed in either half.
func insertRec[T Item[O], O Offset[O]](n *node[T, O], at []uint8, x T, xLen O) (*node[T, O], O, bool) {
	if len(at) == 0 {
		panic("sumrope: cursor path shorter than tree height")
	}
	i := int(at[0])

	if n.isLeaf() {
		if len(at) != 1 || i > len(n.elems) {
			panic("sumrope: cursor does not address an insertion point")
		}

		if len(n.elems) < maxNode {
			n.elems = insertElem(n.elems, i, x)
			var zero O
			return nil, zero, false
		}

		// Full; split the leaf into two. The new element is routed into
		// the newly created half whenever the insertion index is at or
		// past the midpoint, which minimizes element movement.
		mid := maxNode / 2
		sibling := newLeaf[T, O]()
		if i >= mid {
			sibling.elems = append(sibling.elems, n.elems[mid:i]...)
			sibling.elems = append(sibling.elems, x)
			sibling.elems = append(sibling.elems, n.elems[i:]...)
			clearTail(n.elems, mid)
			n.elems = n.elems[:mid]
		} else {
			sibling.elems = append(sibling.elems, n.elems[mid:]...)
			clearTail(n.elems, mid)
			n.elems = insertElem(n.elems[:mid], i, x)
		}

		// Recompute the retained half's subtotal by summation rather than
		// subtraction.
		return sibling, sumElems(n.elems), true
	}

	// Internal node. The cumulative cache entries at and past the target
	// child grow by the new element's offset regardless of splitting below.
	for j := i; j < len(n.offsets); j++ {
		n.offsets[j] = n.offsets[j].Add(xLen)
	}

	sibling, newLen, split := insertRec(n.children[i], at[1:], x, xLen)
	if !split {
		var zero O
		return nil, zero, false
	}

	// The child split; its new sibling goes immediately after it.
	if len(n.children) < maxNode {
		n.children = insertElem(n.children, i+1, sibling)
		if i == 0 {
			n.offsets = insertElem(n.offsets, 0, newLen)
		} else {
			n.offsets = insertElem(n.offsets, i, n.offsets[i-1].Add(newLen))
		}
		var zero O
		return nil, zero, false
	}

	// This node is full too; split it. The midpoint choice below keeps the
	// modified child and its new sibling unambiguously in one half, never
	// straddling the boundary.
	mid := maxNode / 2

	secondChildren := n.children[mid:]
	secondOffsets := n.offsets[mid-1:]
	firstLen := secondOffsets[0]

	newNode := &node[T, O]{
		height:   n.height,
		children: make([]*node[T, O], 0, maxNode),
		offsets:  make([]O, 0, maxNode-1),
	}

	// Cumulative entries are relative to the node's start, so entries moved
	// into the new node are rebased against the split point.
	rebase := func(o O) O { return o.Add(firstLen.Neg()) }

	if i >= mid {
		// The modified child and its sibling belong to the second half.
		k := i - mid
		newNode.children = append(newNode.children, secondChildren[:k+1]...)
		newNode.children = append(newNode.children, sibling)
		newNode.children = append(newNode.children, secondChildren[k+1:]...)

		for _, o := range secondOffsets[1 : k+1] {
			newNode.offsets = append(newNode.offsets, rebase(o))
		}
		if k == 0 {
			newNode.offsets = append(newNode.offsets, newLen)
		} else {
			prev := newNode.offsets[len(newNode.offsets)-1]
			newNode.offsets = append(newNode.offsets, prev.Add(newLen))
		}
		for _, o := range secondOffsets[k+1:] {
			newNode.offsets = append(newNode.offsets, rebase(o))
		}

		clearTail(n.children, mid)
		n.children = n.children[:mid]
		n.offsets = n.offsets[:mid-1]
	} else {
		// The modified child and its sibling belong to the first half.
		newNode.children = append(newNode.children, secondChildren...)
		for _, o := range secondOffsets[1:] {
			newNode.offsets = append(newNode.offsets, rebase(o))
		}

		clearTail(n.children, mid)
		n.children = n.children[:mid]
		n.offsets = n.offsets[:mid-1]

		n.children = insertElem(n.children, i+1, sibling)
		if i == 0 {
			n.offsets = insertElem(n.offsets, 0, newLen)
		} else {
			n.offsets = insertElem(n.offsets, i, n.offsets[i-1].Add(newLen))
		}
	}

	return newNode, firstLen, true
}

// clearTail zeroes the slice tail beyond keep so detached nodes and
// elements do not linger behind a truncated slice.
func clearTail[E any](s []E, keep int) {
	var zero E
	for j := keep; j < len(s); j++ {
		s[j] = zero
	}
}
