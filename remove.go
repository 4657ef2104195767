package sumrope

// Remove deletes and returns the element addressed by at. The cursor must
// come from this rope in its current state; all cursors are invalidated
// afterwards.
func (r *Rope[T, O]) Remove(at Cursor) T {
	elem, elemLen, underflow := removeRec(r.root, at.path())

	if underflow {
		// removeRec flags any drop below order, but the root is exempt: an
		// internal root may hold as few as 2 children and a leaf root has
		// no minimum. Only a single-child internal root needs fixing.
		r.flattenRoot()
	}

	r.len = r.len.Add(elemLen.Neg())
	return elem
}

// flattenRoot collapses an internal root left with one child into that
// child, shrinking the tree by one level.
func (r *Rope[T, O]) flattenRoot() {
	if r.root.isLeaf() || len(r.root.children) >= 2 {
		return
	}
	r.root = r.root.children[0]
}

// removeRec descends along at, removes the addressed element, and
// rebalances on the way back up. It returns the removed element, its offset
// contribution, and whether n's occupancy dropped below order.
func removeRec[T Item[O], O Offset[O]](n *node[T, O], at []uint8) (T, O, bool) {
	if len(at) == 0 {
		panic("sumrope: cursor path shorter than tree height")
	}
	i := int(at[0])

	if n.isLeaf() {
		if len(at) != 1 || i >= len(n.elems) {
			panic("sumrope: cursor does not address an element")
		}
		var elem T
		n.elems, elem = removeElem(n.elems, i)
		return elem, elem.ToOffset(), len(n.elems) < order
	}

	elem, elemLen, underflow := removeRec(n.children[i], at[1:])

	for j := i; j < len(n.offsets); j++ {
		n.offsets[j] = n.offsets[j].Add(elemLen.Neg())
	}

	if underflow {
		underflow = n.rebalance(i)
	}

	return elem, elemLen, underflow
}

// rebalance restores the occupancy of children[i] after it dropped below
// order, preferring rotation from an overpopulated sibling (right first)
// because rotation leaves the parent's child count unchanged. When neither
// sibling has surplus the node is merged with one, which may propagate the
// underflow; the return value reports whether this node underflowed in turn.
func (n *node[T, O]) rebalance(i int) bool {
	hasLeft := i > 0
	hasRight := i+1 < len(n.children)

	useLeft := hasLeft
	rotate := false
	if hasRight && n.children[i+1].count() > order {
		useLeft = false
		rotate = true
	} else if hasLeft && n.children[i-1].count() > order {
		rotate = true
	}

	// The pair to work on: children[k] and children[k+1].
	k := i
	if useLeft {
		k = i - 1
	}
	left, right := n.children[k], n.children[k+1]
	leftLen := n.childLen(k)

	if rotate {
		var displacement O
		if useLeft {
			displacement = rotateRight(left, right, leftLen).Neg()
		} else {
			displacement = rotateLeft(left, right, leftLen)
		}

		// Only the boundary between the pair moved; the pair's combined
		// extent is unchanged, so a single cache entry shifts.
		n.offsets[k] = n.offsets[k].Add(displacement)
		return false
	}

	// Merge: fold all of right into left and drop the emptied child.
	mergeInto(left, right, leftLen)
	n.children, _ = removeElem(n.children, k+1)
	n.offsets, _ = removeElem(n.offsets, k)
	return len(n.children) < order
}

// rotateRight moves the last child or element of left to the front of
// right, returning the moved subtree's offset. Both nodes must be of the
// same kind. leftLen is left's total subtree offset.
func rotateRight[T Item[O], O Offset[O]](left, right *node[T, O], leftLen O) O {
	if left.isLeaf() {
		var e T
		left.elems, e = removeElem(left.elems, len(left.elems)-1)
		moved := e.ToOffset()
		right.elems = insertElem(right.elems, 0, e)
		return moved
	}

	moved := leftLen.Add(left.offsets[len(left.offsets)-1].Neg())

	var child *node[T, O]
	left.children, child = removeElem(left.children, len(left.children)-1)
	left.offsets, _ = removeElem(left.offsets, len(left.offsets)-1)

	right.children = insertElem(right.children, 0, child)
	for j := range right.offsets {
		right.offsets[j] = right.offsets[j].Add(moved)
	}
	right.offsets = insertElem(right.offsets, 0, moved)

	return moved
}

// rotateLeft moves the first child or element of right to the back of left,
// returning the moved subtree's offset. Both nodes must be of the same kind.
// leftLen is left's total subtree offset beforehand.
func rotateLeft[T Item[O], O Offset[O]](left, right *node[T, O], leftLen O) O {
	if left.isLeaf() {
		var e T
		right.elems, e = removeElem(right.elems, 0)
		moved := e.ToOffset()
		left.elems = append(left.elems, e)
		return moved
	}

	var child *node[T, O]
	right.children, child = removeElem(right.children, 0)
	var moved O
	right.offsets, moved = removeElem(right.offsets, 0)
	for j := range right.offsets {
		right.offsets[j] = right.offsets[j].Add(moved.Neg())
	}

	left.children = append(left.children, child)
	left.offsets = append(left.offsets, leftLen)

	return moved
}

// mergeInto moves everything from right into left. Both nodes must be of
// the same kind. leftLen is left's total subtree offset beforehand.
func mergeInto[T Item[O], O Offset[O]](left, right *node[T, O], leftLen O) {
	if left.isLeaf() {
		left.elems = append(left.elems, right.elems...)
		return
	}

	left.children = append(left.children, right.children...)
	left.offsets = append(left.offsets, leftLen)
	for _, o := range right.offsets {
		left.offsets = append(left.offsets, o.Add(leftLen))
	}
}
