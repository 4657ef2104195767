package sumrope

// Tree structure constants.
const (
	// order is the minimum occupancy of a non-root node. Every node holds
	// between order and 2*order elements or children; root nodes are exempt
	// from the minimum (an internal root may hold as few as 2 children, a
	// leaf root may be empty).
	order = 8

	// maxNode is the maximum occupancy of any node before it splits.
	maxNode = order * 2

	// maxDepth bounds the tree height and therefore the length of a Cursor
	// path. With order 8, 16 levels cover roughly 2.8e14 elements.
	maxDepth = 16
)

// node is a node in the rope B+ tree.
// Leaf nodes (height == 0) hold elements; internal nodes (height > 0) hold
// child nodes plus cumulative offset checkpoints.
type node[T Item[O], O Offset[O]] struct {
	height uint8

	// Internal node fields (height > 0).
	//
	// offsets[i] is the cumulative offset of all elements held by
	// children[0..=i]; it always holds len(offsets) == len(children)-1.
	// Caching cumulative sums rather than per-child sizes lets searches
	// skip whole subtrees without re-summing, at the cost of range updates
	// on insert/remove.
	children []*node[T, O]
	offsets  []O

	// Leaf node fields (height == 0).
	elems []T
}

// newLeaf creates an empty leaf node.
func newLeaf[T Item[O], O Offset[O]]() *node[T, O] {
	return &node[T, O]{
		height: 0,
		elems:  make([]T, 0, maxNode),
	}
}

// newInternal creates an internal node over two existing nodes of equal
// height. firstLen is the total offset of first's subtree.
func newInternal[T Item[O], O Offset[O]](first, second *node[T, O], firstLen O) *node[T, O] {
	n := &node[T, O]{
		height:   first.height + 1,
		children: make([]*node[T, O], 0, maxNode),
		offsets:  make([]O, 0, maxNode-1),
	}
	n.children = append(n.children, first, second)
	n.offsets = append(n.offsets, firstLen)
	return n
}

// isLeaf reports whether this node holds elements directly.
func (n *node[T, O]) isLeaf() bool {
	return n.height == 0
}

// count returns the number of children or elements held by the node.
func (n *node[T, O]) count() int {
	if n.isLeaf() {
		return len(n.elems)
	}
	return len(n.children)
}

// childLen returns the subtree offset of children[i], derived from the
// cumulative cache.
func (n *node[T, O]) childLen(i int) O {
	if i == 0 {
		return n.offsets[0]
	}
	return n.offsets[i].Add(n.offsets[i-1].Neg())
}

// sumElems recomputes the offset total of a leaf's elements from scratch.
// Splits use this for the retained half instead of subtracting, which keeps
// cumulative caches free of accumulated drift for non-integer offsets.
func sumElems[T Item[O], O Offset[O]](elems []T) O {
	var total O
	for i := range elems {
		total = total.Add(elems[i].ToOffset())
	}
	return total
}

// insertElem inserts x at position i of a leaf's element slice.
func insertElem[T any](elems []T, i int, x T) []T {
	var zero T
	elems = append(elems, zero)
	copy(elems[i+1:], elems[i:])
	elems[i] = x
	return elems
}

// removeElem removes and returns the element at position i.
func removeElem[T any](elems []T, i int) ([]T, T) {
	x := elems[i]
	copy(elems[i:], elems[i+1:])
	var zero T
	elems[len(elems)-1] = zero
	return elems[:len(elems)-1], x
}
