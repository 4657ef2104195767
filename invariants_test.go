package sumrope

import (
	"fmt"
	"testing"
)

// checkInvariants verifies the structural invariants of the whole tree:
// uniform leaf depth, occupancy bounds (with root exemptions), homogeneous
// child kinds, cumulative offset caches consistent with recomputed subtree
// sums, and the cached total equal to the sum over all elements.
func checkInvariants[T Item[O], O Offset[O]](t testing.TB, r *Rope[T, O]) {
	t.Helper()

	var zero O
	if r.root == nil {
		if r.len.Cmp(zero) != 0 {
			t.Fatalf("nil root but cached len %v", r.len)
		}
		return
	}

	total, _, err := checkNode(r.root, true)
	if err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	if r.len.Cmp(total) != 0 {
		t.Fatalf("cached len %v != recomputed total %v", r.len, total)
	}
}

// checkNode recursively validates a subtree, returning its offset total and
// leaf depth.
func checkNode[T Item[O], O Offset[O]](n *node[T, O], isRoot bool) (O, int, error) {
	var zero O

	if n.isLeaf() {
		if len(n.children) != 0 || len(n.offsets) != 0 {
			return zero, 0, fmt.Errorf("leaf carries internal-node fields")
		}
		if len(n.elems) > maxNode {
			return zero, 0, fmt.Errorf("leaf holds %d elements, max %d", len(n.elems), maxNode)
		}
		if !isRoot && len(n.elems) < order {
			return zero, 0, fmt.Errorf("non-root leaf holds %d elements, min %d", len(n.elems), order)
		}
		return sumElems(n.elems), 1, nil
	}

	min := order
	if isRoot {
		min = 2
	}
	if len(n.children) < min || len(n.children) > maxNode {
		return zero, 0, fmt.Errorf("internal node holds %d children, want %d..%d", len(n.children), min, maxNode)
	}
	if len(n.offsets) != len(n.children)-1 {
		return zero, 0, fmt.Errorf("internal node has %d offsets for %d children", len(n.offsets), len(n.children))
	}

	var cum O
	depth := 0
	for i, child := range n.children {
		if child.height != n.height-1 {
			return zero, 0, fmt.Errorf("child %d has height %d under height-%d node", i, child.height, n.height)
		}
		sub, d, err := checkNode(child, false)
		if err != nil {
			return zero, 0, err
		}
		if i == 0 {
			depth = d
		} else if d != depth {
			return zero, 0, fmt.Errorf("leaves at unequal depths %d and %d", depth, d)
		}
		cum = cum.Add(sub)
		if i < len(n.offsets) && n.offsets[i].Cmp(cum) != 0 {
			return zero, 0, fmt.Errorf("offsets[%d] = %v, recomputed %v", i, n.offsets[i], cum)
		}
	}

	return cum, depth + 1, nil
}

// cursorAt returns the cursor of the i-th element by walking from the
// front. Test helper; O(n).
func cursorAt[T Item[O], O Offset[O]](r *Rope[T, O], i int) Cursor {
	c := r.Begin()
	for ; i > 0; i-- {
		c = r.cursorAfter(c)
	}
	return c
}
