// Package sumrope provides a generic ordered-sequence container implemented
// as a B+ tree variant of the rope data structure.
//
// Logically the container is a sequence of elements, each contributing a
// length of type O (its "offset", computed by the element's ToOffset method).
// Internal nodes cache cumulative offsets of their child subtrees, so the
// structure supports:
//
//   - O(log n) insertion at an arbitrary position
//   - O(log n) removal of an arbitrary position
//   - O(log n) search by a cumulative offset value
//   - O(log n) update-in-place with automatic offset re-accounting
//
// Offsets are not limited to element counts: byte lengths, pixel sizes, or
// composite (count, size) pairs all work, as long as the type satisfies
// Offset. Plain array-style indexing is not built in, but can be recovered
// by combining an existing offset with IndexOffset.
//
// Basic usage:
//
//	r := sumrope.New[Span, sumrope.Index]()
//	r.PushBack(Span("hello"))
//	r.PushBack(Span("world"))
//	c, off, ok := r.FindFirstAfter(sumrope.ByKey(key, sumrope.Index(5)))
//
// Positions are addressed by Cursor values, which are transient root-to-leaf
// paths. A cursor is invalidated by any mutation that changes the tree shape;
// re-obtain cursors after Insert or Remove. The container performs no
// internal locking and is not safe for concurrent mutation.
package sumrope
