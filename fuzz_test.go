package sumrope

import (
	"strconv"
	"testing"
)

// FuzzOps drives a rope and a plain-slice reference model with the same
// operation stream and cross-checks contents, offsets, and tree invariants
// after every step.
func FuzzOps(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0, 1, 2, 3, 0, 1, 2, 3})
	f.Add([]byte{0, 0, 0, 0, 4, 2, 5, 1, 6, 3})
	f.Add([]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 3, 3, 3})
	f.Add([]byte{4, 0, 4, 0, 4, 0, 4, 0, 5, 0, 5, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := New[span, Index]()
		var ref []span

		for step := 0; step < len(data); step++ {
			op := data[step] % 7
			// Ops that need a position consume the following byte.
			pos := 0
			if op >= 4 {
				step++
				if step >= len(data) {
					break
				}
				pos = int(data[step]) % (len(ref) + 1)
			}

			x := span(strconv.Itoa(step))
			switch op {
			case 0:
				r.PushBack(x)
				ref = append(ref, x)
			case 1:
				r.PushFront(x)
				ref = append([]span{x}, ref...)
			case 2:
				got, ok := r.PopBack()
				if ok != (len(ref) > 0) {
					t.Fatalf("step %d: PopBack ok=%v with %d elements", step, ok, len(ref))
				}
				if ok {
					want := ref[len(ref)-1]
					ref = ref[:len(ref)-1]
					if got != want {
						t.Fatalf("step %d: PopBack = %q, want %q", step, got, want)
					}
				}
			case 3:
				got, ok := r.PopFront()
				if ok != (len(ref) > 0) {
					t.Fatalf("step %d: PopFront ok=%v with %d elements", step, ok, len(ref))
				}
				if ok {
					want := ref[0]
					ref = ref[1:]
					if got != want {
						t.Fatalf("step %d: PopFront = %q, want %q", step, got, want)
					}
				}
			case 4:
				r.Insert(x, cursorAt(r, pos))
				ref = append(ref[:pos:pos], append([]span{x}, ref[pos:]...)...)
			case 5:
				if len(ref) == 0 {
					continue
				}
				pos %= len(ref)
				got := r.Remove(cursorAt(r, pos))
				want := ref[pos]
				ref = append(ref[:pos:pos], ref[pos+1:]...)
				if got != want {
					t.Fatalf("step %d: Remove(%d) = %q, want %q", step, pos, got, want)
				}
			case 6:
				if len(ref) == 0 {
					continue
				}
				pos %= len(ref)
				r.Update(cursorAt(r, pos), func(s *span) {
					*s += "+"
				})
				ref[pos] += "+"
			}

			checkInvariants(t, r)
		}

		got := collect(r)
		if len(got) != len(ref) {
			t.Fatalf("final length %d, want %d", len(got), len(ref))
		}
		var total Index
		for i := range ref {
			if got[i] != ref[i] {
				t.Fatalf("final element %d = %q, want %q", i, got[i], ref[i])
			}
			total += ref[i].ToOffset()
		}
		if r.OffsetLen() != total {
			t.Fatalf("final OffsetLen() = %d, want %d", r.OffsetLen(), total)
		}
	})
}

// FuzzBounds cross-checks both bound searches against a linear scan for
// arbitrary rope sizes and probe values.
func FuzzBounds(f *testing.F) {
	f.Add(uint16(0), int16(0))
	f.Add(uint16(1), int16(-1))
	f.Add(uint16(40), int16(17))
	f.Add(uint16(300), int16(500))

	f.Fuzz(func(t *testing.T, n uint16, probe16 int16) {
		in := spans(int(n) % 512)
		r := FromSlice[span, Index](in)
		probe := Index(probe16)

		var starts []Index
		var cum Index
		for _, s := range in {
			starts = append(starts, cum)
			cum += s.ToOffset()
		}

		lowerRef := -1
		upperRef := -1
		for i, s := range in {
			end := starts[i] + s.ToOffset()
			if lowerRef < 0 && end > probe {
				lowerRef = i
			}
			if upperRef < 0 && end >= probe {
				upperRef = i
			}
		}

		c, off, ok := r.InclusiveLowerBoundBy(indexIs(probe))
		checkBoundResult(t, r, "lower", probe, c, off, ok, lowerRef, starts, probe < 0, cum)

		c, off, ok = r.InclusiveUpperBoundBy(indexIs(probe))
		checkBoundResult(t, r, "upper", probe, c, off, ok, upperRef, starts, probe <= 0, cum)
	})
}

func checkBoundResult(t *testing.T, r *Rope[span, Index], kind string, probe Index,
	c Cursor, off Index, ok bool, ref int, starts []Index, wantMiss bool, total Index) {
	t.Helper()

	switch {
	case wantMiss:
		if ok {
			t.Fatalf("%s bound %d: want not found", kind, probe)
		}
	case ref < 0:
		if !ok || compareCursors(c, r.End()) != 0 || off != total {
			t.Fatalf("%s bound %d: want end sentinel at %d, got (%d, %v)", kind, probe, total, off, ok)
		}
	default:
		if !ok || off != starts[ref] {
			t.Fatalf("%s bound %d: offset %d, want %d", kind, probe, off, starts[ref])
		}
	}
}
