package sweep

import (
	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// BoolTable is the caller-supplied truth table spec.md §4.5 reduces by: a
// bitmap of length 2^m, indexed by a membership-mask combination
// (an "inside-mask"), naming whether that combination is "inside" the
// desired boolean result. The caller fills it in by evaluating the
// boolean expression they want (union, intersection, difference, xor, or
// an arbitrary function of m inputs) over every possible m-bit input.
type BoolTable []bool

// NewBoolTable allocates a zeroed truth table sized for m input polygons.
func NewBoolTable(m int) BoolTable {
	return make(BoolTable, 1<<uint(m))
}

// Union returns the truth table for the union of m inputs: inside iff any
// bit is set.
func Union(m int) BoolTable {
	t := NewBoolTable(m)
	for i := range t {
		t[i] = i != 0
	}
	return t
}

// Intersection returns the truth table for the intersection of m inputs:
// inside iff every bit is set.
func Intersection(m int) BoolTable {
	t := NewBoolTable(m)
	full := (1 << uint(m)) - 1
	for i := range t {
		t[i] = i == full
	}
	return t
}

// Xor returns the truth table for the symmetric difference of m inputs:
// inside iff an odd number of bits are set.
func Xor(m int) BoolTable {
	t := NewBoolTable(m)
	for i := range t {
		t[i] = segment.Membership(i).Popcount()%2 == 1
	}
	return t
}

// Difference returns the truth table for "inside input 0 but not inside
// any other input" (m >= 1).
func Difference(m int) BoolTable {
	t := NewBoolTable(m)
	for i := range t {
		t[i] = i&1 != 0 && i&^1 == 0
	}
	return t
}

// Reduce applies table to the intersected segment set, keeping exactly
// the edges where crossing them flips whether the truth table calls the
// two sides "inside" -- spec.md §4.5's
// "table[inside] != table[inside XOR segment_mask]" rule.
//
// The inside-mask on one side of a segment (the -x side; for a horizontal
// segment, the side above it) is computed by casting a ray from the
// segment's midpoint in the -x direction and XOR-ing the membership of
// every other intersected segment it crosses; this is
// equivalent to the textbook second sweep ("scan output segments in
// x-order, toggling inside-mask per membership bit crossed") without
// needing a second beach line, since I3 already guarantees the segments
// define a well-formed planar subdivision to cast rays through.
func (s *Sweep) Reduce(table BoolTable) error {
	if s.err != nil {
		return s.err
	}
	if !s.intersected {
		if err := s.Intersect(); err != nil {
			return err
		}
	}

	// Always start from the full intersected set, not from the survivors of
	// an earlier Reduce, so that reducing twice gives the same result.
	var base []segment.ID
	for i := range s.segIx {
		if id := segment.ID(i); s.alive[id] {
			base = append(base, id)
		}
	}
	segs := make([]*segment.Segment, len(base))
	for i, id := range base {
		segs[i] = s.seg(id)
	}

	kept := make([]segment.ID, 0, len(base))
	for _, id := range base {
		sg := s.seg(id)
		inside := insideMaskLeftOf(sg, segs)
		outside := inside ^ uint(sg.Members)
		if int(outside) >= len(table) || int(inside) >= len(table) {
			return s.fail(xerr.New(xerr.Unimplemented, s.loc,
				"truth table of length %d too small for membership mask %d", len(table), sg.Members))
		}
		if table[inside] != table[outside] {
			kept = append(kept, id)
		}
	}
	s.output = kept
	s.reduced = true
	return nil
}

// insideMaskLeftOf computes the inside-mask immediately to the -x side of
// sg by ray casting from sg's midpoint.
func insideMaskLeftOf(sg *segment.Segment, all []*segment.Segment) uint {
	qx := fx.DimW(sg.A.X) + fx.DimW(sg.B.X)
	qy := fx.DimW(sg.A.Y) + fx.DimW(sg.B.Y)
	// query point is (qx/2, qy/2); work in doubled coordinates throughout
	// so every comparison below stays exact-integer.
	var mask uint
	for _, other := range all {
		if other.ID == sg.ID {
			continue
		}
		ax, ay := fx.DimW(other.A.X)*2, fx.DimW(other.A.Y)*2
		bx, by := fx.DimW(other.B.X)*2, fx.DimW(other.B.Y)*2
		// half-open on y to avoid double-counting a shared vertex.
		if !((ay <= qy && qy < by) || (by <= qy && qy < ay)) {
			continue
		}
		// Exact test for "other's crossing x at height qy is left of qx",
		// i.e. ax + (bx-ax)*(qy-ay)/(by-ay) < qx, cleared of its
		// denominator (which may be negative, hence the sign flip below).
		t := qy - ay
		d := by - ay
		lhs := ax*d + (bx-ax)*t
		rhs := qx * d
		less := lhs < rhs
		if d < 0 {
			less = lhs > rhs
		}
		if less {
			mask ^= uint(other.Members)
		}
	}
	return mask
}
