// Package segment defines the sweep's edge model: ordered endpoints, a
// membership bitmask naming which input polygons an edge belongs to, and
// ring links for chaining overlap classes together at a shared endpoint.
// The sweep package does not link rings; it keeps each ring a single
// segment.
//
// A Segment is immutable once inserted into the sweep's beach line except
// for two operations: XOR-ing in another segment's Membership when a
// collinear overlap is detected, and endpoint replacement when a segment
// is split at an intersection point. [Segment.XORMembers] provides the
// first; the sweep package performs the second by assigning B directly,
// and builds collinear-overlap pieces with a fresh, already-XOR-ed mask.
package segment

import (
	"fmt"

	"github.com/moehriegitt/hob3l-sub002/fx"
)

// Membership is a bitmask naming which input polygons a segment belongs
// to. Bit k is set iff the segment lies on the boundary of input polygon
// k. MaxPolygons bounds how many distinct bits this mask can address.
type Membership uint16

// MaxPolygons is the hard ceiling on simultaneously composed input
// polygons in one sweep (spec.md §3's "max_simultaneous", capped here at
// the width of [Membership]).
const MaxPolygons = 16

// Bit returns the Membership naming exactly input polygon k.
func Bit(k int) Membership {
	if k < 0 || k >= MaxPolygons {
		panic(fmt.Errorf("segment: polygon index %d out of range [0,%d)", k, MaxPolygons))
	}
	return Membership(1) << uint(k)
}

// Popcount returns the number of input polygons named by m.
func (m Membership) Popcount() int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

// Role classifies an event as the left or right end of a segment in sweep
// order. Start sorts strictly before End at the same point (spec.md §3's
// Event definition).
type Role uint8

// Valid values of Role.
const (
	Start Role = iota
	End
)

func (r Role) String() string {
	switch r {
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		panic(fmt.Errorf("segment: unsupported Role: %d", uint8(r)))
	}
}

// ID identifies a Segment within one sweep's pool. It is the index a
// sweep's pool.Index[Segment] handle addresses, used as the comparable
// key wherever a segment needs to be named without copying it (beach-line
// entries, ring links, event payloads).
type ID int32

// NoID is the zero value of ID, used for ring links with no neighbor.
const NoID ID = -1

// Segment is one edge owned by a sweep: an ordered pair of endpoints, a
// membership mask, and ring links that can chain together the segments
// produced by a collinear overlap at the same location.
//
// A and B are always ordered so A precedes B in sweep order (primary by
// x, then by y) -- spec.md §3's "ordered endpoints (a, b) with a ≤ b in
// sweep order".
type Segment struct {
	ID ID

	A, B fx.Vec2

	Members Membership

	// RingNext/RingPrev chain together a set of segments with
	// [LinkRing]. A segment with no collinear siblings has
	// RingNext == RingPrev == its own ID; the sweep package never links
	// rings, so every segment it creates stays in that state, and its
	// reducer reads only Members.
	RingNext, RingPrev ID

	// beachNode is an opaque handle slot (untyped, because segment must
	// not import a tree library) read and written only through
	// [Segment.SetBeachNode] and [Segment.BeachNode]. The sweep package
	// does not use it: its beach line keeps its own map from segment ID
	// to tree node.
	beachNode any
}

// New returns a Segment with endpoints ordered into sweep order (a ≤ b).
// p and q need not already be ordered; New swaps them if necessary so the
// returned Segment's A is never greater than its B.
func New(id ID, p, q fx.Vec2, members Membership) Segment {
	a, b := p, q
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{ID: id, A: a, B: b, Members: members, RingNext: id, RingPrev: id}
}

// Reverse returns the segment's endpoints in the opposite order (B, A).
func (s Segment) Reverse() (a, b fx.Vec2) { return s.B, s.A }

// SetBeachNode stores an opaque handle for locating s's beach-line entry.
func (s *Segment) SetBeachNode(n any) { s.beachNode = n }

// BeachNode returns the handle previously stored by [Segment.SetBeachNode],
// or nil if none was stored.
func (s *Segment) BeachNode() any { return s.beachNode }

// XORMembers merges another segment's membership into s by XOR, the
// semantics spec.md §3 (I4) and §4.4's collinear-overlap rule require: an
// output segment produced by overlapping k input segments carries the XOR,
// not the union, of their masks.
func (s *Segment) XORMembers(other Membership) {
	s.Members ^= other
}

// LinkRing splices the ring s belongs to together with the ring other
// belongs to, by the standard circular-doubly-linked-list splice at two
// nodes: afterward, walking RingNext from either id visits every segment
// that was in either ring exactly once.
func LinkRing(segs []Segment, s, other ID) {
	sNext, oNext := segs[s].RingNext, segs[other].RingNext
	segs[s].RingNext = oNext
	segs[oNext].RingPrev = s
	segs[other].RingNext = sNext
	segs[sNext].RingPrev = other
}
