package sweep

import (
	"github.com/moehriegitt/hob3l-sub002/dict"
	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/segment"
)

// beachline is the Y-structure: the set of segments currently crossing
// the sweep line, ordered by the y-coordinate of their intersection with
// it. Comparisons go through [Sweep.beachCompare], which uses the exact
// rational y-at-x ([fx.YAtX]) to order non-tied segments and
// [fx.CmpEdgeRnd] to break ties between segments that meet exactly at the
// current sweep point, matching spec.md §3's beach-line-entry contract.
//
// Segments are keyed by [segment.ID] rather than by value, backed by the
// same comparator-parameterized ordered map ([dict.Tree]) the event queue
// uses, per spec.md §4.2's "used for sweep queues and beach lines." A
// side table of node pointers gives O(log n) removal and turns
// [beachline.neighbors] into a direct predecessor/successor lookup on the
// segment's own node, rather than a floor/ceiling search from scratch.
type beachline struct {
	tree  *dict.Tree[segment.ID, struct{}]
	nodes map[segment.ID]*dict.Node[segment.ID, struct{}]
}

func newBeachline(s *Sweep) *beachline {
	cmp := func(a, b segment.ID) int { return s.beachCompare(a, b) }
	return &beachline{
		tree:  dict.New[segment.ID, struct{}](cmp),
		nodes: make(map[segment.ID]*dict.Node[segment.ID, struct{}]),
	}
}

// insert adds id to the beach line; a segment that is already present is
// left as it is, so it is never compared against itself.
func (b *beachline) insert(id segment.ID) {
	if _, ok := b.nodes[id]; ok {
		return
	}
	b.nodes[id] = b.tree.Insert(id, struct{}{})
}

func (b *beachline) remove(id segment.ID) {
	n, ok := b.nodes[id]
	if !ok {
		return
	}
	b.tree.Delete(n)
	delete(b.nodes, id)
}

func (b *beachline) size() int {
	return b.tree.Len()
}

// neighbors returns the segment immediately below and immediately above
// id in the current beach-line order, if present.
func (b *beachline) neighbors(id segment.ID) (below, above segment.ID, hasBelow, hasAbove bool) {
	n, ok := b.nodes[id]
	if !ok {
		return
	}
	if p := n.Predecessor(); p != nil {
		below, hasBelow = p.Key, true
	}
	if s := n.Successor(); s != nil {
		above, hasAbove = s.Key, true
	}
	return
}

// beachCompare orders two active segments by their position at the
// current sweep x, falling back to slope comparison when they coincide
// exactly at the sweep point, and finally to segment ID for a total order.
func (s *Sweep) beachCompare(idA, idB segment.ID) int {
	if idA == idB {
		return 0
	}
	segA, segB := s.seg(idA), s.seg(idB)

	yA := s.yAtSweepX(segA)
	yB := s.yAtSweepX(segB)
	if c := yA.Cmp(yB); c != 0 {
		return c
	}

	// Tied at the current sweep point: order by slope, using the
	// tolerant edge-vs-vertex test against each segment's far endpoint.
	if sgn := fx.CmpEdgeRnd(segB.B, segA.A, segA.B); sgn != fx.Zero {
		return int(sgn)
	}
	if sgn := fx.CmpEdgeRnd(segA.B, segB.A, segB.B); sgn != fx.Zero {
		return -int(sgn)
	}
	switch {
	case idA < idB:
		return -1
	case idA > idB:
		return 1
	default:
		return 0
	}
}

// yAtSweepX returns seg's exact y-position at the sweep's current x,
// clamped to the segment's own endpoints when the sweep x sits exactly on
// one of them (this happens routinely: a segment is compared against its
// neighbors the instant it is inserted, while the sweep sits on its start
// point). Vertical segments -- a degenerate case spec.md doesn't need
// the beach line to hold for more than the instant of their own
// processing -- are ordered by their midpoint y.
func (s *Sweep) yAtSweepX(seg *segment.Segment) fx.DimIF {
	switch {
	case seg.A.X == seg.B.X:
		return fx.ExactDimIF((seg.A.Y + seg.B.Y) / 2)
	case s.sweepX == seg.A.X:
		return fx.ExactDimIF(seg.A.Y)
	case s.sweepX == seg.B.X:
		return fx.ExactDimIF(seg.B.Y)
	default:
		return fx.YAtX(seg.A, seg.B, s.sweepX)
	}
}
