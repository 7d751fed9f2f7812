package sweep

import (
	"sort"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/pool"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// Intersect resolves every pairwise intersection among the segments fed
// in via AddEdge/AddPolygon, leaving behind a set of interior-disjoint
// output segments with correctly XOR-propagated membership masks
// (spec.md §4.4, invariants I3/I4). It is idempotent: a second call is a
// no-op.
//
// The event loop is the explicit dequeue/classify/update/re-test cycle
// spec.md §9 calls for in place of the original's goto-based state
// machine: pop the next event point, remove every segment ending there
// (testing the neighbors its removal brings together), insert every
// segment starting there (testing its new neighbors), and repeat.
func (s *Sweep) Intersect() error {
	if s.err != nil {
		return s.err
	}
	if s.intersected {
		return nil
	}

	eq := newEQueue()
	s.beach = newBeachline(s)
	s.alive = make(map[segment.ID]bool, len(s.segIx)*2)

	for i := range s.segIx {
		id := segment.ID(i)
		sg := s.seg(id)
		eq.addStart(sg.A, id)
		eq.addEnd(sg.B, id)
		s.alive[id] = true
	}
	s.equeue = eq

	for {
		item, ok := s.equeue.pop()
		if !ok {
			break
		}
		s.sweepX = item.point.X
		logDebugf("event %s starts=%d ends=%d", item.point, len(item.starts), len(item.ends))

		for _, id := range item.ends {
			if !s.alive[id] {
				continue
			}
			below, above, hasBelow, hasAbove := s.beach.neighbors(id)
			s.beach.remove(id)
			if hasBelow && hasAbove {
				if _, err := s.testNeighbors(below, above, item.point, nil); err != nil {
					return s.fail(err)
				}
			}
		}

		pending := append([]segment.ID(nil), item.starts...)
		for i := 0; i < len(pending); i++ {
			id := pending[i]
			if !s.alive[id] {
				continue
			}
			s.beach.insert(id)
			below, above, hasBelow, hasAbove := s.beach.neighbors(id)
			if hasBelow {
				extra, err := s.testNeighbors(below, id, item.point, &pending)
				if err != nil {
					return s.fail(err)
				}
				pending = append(pending, extra...)
			}
			if hasAbove {
				extra, err := s.testNeighbors(id, above, item.point, &pending)
				if err != nil {
					return s.fail(err)
				}
				pending = append(pending, extra...)
			}
		}
	}

	s.output = s.output[:0]
	for id, live := range s.alive {
		if live {
			s.output = append(s.output, id)
		}
	}
	sort.Slice(s.output, func(i, j int) bool { return s.output[i] < s.output[j] })
	s.intersected = true
	return nil
}

// testNeighbors tests two beach-line-adjacent segments for intersection
// and resolves whatever it finds -- splitting both at a crossing point,
// or replacing both with the collinear-overlap decomposition. It returns
// any freshly created segment IDs that start exactly at currentPoint, so
// the caller's active batch picks them up immediately instead of waiting
// for a later event-queue pop.
func (s *Sweep) testNeighbors(lowerID, upperID segment.ID, currentPoint fx.Vec2, pendingSelf *[]segment.ID) ([]segment.ID, error) {
	lower, upper := s.seg(lowerID), s.seg(upperID)
	res := fx.SegmentIntersect(lower.A, lower.B, upper.A, upper.B)

	switch res.Kind {
	case fx.Disjoint:
		return nil, nil
	case fx.Collinear:
		return s.handleCollinear(lowerID, upperID, currentPoint)
	case fx.Cross:
		p := res.Point.Round()
		var fresh []segment.ID
		if id, ok := s.splitAt(lowerID, p); ok {
			fresh = append(fresh, id)
		}
		if id, ok := s.splitAt(upperID, p); ok {
			fresh = append(fresh, id)
		}
		var startingHere []segment.ID
		for _, id := range fresh {
			if s.seg(id).A.Eq(currentPoint) {
				startingHere = append(startingHere, id)
			}
		}
		return startingHere, nil
	default:
		return nil, xerr.New(xerr.Unimplemented, s.loc, "unsupported intersect kind %v", res.Kind)
	}
}

// splitAt truncates seg id at point p if p lies strictly inside it
// (neither endpoint already), registering the shortened head in place and
// a freshly allocated tail segment for the remainder. It reports the
// tail's ID and true if a split happened.
//
// When p lies on the current sweep line (p.X equals the sweep x), id is
// removed from the beach line and its tail is inserted in its place at
// once; the tail's own start event at p later finds it already present.
// No separate intersection event is created: the split leaves two
// segments that already end at p.
func (s *Sweep) splitAt(id segment.ID, p fx.Vec2) (segment.ID, bool) {
	sg := s.seg(id)
	if sg.A.Eq(p) || sg.B.Eq(p) {
		return 0, false
	}

	oldB := sg.B
	s.equeue.removeEnd(oldB, id)
	sg.B = p
	s.equeue.addEnd(p, id)

	tailID := s.newSeg(p, oldB, sg.Members)
	s.alive[tailID] = true
	s.equeue.addStart(p, tailID)
	s.equeue.addEnd(oldB, tailID)

	if p.X == s.sweepX {
		s.beach.remove(id)
		s.beach.insert(tailID)
	}
	return tailID, true
}

// handleCollinear replaces two collinear, overlapping segments with the
// decomposition spec.md §4.4 requires: every maximal sub-interval covered
// by one or both inputs becomes its own output segment, carrying the XOR
// of the masks of whichever inputs cover it. Intervals whose XOR is zero
// (an input segment exactly canceling its own duplicate) are dropped
// entirely, satisfying I4.
func (s *Sweep) handleCollinear(idA, idB segment.ID, currentPoint fx.Vec2) ([]segment.ID, error) {
	segA, segB := s.seg(idA), s.seg(idB)

	pts := []fx.Vec2{segA.A, segA.B, segB.A, segB.B}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	uniq := pts[:0:0]
	for i, p := range pts {
		if i == 0 || !p.Eq(pts[i-1]) {
			uniq = append(uniq, p)
		}
	}

	covers := func(sg *segment.Segment, lo, hi fx.Vec2) bool {
		return !lo.Less(sg.A) && !hi.Less(lo) && !sg.B.Less(hi)
	}

	s.removeSegment(idA)
	s.removeSegment(idB)

	var startingHere []segment.ID
	for i := 0; i+1 < len(uniq); i++ {
		lo, hi := uniq[i], uniq[i+1]
		var members segment.Membership
		if covers(segA, lo, hi) {
			members ^= segA.Members
		}
		if covers(segB, lo, hi) {
			members ^= segB.Members
		}
		if members == 0 {
			continue
		}
		id := s.newSeg(lo, hi, members)
		s.alive[id] = true
		if lo.Eq(currentPoint) {
			s.beach.insert(id)
			s.equeue.addEnd(hi, id)
			startingHere = append(startingHere, id)
		} else {
			s.equeue.addStart(lo, id)
			s.equeue.addEnd(hi, id)
		}
	}
	return startingHere, nil
}

// removeSegment retires id: it is no longer part of the output, is taken
// out of the beach line if present, and its pending end event (if any)
// is cleared so a stale reference never surfaces later.
func (s *Sweep) removeSegment(id segment.ID) {
	s.alive[id] = false
	s.beach.remove(id)
	s.equeue.removeEnd(s.seg(id).B, id)
}

// newSeg allocates a fresh segment in the arena without registering it
// with the event queue; callers schedule its start/end events themselves.
func (s *Sweep) newSeg(a, b fx.Vec2, members segment.Membership) segment.ID {
	id := segment.ID(len(s.segIx))
	ix := pool.Alloc[segment.Segment](s.arena, 1)
	ix.Get()[0] = segment.New(id, a, b, members)
	s.segIx = append(s.segIx, ix)
	return id
}
