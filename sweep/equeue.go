package sweep

import (
	"github.com/moehriegitt/hob3l-sub002/dict"
	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/segment"
)

// qItem is one entry of the event queue (X-structure): a point plus the
// segments that start there and the segments that end there. Grouping
// both under one point lets the event loop batch-process coincident
// endpoints the way spec.md §4.4 requires: all ends first, then all
// starts, then new neighbor pairs are tested.
type qItem struct {
	point  fx.Vec2
	starts []segment.ID
	ends   []segment.ID
}

func vec2Cmp(a, b fx.Vec2) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// equeue is the X-structure spec.md §4.2 calls for: the same
// comparator-parameterized ordered map ([dict.Tree]) the beach line uses,
// here keyed by event point instead of segment order.
type equeue struct {
	tree *dict.Tree[fx.Vec2, qItem]
}

func newEQueue() *equeue {
	return &equeue{tree: dict.New[fx.Vec2, qItem](vec2Cmp)}
}

func (q *equeue) isEmpty() bool {
	return q.tree.Len() == 0
}

func (q *equeue) nodeAt(p fx.Vec2) *dict.Node[fx.Vec2, qItem] {
	if n := q.tree.FindNode(p); n != nil {
		return n
	}
	return q.tree.Insert(p, qItem{point: p})
}

// addStart records that segment id starts at p.
func (q *equeue) addStart(p fx.Vec2, id segment.ID) {
	n := q.nodeAt(p)
	n.Val.starts = append(n.Val.starts, id)
}

// addEnd records that segment id ends at p.
func (q *equeue) addEnd(p fx.Vec2, id segment.ID) {
	n := q.nodeAt(p)
	n.Val.ends = append(n.Val.ends, id)
}

// addSplit registers a new event point discovered mid-sweep (an
// intersection), with no segments attached yet; the beach line attaches
// starts/ends to it once the segments being split are known.
func (q *equeue) addSplit(p fx.Vec2) {
	q.nodeAt(p)
}

// removeEnd drops id from the end list at p, e.g. when a segment is
// truncated mid-sweep and its old endpoint event no longer applies.
func (q *equeue) removeEnd(p fx.Vec2, id segment.ID) {
	n := q.tree.FindNode(p)
	if n == nil {
		return
	}
	out := n.Val.ends[:0]
	for _, x := range n.Val.ends {
		if x != id {
			out = append(out, x)
		}
	}
	n.Val.ends = out
	if len(n.Val.ends) == 0 && len(n.Val.starts) == 0 {
		q.tree.Delete(n)
	}
}

// pop removes and returns the lexicographically smallest pending event.
func (q *equeue) pop() (qItem, bool) {
	n := q.tree.Min()
	if n == nil {
		return qItem{}, false
	}
	item := n.Val
	q.tree.Delete(n)
	return item, true
}
