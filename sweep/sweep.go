// Package sweep implements the exact-arithmetic plane sweep (C4) and the
// boolean reducer built on top of it (C5): feed it edges tagged with a
// membership mask, ask it to intersect, optionally reduce by a truth
// table, and read back a bounding box, a reconstructed polygon, or a
// triangulation.
//
// A Sweep is single-threaded and not safe for concurrent use -- exactly
// like the teacher's PolyTree, construct one Sweep per goroutine sharing
// no state between them. After any method returns an error the Sweep is
// "poisoned": every later call returns that same error without doing any
// work, per spec.md §7.
package sweep

import (
	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/path"
	"github.com/moehriegitt/hob3l-sub002/pool"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/moehriegitt/hob3l-sub002/triangulate"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// Sweep resolves edge intersections and, optionally, reduces the result
// by a boolean truth table over membership masks.
type Sweep struct {
	arena *pool.Arena
	loc   loc.Loc
	cfg   options.Config

	segIx []pool.Index[segment.Segment]
	bbox  fx.Box

	sweepX fx.Dim
	equeue *equeue
	beach  *beachline
	alive  map[segment.ID]bool

	intersected bool
	reduced     bool

	// output holds the IDs of the live segments after Intersect (and,
	// after Reduce, the surviving subset).
	output []segment.ID

	err error
}

// New constructs a Sweep that allocates its scratch segments from arena.
// hintEdgeCount sizes nothing eagerly (Go slices grow on demand); it is
// accepted to keep the API shape spec.md §6 documents, and is otherwise
// unused.
func New(arena *pool.Arena, location loc.Loc, hintEdgeCount int, opts ...options.Option) *Sweep {
	_ = hintEdgeCount
	s := &Sweep{
		arena: arena,
		loc:   location,
		cfg:   options.Apply(options.Config{MaxSimultaneous: 8}, opts...),
	}
	return s
}

// Err returns the error, if any, that poisoned this Sweep.
func (s *Sweep) Err() error { return s.err }

func (s *Sweep) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	return s.err
}

func (s *Sweep) seg(id segment.ID) *segment.Segment {
	vals := s.segIx[id].Get()
	return &vals[0]
}

// AddEdge feeds one segment with endpoints a, b and membership mask
// members into the sweep. It may be called any number of times before
// [Sweep.Intersect].
func (s *Sweep) AddEdge(a, b fx.Vec2, members segment.Membership) error {
	if s.err != nil {
		return s.err
	}
	if a.Eq(b) {
		return nil
	}
	if members.Popcount() > 0 && msb(members) >= s.cfg.MaxSimultaneous {
		return s.fail(xerr.New(xerr.Unimplemented, s.loc,
			"membership bit %d exceeds configured max_simultaneous %d", msb(members), s.cfg.MaxSimultaneous))
	}

	id := segment.ID(len(s.segIx))
	ix := pool.Alloc[segment.Segment](s.arena, 1)
	ix.Get()[0] = segment.New(id, a, b, members)
	s.segIx = append(s.segIx, ix)

	s.bbox = s.bbox.Add(a).Add(b)
	return nil
}

// AddPolygon feeds every edge of the closed path poly (last point implicitly
// joined back to the first) with membership mask members.
func (s *Sweep) AddPolygon(poly []fx.Vec2, members segment.Membership) error {
	if s.err != nil {
		return s.err
	}
	if len(poly) < 3 {
		if s.cfg.StrictEmptyInput {
			return s.fail(xerr.New(xerr.EmptyInput, s.loc, "polygon needs at least 3 vertices, got %d", len(poly)))
		}
		return nil
	}
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if err := s.AddEdge(a, b, members); err != nil {
			return err
		}
	}
	return nil
}

// BoundingBox returns the axis-aligned bounding box of every point fed in
// via AddEdge/AddPolygon so far.
func (s *Sweep) BoundingBox() fx.Box {
	return s.bbox
}

func msb(m segment.Membership) int {
	n := -1
	for i := 0; m != 0; i++ {
		if m&1 != 0 {
			n = i
		}
		m >>= 1
	}
	return n
}

// IntoPolygon reconstructs the current (intersected, and reduced if
// [Sweep.Reduce] was called) segment set into closed paths.
func (s *Sweep) IntoPolygon() (path.Polygon, error) {
	if s.err != nil {
		return path.Polygon{}, s.err
	}
	if !s.intersected {
		if err := s.Intersect(); err != nil {
			return path.Polygon{}, err
		}
	}
	edges := make([]path.Edge, 0, len(s.output))
	for _, id := range s.output {
		sg := s.seg(id)
		edges = append(edges, path.Edge{A: sg.A, B: sg.B})
	}
	poly, err := path.Reconstruct(edges, s.cfg)
	if err != nil {
		return path.Polygon{}, s.fail(err)
	}
	return poly, nil
}

// IntoTriangles reconstructs and then triangulates the current segment
// set (see the triangulate package for the partition algorithm).
func (s *Sweep) IntoTriangles() (triangulate.TriSet, error) {
	poly, err := s.IntoPolygon()
	if err != nil {
		return triangulate.TriSet{}, err
	}
	tris, err := triangulate.Triangulate(poly, s.cfg)
	if err != nil {
		return triangulate.TriSet{}, s.fail(err)
	}
	return tris, nil
}
