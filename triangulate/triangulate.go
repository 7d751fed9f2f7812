// Package triangulate implements the triangulator (C7): it turns a
// [path.Polygon] -- possibly multiply connected, with holes -- into a
// triangle list, each triangle three indices into the polygon's shared
// point pool plus a bitmask flagging which of its edges lie on the
// original input outline (spec.md §4.7).
//
// Holes are merged into their enclosing loop by bridging (a zero-width
// diagonal to a visible outer vertex), reducing the multiply-connected
// input to a single simple loop; that loop is then partitioned by ear
// clipping. This is a simplification of the textbook Hertel-Mehlhorn
// monotone-partition sweep named in spec.md §4.7 -- see DESIGN.md for why
// that tradeoff was made -- but the output satisfies the same contract:
// no two triangles overlap, their union is the polygon, and each
// triangle's outline bitmask identifies edges that were present in the
// input rather than introduced by triangulation.
package triangulate

import (
	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/path"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// OutlineMask flags, per triangle, which of its three edges (AB, BC, CA)
// lies on the original polygon's boundary rather than being introduced by
// triangulation (a bridge or an ear-clipping diagonal).
type OutlineMask uint8

// Bits of OutlineMask.
const (
	OutlineAB OutlineMask = 1 << iota
	OutlineBC
	OutlineCA
)

// Tri is one output triangle: three point-pool indices plus the outline
// mask for its three edges, in the same A->B->C->A order the indices are
// listed.
type Tri struct {
	A, B, C int
	Outline OutlineMask
}

// TriSet is the triangulator's output: a shared point pool plus the
// triangle list.
type TriSet struct {
	Points []fx.Vec2
	Tris   []Tri
}

// SignedAreaSum returns twice the sum of signed triangle areas, which
// spec.md §8's testable properties compare against the input polygon's
// own area.
func (t TriSet) SignedAreaSum() fx.DimW {
	var sum fx.DimW
	for _, tri := range t.Tris {
		a, b, c := t.Points[tri.A], t.Points[tri.B], t.Points[tri.C]
		sum += fx.Cross2Z(b.Sub(a), c.Sub(a))
	}
	return sum
}

// Triangulate partitions poly into triangles. cfg's StrictEmptyInput
// governs whether a malformed loop (zero area, or a hole with no
// reachable visibility bridge) is a hard error or is silently dropped
// from the output, per spec.md §7's advisory EmptyInput/CollapsedOutput
// contract.
func Triangulate(poly path.Polygon, cfg options.Config) (TriSet, error) {
	out := TriSet{Points: poly.Points}
	if poly.IsEmpty() {
		return out, nil
	}

	outline := outlineEdgeSet(poly)

	outer, holes, err := classifyLoops(poly, cfg)
	if err != nil {
		return TriSet{}, err
	}

	for _, o := range outer {
		merged, err := mergeHolesInto(poly.Points, o, holes, cfg)
		if err != nil {
			return TriSet{}, err
		}
		tris, err := earClip(poly.Points, merged)
		if err != nil {
			return TriSet{}, err
		}
		for _, tri := range tris {
			tri.Outline = edgeOutlineMask(poly.Points, tri, outline)
			out.Tris = append(out.Tris, tri)
		}
	}
	return out, nil
}

type edgeKey struct{ lo, hi fx.Vec2 }

func keyOf(a, b fx.Vec2) edgeKey {
	if b.Less(a) {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

func outlineEdgeSet(poly path.Polygon) map[edgeKey]bool {
	set := map[edgeKey]bool{}
	for _, loop := range poly.Paths {
		n := len(loop)
		for i := 0; i < n; i++ {
			a := poly.Points[loop[i]]
			b := poly.Points[loop[(i+1)%n]]
			set[keyOf(a, b)] = true
		}
	}
	return set
}

func edgeOutlineMask(points []fx.Vec2, tri Tri, outline map[edgeKey]bool) OutlineMask {
	var m OutlineMask
	if outline[keyOf(points[tri.A], points[tri.B])] {
		m |= OutlineAB
	}
	if outline[keyOf(points[tri.B], points[tri.C])] {
		m |= OutlineBC
	}
	if outline[keyOf(points[tri.C], points[tri.A])] {
		m |= OutlineCA
	}
	return m
}

// classifyLoops splits poly's paths into outer loops (CCW, positive
// signed area) and holes (CW, negative signed area) -- this module's
// winding convention, as path.Reconstruct establishes it. A
// zero-area path is dropped from both unless cfg.StrictEmptyInput asks
// for it to fail the whole triangulation instead.
func classifyLoops(poly path.Polygon, cfg options.Config) (outer [][]int, holes [][]int, err error) {
	for i, loop := range poly.Paths {
		if len(loop) < 3 {
			continue
		}
		if poly.SignedArea(i) > 0 {
			outer = append(outer, loop)
		} else if poly.SignedArea(i) < 0 {
			holes = append(holes, loop)
		} else if cfg.StrictEmptyInput {
			return nil, nil, xerr.New(xerr.CollapsedOutput, loc.None, "path %d has zero area", i)
		}
	}
	return outer, holes, nil
}
