// Package path implements the path reconstructor (C6): it walks a
// 2-regular set of edges -- the output of [sweep.Sweep.Reduce] -- into
// closed polygon loops, recording each loop's vertices as indices into a
// shared point pool (spec.md §4.6).
package path

import (
	"github.com/moehriegitt/hob3l-sub002/fx"
)

// Edge is one surviving boundary edge handed to [Reconstruct]. Unlike
// [segment.Segment], an Edge carries no membership mask: by the time the
// reducer is done, all that's left to decide is which loop each edge
// belongs to.
type Edge struct {
	A, B fx.Vec2
}

// Polygon is a point array plus a list of paths, each path a list of
// point indices into that array -- spec.md §4.6's "2D polygon" value.
// Path winding encodes containment: outer loops run counter-clockwise,
// holes run clockwise (the convention this module picked for spec.md
// §9's open winding question; see DESIGN.md).
type Polygon struct {
	Points []fx.Vec2
	Paths  [][]int
}

// IsEmpty reports whether the polygon has no paths.
func (p Polygon) IsEmpty() bool {
	return len(p.Paths) == 0
}

// SignedArea returns twice the signed area of path i (positive for CCW,
// negative for CW), using the shoelace formula over p.Points. Doubling
// avoids a fractional result since coordinates are integers.
func (p Polygon) SignedArea(i int) fx.DimW {
	path := p.Paths[i]
	var area fx.DimW
	for k := range path {
		a := p.Points[path[k]]
		b := p.Points[path[(k+1)%len(path)]]
		area += fx.DimW(a.X)*fx.DimW(b.Y) - fx.DimW(b.X)*fx.DimW(a.Y)
	}
	return area
}
