package triangulate

import "github.com/moehriegitt/hob3l-sub002/fx"

// earClip triangulates a simple polygon loop (point-pool indices, CCW,
// no self-intersections) by repeatedly clipping convex "ears" -- O(n^2)
// but exact, using only integer cross products.
func earClip(points []fx.Vec2, loop []int) ([]Tri, error) {
	ring := append([]int(nil), loop...)
	var tris []Tri

	for len(ring) > 3 {
		clipped := false
		n := len(ring)
		for i := 0; i < n; i++ {
			prev := ring[(i-1+n)%n]
			cur := ring[i]
			next := ring[(i+1)%n]
			if !isConvex(points, prev, cur, next) {
				continue
			}
			if anyVertexInside(points, ring, prev, cur, next) {
				continue
			}
			area := fx.Cross2Z(points[cur].Sub(points[prev]), points[next].Sub(points[prev]))
			if area != 0 {
				tris = append(tris, Tri{A: prev, B: cur, C: next})
			}
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Remaining loop is degenerate (e.g. a bridge's zero-width
			// return path); drop one vertex and keep going rather than
			// looping forever.
			ring = append(ring[:1], ring[2:]...)
		}
	}
	if len(ring) == 3 {
		a, b, c := ring[0], ring[1], ring[2]
		if fx.Cross2Z(points[b].Sub(points[a]), points[c].Sub(points[a])) != 0 {
			tris = append(tris, Tri{A: a, B: b, C: c})
		}
	}
	return tris, nil
}

func isConvex(points []fx.Vec2, prev, cur, next int) bool {
	return fx.Cross2Z(points[cur].Sub(points[prev]), points[next].Sub(points[cur])) >= 0
}

func anyVertexInside(points []fx.Vec2, ring []int, a, b, c int) bool {
	for _, v := range ring {
		if v == a || v == b || v == c {
			continue
		}
		if pointInTriangle(points[v], points[a], points[b], points[c]) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c fx.Vec2) bool {
	d1 := fx.Cross2Z(b.Sub(a), p.Sub(a))
	d2 := fx.Cross2Z(c.Sub(b), p.Sub(b))
	d3 := fx.Cross2Z(a.Sub(c), p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
