package triangulate

import (
	"sort"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// mergeHolesInto splices every hole in holes that lies inside outer's
// bounding box into outer by a visibility bridge, producing a single
// simple loop (point indices, possibly repeating a vertex at each
// bridge) that ear clipping can consume directly.
//
// Each hole picks its rightmost vertex (max X, tie-broken by max Y) and
// connects it to the nearest outer vertex such that the connecting
// segment crosses no other edge -- the classical hole-merging
// construction (as used by, e.g., the earcut family of triangulators),
// chosen here in place of a full monotone-partition sweep; see
// DESIGN.md.
func mergeHolesInto(points []fx.Vec2, outer []int, holes [][]int, cfg options.Config) ([]int, error) {
	result := append([]int(nil), outer...)
	for _, hole := range holes {
		if !boundsContain(points, result, points[hole[0]]) {
			continue
		}
		merged, err := bridgeOne(points, result, hole, cfg)
		if err != nil {
			return nil, err
		}
		if merged != nil {
			result = merged
		}
	}
	return result, nil
}

func boundsContain(points []fx.Vec2, loop []int, p fx.Vec2) bool {
	lo, hi := points[loop[0]], points[loop[0]]
	for _, idx := range loop {
		v := points[idx]
		if v.X < lo.X {
			lo.X = v.X
		}
		if v.Y < lo.Y {
			lo.Y = v.Y
		}
		if v.X > hi.X {
			hi.X = v.X
		}
		if v.Y > hi.Y {
			hi.Y = v.Y
		}
	}
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// bridgeOne splices hole into loop via a visibility diagonal from hole's
// rightmost vertex to the closest loop vertex the diagonal can reach
// without crossing any edge of loop or hole. If no such vertex exists,
// the hole is left unmerged (nil, nil) unless cfg.StrictEmptyInput asks
// for that to be a hard error instead.
func bridgeOne(points []fx.Vec2, loop []int, hole []int, cfg options.Config) ([]int, error) {
	holeStart := rightmostIndex(points, hole)
	h := hole[holeStart]

	type candidate struct {
		pos  int
		dist fx.DimW
	}
	var cands []candidate
	for i, idx := range loop {
		if segmentCrossesLoop(points, h, idx, loop) || segmentCrossesLoop(points, h, idx, hole) {
			continue
		}
		d := sqDist(points[h], points[idx])
		cands = append(cands, candidate{pos: i, dist: d})
	}
	if len(cands) == 0 {
		if cfg.StrictEmptyInput {
			return nil, xerr.New(xerr.CollapsedOutput, loc.None, "no visibility bridge found for hole")
		}
		return nil, nil
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	bridgePos := cands[0].pos

	rotatedHole := append(append([]int(nil), hole[holeStart:]...), hole[:holeStart]...)

	out := make([]int, 0, len(loop)+len(rotatedHole)+2)
	out = append(out, loop[:bridgePos+1]...)
	out = append(out, rotatedHole...)
	out = append(out, h)                   // close the hole loop back to its start
	out = append(out, loop[bridgePos:]...) // re-enter at the bridge vertex after walking the hole
	return out, nil
}

func rightmostIndex(points []fx.Vec2, loop []int) int {
	best := 0
	for i := 1; i < len(loop); i++ {
		a, b := points[loop[i]], points[loop[best]]
		if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
			best = i
		}
	}
	return best
}

func sqDist(a, b fx.Vec2) fx.DimW {
	dx := fx.DimW(b.X) - fx.DimW(a.X)
	dy := fx.DimW(b.Y) - fx.DimW(a.Y)
	return dx*dx + dy*dy
}

// segmentCrossesLoop reports whether the open segment (points[a],
// points[b]) properly crosses any edge of loop (shared endpoints don't
// count as a crossing).
func segmentCrossesLoop(points []fx.Vec2, a, b int, loop []int) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		c, d := loop[i], loop[(i+1)%n]
		if c == a || c == b || d == a || d == b {
			continue
		}
		if segmentsIntersectProper(points[a], points[b], points[c], points[d]) {
			return true
		}
	}
	return false
}

func segmentsIntersectProper(p1, p2, p3, p4 fx.Vec2) bool {
	d1 := fx.Cross2Z(p4.Sub(p3), p1.Sub(p3))
	d2 := fx.Cross2Z(p4.Sub(p3), p2.Sub(p3))
	d3 := fx.Cross2Z(p2.Sub(p1), p3.Sub(p1))
	d4 := fx.Cross2Z(p2.Sub(p1), p4.Sub(p1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
