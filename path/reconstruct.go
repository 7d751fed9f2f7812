package path

import (
	"sort"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// adjEntry is one edge's occurrence at one of its two endpoints: the
// direction pointing away from that endpoint, and which edge (and which
// of its two endpoints) it came from.
type adjEntry struct {
	dir     fx.Vec2
	edge    int
	fromA   bool // true if this occurrence is the A-endpoint of edges[edge]
}

// angleHalf partitions direction vectors into an upper half (y > 0, or
// y == 0 and x > 0) and a lower half, the first step of an exact,
// trig-free total counter-clockwise ordering starting at the positive
// x-axis.
func angleHalf(v fx.Vec2) int {
	if v.Y > 0 || (v.Y == 0 && v.X > 0) {
		return 0
	}
	return 1
}

// angleLess orders two direction vectors by counter-clockwise angle from
// the positive x-axis, using only the sign of their cross product within
// a half-plane -- no floating-point trigonometry, matching the exact
// arithmetic the rest of the sweep relies on.
func angleLess(a, b fx.Vec2) bool {
	ha, hb := angleHalf(a), angleHalf(b)
	if ha != hb {
		return ha < hb
	}
	return fx.Cross2Z(a, b) > 0
}

// Reconstruct walks edges -- assumed to form a 2-regular (or higher,
// at branch vertices) planar multigraph, per spec.md's invariant I5 --
// into closed paths. At a vertex where more than two edges meet, the
// next edge to leave by is the one immediately following the reverse of
// the arriving direction in the vertex's counter-clockwise cyclic order
// of incident edges, so that paths never cross themselves (spec.md
// §4.6's "pair up incoming/outgoing edges by angular order").
func Reconstruct(edges []Edge, cfg options.Config) (Polygon, error) {
	if len(edges) == 0 {
		if cfg.SkipEmpty {
			return Polygon{}, nil
		}
		return Polygon{}, nil
	}

	adj := map[fx.Vec2][]adjEntry{}
	addEntry := func(at, dir fx.Vec2, edge int, fromA bool) {
		adj[at] = append(adj[at], adjEntry{dir: dir, edge: edge, fromA: fromA})
	}
	for i, e := range edges {
		addEntry(e.A, e.B.Sub(e.A), i, true)
		addEntry(e.B, e.A.Sub(e.B), i, false)
	}
	for v, entries := range adj {
		sort.Slice(entries, func(i, j int) bool { return angleLess(entries[i].dir, entries[j].dir) })
		if len(entries)%2 != 0 {
			if cfg.StrictEmptyInput {
				return Polygon{}, xerr.New(xerr.CollapsedOutput, loc.None, "vertex %s has odd degree %d", v, len(entries))
			}
			return Polygon{}, nil
		}
		adj[v] = entries
	}

	visited := make([]bool, len(edges))
	pointIndex := map[fx.Vec2]int{}
	var out Polygon

	pointIdx := func(p fx.Vec2) int {
		if i, ok := pointIndex[p]; ok {
			return i
		}
		i := len(out.Points)
		out.Points = append(out.Points, p)
		pointIndex[p] = i
		return i
	}

	posInAdj := func(v fx.Vec2, dir fx.Vec2, edge int) int {
		entries := adj[v]
		for i, e := range entries {
			if e.edge == edge && e.dir.Eq(dir) {
				return i
			}
		}
		return -1
	}

	nextUnvisited := func(v fx.Vec2, fromDir fx.Vec2, arrivingEdge int) (int, bool) {
		entries := adj[v]
		start := posInAdj(v, fromDir, arrivingEdge)
		if start < 0 {
			start = 0
		}
		n := len(entries)
		for k := 1; k <= n; k++ {
			idx := (start + k) % n
			if !visited[entries[idx].edge] {
				return idx, true
			}
		}
		return 0, false
	}

	for startEdge := range edges {
		if visited[startEdge] {
			continue
		}
		var loop []int
		cur := startEdge
		fromA := true
		visited[cur] = true
		v0 := edges[cur].A
		loop = append(loop, pointIdx(v0))
		v := edges[cur].B
		arriveDir := edges[cur].A.Sub(edges[cur].B) // direction from v back to where we came from
		for {
			loop = append(loop, pointIdx(v))
			if v.Eq(v0) {
				break
			}
			idx, ok := nextUnvisited(v, arriveDir, cur)
			if !ok {
				if cfg.StrictEmptyInput {
					return Polygon{}, xerr.New(xerr.CollapsedOutput, loc.None, "dead end reconstructing path at %s", v)
				}
				return Polygon{}, nil
			}
			entry := adj[v][idx]
			cur = entry.edge
			visited[cur] = true
			fromA = entry.fromA
			var next fx.Vec2
			if fromA {
				next = edges[cur].B
			} else {
				next = edges[cur].A
			}
			arriveDir = v.Sub(next)
			v = next
		}
		if cfg.DropCollinear {
			loop = dropCollinear(out.Points, loop)
		}
		if len(loop) >= 4 { // closing vertex duplicates the first
			out.Paths = append(out.Paths, loop[:len(loop)-1])
		}
	}

	if cfg.SkipEmpty {
		nonEmpty := out.Paths[:0]
		for i, p := range out.Paths {
			if out.SignedArea(i) != 0 {
				nonEmpty = append(nonEmpty, p)
			}
		}
		out.Paths = nonEmpty
	}

	normalizeWinding(&out)
	return out, nil
}

// normalizeWinding enforces this module's winding convention (outer loops
// CCW, holes CW) after the fact, rather than relying on it falling out of
// the walk above. The walk's loop direction is inherited from whichever
// direction its first edge happened to be recorded in (sweep output
// segments are canonicalized to a fixed endpoint order and carry no
// orientation of their own), so it is not reliably CCW for an outer loop.
// Instead, each loop's nesting depth -- how many other loops contain one
// of its vertices -- decides the sign it should have, and the loop is
// reversed if its walked direction disagrees.
func normalizeWinding(p *Polygon) {
	for i, loop := range p.Paths {
		if len(loop) < 3 {
			continue
		}
		probe := p.Points[loop[0]]
		depth := 0
		for j, other := range p.Paths {
			if j == i {
				continue
			}
			if pointInLoop(p.Points, other, probe) {
				depth++
			}
		}
		wantPositive := depth%2 == 0
		isPositive := p.SignedArea(i) > 0
		if wantPositive != isPositive {
			reverse(loop)
		}
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// pointInLoop is an exact even-odd point-in-polygon test: cast a ray in
// the +x direction from p and count edges of loop it crosses.
func pointInLoop(points []fx.Vec2, loop []int, p fx.Vec2) bool {
	inside := false
	n := len(loop)
	for i := 0; i < n; i++ {
		a := points[loop[i]]
		b := points[loop[(i+1)%n]]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Exact x of the crossing, compared against p.X without division:
		// x_cross = a.X + (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y).
		t := fx.DimW(p.Y) - fx.DimW(a.Y)
		d := fx.DimW(b.Y) - fx.DimW(a.Y)
		lhs := fx.DimW(a.X)*d + (fx.DimW(b.X)-fx.DimW(a.X))*t
		rhs := fx.DimW(p.X) * d
		greater := lhs > rhs
		if d < 0 {
			greater = lhs < rhs
		}
		if greater {
			inside = !inside
		}
	}
	return inside
}

// dropCollinear removes a path vertex whenever it lies exactly between
// its neighbors (spec.md §6's drop_collinear option).
func dropCollinear(points []fx.Vec2, loop []int) []int {
	if len(loop) < 4 {
		return loop
	}
	body := loop[:len(loop)-1]
	out := make([]int, 0, len(body))
	n := len(body)
	for i, idx := range body {
		prev := points[body[(i-1+n)%n]]
		cur := points[idx]
		next := points[body[(i+1)%n]]
		if fx.Cross2Z(cur.Sub(prev), next.Sub(cur)) == 0 {
			continue
		}
		out = append(out, idx)
	}
	out = append(out, out[0])
	return out
}
