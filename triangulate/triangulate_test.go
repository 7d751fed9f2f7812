package triangulate_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/path"
	"github.com/moehriegitt/hob3l-sub002/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePoly(x0, y0, x1, y1 fx.Dim) path.Polygon {
	return path.Polygon{
		Points: []fx.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
		Paths:  [][]int{{0, 1, 2, 3}},
	}
}

func TestTriangulateSquareAreaMatches(t *testing.T) {
	poly := squarePoly(0, 0, 10, 10)
	ts, err := triangulate.Triangulate(poly, options.Config{})
	require.NoError(t, err)
	assert.Len(t, ts.Tris, 2)
	assert.Equal(t, poly.SignedArea(0), ts.SignedAreaSum())
}

func TestTriangulateEmptyPolygon(t *testing.T) {
	ts, err := triangulate.Triangulate(path.Polygon{}, options.Config{})
	require.NoError(t, err)
	assert.Empty(t, ts.Tris)
}

func TestTriangulateOutlineMaskAllEdgesOnSquare(t *testing.T) {
	poly := squarePoly(0, 0, 10, 10)
	ts, err := triangulate.Triangulate(poly, options.Config{})
	require.NoError(t, err)
	// Every triangle edge is either an outline edge or the shared
	// diagonal; exactly one of the two triangles' edges is the diagonal
	// (not outline) on each side, so each triangle has exactly 2 of its 3
	// edges flagged outline.
	for _, tri := range ts.Tris {
		bits := 0
		for _, b := range []triangulate.OutlineMask{triangulate.OutlineAB, triangulate.OutlineBC, triangulate.OutlineCA} {
			if tri.Outline&b != 0 {
				bits++
			}
		}
		assert.Equal(t, 2, bits)
	}
}

func TestTriangulateSquareWithHole(t *testing.T) {
	poly := path.Polygon{
		Points: []fx.Vec2{
			{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
			{X: 40, Y: 40}, {X: 40, Y: 60}, {X: 60, Y: 60}, {X: 60, Y: 40},
		},
		Paths: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7}, // CW hole
		},
	}
	outerArea := poly.SignedArea(0)
	holeArea := poly.SignedArea(1)
	require.Greater(t, outerArea, fx.DimW(0))
	require.Less(t, holeArea, fx.DimW(0))

	ts, err := triangulate.Triangulate(poly, options.Config{})
	require.NoError(t, err)
	require.NotEmpty(t, ts.Tris)
	assert.Equal(t, outerArea+holeArea, ts.SignedAreaSum())
}
