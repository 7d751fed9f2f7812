package path_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 fx.Dim) []path.Edge {
	pts := []fx.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	var edges []path.Edge
	for i := range pts {
		edges = append(edges, path.Edge{A: pts[i], B: pts[(i+1)%len(pts)]})
	}
	return edges
}

func TestReconstructSquare(t *testing.T) {
	edges := square(0, 0, 100, 100)
	poly, err := path.Reconstruct(edges, options.Config{})
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)
	assert.Len(t, poly.Paths[0], 4)
}

func TestReconstructEmpty(t *testing.T) {
	poly, err := path.Reconstruct(nil, options.Config{})
	require.NoError(t, err)
	assert.True(t, poly.IsEmpty())
}

func TestSignedAreaPositiveForCCW(t *testing.T) {
	edges := square(0, 0, 10, 10)
	poly, err := path.Reconstruct(edges, options.Config{})
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)
	assert.Equal(t, fx.DimW(200), poly.SignedArea(0))
}

func TestDropCollinearMergesStraightRun(t *testing.T) {
	edges := []path.Edge{
		{A: fx.Vec2{X: 0, Y: 0}, B: fx.Vec2{X: 30, Y: 0}},
		{A: fx.Vec2{X: 30, Y: 0}, B: fx.Vec2{X: 70, Y: 0}},
		{A: fx.Vec2{X: 70, Y: 0}, B: fx.Vec2{X: 100, Y: 0}},
		{A: fx.Vec2{X: 100, Y: 0}, B: fx.Vec2{X: 100, Y: 100}},
		{A: fx.Vec2{X: 100, Y: 100}, B: fx.Vec2{X: 0, Y: 100}},
		{A: fx.Vec2{X: 0, Y: 100}, B: fx.Vec2{X: 0, Y: 0}},
	}
	poly, err := path.Reconstruct(edges, options.Config{DropCollinear: true})
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)
	assert.Len(t, poly.Paths[0], 4)
}
