package sweep_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/pool"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/moehriegitt/hob3l-sub002/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePts(x0, y0, x1, y1 fx.Dim) []fx.Vec2 {
	return []fx.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func newSweep() *sweep.Sweep {
	return sweep.New(pool.New(), loc.None, 0)
}

// Two overlapping 100x100 squares, union reduced -- spec.md §8.1.
func TestUnionOfOverlappingSquares(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon(squarePts(0, 0, 100, 100), segment.Bit(0)))
	require.NoError(t, s.AddPolygon(squarePts(50, 50, 150, 150), segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Union(2)))
	poly, err := s.IntoPolygon()
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)

	// The union of two 100x100 squares overlapping in a 50x50 corner has
	// area 2*10000 - 2500 = 17500, doubled by SignedArea's shoelace.
	assert.Equal(t, fx.DimW(35000), poly.SignedArea(0))
}

// Same two squares, intersected -- exactly their 50x50 overlap.
func TestIntersectionOfOverlappingSquares(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon(squarePts(0, 0, 100, 100), segment.Bit(0)))
	require.NoError(t, s.AddPolygon(squarePts(50, 50, 150, 150), segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Intersection(2)))
	poly, err := s.IntoPolygon()
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)
	assert.Equal(t, fx.DimW(5000), poly.SignedArea(0))
}

// A square XORed with itself cancels entirely -- spec.md §8.3's
// self-cancellation scenario.
func TestXorOfSquareWithItselfIsEmpty(t *testing.T) {
	s := newSweep()
	pts := squarePts(0, 0, 100, 100)
	require.NoError(t, s.AddPolygon(pts, segment.Bit(0)))
	require.NoError(t, s.AddPolygon(pts, segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Xor(2)))
	poly, err := s.IntoPolygon()
	require.NoError(t, err)
	assert.True(t, poly.IsEmpty())
}

// A square with a smaller square hole inside it -- spec.md §8.6's
// hole-in-square scenario, difference of an outer square and an inner one.
func TestSquareWithHole(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon(squarePts(0, 0, 100, 100), segment.Bit(0)))
	require.NoError(t, s.AddPolygon(squarePts(25, 25, 75, 75), segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Difference(2)))
	poly, err := s.IntoPolygon()
	require.NoError(t, err)
	require.Len(t, poly.Paths, 2)

	var total fx.DimW
	for i := range poly.Paths {
		total += poly.SignedArea(i)
	}
	assert.Equal(t, fx.DimW(2*(10000-2500)), total)
}

// Two triangles sharing their diagonal: the shared edge collapses into one
// segment carrying both bits, which the union drops, leaving the 100x100
// square as a single path.
func TestSharedEdgeTriangleUnion(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon([]fx.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}, segment.Bit(0)))
	require.NoError(t, s.AddPolygon([]fx.Vec2{{X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}, segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Union(2)))
	poly, err := s.IntoPolygon()
	require.NoError(t, err)
	require.Len(t, poly.Paths, 1)
	assert.Equal(t, fx.DimW(10000*2), poly.SignedArea(0))
}

// Reduce is idempotent: calling it twice with the same table doesn't
// change the result.
func TestReduceIsIdempotent(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon(squarePts(0, 0, 100, 100), segment.Bit(0)))
	require.NoError(t, s.AddPolygon(squarePts(50, 50, 150, 150), segment.Bit(1)))

	require.NoError(t, s.Reduce(sweep.Union(2)))
	first, err := s.IntoPolygon()
	require.NoError(t, err)

	require.NoError(t, s.Reduce(sweep.Union(2)))
	second, err := s.IntoPolygon()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAddPolygonRejectsDegenerateInput(t *testing.T) {
	s := sweep.New(pool.New(), loc.None, 0, options.WithStrictEmptyInput(true))
	err := s.AddPolygon([]fx.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, segment.Bit(0))
	require.Error(t, err)
	// The sweep is poisoned: any later call surfaces the same error.
	_, err2 := s.IntoPolygon()
	assert.ErrorIs(t, err2, err)
}

func TestBoundingBoxAccumulates(t *testing.T) {
	s := newSweep()
	require.NoError(t, s.AddPolygon(squarePts(0, 0, 100, 100), segment.Bit(0)))
	box := s.BoundingBox()
	assert.Equal(t, fx.Dim(0), box.Min.X)
	assert.Equal(t, fx.Dim(100), box.Max.X)
}
