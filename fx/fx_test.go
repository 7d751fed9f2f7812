package fx_test

import (
	"math/big"
	"testing"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivModEuclid(t *testing.T) {
	tests := []struct {
		name    string
		x       fx.DimW
		d       fx.Dim
		div     fx.Dim
		mod     fx.Dim
		wantErr bool
	}{
		{name: "positive exact", x: 10, d: 5, div: 2, mod: 0},
		{name: "positive remainder", x: 7, d: 2, div: 3, mod: 1},
		{name: "negative numerator", x: -7, d: 2, div: -4, mod: 1},
		{name: "negative divisor", x: 7, d: -2, div: -3, mod: 1},
		{name: "both negative", x: -7, d: -2, div: 4, mod: 1},
		{name: "quotient overflows Dim", x: fx.DimW(1) << 40, d: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			div, mod, err := fx.DivModEuclid(loc.None, tt.x, tt.d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.div, div)
			assert.Equal(t, tt.mod, mod)
			assert.GreaterOrEqual(t, int64(mod), int64(0))
		})
	}
}

func TestCross2Z(t *testing.T) {
	a := fx.Vec2{X: 1, Y: 0}
	b := fx.Vec2{X: 0, Y: 1}
	assert.Equal(t, fx.DimW(1), fx.Cross2Z(a, b))
	assert.Equal(t, fx.DimW(-1), fx.Cross2Z(b, a))
}

func TestCmpEdgeRndSymmetry(t *testing.T) {
	v := fx.Vec2{X: 5, Y: 5}
	k := fx.Vec2{X: 0, Y: 0}
	l := fx.Vec2{X: 10, Y: 0}

	s1 := fx.CmpEdgeRnd(v, k, l)
	s2 := fx.CmpEdgeRnd(v, l, k)
	assert.Equal(t, -s1, s2, "swapping edge endpoints must negate the sign")
}

func TestCmpEdgeRndAgreesAtEndpoint(t *testing.T) {
	k := fx.Vec2{X: 0, Y: 0}
	l := fx.Vec2{X: 10, Y: 0}
	assert.Equal(t, fx.Zero, fx.CmpEdgeRnd(k, k, l))
	assert.Equal(t, fx.Zero, fx.CmpEdgeRnd(l, k, l))
}

func TestSegmentIntersectCross(t *testing.T) {
	p1 := fx.Vec2{X: 0, Y: 0}
	p2 := fx.Vec2{X: 10, Y: 10}
	p3 := fx.Vec2{X: 0, Y: 10}
	p4 := fx.Vec2{X: 10, Y: 0}

	r := fx.SegmentIntersect(p1, p2, p3, p4)
	require.Equal(t, fx.Cross, r.Kind)
	assert.Equal(t, fx.Vec2{X: 5, Y: 5}, r.Point.Round())
	assert.Equal(t, fx.EndpointMask(0), r.AtEndpoint)
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	p1 := fx.Vec2{X: 0, Y: 0}
	p2 := fx.Vec2{X: 1, Y: 0}
	p3 := fx.Vec2{X: 0, Y: 5}
	p4 := fx.Vec2{X: 1, Y: 5}

	r := fx.SegmentIntersect(p1, p2, p3, p4)
	assert.Equal(t, fx.Disjoint, r.Kind)
}

func TestSegmentIntersectCollinear(t *testing.T) {
	p1 := fx.Vec2{X: 0, Y: 0}
	p2 := fx.Vec2{X: 10, Y: 0}
	p3 := fx.Vec2{X: 5, Y: 0}
	p4 := fx.Vec2{X: 20, Y: 0}

	r := fx.SegmentIntersect(p1, p2, p3, p4)
	assert.Equal(t, fx.Collinear, r.Kind)
}

func TestSegmentIntersectEndpoint(t *testing.T) {
	p1 := fx.Vec2{X: 0, Y: 0}
	p2 := fx.Vec2{X: 10, Y: 0}
	p3 := fx.Vec2{X: 5, Y: -5}
	p4 := fx.Vec2{X: 5, Y: 0}

	r := fx.SegmentIntersect(p1, p2, p3, p4)
	require.Equal(t, fx.Cross, r.Kind)
	assert.Equal(t, fx.AtP4, r.AtEndpoint)
}

func TestDimIFCmp(t *testing.T) {
	a := fx.NewDimIF(1, bigOf(1), bigOf(3))
	b := fx.NewDimIF(1, bigOf(2), bigOf(3))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func bigOf(i int64) *big.Int { return big.NewInt(i) }
