// Package fx implements the exact-arithmetic fixed-point grid the sweep
// engine runs on: a signed 32-bit coordinate ([Dim]), the widened types
// needed to multiply and divide it without loss ([DimW], [UDimQ]), and the
// exact segment/segment intersection primitive ([SegmentIntersect]) the
// plane sweep is built on.
//
// Nothing in this package uses floating point or an epsilon tolerance.
// Every comparison is a sign of an exact integer (or exact rational)
// value. The one tolerant-looking operation, [CmpEdgeRnd], is still exact:
// it tests a ½-unit integer square around a vertex, not a floating-point
// neighborhood.
package fx

import (
	"fmt"
	"math/big"

	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/xerr"
)

// Dim is the signed coordinate type all input geometry is snapped to
// before it enters the sweep.
type Dim int32

// DimW is wide enough to hold the product of two [Dim] values.
type DimW int64

// UDimQ is an unsigned value wide enough to hold the product of two
// [DimW] values, used only to cross-check fractions in [DimIF] comparison.
// It is backed by [math/big.Int] rather than a hand-rolled (hi, lo) limb
// pair: Go's standard library already provides an exact arbitrary-width
// integer, which is the widening primitive spec.md §9 asks for when the
// target language doesn't have a built-in 128-bit type.
type UDimQ struct {
	v *big.Int
}

// MulDimW returns the exact unsigned product |a| * |b|.
func MulDimW(a, b DimW) UDimQ {
	x := big.NewInt(int64(a))
	y := big.NewInt(int64(b))
	x.Abs(x)
	y.Abs(y)
	return UDimQ{v: x.Mul(x, y)}
}

// Cmp compares two UDimQ values, returning -1, 0, or 1.
func (a UDimQ) Cmp(b UDimQ) int {
	return a.v.Cmp(b.v)
}

// Vec2 is a point on the integer grid.
type Vec2 struct {
	X, Y Dim
}

// Sub returns a-b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Eq reports exact coordinate equality.
func (a Vec2) Eq(b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

// Less orders points primarily by X, then by Y -- the sweep order used for
// segment endpoint canonicalization (spec.md §3's "a ≤ b in sweep order").
func (a Vec2) Less(b Vec2) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

// Box is an axis-aligned bounding box over [Dim] coordinates.
type Box struct {
	Min, Max Vec2

	nonEmpty bool
}

// Add widens b into the box, initializing an empty box on first use.
func (b Box) Add(p Vec2) Box {
	if b.Empty() {
		return Box{Min: p, Max: p, nonEmpty: true}
	}
	out := b
	if p.X < out.Min.X {
		out.Min.X = p.X
	}
	if p.Y < out.Min.Y {
		out.Min.Y = p.Y
	}
	if p.X > out.Max.X {
		out.Max.X = p.X
	}
	if p.Y > out.Max.Y {
		out.Max.Y = p.Y
	}
	return out
}

// Empty reports whether the box has never had a point added to it.
func (b Box) Empty() bool {
	return !b.nonEmpty
}

// Sign is the result of an exact comparison: negative, zero, or positive.
type Sign int8

// Valid values for Sign.
const (
	Neg  Sign = -1
	Zero Sign = 0
	Pos  Sign = 1
)

func signOfDimW(x DimW) Sign {
	switch {
	case x < 0:
		return Neg
	case x > 0:
		return Pos
	default:
		return Zero
	}
}

// DivModEuclid computes the Euclidean division of x by d: the unique
// (div, mod) with x == div*d + mod and 0 <= mod < |d|.
//
// It fails with [xerr.Overflow] when the quotient does not fit back into a
// [Dim] -- the 64-bit-into-32-bit narrowing spec.md §4.1 calls out -- and
// when d is zero.
func DivModEuclid(at loc.Loc, x DimW, d Dim) (div Dim, mod Dim, err error) {
	if d == 0 {
		return 0, 0, xerr.New(xerr.Overflow, at, "division by zero")
	}
	dd := DimW(d)
	q := x / dd
	r := x % dd
	if r < 0 {
		if dd > 0 {
			q--
			r += dd
		} else {
			q++
			r -= dd
		}
	}
	if q > DimW(maxDim) || q < DimW(minDim) {
		return 0, 0, xerr.Overflowf(at, "quotient %d does not fit in a 32-bit coordinate", q)
	}
	return Dim(q), Dim(r), nil
}

const (
	maxDim = Dim(1<<31 - 1)
	minDim = Dim(-1 << 31)
)

// Cross2Z is the Z component of the 2D cross product a x b.
func Cross2Z(a, b Vec2) DimW {
	return DimW(a.X)*DimW(b.Y) - DimW(a.Y)*DimW(b.X)
}

// RightCross3Z computes the cross product (a-o) x (b-o).z. With y pointing
// up it is positive iff o->b is counter-clockwise of o->a (with y pointing
// down, as in screen coordinates, that same turn appears clockwise).
func RightCross3Z(a, o, b Vec2) DimW {
	return Cross2Z(a.Sub(o), b.Sub(o))
}

// YAtX computes the exact y-coordinate at which the (non-vertical) segment
// a->b crosses the vertical line x == atX, as an exact fraction. The
// caller must only call this for segments whose x-span contains atX and
// which are not vertical (a.X != b.X); the beach line never holds a
// vertical segment standing still, since a vertical segment's sweep-order
// position is decided the moment it is inserted and removed.
func YAtX(a, b Vec2, atX Dim) DimIF {
	dx := DimW(b.X) - DimW(a.X)
	dy := DimW(b.Y) - DimW(a.Y)
	t := DimW(atX) - DimW(a.X)
	num := big.NewInt(int64(dy))
	num.Mul(num, big.NewInt(int64(t)))
	den := big.NewInt(int64(dx))
	if den.Sign() < 0 {
		den.Neg(den)
		num.Neg(num)
	}
	return NewDimIF(a.Y, num, den)
}

// CmpEdgeRnd is the Hobby-style tolerant "is vertex v above, on, or below
// edge k->l" test used for every beach-line comparison (spec.md §4.1).
//
// It tests the sign of the cross product at each of the four corners of
// the half-unit integer square centered on v (doubling coordinates keeps
// the ±½ offsets exact integers). If the sign is not the same at all four
// corners, v is considered "on" the edge within tolerance. Swapping k and
// l negates the result, and the test agrees with a plain endpoint
// comparison when v coincides with k or l, because then two opposite
// corners of the square straddle the edge exactly.
func CmpEdgeRnd(v, k, l Vec2) Sign {
	vx2, vy2 := DimW(v.X)*2, DimW(v.Y)*2
	kx2, ky2 := DimW(k.X)*2, DimW(k.Y)*2
	lx2, ly2 := DimW(l.X)*2, DimW(l.Y)*2
	edgeX, edgeY := lx2-kx2, ly2-ky2

	corners := [4][2]DimW{
		{vx2 - 1, vy2 - 1},
		{vx2 + 1, vy2 - 1},
		{vx2 - 1, vy2 + 1},
		{vx2 + 1, vy2 + 1},
	}

	var sign Sign
	for i, c := range corners {
		cx, cy := c[0]-kx2, c[1]-ky2
		cross := edgeX*cy - edgeY*cx
		s := signOfDimW(cross)
		if i == 0 {
			sign = s
			continue
		}
		if s != sign {
			return Zero
		}
	}
	return sign
}
