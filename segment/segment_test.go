package segment_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrdersEndpoints(t *testing.T) {
	p := fx.Vec2{X: 10, Y: 0}
	q := fx.Vec2{X: 0, Y: 0}
	s := segment.New(0, p, q, segment.Bit(0))
	assert.Equal(t, q, s.A)
	assert.Equal(t, p, s.B)
}

func TestBitAndPopcount(t *testing.T) {
	m := segment.Bit(0) | segment.Bit(2)
	assert.Equal(t, 2, m.Popcount())
	assert.Panics(t, func() { segment.Bit(segment.MaxPolygons) })
}

func TestXORMembers(t *testing.T) {
	s := segment.New(0, fx.Vec2{}, fx.Vec2{X: 1}, segment.Bit(0))
	s.XORMembers(segment.Bit(0) | segment.Bit(1))
	assert.Equal(t, segment.Bit(1), s.Members)
}

func TestLinkRing(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, fx.Vec2{}, fx.Vec2{X: 1}, segment.Bit(0)),
		segment.New(1, fx.Vec2{}, fx.Vec2{X: 1}, segment.Bit(1)),
		segment.New(2, fx.Vec2{}, fx.Vec2{X: 1}, segment.Bit(2)),
	}
	segment.LinkRing(segs, 0, 1)
	segment.LinkRing(segs, 1, 2)

	visited := map[segment.ID]bool{}
	cur := segment.ID(0)
	for i := 0; i < 3; i++ {
		visited[cur] = true
		cur = segs[cur].RingNext
	}
	require.Len(t, visited, 3)
	assert.Equal(t, segment.ID(0), cur)
}

func TestBeachNodeRoundTrip(t *testing.T) {
	s := segment.New(0, fx.Vec2{}, fx.Vec2{X: 1}, segment.Bit(0))
	assert.Nil(t, s.BeachNode())
	s.SetBeachNode("handle")
	assert.Equal(t, "handle", s.BeachNode())
}
