package pool_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAndGet(t *testing.T) {
	a := pool.New()
	ix := pool.Alloc[int](a, 3)
	vals := ix.Get()
	require.Len(t, vals, 3)
	vals[0] = 1
	vals[1] = 2
	vals[2] = 3
	assert.Equal(t, []int{1, 2, 3}, ix.Get())
}

func TestAllocDistinctRuns(t *testing.T) {
	a := pool.New()
	first := pool.Alloc[int](a, 2)
	second := pool.Alloc[int](a, 2)
	first.Get()[0] = 100
	second.Get()[0] = 200
	assert.Equal(t, 100, first.Get()[0])
	assert.Equal(t, 200, second.Get()[0])
}

func TestClearZeroes(t *testing.T) {
	a := pool.New()
	ix := pool.Alloc[int](a, 2)
	ix.Get()[0] = 42
	a.Clear()

	ix2 := pool.Alloc[int](a, 2)
	assert.Equal(t, 0, ix2.Get()[0])
}

func TestFini(t *testing.T) {
	a := pool.New()
	pool.Alloc[int](a, 2)
	a.Fini()
	// Arena is reusable after Fini, starting from empty slabs again.
	ix := pool.Alloc[int](a, 1)
	assert.Len(t, ix.Get(), 1)
}
