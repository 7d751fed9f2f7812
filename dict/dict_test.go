package dict_test

import (
	"testing"

	"github.com/moehriegitt/hob3l-sub002/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestInsertFind(t *testing.T) {
	tr := dict.New[int, string](intCmp)
	tr.Insert(5, "five")
	tr.Insert(3, "three")
	tr.Insert(8, "eight")

	v, ok := tr.Find(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)

	_, ok = tr.Find(100)
	assert.False(t, ok)
	assert.Equal(t, 3, tr.Len())
}

func TestMinMax(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Insert(k, k*10)
	}
	assert.Equal(t, 1, tr.Min().Key)
	assert.Equal(t, 9, tr.Max().Key)
}

func TestInOrderIsSorted(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	keys := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, k := range keys {
		tr.Insert(k, k)
	}
	var got []int
	tr.InOrder(func(k, _ int) bool {
		got = append(got, k)
		return true
	})
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, want, got)
}

func TestPredecessorSuccessor(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Insert(k, k)
	}
	n := tr.FindNode(5)
	require.NotNil(t, n)
	assert.Equal(t, 3, n.Predecessor().Key)
	assert.Equal(t, 7, n.Successor().Key)
	assert.Nil(t, tr.Min().Predecessor())
	assert.Nil(t, tr.Max().Successor())
}

func TestDelete(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	keys := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, k := range keys {
		tr.Insert(k, k)
	}
	n := tr.FindNode(7)
	require.NotNil(t, n)
	tr.Delete(n)

	_, ok := tr.Find(7)
	assert.False(t, ok)
	assert.Equal(t, len(keys)-1, tr.Len())

	var got []int
	tr.InOrder(func(k, _ int) bool { got = append(got, k); return true })
	want := []int{0, 1, 2, 3, 4, 5, 6, 8, 9}
	assert.Equal(t, want, got)
}

func TestDeleteAllLeavesEmptyTree(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	keys := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, k := range keys {
		tr.Insert(k, k)
	}
	for _, k := range keys {
		n := tr.FindNode(k)
		require.NotNil(t, n)
		tr.Delete(n)
	}
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Min())
}

func TestAugmentIsInvokedOnInsert(t *testing.T) {
	calls := 0
	aug := func(n *dict.Node[int, int]) { calls++ }
	tr := dict.New[int, int](intCmp, dict.WithAugment(aug))
	for _, k := range []int{5, 1, 9, 3, 7, 2, 8} {
		tr.Insert(k, k)
	}
	assert.Greater(t, calls, 0)
}

func TestSplitJoin3(t *testing.T) {
	tr := dict.New[int, int](intCmp)
	for _, k := range []int{1, 2, 3, 7, 8, 9} {
		tr.Insert(k, k)
	}
	left, right := tr.Split(5)

	var gotLeft []int
	left.InOrder(func(k, _ int) bool { gotLeft = append(gotLeft, k); return true })
	assert.Equal(t, []int{1, 2, 3}, gotLeft)

	var gotRight []int
	right.InOrder(func(k, _ int) bool { gotRight = append(gotRight, k); return true })
	assert.Equal(t, []int{7, 8, 9}, gotRight)

	joined := dict.Join3(left, 5, 5, right)
	var got []int
	joined.InOrder(func(k, _ int) bool { got = append(got, k); return true })
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, got)
}
