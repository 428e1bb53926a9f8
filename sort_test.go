package bktarray

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/bktarray/arena"
)

func TestSortAcrossBuckets(t *testing.T) {
	a := newInt32s(t, 4)
	for v := int32(19); v >= 0; v-- {
		require.NoError(t, a.Push(v))
	}
	assert.False(t, a.IsSorted(cmp.Compare[int32]))
	first := a.Get(0)

	a.Sort(cmp.Compare[int32])
	assert.True(t, a.IsSorted(cmp.Compare[int32]))
	assert.Same(t, first, a.Get(0), "values move, slots do not")
	assert.Equal(t, 5, a.NumBuckets())
	requireContents(t, a, seq(0, 20))
}

func TestSortSingleBucket(t *testing.T) {
	a := newInt32s(t, 4, 5, 3, 9, 1, 7, 2)
	require.NoError(t, a.Condense())

	a.Sort(func(x, y int32) int { return cmp.Compare(y, x) })
	requireContents(t, a, []int32{9, 7, 5, 3, 2, 1})
}

func TestSortAfterBulkAdd(t *testing.T) {
	a := newInt32s(t, 4, seq(0, 8)...)
	a.Clear(false)
	require.NoError(t, a.AddValues([]int32{4, 2, 3, 1, 0, 5}))

	a.Sort(cmp.Compare[int32])
	requireContents(t, a, seq(0, 6))
}

func TestSortStable(t *testing.T) {
	type pair struct {
		Key, Ord int32
	}
	a := New[pair](arena.NewHeapArena(0), 3)
	for i, k := range []int32{3, 1, 2, 1, 3, 2, 1} {
		require.NoError(t, a.Push(pair{Key: k, Ord: int32(i)}))
	}

	byKey := func(x, y pair) int { return cmp.Compare(x.Key, y.Key) }
	a.SortStable(byKey)
	assert.True(t, a.IsSorted(byKey))

	var got []pair
	for v := range a.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []pair{
		{1, 1}, {1, 3}, {1, 6},
		{2, 2}, {2, 5},
		{3, 0}, {3, 4},
	}, got)
}

func TestSortTrivial(t *testing.T) {
	a := newInt32s(t, 4)
	a.Sort(cmp.Compare[int32])
	assert.True(t, a.IsSorted(cmp.Compare[int32]))

	require.NoError(t, a.Push(1))
	a.SortStable(cmp.Compare[int32])
	requireContents(t, a, []int32{1})
}
