package bktarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	a := newInt32s(t, 4, seq(0, 10)...)

	n := 0
	for i, p := range a.All() {
		assert.Equal(t, n, i)
		assert.Same(t, a.Get(i), p)
		assert.Equal(t, int32(i), *p)
		n++
	}
	assert.Equal(t, 10, n)

	// Stops when the loop body breaks.
	n = 0
	for i := range a.All() {
		if i == 5 {
			break
		}
		n++
	}
	assert.Equal(t, 5, n)
}

func TestAllSkipsEmptyBuckets(t *testing.T) {
	a := newInt32s(t, 4, seq(0, 12)...)
	for range 4 {
		a.RemoveAt(4)
	}

	var got []int32
	for _, p := range a.All() {
		got = append(got, *p)
	}
	assert.Equal(t, []int32{0, 1, 2, 3, 8, 9, 10, 11}, got)
}

func TestValues(t *testing.T) {
	a := newInt32s(t, 4, seq(0, 7)...)

	var got []int32
	for v := range a.Values() {
		if v == 6 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, seq(0, 6), got)
}

func TestAppendTo(t *testing.T) {
	a := newInt32s(t, 4, seq(0, 6)...)

	assert.Equal(t, append([]int32{-1}, seq(0, 6)...), a.AppendTo([]int32{-1}))
	assert.Nil(t, newInt32s(t, 4).AppendTo(nil))
}
