package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapArenaAllocFree(t *testing.T) {
	h := NewHeapArena(0)
	require.True(t, h.CanFree())

	b := h.AllocAligned(100, 64)
	require.Len(t, b, 100)
	assert.Zero(t, addrOf(b)%64)
	assert.Equal(t, 1, h.LiveAllocations())
	assert.Equal(t, 100, h.Metrics().SizeInUse)

	h.FreeAligned(b, 64)
	assert.Zero(t, h.LiveAllocations())
	assert.Zero(t, h.Metrics().SizeInUse)

	m := h.Metrics()
	assert.Equal(t, 1, m.Allocs)
	assert.Equal(t, 1, m.Frees)
	assert.Equal(t, 100, m.Capacity)
	assert.Zero(t, m.SizeInUse)
}

func TestHeapArenaFreeMismatch(t *testing.T) {
	h := NewHeapArena(0)
	b := h.AllocAligned(32, 8)

	assert.Panics(t, func() { h.FreeAligned(b[:16], 8) }, "short region")
	assert.Panics(t, func() { h.FreeAligned(b, 16) }, "wrong alignment")
	assert.Panics(t, func() { h.FreeAligned(make([]byte, 32), 8) }, "foreign region")
	assert.Equal(t, 1, h.LiveAllocations())

	h.FreeAligned(nil, 8)
	h.FreeAligned(b, 8)
	assert.Zero(t, h.LiveAllocations())
	assert.Panics(t, func() { h.FreeAligned(b, 8) }, "double free")
}

func TestHeapArenaLimit(t *testing.T) {
	h := NewHeapArena(100)

	first := h.AllocAligned(60, 8)
	require.NotNil(t, first)
	assert.Nil(t, h.AllocAligned(60, 8))

	h.FreeAligned(first, 8)
	assert.NotNil(t, h.AllocAligned(60, 8))
}

func TestHeapArenaRelease(t *testing.T) {
	h := NewHeapArena(0)
	h.AllocAligned(16, 8)
	h.Release()
	assert.Panics(t, func() { h.AllocAligned(16, 8) })
}
