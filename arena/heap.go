package arena

import "unsafe"

type heapBlock struct {
	backing []byte // keeps the Go allocation reachable
	size    int
	align   uintptr
}

// HeapArena hands out one Go heap allocation per request and keeps track of
// every live region so it can be freed individually. It is the only arena in
// this package whose CanFree reports true.
//
// FreeAligned must receive the exact region and alignment that were used to
// allocate it; anything else is a programming error and panics.
type HeapArena struct {
	live      map[uintptr]heapBlock
	inUse     int
	limit     int
	allocs    int
	frees     int
	peakInUse int
}

// NewHeapArena creates a HeapArena. Requests that would push the live byte
// count above limit return nil; limit <= 0 means unbounded.
func NewHeapArena(limit int) *HeapArena {
	if limit < 0 {
		limit = 0
	}
	return &HeapArena{live: make(map[uintptr]heapBlock), limit: limit}
}

// AllocAligned returns size bytes aligned to alignment, or nil.
func (h *HeapArena) AllocAligned(size, alignment int) []byte {
	h.panicIfReleased()
	if size <= 0 {
		return nil
	}
	align := normAlign(alignment)
	if h.limit > 0 && h.inUse+size > h.limit {
		return nil
	}
	backing := make([]byte, size+int(align)-1)
	off := alignedOffset(backing, 0, align)
	buf := backing[off : off+uintptr(size) : off+uintptr(size)]

	h.live[uintptr(unsafe.Pointer(unsafe.SliceData(buf)))] = heapBlock{
		backing: backing,
		size:    size,
		align:   align,
	}
	h.inUse += size
	h.allocs++
	if h.inUse > h.peakInUse {
		h.peakInUse = h.inUse
	}
	return buf
}

// FreeAligned releases a region returned by AllocAligned.
func (h *HeapArena) FreeAligned(buf []byte, alignment int) {
	h.panicIfReleased()
	if len(buf) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	blk, ok := h.live[key]
	if !ok {
		panic("arena: free of a region not allocated by this HeapArena")
	}
	if blk.size != len(buf) || blk.align != normAlign(alignment) {
		panic("arena: free size/alignment does not match allocation")
	}
	delete(h.live, key)
	h.inUse -= blk.size
	h.frees++
}

// CanFree reports true.
func (h *HeapArena) CanFree() bool { return true }

// LiveAllocations returns the number of regions allocated and not yet freed.
func (h *HeapArena) LiveAllocations() int {
	return len(h.live)
}

// Release forgets every region and makes the arena unusable.
func (h *HeapArena) Release() {
	h.live = nil
	h.inUse = 0
}

func (h *HeapArena) panicIfReleased() {
	if h.live == nil {
		panic("arena: use after Release()")
	}
}
