package arena

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
//
// Individual allocations are never freed: FreeAligned is a no-op and the
// memory stays valid (but orphaned) until Reset or Release.
type Arena struct {
	chunks    []chunk
	chunkSize int
	limit     int // max total chunk bytes, 0 means unbounded
	cur       int // index of the chunk currently bump allocating
	allocs    int
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	return NewArenaWithLimit(chunkSize, 0)
}

// NewArenaWithLimit creates an Arena whose chunks may never add up to more
// than limit bytes. Allocations that would need more return nil.
// A limit <= 0 means unbounded.
func NewArenaWithLimit(chunkSize, limit int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if limit < 0 {
		limit = 0
	}
	a := &Arena{chunkSize: chunkSize, limit: limit}
	first := chunkSize
	if limit > 0 && first > limit {
		first = limit
	}
	a.chunks = make([]chunk, 0, 4)
	a.grow(first)
	return a
}

// AllocAligned returns size bytes aligned to alignment, or nil when size <= 0
// or the arena limit would be exceeded.
func (a *Arena) AllocAligned(size, alignment int) []byte {
	if size <= 0 {
		return nil
	}
	return a.alloc(uintptr(size), normAlign(alignment))
}

// FreeAligned is a no-op: a bump allocator cannot release single regions.
func (a *Arena) FreeAligned(buf []byte, alignment int) {
	a.panicIfReleased()
}

// CanFree reports false; see FreeAligned.
func (a *Arena) CanFree() bool { return false }

func (a *Arena) alloc(n, align uintptr) []byte {
	a.panicIfReleased()

	// Fast path: current chunk
	if b := a.tryChunk(a.cur, n, align); b != nil {
		return b
	}

	// Chunks after the current one are empty after a Reset.
	for i := a.cur + 1; i < len(a.chunks); i++ {
		if b := a.tryChunk(i, n, align); b != nil {
			a.cur = i
			return b
		}
	}

	// Slow path: need new chunk
	if !a.grow(int(n + align - 1)) {
		return nil
	}
	return a.tryChunk(a.cur, n, align)
}

func (a *Arena) tryChunk(i int, n, align uintptr) []byte {
	if i >= len(a.chunks) {
		return nil
	}
	c := &a.chunks[i]
	off := alignedOffset(c.buf, c.offset, align)
	if off+n > uintptr(len(c.buf)) {
		return nil
	}
	c.offset = off + n
	a.allocs++
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[off])), int(n))
}

// EnsureCapacity makes sure the next allocation of up to n bytes fits
// without growing, adding a chunk if needed. It reports false when a
// limited arena cannot add that chunk.
func (a *Arena) EnsureCapacity(n int) bool {
	a.panicIfReleased()
	if len(a.chunks) > 0 {
		c := &a.chunks[a.cur]
		if alignPtr(c.offset)+uintptr(n) <= uintptr(len(c.buf)) {
			return true
		}
	}
	return a.grow(n)
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Every region previously handed out becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
	a.allocs = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.chunks = nil
	a.cur = 0
}

// grow appends a new chunk of at least min bytes and makes it current.
// It reports false when the limit does not allow the chunk.
func (a *Arena) grow(min int) bool {
	size := a.chunkSize
	if min > size {
		size = min
	}
	if a.limit > 0 {
		avail := a.limit - a.capacity()
		if min > avail {
			return false
		}
		if size > avail {
			size = avail
		}
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.cur = len(a.chunks) - 1
	return true
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

func (a *Arena) capacity() int {
	n := 0
	for _, c := range a.chunks {
		n += len(c.buf)
	}
	return n
}
