package arena

import "unsafe"

// Allocator is the memory source consumed by containers that need aligned,
// address-stable blocks. Every arena kind in this package implements it.
type Allocator interface {
	// AllocAligned returns size bytes whose first byte is aligned to
	// alignment, or nil if the request cannot be satisfied.
	AllocAligned(size, alignment int) []byte

	// FreeAligned hands back a region previously returned by AllocAligned.
	// buf must be the exact slice returned and alignment the value used to
	// allocate it. Allocators that cannot free treat this as a no-op.
	FreeAligned(buf []byte, alignment int)

	// CanFree reports whether FreeAligned actually releases memory.
	CanFree() bool
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*SafeArena)(nil)
	_ Allocator = (*HeapArena)(nil)
	_ Allocator = (*VirtualArena)(nil)
)

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	return alignUp(off, unsafe.Sizeof(uintptr(0)))
}

// alignUp rounds off up to the next multiple of align (a power of two).
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}

// normAlign validates a caller supplied alignment.
func normAlign(alignment int) uintptr {
	if alignment <= 0 {
		return unsafe.Sizeof(uintptr(0))
	}
	if alignment&(alignment-1) != 0 {
		panic("arena: alignment must be a power of two")
	}
	return uintptr(alignment)
}

// alignedOffset returns the offset into buf (starting from off) at which an
// allocation aligned to align can begin. Alignment is computed against the
// real address since Go only guarantees word alignment for byte slices.
func alignedOffset(buf []byte, off, align uintptr) uintptr {
	if len(buf) == 0 {
		return off
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return alignUp(base+off, align) - base
}
