package arena

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// VirtualArena bump allocates from one large region reserved up front from
// the operating system. Pages are only committed when first touched, so a
// generous reservation is cheap. The region never moves and is never
// reused until Release, which makes it a good home for long-lived,
// pointer-stable structures.
type VirtualArena struct {
	region []byte
	offset uintptr
	allocs int
}

// NewVirtualArena reserves size bytes of address space.
func NewVirtualArena(size int) (*VirtualArena, error) {
	if size <= 0 {
		return nil, errors.Newf("arena: invalid virtual reservation size %d", size)
	}
	region, err := reserve(size)
	if err != nil {
		return nil, errors.Wrapf(err, "arena: reserving %d bytes", size)
	}
	return &VirtualArena{region: region}, nil
}

// AllocAligned returns size bytes aligned to alignment, or nil once the
// reservation is exhausted.
func (v *VirtualArena) AllocAligned(size, alignment int) []byte {
	v.panicIfReleased()
	if size <= 0 {
		return nil
	}
	off := alignedOffset(v.region, v.offset, normAlign(alignment))
	end := off + uintptr(size)
	if end > uintptr(len(v.region)) {
		return nil
	}
	v.offset = end
	v.allocs++
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.region[off])), size)
}

// FreeAligned is a no-op.
func (v *VirtualArena) FreeAligned(buf []byte, alignment int) {
	v.panicIfReleased()
}

// CanFree reports false.
func (v *VirtualArena) CanFree() bool { return false }

// Reset makes the whole reservation available again.
func (v *VirtualArena) Reset() {
	v.panicIfReleased()
	v.offset = 0
	v.allocs = 0
}

// Release returns the reservation to the operating system. Every region
// handed out becomes invalid and further use panics.
func (v *VirtualArena) Release() error {
	if v.region == nil {
		return nil
	}
	region := v.region
	v.region = nil
	v.offset = 0
	if err := unreserve(region); err != nil {
		return errors.Wrap(err, "arena: releasing virtual reservation")
	}
	return nil
}

func (v *VirtualArena) panicIfReleased() {
	if v.region == nil {
		panic("arena: use after Release()")
	}
}
