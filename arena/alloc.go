package arena

import "unsafe"

// MakeSlice allocates room for n elements of T from any Allocator, aligned
// for T. It returns the typed view together with the raw region, which is
// what must later be passed to FreeAligned. Both are nil if n <= 0, T is
// zero-sized or the allocator is out of memory.
//
// The garbage collector does not scan arena memory, so T must not contain
// Go pointers.
func MakeSlice[T any](a Allocator, n int) ([]T, []byte) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n <= 0 || elemSize == 0 {
		return nil, nil
	}
	raw := a.AllocAligned(elemSize*n, int(unsafe.Alignof(zero)))
	if raw == nil {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), n), raw
}
