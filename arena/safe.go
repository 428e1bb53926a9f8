package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// NewSafeArenaWithLimit is the thread-safe counterpart of NewArenaWithLimit.
func NewSafeArenaWithLimit(chunkSize, limit int) *SafeArena {
	return &SafeArena{a: NewArenaWithLimit(chunkSize, limit)}
}

// AllocAligned thread-safely allocates size bytes aligned to alignment.
// Several containers may share one SafeArena from different goroutines.
func (s *SafeArena) AllocAligned(size, alignment int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(size, alignment)
}

// FreeAligned is a no-op, as for Arena.
func (s *SafeArena) FreeAligned(buf []byte, alignment int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.FreeAligned(buf, alignment)
}

// CanFree reports false.
func (s *SafeArena) CanFree() bool { return false }

// EnsureCapacity is the thread-safe form of Arena.EnsureCapacity.
func (s *SafeArena) EnsureCapacity(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
