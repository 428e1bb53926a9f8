package arena

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Bytes the arena holds (high-water mark for HeapArena)
	NumChunks   int     // Chunks, reservations or live regions
	ChunkSize   int     // Default chunk size, 0 if the kind has none
	Utilization float64 // SizeInUse / Capacity (0.0-1.0)
	Allocs      int     // Successful allocations since creation or last Reset
	Frees       int     // Regions handed back (HeapArena only)
}

// MetricsSource is implemented by every arena kind. Containers use it to
// report on the arena behind them without knowing its concrete type.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

var (
	_ MetricsSource = (*Arena)(nil)
	_ MetricsSource = (*SafeArena)(nil)
	_ MetricsSource = (*HeapArena)(nil)
	_ MetricsSource = (*VirtualArena)(nil)
)

// withUtilization fills in Utilization from SizeInUse and Capacity.
func (m ArenaMetrics) withUtilization() ArenaMetrics {
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// Metrics returns a snapshot of arena statistics. A released arena reports
// zeroes apart from ChunkSize.
func (a *Arena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		NumChunks: len(a.chunks),
		ChunkSize: a.chunkSize,
		Allocs:    a.allocs,
	}
	for _, c := range a.chunks {
		m.SizeInUse += int(c.offset)
		m.Capacity += len(c.buf)
	}
	return m.withUtilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Metrics returns a snapshot of heap arena statistics. Capacity reports the
// high-water mark of live bytes and NumChunks the live regions.
func (h *HeapArena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse: h.inUse,
		Capacity:  h.peakInUse,
		NumChunks: len(h.live),
		Allocs:    h.allocs,
		Frees:     h.frees,
	}.withUtilization()
}

// Metrics returns a snapshot of the reservation's usage.
func (v *VirtualArena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		SizeInUse: int(v.offset),
		Capacity:  len(v.region),
		ChunkSize: len(v.region),
		Allocs:    v.allocs,
	}
	if v.region != nil {
		m.NumChunks = 1
	}
	return m.withUtilization()
}
