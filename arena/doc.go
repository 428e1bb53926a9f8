// Package arena provides the memory sources used by the bktarray container.
//
// # Overview
//
// Every arena kind implements Allocator, a small interface for aligned,
// address-stable allocation:
//
//   - Arena: a chunked bump allocator. Fast, allocate-only; memory is
//     reclaimed with Reset or Release.
//   - SafeArena: a mutex-protected Arena for sharing between goroutines.
//   - HeapArena: one Go allocation per request, tracked so that regions can
//     be freed individually. The only kind whose CanFree reports true.
//   - VirtualArena: one region reserved from the operating system and bump
//     allocated. Allocate-only.
//
// Arena and HeapArena accept an optional byte limit; once it is reached,
// AllocAligned returns nil instead of growing. Containers treat that as an
// out-of-memory condition.
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default chunk size
//	defer a.Release()      // Clean up when done
//
//	buf := a.AllocAligned(256, 16)
//	items, raw := arena.MakeSlice[uint64](a, 32)
//	a.FreeAligned(raw, 8) // no-op for a bump allocator
//
// # Thread Safety
//
// Arena, HeapArena and VirtualArena are not thread-safe. For concurrent
// access, use SafeArena.
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists
//   - The garbage collector does not scan arena memory; store only
//     pointer-free values in it
//   - Memory is not zeroed; a Reset hands the same bytes out again
//   - FreeAligned must receive the exact region and alignment of the original
//     allocation
//
// # Metrics and Monitoring
//
// Each arena kind reports an ArenaMetrics snapshot:
//
//	metrics := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.SizeInUse)
package arena
