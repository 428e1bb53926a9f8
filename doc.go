// Package bktarray implements a bucketed array: an ordered, growable
// sequence whose elements never move when the sequence grows.
//
// # Overview
//
// A growable slice reallocates and copies when it runs out of room, which
// invalidates every pointer into it. An Array instead keeps a linked chain
// of fixed-capacity buckets drawn from an arena.Allocator. Appending only
// ever writes into free slots or a brand-new bucket, so a pointer returned
// by Add, AddMulti, AddArray, Insert or Get stays valid for as long as its
// element stays in the Array.
//
// Insert and RemoveAt keep the sequence ordered by shifting elements inside
// a single bucket (Insert may also push one element into the following
// bucket or split the bucket). Pointers into the buckets those calls touch
// must be treated as invalidated. Condense copies everything into a single
// bucket and invalidates all pointers.
//
// # Basic Usage
//
//	a := arena.NewHeapArena(0)
//	list := bktarray.New[Particle](a, 256)
//	defer list.Free()
//
//	p := list.Add() // *Particle, stable until removed
//	*p = Particle{X: 1}
//
//	run := list.AddMulti(16) // 16 contiguous slots in one bucket
//	_ = list.InsertValue(0, Particle{})
//	list.RemoveAt(3)
//
//	for i, p := range list.All() {
//		_ = i
//		_ = p
//	}
//
// # Memory
//
// Buckets are requested from the arena with the element type's alignment.
// Bucket bookkeeping lives on the Go heap; only element storage is arena
// memory, which the garbage collector does not scan, so element types must
// be free of Go pointers (New panics otherwise).
//
// Buckets are returned to the arena by Free, Clear(true), Condense and
// DropEmptyBuckets, and only if the arena's CanFree reports true. Bump
// arenas simply abandon the memory until they are reset.
//
// When the arena cannot provide a bucket, the raw operations return nil and
// the value helpers (Push, AddValues, InsertValue, Clone, Condense) return
// an error wrapping ErrOutOfMemory. The Array is left as it was.
//
// # Performance Characteristics
//
//   - Add: O(1) amortized
//   - Get, IndexOf, Insert, RemoveAt: O(number of buckets) to find the
//     bucket, plus O(bucket size) shifting for Insert and RemoveAt
//   - Removing the last element: O(1)
//   - AddSomewhere: O(number of buckets), reuses holes left by removals
//
// An Array is not safe for concurrent use. Arrays used from different
// goroutines may share one arena.SafeArena.
package bktarray
