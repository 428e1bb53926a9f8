package bktarray

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/bktarray/arena"
)

// DefaultBucketSize is the bucket capacity used when New is given a size <= 0.
const DefaultBucketSize = 64

// nilBucket is the zero handle. Real handles are slot index + 1 so that the
// zero Array has no buckets.
const nilBucket = 0

// bucket is a fixed-capacity run of elements. The record lives on the Go
// heap; items points into arena memory and never moves.
type bucket[T any] struct {
	next   int
	length int
	items  []T    // len(items) is the bucket's capacity
	mem    []byte // region to hand back to the arena
}

func (b *bucket[T]) full() bool { return b.length >= len(b.items) }
func (b *bucket[T]) room() int  { return len(b.items) - b.length }

// Array is an ordered sequence stored in a chain of buckets.
//
// Appending never moves existing elements, so a pointer returned by Add,
// AddMulti, AddArray or Insert (or obtained through Get) stays valid while
// its element remains in the Array. Insert and RemoveAt shift elements
// inside the affected bucket, and Insert may move the last element of a
// full bucket into the next bucket; pointers into the buckets touched by
// those calls must be treated as invalidated. Condense moves everything.
//
// T must be a non-zero-sized type without Go pointers, because element
// storage is arena memory that the garbage collector does not scan.
//
// An Array is not safe for concurrent use.
type Array[T any] struct {
	alloc      arena.Allocator
	itemSize   uintptr
	itemAlign  uintptr
	bucketSize int

	length      int
	allocLength int
	numBuckets  int

	first int
	last  int // append candidate, not necessarily the tail

	slots     []*bucket[T]
	freeSlots []int
}

// Option configures an Array at construction time.
type Option func(*config)

type config struct {
	initialCount int
}

// WithInitialCount pre-allocates one bucket large enough for n elements.
// If the arena cannot provide it the Array simply starts empty.
func WithInitialCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialCount = n
		}
	}
}

// New creates an Array drawing bucket memory from alloc. Buckets hold
// bucketSize elements unless a larger bulk request needs more.
func New[T any](alloc arena.Allocator, bucketSize int, opts ...Option) *Array[T] {
	if alloc == nil {
		panic("bktarray: nil allocator")
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("bktarray: zero-sized element type")
	}
	if t := reflect.TypeFor[T](); hasPointers(t) {
		panic(fmt.Sprintf("bktarray: element type %s contains pointers", t))
	}
	if bucketSize <= 0 {
		bucketSize = DefaultBucketSize
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a := &Array[T]{
		alloc:      alloc,
		itemSize:   unsafe.Sizeof(zero),
		itemAlign:  unsafe.Alignof(zero),
		bucketSize: bucketSize,
	}
	if cfg.initialCount > 0 {
		if h := a.newBucket(alloc, max(bucketSize, cfg.initialCount)); h != nilBucket {
			a.first, a.last = h, h
		}
	}
	return a
}

// IsInit reports whether the Array was created by New and not yet freed.
func (a *Array[T]) IsInit() bool { return a.alloc != nil }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the total capacity of all buckets.
func (a *Array[T]) Cap() int { return a.allocLength }

// NumBuckets returns the number of buckets in the chain.
func (a *Array[T]) NumBuckets() int { return a.numBuckets }

// BucketSize returns the default bucket capacity.
func (a *Array[T]) BucketSize() int { return a.bucketSize }

// Allocator returns the arena new buckets are drawn from.
func (a *Array[T]) Allocator() arena.Allocator { return a.alloc }

// Get returns a pointer to the element at index. It panics if index is out
// of range.
func (a *Array[T]) Get(index int) *T {
	p, ok := a.TryGet(index)
	if !ok {
		panic(fmt.Sprintf("bktarray: Get index %d out of range [0, %d)", index, a.length))
	}
	return p
}

// TryGet is like Get but reports false instead of panicking.
func (a *Array[T]) TryGet(index int) (*T, bool) {
	if index < 0 || index >= a.length {
		return nil, false
	}
	base := 0
	for h := a.first; h != nilBucket; {
		b := a.bkt(h)
		if index-base < b.length {
			return &b.items[index-base], true
		}
		base += b.length
		h = b.next
	}
	return nil, false
}

// IndexOf returns the index of the element p points at, or Len() if p is
// nil or does not point at a live element of a.
func (a *Array[T]) IndexOf(p *T) int {
	if p == nil {
		return a.length
	}
	addr := uintptr(unsafe.Pointer(p))
	base := 0
	for h := a.first; h != nilBucket; {
		b := a.bkt(h)
		if off, ok := a.offsetIn(b, addr); ok {
			if off%a.itemSize != 0 || int(off/a.itemSize) >= b.length {
				return a.length
			}
			return base + int(off/a.itemSize)
		}
		base += b.length
		h = b.next
	}
	return a.length
}

// Contains reports whether p points at an element of a.
func (a *Array[T]) Contains(p *T) bool {
	return a.IndexOf(p) < a.length
}

// offsetIn reports the byte offset of addr inside b's storage.
func (a *Array[T]) offsetIn(b *bucket[T], addr uintptr) (uintptr, bool) {
	start := uintptr(unsafe.Pointer(unsafe.SliceData(b.items)))
	if addr < start || addr >= start+uintptr(len(b.items))*a.itemSize {
		return 0, false
	}
	return addr - start, true
}

// Clear removes every element. With deallocate the buckets are handed back
// to the arena as well; otherwise they are kept for reuse.
func (a *Array[T]) Clear(deallocate bool) {
	a.mustInit()
	a.length = 0
	if deallocate {
		a.releaseChain(a.alloc, true)
		return
	}
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		a.bkt(h).length = 0
	}
	a.last = a.first
}

// Free releases every bucket and returns a to its zero, uninitialised state.
// Pointers previously obtained from a become invalid.
func (a *Array[T]) Free() {
	if a.alloc != nil {
		a.releaseChain(a.alloc, true)
	}
	*a = Array[T]{}
}

func (a *Array[T]) releaseChain(alloc arena.Allocator, free bool) {
	for h := a.first; h != nilBucket; {
		next := a.bkt(h).next
		a.releaseBucket(h, alloc, free)
		h = next
	}
	a.first, a.last = nilBucket, nilBucket
	a.numBuckets = 0
	a.allocLength = 0
}

func (a *Array[T]) bkt(h int) *bucket[T] { return a.slots[h-1] }

// newBucket allocates an unlinked bucket of the given capacity from alloc
// and accounts for it. It returns nilBucket when the arena is exhausted.
func (a *Array[T]) newBucket(alloc arena.Allocator, capacity int) int {
	items, mem := arena.MakeSlice[T](alloc, capacity)
	if items == nil {
		return nilBucket
	}
	b := &bucket[T]{next: nilBucket, items: items, mem: mem}

	var h int
	if n := len(a.freeSlots); n > 0 {
		h = a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
		a.slots[h-1] = b
	} else {
		a.slots = append(a.slots, b)
		h = len(a.slots)
	}
	a.numBuckets++
	a.allocLength += capacity
	return h
}

// releaseBucket drops the record for h and, when free is set and the arena
// supports it, returns its storage. Counters are left to the caller.
func (a *Array[T]) releaseBucket(h int, alloc arena.Allocator, free bool) {
	b := a.bkt(h)
	if free && alloc.CanFree() {
		alloc.FreeAligned(b.mem, int(a.itemAlign))
	}
	a.slots[h-1] = nil
	a.freeSlots = append(a.freeSlots, h)
}

// settleLast makes h the append candidate, or its successor if h is full.
func (a *Array[T]) settleLast(h int) {
	b := a.bkt(h)
	if b.full() && b.next != nilBucket {
		a.last = b.next
		return
	}
	a.last = h
}

// predecessor returns the bucket linked before h, or nilBucket.
func (a *Array[T]) predecessor(h int) int {
	for p := a.first; p != nilBucket; p = a.bkt(p).next {
		if a.bkt(p).next == h {
			return p
		}
	}
	return nilBucket
}

// tail returns the final bucket of the chain.
func (a *Array[T]) tail() int {
	h := a.last
	if h == nilBucket {
		h = a.first
	}
	for h != nilBucket && a.bkt(h).next != nilBucket {
		h = a.bkt(h).next
	}
	return h
}

// unlink removes h from the chain; prev is its predecessor or nilBucket.
func (a *Array[T]) unlink(prev, h int) {
	next := a.bkt(h).next
	if prev != nilBucket {
		a.bkt(prev).next = next
	} else {
		a.first = next
	}
	a.bkt(h).next = nilBucket
}

// linkAfter splices h into the chain directly after at.
func (a *Array[T]) linkAfter(at, h int) {
	a.bkt(h).next = a.bkt(at).next
	a.bkt(at).next = h
}

func (a *Array[T]) mustInit() {
	if a.alloc == nil {
		panic("bktarray: use of uninitialised Array")
	}
}

// hasPointers reports whether values of t hold anything the garbage
// collector would need to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
