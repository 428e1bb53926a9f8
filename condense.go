package bktarray

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/bktarray/arena"
)

// CondenseInto copies every element, in order, into one new bucket of
// exactly Len() capacity allocated from into (nil means the current arena)
// and makes into the Array's arena from then on. With freeOld the previous
// buckets are handed back to the old arena if it can free.
//
// This is the one operation that moves every element: all pointers
// previously obtained from a are invalid afterwards. On failure a is left
// untouched and the returned error wraps ErrOutOfMemory.
func (a *Array[T]) CondenseInto(into arena.Allocator, freeOld bool) error {
	a.mustInit()
	if into == nil {
		into = a.alloc
	}

	nh := nilBucket
	if a.length > 0 {
		nh = a.newBucket(into, a.length)
		if nh == nilBucket {
			return errors.Wrapf(ErrOutOfMemory, "bktarray: condensing %d items", a.length)
		}
		nb := a.bkt(nh)
		for h := a.first; h != nilBucket; h = a.bkt(h).next {
			b := a.bkt(h)
			nb.length += copy(nb.items[nb.length:], b.items[:b.length])
		}
	}

	length := a.length
	a.releaseChain(a.alloc, freeOld)
	a.alloc = into
	a.first, a.last = nh, nh
	if nh != nilBucket {
		a.numBuckets = 1
		a.allocLength = length
	}
	return nil
}

// Condense is CondenseInto(nil, true).
func (a *Array[T]) Condense() error {
	return a.CondenseInto(nil, true)
}

// DropEmptyBuckets unlinks every empty bucket and frees it if the arena
// supports freeing. Element order and count are unchanged.
func (a *Array[T]) DropEmptyBuckets() {
	a.mustInit()
	prev := nilBucket
	for h := a.first; h != nilBucket; {
		b := a.bkt(h)
		next := b.next
		if b.length == 0 {
			a.unlink(prev, h)
			if a.last == h {
				a.last = next
			}
			a.numBuckets--
			a.allocLength -= len(b.items)
			a.releaseBucket(h, a.alloc, true)
		} else {
			prev = h
		}
		h = next
	}
	if a.last == nilBucket {
		a.last = prev
	}
}

// BucketIndexAt returns which bucket (by position in the chain) holds the
// element at index, and the element's offset inside that bucket. It panics
// if index is out of range.
func (a *Array[T]) BucketIndexAt(index int) (bucketIndex, inner int) {
	if index < 0 || index >= a.length {
		panic(fmt.Sprintf("bktarray: BucketIndexAt index %d out of range [0, %d)", index, a.length))
	}
	base := 0
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		b := a.bkt(h)
		if index < base+b.length {
			return bucketIndex, index - base
		}
		base += b.length
		bucketIndex++
	}
	return a.numBuckets, 0
}

// BucketIndexOf returns the bucket whose storage p points into and the slot
// offset inside it. The slot need not be live. If p is not inside any
// bucket it returns NumBuckets(), 0.
func (a *Array[T]) BucketIndexOf(p *T) (bucketIndex, inner int) {
	if p == nil {
		return a.numBuckets, 0
	}
	addr := uintptr(unsafe.Pointer(p))
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		if off, ok := a.offsetIn(a.bkt(h), addr); ok {
			return bucketIndex, int(off / a.itemSize)
		}
		bucketIndex++
	}
	return a.numBuckets, 0
}

// Bucket returns the live elements of the bucket at position bucketIndex in
// the chain; cap of the result is the bucket's capacity. It returns nil if
// bucketIndex is out of range.
func (a *Array[T]) Bucket(bucketIndex int) []T {
	if bucketIndex < 0 || bucketIndex >= a.numBuckets {
		return nil
	}
	h := a.first
	for range bucketIndex {
		h = a.bkt(h).next
	}
	b := a.bkt(h)
	return b.items[:b.length]
}
