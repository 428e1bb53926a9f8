package bktarray

import "fmt"

// Insert opens an uninitialised slot at index and returns a pointer to it.
// Elements at or after index move up by one position. index == Len() is an
// Add. It returns nil, leaving a unchanged, if a new bucket is needed and
// the arena cannot provide one. It panics if index > Len().
//
// Insert shifts elements inside the target bucket and may move that
// bucket's last element into the following bucket or into a new bucket.
// Pointers into those buckets must be considered invalidated.
//
// Inserting repeatedly at the front of a long array is slow: the first
// bucket stays full, so every call splits it into a new bucket.
func (a *Array[T]) Insert(index int) *T {
	a.mustInit()
	if index < 0 || index > a.length {
		panic(fmt.Sprintf("bktarray: Insert index %d out of range [0, %d]", index, a.length))
	}
	if index == a.length {
		return a.Add()
	}

	prev := nilBucket
	h := a.first
	base := 0
	for index-base >= a.bkt(h).length {
		base += a.bkt(h).length
		prev = h
		h = a.bkt(h).next
	}
	b := a.bkt(h)
	at := index - base

	// Room in the target bucket.
	if !b.full() {
		copy(b.items[at+1:b.length+1], b.items[at:b.length])
		b.length++
		a.length++
		if a.last == h {
			a.settleLast(h)
		}
		return &b.items[at]
	}

	// Borrow one slot from the next bucket.
	if nh := b.next; nh != nilBucket && !a.bkt(nh).full() {
		nb := a.bkt(nh)
		copy(nb.items[1:nb.length+1], nb.items[:nb.length])
		nb.items[0] = b.items[b.length-1]
		nb.length++
		copy(b.items[at+1:b.length], b.items[at:b.length-1])
		a.length++
		if a.last == h || a.last == nh {
			a.settleLast(nh)
		}
		return &b.items[at]
	}

	// Split: the tail of b moves into a new bucket behind it, with the new
	// slot at the new bucket's front.
	moved := b.length - at
	nh := a.newBucket(a.alloc, max(1+moved, a.bucketSize))
	if nh == nilBucket {
		return nil
	}
	nb := a.bkt(nh)
	copy(nb.items[1:1+moved], b.items[at:b.length])
	nb.length = 1 + moved
	b.length = at
	a.linkAfter(h, nh)
	a.length++
	if a.last == h {
		a.last = nh
	}

	if b.length == 0 {
		// b is empty now; park it behind the append candidate for reuse.
		a.unlink(prev, h)
		a.linkAfter(a.last, h)
		if a.bkt(a.last).full() {
			a.last = h
		}
	} else if a.last == nh {
		a.settleLast(nh)
	}
	return &nb.items[0]
}
