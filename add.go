package bktarray

// Add appends one uninitialised slot and returns a pointer to it, or nil if
// a new bucket was needed and the arena could not provide one.
func (a *Array[T]) Add() *T {
	a.mustInit()
	h := a.last
	for h != nilBucket && a.bkt(h).full() {
		h = a.bkt(h).next
	}

	if h == nilBucket {
		h = a.newBucket(a.alloc, a.bucketSize)
		if h == nilBucket {
			return nil
		}
		if a.first == nilBucket {
			a.first = h
		} else {
			a.linkAfter(a.tail(), h)
		}
	}

	b := a.bkt(h)
	p := &b.items[b.length]
	b.length++
	a.length++
	a.settleLast(h)
	return p
}

// AddSomewhere adds one slot in the first bucket that has room, reusing
// holes left by earlier removals. The new slot is therefore not necessarily
// at the end of the sequence. Falls back to Add when nothing has room.
func (a *Array[T]) AddSomewhere() *T {
	a.mustInit()
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		b := a.bkt(h)
		if !b.full() {
			p := &b.items[b.length]
			b.length++
			a.length++
			if h == a.last {
				a.settleLast(h)
			}
			return p
		}
		// Buckets after the append candidate are empty; Add handles them.
		if h == a.last {
			break
		}
	}
	return a.Add()
}

// AddMulti appends n uninitialised slots that all live in the same bucket
// and returns them as one slice. Existing buckets without enough contiguous
// room are skipped, so some of their space may stay unused. It returns nil
// if n <= 0 or the arena is exhausted.
func (a *Array[T]) AddMulti(n int) []T {
	a.mustInit()
	if n <= 0 {
		return nil
	}

	skippedEmpty := false
	h := a.last
	for h != nilBucket && a.bkt(h).room() < n {
		skippedEmpty = skippedEmpty || a.bkt(h).length == 0
		h = a.bkt(h).next
	}

	if h == nilBucket {
		h = a.newBucket(a.alloc, max(a.bucketSize, n))
		if h == nilBucket {
			return nil
		}
		if a.first == nilBucket {
			a.first = h
		} else {
			a.linkAfter(a.last, h)
		}
	}

	b := a.bkt(h)
	run := b.items[b.length : b.length+n : b.length+n]
	b.length += n
	a.length += n

	// Empty buckets stranded before h are moved behind it where Add and
	// smaller AddMulti calls can still reach them.
	if skippedEmpty {
		prev := nilBucket
		for cur := a.first; cur != h; {
			next := a.bkt(cur).next
			if a.bkt(cur).length == 0 {
				a.unlink(prev, cur)
				a.linkAfter(h, cur)
			} else {
				prev = cur
			}
			cur = next
		}
	}

	a.settleLast(h)
	return run
}

// AddArray appends a copy of every element of src and returns the copies as
// one slice. src may be a itself. It returns nil if src is empty or the
// arena is exhausted.
func (a *Array[T]) AddArray(src *Array[T]) []T {
	a.mustInit()
	if src == nil || src.length == 0 {
		return nil
	}

	n := src.length // before AddMulti, src may be a
	run := a.AddMulti(n)
	if run == nil {
		return nil
	}
	if src.numBuckets == 1 {
		copy(run, src.bkt(src.first).items[:n])
		return run
	}
	i := 0
	for h := src.first; h != nilBucket && i < n; h = src.bkt(h).next {
		b := src.bkt(h)
		i += copy(run[i:], b.items[:min(n-i, b.length)])
	}
	return run
}
