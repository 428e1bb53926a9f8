package bktarray

import "fmt"

// RemoveAt deletes the element at index, shifting the later elements of its
// bucket down by one. Relative order is always preserved. It panics if
// index is out of range.
func (a *Array[T]) RemoveAt(index int) {
	a.mustInit()
	if index < 0 || index >= a.length {
		panic(fmt.Sprintf("bktarray: RemoveAt index %d out of range [0, %d)", index, a.length))
	}

	// The last element lives in the append candidate whenever it is non-empty.
	if index == a.length-1 && a.last != nilBucket && a.bkt(a.last).length > 0 {
		lb := a.bkt(a.last)
		lb.length--
		a.length--
		if a.length == 0 {
			a.last = a.first
		} else if lb.length == 0 {
			a.last = a.predecessor(a.last)
		}
		return
	}

	prev := nilBucket
	base := 0
	for h := a.first; h != nilBucket; {
		b := a.bkt(h)
		i := index - base
		if i < b.length {
			copy(b.items[i:b.length-1], b.items[i+1:b.length])
			b.length--
			a.length--

			if b.next == a.last && a.bkt(a.last).length == 0 {
				a.last = h
			}
			if b.length == 0 {
				if a.last != h {
					a.unlink(prev, h)
					a.linkAfter(a.last, h)
				} else if prev != nilBucket {
					a.last = prev
				}
			}
			return
		}
		base += b.length
		prev = h
		h = b.next
	}
}

// Remove deletes the element p points at. It panics if p is not an element
// of a.
func (a *Array[T]) Remove(p *T) {
	index := a.IndexOf(p)
	if index >= a.length {
		panic("bktarray: Remove of a pointer that is not an element")
	}
	a.RemoveAt(index)
}

// Pop removes the last element and returns its value.
func (a *Array[T]) Pop() (T, bool) {
	var v T
	if a.length == 0 {
		return v, false
	}
	v = *a.Get(a.length - 1)
	a.RemoveAt(a.length - 1)
	return v, true
}
