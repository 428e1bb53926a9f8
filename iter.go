package bktarray

import "iter"

// All yields every element's index and address in order. The Array must not
// be modified during iteration.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		i := 0
		for h := a.first; h != nilBucket; h = a.bkt(h).next {
			b := a.bkt(h)
			for j := range b.length {
				if !yield(i, &b.items[j]) {
					return
				}
				i++
			}
		}
	}
}

// Values yields every element by value in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := a.first; h != nilBucket; h = a.bkt(h).next {
			b := a.bkt(h)
			for _, v := range b.items[:b.length] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// AppendTo appends the elements in order to dst and returns the result.
func (a *Array[T]) AppendTo(dst []T) []T {
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		b := a.bkt(h)
		dst = append(dst, b.items[:b.length]...)
	}
	return dst
}
