package bktarray

import "slices"

// Sort orders the elements by cmp. Element addresses do not change; values
// move between slots. When every element sits in one bucket the sort runs
// in place, otherwise the values are gathered, sorted and written back.
func (a *Array[T]) Sort(cmp func(x, y T) int) {
	a.sortWith(func(s []T) { slices.SortFunc(s, cmp) })
}

// SortStable is like Sort but keeps equal elements in their original order.
func (a *Array[T]) SortStable(cmp func(x, y T) int) {
	a.sortWith(func(s []T) { slices.SortStableFunc(s, cmp) })
}

// IsSorted reports whether the elements are in cmp order.
func (a *Array[T]) IsSorted(cmp func(x, y T) int) bool {
	first := true
	var prev T
	for v := range a.Values() {
		if !first && cmp(prev, v) > 0 {
			return false
		}
		prev, first = v, false
	}
	return true
}

func (a *Array[T]) sortWith(sortFn func([]T)) {
	if a.length < 2 {
		return
	}
	if s := a.contiguous(); s != nil {
		sortFn(s)
		return
	}
	tmp := a.AppendTo(make([]T, 0, a.length))
	sortFn(tmp)
	i := 0
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		b := a.bkt(h)
		i += copy(b.items[:b.length], tmp[i:])
	}
}

// contiguous returns the live elements as one slice if they all share a
// bucket, or nil.
func (a *Array[T]) contiguous() []T {
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		b := a.bkt(h)
		if b.length == a.length {
			return b.items[:b.length]
		}
		if b.length > 0 {
			return nil
		}
	}
	return nil
}
