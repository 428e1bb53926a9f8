package bktarray

import (
	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/bktarray/arena"
)

// Push appends v.
func (a *Array[T]) Push(v T) error {
	p := a.Add()
	if p == nil {
		return errors.Wrapf(ErrOutOfMemory, "bktarray: push at length %d", a.length)
	}
	*p = v
	return nil
}

// PushSomewhere stores v in the first free slot; see AddSomewhere.
func (a *Array[T]) PushSomewhere(v T) error {
	p := a.AddSomewhere()
	if p == nil {
		return errors.Wrapf(ErrOutOfMemory, "bktarray: push at length %d", a.length)
	}
	*p = v
	return nil
}

// AddValues appends all of vs as one contiguous run.
func (a *Array[T]) AddValues(vs []T) error {
	if len(vs) == 0 {
		return nil
	}
	run := a.AddMulti(len(vs))
	if run == nil {
		return errors.Wrapf(ErrOutOfMemory, "bktarray: adding %d values", len(vs))
	}
	copy(run, vs)
	return nil
}

// InsertValue inserts v at index.
func (a *Array[T]) InsertValue(index int, v T) error {
	p := a.Insert(index)
	if p == nil {
		return errors.Wrapf(ErrOutOfMemory, "bktarray: insert at %d", index)
	}
	*p = v
	return nil
}

// Set overwrites the element at index. It panics if index is out of range.
func (a *Array[T]) Set(index int, v T) {
	*a.Get(index) = v
}

// Clone returns a new Array on alloc holding a copy of a's elements in a
// single bucket (when a is non-empty). The bucket size is inherited.
func (a *Array[T]) Clone(alloc arena.Allocator) (*Array[T], error) {
	a.mustInit()
	dst := New[T](alloc, a.bucketSize, WithInitialCount(a.length))
	if a.length > 0 && dst.AddArray(a) == nil {
		dst.Free()
		return nil, errors.Wrapf(ErrOutOfMemory, "bktarray: cloning %d items", a.length)
	}
	return dst, nil
}
