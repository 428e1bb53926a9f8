package bktarray

import (
	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/bktarray/arena"
)

// Metrics contains statistical information about an Array.
type Metrics struct {
	Length       int     // Live elements
	Capacity     int     // Total slots across buckets
	NumBuckets   int     // Buckets in the chain
	EmptyBuckets int     // Buckets holding no elements
	BucketSize   int     // Default bucket capacity
	ItemSize     int     // Bytes per element
	Utilization  float64 // Length / Capacity (0.0-1.0)

	// Arena is the allocator's own snapshot, left zero when the
	// allocator does not implement arena.MetricsSource.
	Arena arena.ArenaMetrics
}

// Metrics returns a snapshot of the Array's bookkeeping.
func (a *Array[T]) Metrics() Metrics {
	m := Metrics{
		Length:     a.length,
		Capacity:   a.allocLength,
		NumBuckets: a.numBuckets,
		BucketSize: a.bucketSize,
		ItemSize:   int(a.itemSize),
	}
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		if a.bkt(h).length == 0 {
			m.EmptyBuckets++
		}
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.Length) / float64(m.Capacity)
	}
	if src, ok := a.alloc.(arena.MetricsSource); ok {
		m.Arena = src.Metrics()
	}
	return m
}

// Validate walks the bucket chain and checks the bookkeeping invariants:
// the counters match the chain, no bucket is over-full, the append
// candidate is in the chain and every bucket after it is empty.
func (a *Array[T]) Validate() error {
	var length, allocLength, numBuckets int
	seenLast := a.last == nilBucket
	for h := a.first; h != nilBucket; h = a.bkt(h).next {
		if numBuckets > len(a.slots) {
			return errors.New("bucket chain has a cycle")
		}
		b := a.bkt(h)
		if b == nil {
			return errors.Newf("bucket chain references released handle %d", h)
		}
		if b.length < 0 || b.length > len(b.items) {
			return errors.Newf("bucket %d holds %d items but has capacity %d", numBuckets, b.length, len(b.items))
		}
		if seenLast && h != a.last && b.length != 0 {
			return errors.Newf("bucket %d after the append candidate holds %d items", numBuckets, b.length)
		}
		if h == a.last {
			seenLast = true
		}
		length += b.length
		allocLength += len(b.items)
		numBuckets++
	}
	if !seenLast {
		return errors.Newf("append candidate %d is not in the bucket chain", a.last)
	}
	if (a.first == nilBucket) != (a.last == nilBucket) {
		return errors.Newf("first bucket %d and append candidate %d disagree about emptiness", a.first, a.last)
	}
	if length != a.length {
		return errors.Newf("length is %d but buckets hold %d items", a.length, length)
	}
	if allocLength != a.allocLength {
		return errors.Newf("capacity is %d but buckets provide %d slots", a.allocLength, allocLength)
	}
	if numBuckets != a.numBuckets {
		return errors.Newf("bucket count is %d but chain has %d buckets", a.numBuckets, numBuckets)
	}
	return nil
}
