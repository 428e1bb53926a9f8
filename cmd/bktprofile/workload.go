package main

import (
	"math/rand/v2"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/bktarray"
	"github.com/pavanmanishd/bktarray/arena"
)

type particle struct {
	X, Y, Z    float32
	VX, VY, VZ float32
	Age        uint32
	Flags      uint32
}

const particleBytes = 32

// allocator pairs the selected arena with its metrics and release hook.
type allocator struct {
	arena.Allocator
	arena.MetricsSource
	release func() error
}

func newAllocator(opts options) (*allocator, error) {
	itemBytes := opts.items * opts.workers * particleBytes
	switch opts.arenaKind {
	case "arena":
		a := arena.NewArena(0)
		return &allocator{a, a, func() error { a.Release(); return nil }}, nil
	case "heap":
		h := arena.NewHeapArena(0)
		return &allocator{h, h, func() error { h.Release(); return nil }}, nil
	case "virtual":
		// Leave room for bucket splits and condensing.
		v, err := arena.NewVirtualArena(3*itemBytes + 1<<20)
		if err != nil {
			return nil, err
		}
		return &allocator{v, v, v.Release}, nil
	case "safe":
		s := arena.NewSafeArena(0)
		if !s.EnsureCapacity(itemBytes) {
			return nil, errors.Newf("cannot reserve %d bytes up front", itemBytes)
		}
		return &allocator{s, s, func() error { s.Release(); return nil }}, nil
	default:
		return nil, errors.Newf("unknown arena kind %q", opts.arenaKind)
	}
}

func checkOptions(opts options) error {
	if opts.items <= 0 {
		return errors.Newf("--items must be positive, got %d", opts.items)
	}
	if opts.churn < 0 || opts.churn > 1 {
		return errors.Newf("--churn must be between 0 and 1, got %g", opts.churn)
	}
	if opts.workers < 1 || (opts.workers > 1 && opts.arenaKind != "safe") {
		return errors.New("--workers > 1 requires --arena safe")
	}
	return nil
}

// fanOut runs fn once per worker on the shared allocator and returns the
// per-worker metrics, or the first worker error.
func fanOut(
	alloc arena.Allocator,
	opts options,
	fn func(alloc arena.Allocator, opts options, seed uint64) (bktarray.Metrics, error),
) ([]bktarray.Metrics, error) {
	results := make([]bktarray.Metrics, opts.workers)
	errs := make([]error, opts.workers)
	var wg sync.WaitGroup
	for w := range opts.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[w], errs[w] = fn(alloc, opts, opts.seed+uint64(w))
		}()
	}
	wg.Wait()

	for w, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "worker %d", w)
		}
	}
	return results, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// workload fills one container with a mix of appends, middle inserts and
// removals, validates it, then condenses it.
func workload(alloc arena.Allocator, opts options, seed uint64) (bktarray.Metrics, error) {
	rng := newRand(seed)
	list := bktarray.New[particle](alloc, opts.bucket)

	for i := range opts.items {
		p := particle{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32(), Age: uint32(i)}
		var err error
		switch r := rng.Float64(); {
		case r < opts.churn/2 && list.Len() > 0:
			err = list.InsertValue(rng.IntN(list.Len()), p)
		case r < opts.churn && list.Len() > 0:
			list.RemoveAt(rng.IntN(list.Len()))
		case r < opts.churn+0.05:
			err = list.PushSomewhere(p)
		default:
			err = list.Push(p)
		}
		if err != nil {
			return bktarray.Metrics{}, errors.Wrapf(err, "operation %d", i)
		}
	}

	if err := list.Validate(); err != nil {
		return bktarray.Metrics{}, errors.Wrap(err, "after workload")
	}
	m := list.Metrics()
	list.DropEmptyBuckets()
	if err := list.Condense(); err != nil {
		return bktarray.Metrics{}, err
	}
	if err := list.Validate(); err != nil {
		return bktarray.Metrics{}, errors.Wrap(err, "after condense")
	}
	return m, nil
}
