package main

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/bktarray"
	"github.com/pavanmanishd/bktarray/arena"
)

var validateEvery int

func init() {
	cmd := newValidateCmd()
	cmd.Flags().IntVar(&validateEvery, "check-every", 1000, "Operations between full checks")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check containers against a slice model",
		Long: `The validate command replays a seeded mix of appends, middle inserts,
removals and overwrites on a container and on a plain slice. Every
--check-every operations it runs the container's bookkeeping check and
compares the contents element by element. The container is condensed and
checked once more at the end.

Example:
  bktprofile validate
  bktprofile validate --arena virtual --items 200000 --bucket 64
  bktprofile validate --arena safe --workers 4 --check-every 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}
	return cmd
}

func runValidate(opts options) error {
	if err := checkOptions(opts); err != nil {
		return err
	}
	if validateEvery <= 0 {
		return errors.Newf("--check-every must be positive, got %d", validateEvery)
	}

	alloc, err := newAllocator(opts)
	if err != nil {
		return err
	}
	defer func() { _ = alloc.release() }()

	printVerbose("Validating on %s arena, %d operations per worker\n", opts.arenaKind, opts.items)

	results, err := fanOut(alloc, opts, checkAgainstModel)
	if err != nil {
		printInfo("Result: ✗ INVALID\n")
		return err
	}
	for w, m := range results {
		printInfo("Worker %d: ✓ %d elements in %d buckets\n", w, m.Length, m.NumBuckets)
	}
	printInfo("Result: ✓ VALID\n")
	return nil
}

// checkAgainstModel mirrors every operation on a slice and returns the
// metrics of the condensed container.
func checkAgainstModel(alloc arena.Allocator, opts options, seed uint64) (bktarray.Metrics, error) {
	rng := newRand(seed)
	list := bktarray.New[particle](alloc, opts.bucket)
	defer list.Free()
	var model []particle

	for i := range opts.items {
		p := particle{X: rng.Float32(), Age: uint32(i)}
		var err error
		switch r := rng.Float64(); {
		case r < opts.churn/2 && len(model) > 0:
			at := rng.IntN(len(model))
			if err = list.InsertValue(at, p); err == nil {
				model = slices.Insert(model, at, p)
			}
		case r < opts.churn && len(model) > 0:
			at := rng.IntN(len(model))
			list.RemoveAt(at)
			model = slices.Delete(model, at, at+1)
		case r < opts.churn+0.05 && len(model) > 0:
			at := rng.IntN(len(model))
			list.Set(at, p)
			model[at] = p
		default:
			if err = list.Push(p); err == nil {
				model = append(model, p)
			}
		}
		if err != nil {
			return bktarray.Metrics{}, errors.Wrapf(err, "operation %d", i)
		}
		if (i+1)%validateEvery == 0 {
			if err := compare(list, model); err != nil {
				return bktarray.Metrics{}, errors.Wrapf(err, "after operation %d", i)
			}
		}
	}

	list.DropEmptyBuckets()
	if err := list.Condense(); err != nil {
		return bktarray.Metrics{}, err
	}
	if err := compare(list, model); err != nil {
		return bktarray.Metrics{}, errors.Wrap(err, "after condense")
	}
	return list.Metrics(), nil
}

func compare(list *bktarray.Array[particle], model []particle) error {
	if err := list.Validate(); err != nil {
		return err
	}
	if list.Len() != len(model) {
		return errors.Newf("length is %d, model has %d", list.Len(), len(model))
	}
	for i, p := range list.All() {
		if *p != model[i] {
			return errors.Newf("element %d is %+v, model has %+v", i, *p, model[i])
		}
	}
	return nil
}
