package main

import (
	"log"
	"net/http"
	_ "net/http/pprof" // registers pprof handlers
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the particle workload and report metrics",
		Long: `The run command fills one container per worker with appends, middle
inserts and removals, validates and condenses it, then prints container
and arena metrics. With --pprof the process keeps running afterwards so
heap and CPU profiles can be taken.

Example:
  bktprofile run --arena heap --items 1000000 --bucket 256
  bktprofile run --arena safe --workers 8
  bktprofile run --arena virtual --pprof localhost:6060`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	return cmd
}

func run(opts options) error {
	if err := checkOptions(opts); err != nil {
		return err
	}

	if opts.pprofAddr != "" {
		go func() {
			printInfo("Starting pprof server on http://%s/debug/pprof/\n", opts.pprofAddr)
			if err := http.ListenAndServe(opts.pprofAddr, nil); err != nil {
				log.Fatalf("pprof server failed: %v", err)
			}
		}()
		time.Sleep(100 * time.Millisecond)
	}

	alloc, err := newAllocator(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := alloc.release(); err != nil {
			log.Printf("release: %v", err)
		}
	}()

	printInfo("Starting bktarray workload...\n")
	printInfo(" - Arena: %s\n", opts.arenaKind)
	printInfo(" - Items per worker: %d\n", opts.items)
	printInfo(" - Bucket size: %d\n", opts.bucket)
	printInfo(" - Workers: %d\n", opts.workers)
	printVerbose(" - Churn: %g\n", opts.churn)
	printVerbose(" - Seed: %d\n", opts.seed)

	start := time.Now()
	results, err := fanOut(alloc, opts, workload)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for w, m := range results {
		printInfo("Worker %d: length=%d capacity=%d buckets=%d empty=%d utilization=%.1f%%\n",
			w, m.Length, m.Capacity, m.NumBuckets, m.EmptyBuckets, m.Utilization*100)
	}
	am := alloc.Metrics()
	printInfo("Arena: in use=%d bytes capacity=%d bytes chunks=%d allocs=%d frees=%d\n",
		am.SizeInUse, am.Capacity, am.NumChunks, am.Allocs, am.Frees)
	printInfo("Elapsed: %v\n", elapsed)

	if opts.pprofAddr != "" {
		printInfo("Workload finished; keeping alive for profiling. Press Ctrl+C to exit.\n")
		select {}
	}
	return nil
}
