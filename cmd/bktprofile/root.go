package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/bktarray"
)

type options struct {
	arenaKind string
	items     int
	bucket    int
	workers   int
	churn     float64
	seed      uint64
	pprofAddr string
}

var (
	// Global flags
	opts    options
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "bktprofile",
	Short: "Profile bktarray containers on each arena kind",
	Long: `bktprofile fills bucketed arrays with a synthetic particle workload
of appends, middle inserts and removals, then condenses them and reports
container and arena metrics. Without a subcommand it behaves like "run".`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(opts)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&opts.arenaKind, "arena", "arena", "Arena kind: arena, heap, virtual or safe")
	rootCmd.PersistentFlags().IntVar(&opts.items, "items", 1_000_000, "Operations per worker")
	rootCmd.PersistentFlags().IntVar(&opts.bucket, "bucket", bktarray.DefaultBucketSize, "Bucket size")
	rootCmd.PersistentFlags().
		IntVar(&opts.workers, "workers", 1, "Containers filled concurrently (safe arena only)")
	rootCmd.PersistentFlags().
		Float64Var(&opts.churn, "churn", 0.1, "Fraction of operations that insert or remove in the middle")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 1, "Workload seed")
	rootCmd.PersistentFlags().
		StringVar(&opts.pprofAddr, "pprof", "", "Serve pprof on this address and keep running")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
