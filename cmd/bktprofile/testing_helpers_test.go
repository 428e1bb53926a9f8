package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetGlobals puts every flag variable back to a small, fast workload.
func resetGlobals(t *testing.T) {
	t.Helper()
	opts = options{
		arenaKind: "heap",
		items:     2000,
		bucket:    16,
		workers:   1,
		churn:     0.2,
		seed:      1,
	}
	verbose = false
	quiet = false
	validateEvery = 100
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// execute runs the root command with args and returns its stdout.
func executeArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.SetArgs(args)
	return captureOutput(t, rootCmd.Execute)
}
