package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantContain []string
	}{
		{
			name:        "root defaults to run",
			args:        []string{"--arena", "heap"},
			wantContain: []string{"Arena: heap", "Worker 0:", "Elapsed:"},
		},
		{
			name:        "bump arena",
			args:        []string{"run", "--arena", "arena", "--bucket", "8"},
			wantContain: []string{"Arena: arena", "Bucket size: 8", "Worker 0:"},
		},
		{
			name:        "virtual arena",
			args:        []string{"run", "--arena", "virtual"},
			wantContain: []string{"Arena: virtual", "chunks=1"},
		},
		{
			name:        "safe arena with workers",
			args:        []string{"run", "--arena", "safe", "--workers", "3"},
			wantContain: []string{"Workers: 3", "Worker 0:", "Worker 2:"},
		},
		{
			name:        "verbose",
			args:        []string{"run", "-v", "--seed", "7"},
			wantContain: []string{"Seed: 7", "Churn: 0.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			out, err := executeArgs(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRunQuiet(t *testing.T) {
	resetGlobals(t)
	out, err := executeArgs(t, "run", "-q")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown arena", []string{"run", "--arena", "stack"}, `unknown arena kind "stack"`},
		{"no items", []string{"run", "--items", "0"}, "--items must be positive"},
		{"churn above one", []string{"run", "--churn", "1.5"}, "--churn must be between 0 and 1"},
		{"workers need safe arena", []string{"run", "--arena", "heap", "--workers", "2"}, "requires --arena safe"},
		{"validate check interval", []string{"validate", "--check-every", "0"}, "--check-every must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			_, err := executeArgs(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	for _, kind := range []string{"arena", "heap", "virtual", "safe"} {
		t.Run(kind, func(t *testing.T) {
			resetGlobals(t)
			out, err := executeArgs(t, "validate", "--arena", kind, "--bucket", "4", "--check-every", "50")
			require.NoError(t, err)
			assert.Contains(t, out, "Worker 0: ✓")
			assert.Contains(t, out, "Result: ✓ VALID")
		})
	}
}

func TestValidateConcurrentWorkers(t *testing.T) {
	resetGlobals(t)
	out, err := executeArgs(t, "validate", "--arena", "safe", "--workers", "4", "--seed", "11")
	require.NoError(t, err)
	for _, want := range []string{"Worker 0: ✓", "Worker 3: ✓", "Result: ✓ VALID"} {
		assert.Contains(t, out, want)
	}
}

func TestCheckAgainstModelCondenses(t *testing.T) {
	resetGlobals(t)
	opts.churn = 0

	alloc, err := newAllocator(opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, alloc.release()) }()

	// Appends and overwrites only, so every operation below churn+0.05
	// with a non-empty model is a Set.
	m, err := checkAgainstModel(alloc, opts, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumBuckets)
	assert.Equal(t, m.Length, m.Capacity)
	assert.Positive(t, m.Length)
}

func TestNewAllocatorReservesSafeArena(t *testing.T) {
	resetGlobals(t)
	opts.arenaKind = "safe"

	alloc, err := newAllocator(opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, alloc.release()) }()

	am := alloc.Metrics()
	assert.Zero(t, am.SizeInUse)
	assert.GreaterOrEqual(t, am.Capacity, opts.items*particleBytes)
	assert.Equal(t, 1, am.NumChunks)
}
