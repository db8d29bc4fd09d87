// Package parallel provides the data-parallel execution primitive used by the
// reader's scanning, classification, and conversion passes.
//
// Each pass splits its index space into contiguous chunks and runs the chunks
// on an errgroup. ForEachChunk does not return until every chunk has finished,
// so a pass that consumes a previous pass's output always observes it fully
// realized; dependent passes never overlap.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachChunk partitions [0, n) into at most GOMAXPROCS contiguous chunks and
// invokes fn(start, end) for each chunk on its own goroutine.
//
// fn must only write to state disjoint between chunks (per-chunk accumulators,
// disjoint slice ranges). The first error returned by any chunk cancels the
// remaining chunks and is returned to the caller.
func ForEachChunk(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return fn(0, n)
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start := start // capture per-iteration value (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			return fn(start, end)
		})
	}

	return g.Wait()
}

// Chunks returns the chunk boundaries ForEachChunk would use for n items.
//
// Passes that need per-chunk accumulators (counts to prefix-sum, partial
// histograms to merge) size them from this before launching the parallel pass.
func Chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	bounds := make([][2]int, 0, workers)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}

	return bounds
}

// ForChunks runs fn(chunkIndex, start, end) for the exact chunk boundaries
// returned by Chunks(n). The chunk index lets callers stripe partial results
// into pre-sized per-chunk slots without synchronization.
func ForChunks(bounds [][2]int, fn func(idx, start, end int) error) error {
	if len(bounds) == 0 {
		return nil
	}
	if len(bounds) == 1 {
		return fn(0, bounds[0][0], bounds[0][1])
	}

	g, _ := errgroup.WithContext(context.Background())
	for i, b := range bounds {
		i, b := i, b // capture per-iteration values (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			return fn(i, b[0], b[1])
		})
	}

	return g.Wait()
}
