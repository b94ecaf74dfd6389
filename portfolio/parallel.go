package portfolio

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// foldChunk reduces a contiguous slice of holdings to an accumulator value,
// used both as the sequential path and as one goroutine's unit of work in
// maybeParallelFold.
type foldChunk[A any] func(holdings []Holding) A

// maybeParallelFold reduces holdings to a single accumulator, running
// sequentially below cfg's parallel threshold and in parallel (one
// errgroup goroutine per chunk, merged via combine) above it — the
// Go-native form of the teacher's rayon-backed maybe_parallel_fold, using
// golang.org/x/sync/errgroup in place of rayon since the engine's
// parallelism is a simple fixed fan-out/fan-in, not a work-stealing pool.
func maybeParallelFold[A any](holdings []Holding, cfg AnalyticsConfig, fold foldChunk[A], combine func(A, A) A) A {
	var zero A
	if len(holdings) == 0 {
		return zero
	}
	if len(holdings) <= cfg.threshold() {
		return fold(holdings)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(holdings) {
		workers = len(holdings)
	}
	chunkSize := (len(holdings) + workers - 1) / workers

	var bounds [][2]int
	for start := 0; start < len(holdings); start += chunkSize {
		end := start + chunkSize
		if end > len(holdings) {
			end = len(holdings)
		}
		bounds = append(bounds, [2]int{start, end})
	}

	partials := make([]A, len(bounds))
	var g errgroup.Group
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			partials[i] = fold(holdings[b[0]:b[1]])
			return nil
		})
	}
	_ = g.Wait() // fold never returns an error; every partial is populated

	acc := partials[0]
	for _, p := range partials[1:] {
		acc = combine(acc, p)
	}
	return acc
}
