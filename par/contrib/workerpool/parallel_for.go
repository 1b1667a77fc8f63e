// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "github.com/ajroetker/parkernels/par"

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each job processes a contiguous range of indices; the chunk size is
// ceil(n / NumWorkers). Blocks until all work completes and returns the first
// panic raised by fn as a *par.PanicError. A panic in fn does not abort the
// pool's other work.
//
// fn receives (start, end) indices where work should process [start, end).
// ParallelFor must not be called from inside a job of the same pool.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, or a closed pool, just run sequentially
	if workers == 1 || p.Closed() {
		return par.Guard(func() { fn(0, n) })
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	g := p.NewGroup()
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		err := g.Submit(func(Submitter) {
			fn(start, end)
		})
		if err == ErrClosed {
			// Shutdown raced with us; finish this chunk inline.
			if gerr := par.Guard(func() { fn(start, end) }); gerr != nil {
				g.Wait()
				return gerr
			}
			continue
		}
		if err != nil {
			// Aborted: an earlier chunk already failed.
			break
		}
	}

	return g.Wait()
}
