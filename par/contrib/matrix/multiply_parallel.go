// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/parkernels/par"
	"github.com/ajroetker/parkernels/par/contrib/region"
	"github.com/ajroetker/parkernels/par/contrib/workerpool"
)

// ParallelMultiply computes the same result as Multiply, splitting the output
// rows into par.NumProcs() contiguous chunks with one goroutine each.
func ParallelMultiply[T par.Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return ParallelMultiplyWorkers(a, b, par.NumProcs())
}

// ParallelMultiplyWorkers is ParallelMultiply with an explicit fan-out width.
//
// Operands are validated before any goroutine starts. Every chunk holds
// ceil(n / workers) rows, the last possibly fewer; empty chunks are never
// started, so fewer than workers goroutines may run. A panic in any chunk is
// returned as a *par.PanicError once all chunks have finished and the partial
// result is discarded.
func ParallelMultiplyWorkers[T par.Numeric](a, b *Matrix[T], workers int) (*Matrix[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	n := a.n
	c := newMatrix[T](n)
	workers = min(max(workers, 1), max(n, 1))
	if n == 0 {
		return c, nil
	}
	if workers == 1 || par.NoParallelEnv() {
		transformRows(a, b, c.data, 0, n)
		return c, nil
	}

	rowsPerChunk := (n + workers - 1) / workers
	var g errgroup.Group
	for _, r := range region.Claim(nil, c.data).Chunks(rowsPerChunk * n) {
		g.Go(func() error {
			defer r.Release()
			lo, hi := r.Bounds()
			return par.Guard(func() {
				transformRows(a, b, r.Slice(), lo/n, hi/n)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// PooledMultiply computes the same result as Multiply on a caller-owned pool.
// Rows are chunked by the pool's ParallelFor instead of starting goroutines
// per call; the pool stays open afterwards. It must not be called from inside
// a job of the same pool.
func PooledMultiply[T par.Numeric](pool *workerpool.Pool, a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	n := a.n
	c := newMatrix[T](n)
	ledger := region.NewLedger()
	err := pool.ParallelFor(n, func(start, end int) {
		r := region.ClaimRange(ledger, c.data, start*n, end*n)
		defer r.Release()
		transformRows(a, b, r.Slice(), start, end)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
