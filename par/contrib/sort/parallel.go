// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package sort

import (
	"errors"

	"github.com/ajroetker/parkernels/par"
	"github.com/ajroetker/parkernels/par/contrib/region"
	"github.com/ajroetker/parkernels/par/contrib/workerpool"
)

// Option configures ParallelQuicksort.
type Option func(*config)

type config struct {
	workers   int
	threshold int
	pool      *workerpool.Pool
	ledger    *region.Ledger
}

// WithWorkers sets the size of the pool created for one sort. Values <= 0
// mean par.NumProcs(). Ignored when WithPool is given.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithThreshold sets the region length below which regions are sorted inline.
// Values <= 0 mean par.SortThreshold().
func WithThreshold(n int) Option {
	return func(c *config) { c.threshold = n }
}

// WithPool runs the sort on a caller-owned pool instead of creating one. The
// sort then waits on its own job group; the pool stays open.
func WithPool(p *workerpool.Pool) Option {
	return func(c *config) { c.pool = p }
}

// WithLedger records the sort's region claims in l.
func WithLedger(l *region.Ledger) Option {
	return func(c *config) { c.ledger = l }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.threshold <= 0 {
		c.threshold = par.SortThreshold()
	}
	if c.ledger == nil {
		c.ledger = region.NewLedger()
	}
	return c
}

// ParallelQuicksort sorts data in-place using a worker pool. It returns once
// data is fully sorted, or with a *par.PanicError if a job panicked, in which
// case the contents of data are unspecified.
//
// Inputs shorter than the threshold, and every input when PARK_NO_PARALLEL is
// set, are sorted by Quicksort on the calling goroutine.
func ParallelQuicksort[T par.Ordered](data []T, opts ...Option) error {
	k := kernel[T]{
		partition: Partition[T],
		sort:      Quicksort[T],
	}
	return k.run(data, newConfig(opts))
}

// ParallelQuicksortFunc is ParallelQuicksort with a three-way comparator.
// A panic raised by cmp on any goroutine is returned as a *par.PanicError.
func ParallelQuicksortFunc[T any](data []T, cmp func(a, b T) int, opts ...Option) error {
	k := kernel[T]{
		partition: func(d []T) int { return PartitionFunc(d, cmp) },
		sort:      func(d []T) { QuicksortFunc(d, cmp) },
	}
	return k.run(data, newConfig(opts))
}

// kernel bundles the per-type partition and sequential sort so the parallel
// driver is written once for both the ordered and the comparator forms.
type kernel[T any] struct {
	partition func([]T) int
	sort      func([]T)
	threshold int
}

func (k kernel[T]) run(data []T, c config) error {
	if len(data) <= 1 {
		return nil
	}
	if par.NoParallelEnv() || len(data) < c.threshold {
		return par.Guard(func() { k.sort(data) })
	}
	k.threshold = c.threshold

	root := region.Claim(c.ledger, data)

	if c.pool != nil {
		g := c.pool.NewGroup()
		err := par.Guard(func() { k.step(root, g.Submitter()) })
		if werr := g.Wait(); err == nil {
			err = werr
		}
		return err
	}

	pool := workerpool.New(c.workers)
	err := par.Guard(func() { k.step(root, pool.Submitter()) })
	if serr := pool.Shutdown(); err == nil {
		err = serr
	}
	return err
}

// step sorts region r: small regions inline, otherwise one partition pass
// followed by dispatch of both sides.
func (k kernel[T]) step(r *region.Region[T], s workerpool.Submitter) {
	if r.Len() < k.threshold {
		k.sort(r.Slice())
		r.Release()
		return
	}

	b := k.partition(r.Slice())
	left, right := r.Split(b, b+1)
	k.dispatch(left, s)
	k.dispatch(right, s)
}

// dispatch sorts a short region on the current goroutine and hands a long
// one to the pool. The caller does not wait for submitted regions.
func (k kernel[T]) dispatch(r *region.Region[T], s workerpool.Submitter) {
	switch {
	case r.Len() <= 1:
		r.Release()
	case r.Len() < k.threshold:
		k.sort(r.Slice())
		r.Release()
	default:
		err := s.Submit(func(s workerpool.Submitter) {
			k.step(r, s)
		})
		switch {
		case err == nil:
		case errors.Is(err, workerpool.ErrClosed):
			// A shared pool was shut down under us; finish here.
			k.step(r, s)
		default:
			// The group was aborted by another job; its fault is what the
			// join reports.
			r.Release()
		}
	}
}
