// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package region hands out disjoint index ranges of one shared slice to
// concurrently running goroutines.
//
// A Region is a handle to the exclusive range [lo, hi) of a slice. Splitting a
// region retires it and yields child regions that cover disjoint sub-ranges;
// a retired region can no longer produce a slice. Every live region is
// registered with a Ledger, which panics if a new claim would overlap an
// existing one. Together these make "two workers never address the same
// element" a checked property instead of an assumption.
//
// Usage:
//
//	ledger := region.NewLedger()
//	root := region.Claim(ledger, data)
//	left, right := root.Split(mid, mid+1)
//	go work(left.Slice())
//	go work(right.Slice())
package region

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrOverlap is raised (as a panic) when a claim overlaps a live claim.
	ErrOverlap = errors.New("region: overlapping claim")

	// ErrRetired is raised (as a panic) when a split or released region is used.
	ErrRetired = errors.New("region: use of retired region")

	// ErrBounds is raised (as a panic) when split points fall outside a region.
	ErrBounds = errors.New("region: split out of bounds")
)

const (
	stateLive int32 = iota
	stateRetired
)

// Region is an exclusive handle to data[lo:hi] of a shared slice. A Region
// must be used by one goroutine at a time; ownership moves between goroutines
// through whatever synchronizes the hand-off (a channel send, a pool queue).
type Region[T any] struct {
	base   []T
	lo, hi int
	id     uint64
	ledger *Ledger
	state  atomic.Int32
}

// Claim registers the whole of data as a root region in l. A nil ledger gets
// a private one, which still enforces disjointness among the region's own
// descendants.
func Claim[T any](l *Ledger, data []T) *Region[T] {
	if l == nil {
		l = NewLedger()
	}
	r := &Region[T]{base: data, lo: 0, hi: len(data), ledger: l}
	r.id = l.acquire(r.lo, r.hi)
	return r
}

// ClaimRange registers data[lo:hi] as a region in l. Offsets stay relative
// to data, so claims on different ranges of one slice are checked against
// each other. A nil ledger gets a private one.
func ClaimRange[T any](l *Ledger, data []T, lo, hi int) *Region[T] {
	if lo < 0 || lo > hi || hi > len(data) {
		panic(fmt.Errorf("%w: claim [%d,%d) of length %d", ErrBounds, lo, hi, len(data)))
	}
	if l == nil {
		l = NewLedger()
	}
	r := &Region[T]{base: data, lo: lo, hi: hi, ledger: l}
	r.id = l.acquire(r.lo, r.hi)
	return r
}

// Bounds returns the region's range in indices of the shared slice.
func (r *Region[T]) Bounds() (lo, hi int) {
	return r.lo, r.hi
}

// Len returns hi - lo.
func (r *Region[T]) Len() int {
	return r.hi - r.lo
}

// Live reports whether the region has not been split or released.
func (r *Region[T]) Live() bool {
	return r.state.Load() == stateLive
}

// Slice returns the region's view of the shared slice. Its capacity is capped
// at the region's end so an append cannot spill into a neighbour.
func (r *Region[T]) Slice() []T {
	if !r.Live() {
		panic(fmt.Errorf("%w: [%d,%d)", ErrRetired, r.lo, r.hi))
	}
	return r.base[r.lo:r.hi:r.hi]
}

// Split retires r and returns the child regions [lo, lo+left) and
// [lo+right, hi). The indices are relative to the region. Elements in
// [lo+left, lo+right) belong to neither child.
func (r *Region[T]) Split(left, right int) (*Region[T], *Region[T]) {
	if left < 0 || left > right || right > r.Len() {
		panic(fmt.Errorf("%w: split(%d, %d) of length %d", ErrBounds, left, right, r.Len()))
	}
	r.retire()

	a := &Region[T]{base: r.base, lo: r.lo, hi: r.lo + left, ledger: r.ledger}
	b := &Region[T]{base: r.base, lo: r.lo + right, hi: r.hi, ledger: r.ledger}
	ids := r.ledger.replace(r.id, span{a.lo, a.hi}, span{b.lo, b.hi})
	a.id, b.id = ids[0], ids[1]
	return a, b
}

// Chunks retires r and returns contiguous child regions of length size that
// together cover r; the last one may be shorter. An empty region yields no
// chunks.
func (r *Region[T]) Chunks(size int) []*Region[T] {
	if size <= 0 {
		panic(fmt.Errorf("%w: chunk size %d", ErrBounds, size))
	}
	r.retire()

	n := r.Len()
	spans := make([]span, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		spans = append(spans, span{r.lo + start, r.lo + min(start+size, n)})
	}
	ids := r.ledger.replace(r.id, spans...)

	out := make([]*Region[T], len(spans))
	for i, s := range spans {
		out[i] = &Region[T]{base: r.base, lo: s.lo, hi: s.hi, id: ids[i], ledger: r.ledger}
	}
	return out
}

// Release ends the claim. Releasing a split or already released region is a
// no-op.
func (r *Region[T]) Release() {
	if r.state.CompareAndSwap(stateLive, stateRetired) {
		r.ledger.release(r.id)
	}
}

func (r *Region[T]) retire() {
	if !r.state.CompareAndSwap(stateLive, stateRetired) {
		panic(fmt.Errorf("%w: [%d,%d)", ErrRetired, r.lo, r.hi))
	}
}
