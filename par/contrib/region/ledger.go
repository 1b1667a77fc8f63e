// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package region

import (
	"fmt"
	"sync"
)

type span struct {
	lo, hi int
}

func (s span) empty() bool {
	return s.hi <= s.lo
}

func (s span) overlaps(o span) bool {
	return s.lo < o.hi && o.lo < s.hi
}

// Ledger records the live claims on one shared slice. Empty ranges are never
// recorded since they cannot alias anything.
type Ledger struct {
	mu     sync.Mutex
	live   map[uint64]span
	nextID uint64
	peak   int
	claims uint64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{live: make(map[uint64]span)}
}

// Live returns the number of live non-empty claims.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Peak returns the largest number of simultaneously live claims seen.
func (l *Ledger) Peak() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peak
}

// Claims returns the total number of non-empty claims ever registered.
func (l *Ledger) Claims() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.claims
}

func (l *Ledger) acquire(lo, hi int) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lockedAdd(span{lo, hi})
}

func (l *Ledger) release(id uint64) {
	if id == 0 {
		return
	}
	l.mu.Lock()
	delete(l.live, id)
	l.mu.Unlock()
}

// replace drops parent and registers children under one lock, so no other
// claim can slip in between.
func (l *Ledger) replace(parent uint64, children ...span) []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.live, parent)
	ids := make([]uint64, len(children))
	for i, c := range children {
		ids[i] = l.lockedAdd(c)
	}
	return ids
}

// lockedAdd registers s and returns its id, or 0 for an empty span (must hold
// lock).
func (l *Ledger) lockedAdd(s span) uint64 {
	if s.empty() {
		return 0
	}
	for _, o := range l.live {
		if s.overlaps(o) {
			panic(fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlap, s.lo, s.hi, o.lo, o.hi))
		}
	}
	l.nextID++
	l.live[l.nextID] = s
	l.claims++
	l.peak = max(l.peak, len(l.live))
	return l.nextID
}
