// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/parkernels/par"
)

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Shutdown()

	n := 100
	results := make([]int, n)

	err := pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	if err != nil {
		t.Fatalf("ParallelFor() = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Shutdown()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	_ = pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Shutdown()

	var called bool
	_ = pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	_ = pool.Shutdown()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	err := pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	if err != nil {
		t.Fatalf("ParallelFor() on closed pool = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForPanic(t *testing.T) {
	pool := New(4)

	err := pool.ParallelFor(100, func(start, end int) {
		if start == 0 {
			panic("first chunk")
		}
	})
	if !errors.Is(err, par.ErrWorkerFailure) {
		t.Errorf("ParallelFor() = %v, want ErrWorkerFailure", err)
	}

	// The pool itself is unaffected.
	var count atomic.Int32
	if err := pool.ParallelFor(100, func(start, end int) { count.Add(int32(end - start)) }); err != nil {
		t.Errorf("ParallelFor() after a failed call = %v", err)
	}
	if count.Load() != 100 {
		t.Errorf("count = %d, want 100", count.Load())
	}
	if err := pool.Shutdown(); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use par.NumProcs
	defer pool.Shutdown()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelFor(n, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
