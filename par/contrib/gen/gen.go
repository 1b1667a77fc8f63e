// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package gen produces reproducible inputs for the kernels' tests, benchmarks
// and the parkern command.
package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/ajroetker/parkernels/par"
)

// Generator is a seeded source of random elements. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator whose output depends only on seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Slice returns n random elements. Integers span their whole range, floats
// lie in [0, 1), complex values have both parts in [0, 1).
func Slice[T par.Numeric](g *Generator, n int) []T {
	return lo.Times(n, func(int) T { return Value[T](g) })
}

// Rows returns an n×n matrix of random elements as nested rows.
func Rows[T par.Numeric](g *Generator, n int) [][]T {
	return lo.Times(n, func(int) []T { return Slice[T](g, n) })
}

// Constant returns n copies of v.
func Constant[T any](n int, v T) []T {
	return lo.Times(n, func(int) T { return v })
}

// Ascending returns 0, 1, ..., n-1.
func Ascending[T par.Real](n int) []T {
	return lo.Times(n, func(i int) T { return T(i) })
}

// Descending returns n-1, ..., 1, 0.
func Descending[T par.Real](n int) []T {
	return lo.Times(n, func(i int) T { return T(n - 1 - i) })
}

// Value returns one random element of type T.
func Value[T par.Numeric](g *Generator) T {
	var zero T
	r := g.rng
	switch any(zero).(type) {
	case int:
		return any(int(r.Uint64())).(T)
	case int8:
		return any(int8(r.Uint32())).(T)
	case int16:
		return any(int16(r.Uint32())).(T)
	case int32:
		return any(int32(r.Uint32())).(T)
	case int64:
		return any(int64(r.Uint64())).(T)
	case uint:
		return any(uint(r.Uint64())).(T)
	case uint8:
		return any(uint8(r.Uint32())).(T)
	case uint16:
		return any(uint16(r.Uint32())).(T)
	case uint32:
		return any(r.Uint32()).(T)
	case uint64:
		return any(r.Uint64()).(T)
	case uintptr:
		return any(uintptr(r.Uint64())).(T)
	case float32:
		return any(r.Float32()).(T)
	case float64:
		return any(r.Float64()).(T)
	case complex64:
		return any(complex(r.Float32(), r.Float32())).(T)
	case complex128:
		return any(complex(r.Float64(), r.Float64())).(T)
	}
	panic(fmt.Sprintf("gen: unsupported element type %T", zero))
}
