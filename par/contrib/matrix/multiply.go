// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"

	"github.com/ajroetker/parkernels/par"
)

// checkOperands validates a pair of operands before any work is scheduled.
func checkOperands[T par.Numeric](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.n != b.n {
		return fmt.Errorf("%w: %d×%d and %d×%d", ErrDimensionMismatch, a.n, a.n, b.n, b.n)
	}
	return nil
}

// transformRows writes output rows [r0, r1) into dst, which holds exactly
// those rows.
func transformRows[T par.Numeric](a, b *Matrix[T], dst []T, r0, r1 int) {
	n := a.n
	for j := r0; j < r1; j++ {
		arow := a.data[j*n : (j+1)*n]
		crow := dst[(j-r0)*n : (j-r0+1)*n]
		for i := range crow {
			crow[i] = arow[i] * b.data[i*n+j]
		}
	}
}

// Multiply computes C[j][i] = A[j][i] * B[i][j] on the calling goroutine.
// It is the reference for the parallel variants.
func Multiply[T par.Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	c := newMatrix[T](a.n)
	transformRows(a, b, c.data, 0, a.n)
	return c, nil
}
