// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Returned errors may wrap these
// sentinels with context; match them with errors.Is.
var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNotSquare signals input rows that do not form a square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands of different dimensions.
	// It is returned before any goroutine is started.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
