// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense copies a square gonum matrix.
func FromDense(src mat.Matrix) (*Matrix[float64], error) {
	r, c := src.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, r, c)
	}
	m := newMatrix[float64](r)
	if d, ok := src.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := range r {
			copy(m.data[i*r:(i+1)*r], raw.Data[i*raw.Stride:])
		}
		return m, nil
	}
	return m.Fill(src.At), nil
}

// ToDense copies m into a new gonum dense matrix. The empty matrix maps to a
// zero-sized *mat.Dense, which gonum cannot construct with NewDense.
func ToDense(m *Matrix[float64]) *mat.Dense {
	if m.n == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(m.n, m.n, m.Clone().data)
}
