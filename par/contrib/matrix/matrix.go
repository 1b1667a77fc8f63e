// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ajroetker/parkernels/par"
)

// Matrix is a dense n×n matrix stored row-major in one slice. The zero value
// is the empty 0×0 matrix. A Matrix is not modified after construction except
// through Fill, so it may be read from any number of goroutines.
type Matrix[T par.Numeric] struct {
	n    int
	data []T
}

// New returns an n×n matrix of zero values.
func New[T par.Numeric](n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrBadShape, n)
	}
	return newMatrix[T](n), nil
}

func newMatrix[T par.Numeric](n int) *Matrix[T] {
	return &Matrix[T]{n: n, data: make([]T, n*n)}
}

// FromRows copies nested rows into a new matrix. Every row must have
// len(rows) elements.
func FromRows[T par.Numeric](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	m := newMatrix[T](n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrNotSquare, i, len(row), n)
		}
		copy(m.data[i*n:], row)
	}
	return m, nil
}

// MustFromRows is like FromRows but panics on error. It is meant for
// literals in tests and examples.
func MustFromRows[T par.Numeric](rows [][]T) *Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Fill sets every element to fn(i, j), row by row, and returns m.
func (m *Matrix[T]) Fill(fn func(i, j int) T) *Matrix[T] {
	for i := range m.n {
		row := m.data[i*m.n : (i+1)*m.n]
		for j := range row {
			row[j] = fn(i, j)
		}
	}
	return m
}

// Dim returns the number of rows, which is also the number of columns.
func (m *Matrix[T]) Dim() int {
	return m.n
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	if uint(i) >= uint(m.n) || uint(j) >= uint(m.n) {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %d×%d", i, j, m.n, m.n))
	}
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	if uint(i) >= uint(m.n) {
		panic(fmt.Sprintf("matrix: row %d out of range for %d×%d", i, m.n, m.n))
	}
	return slices.Clone(m.data[i*m.n : (i+1)*m.n])
}

// Rows returns a copy of the matrix as nested rows.
func (m *Matrix[T]) Rows() [][]T {
	rows := make([][]T, m.n)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{n: m.n, data: slices.Clone(m.data)}
}

// Equal reports whether m and o have the same dimension and identical
// elements. Floating-point elements are compared with ==, so NaN never
// equals itself.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.n == o.n && slices.Equal(m.data, o.data)
}

// String formats m one row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := range m.n {
		fmt.Fprintln(&sb, m.data[i*m.n:(i+1)*m.n])
	}
	return sb.String()
}
