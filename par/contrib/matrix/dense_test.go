// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/parkernels/par/contrib/gen"
)

func TestDenseRoundTrip(t *testing.T) {
	m := MustFromRows(gen.Rows[float64](gen.New(3), 6))
	d := ToDense(m)
	r, c := d.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, c)

	back, err := FromDense(d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	// ToDense copies.
	d.Set(0, 0, -1)
	require.NotEqual(t, -1.0, m.At(0, 0))
}

func TestFromDenseView(t *testing.T) {
	// A sub-matrix view has a stride larger than its width.
	d := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	view := d.Slice(1, 3, 1, 3).(*mat.Dense)
	m, err := FromDense(view)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {8, 9}}, m.Rows())

	m, err = FromDense(d.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, m.Rows())

	_, err = FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, ErrNotSquare)
}

func TestToDenseEmpty(t *testing.T) {
	m, _ := New[float64](0)
	d := ToDense(m)
	r, c := d.Dims()
	require.Zero(t, r)
	require.Zero(t, c)
}

// TestMultiplyMatchesGonum checks the transform against the element-wise
// product of A and the transpose of B computed by gonum.
func TestMultiplyMatchesGonum(t *testing.T) {
	g := gen.New(11)
	for _, n := range []int{1, 4, 31, 64} {
		a := MustFromRows(gen.Rows[float64](g, n))
		b := MustFromRows(gen.Rows[float64](g, n))

		var want mat.Dense
		want.MulElem(ToDense(a), ToDense(b).T())

		got, err := ParallelMultiplyWorkers(a, b, 4)
		require.NoError(t, err)
		if !mat.Equal(&want, ToDense(got)) {
			t.Errorf("n=%d: result differs from gonum MulElem(A, Bᵀ)", n)
		}
	}
}
