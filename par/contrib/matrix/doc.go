// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matrix provides a dense square matrix type and a row-parallel
// transform over pairs of matrices.
//
// The transform computes
//
//	C[j][i] = A[j][i] * B[i][j]
//
// for every i, j: each element of A is multiplied by the element of B at the
// transposed position. It is the element-wise product of A and the transpose
// of B, not a linear-algebra matrix product; there is no summation.
//
// Example usage:
//
//	a := matrix.MustFromRows([][]int64{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows([][]int64{{5, 6}, {7, 8}})
//	c, err := matrix.ParallelMultiply(a, b)
//
// Three implementations share one row kernel:
//   - Multiply runs on the calling goroutine and is the reference.
//   - ParallelMultiply starts one goroutine per contiguous chunk of output
//     rows on every call and joins them before returning.
//   - PooledMultiply runs the same chunks on a caller-owned worker pool,
//     trading per-call goroutine start-up for a pool the caller must manage.
package matrix
