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

package sort

import "github.com/ajroetker/parkernels/par"

// Partition performs a Lomuto partition around the last element and returns
// the pivot's final index b, where:
//   - data[0:b] <= pivot
//   - data[b] == pivot
//   - data[b+1:n] >= pivot
//
// Partition of an empty slice returns 0.
func Partition[T par.Ordered](data []T) int {
	n := len(data)
	if n == 0 {
		return 0
	}

	pivot := data[n-1]
	b := 0
	for i := 0; i < n-1; i++ {
		if data[i] <= pivot {
			data[b], data[i] = data[i], data[b]
			b++
		}
	}

	// The pivot must land inside data.
	if b >= n {
		b = n - 1
	}
	data[b], data[n-1] = data[n-1], data[b]
	return b
}

// PartitionFunc is Partition with a three-way comparator: cmp(a, b) <= 0
// stands in for a <= b.
func PartitionFunc[T any](data []T, cmp func(a, b T) int) int {
	n := len(data)
	if n == 0 {
		return 0
	}

	pivot := data[n-1]
	b := 0
	for i := 0; i < n-1; i++ {
		if cmp(data[i], pivot) <= 0 {
			data[b], data[i] = data[i], data[b]
			b++
		}
	}

	if b >= n {
		b = n - 1
	}
	data[b], data[n-1] = data[n-1], data[b]
	return b
}
