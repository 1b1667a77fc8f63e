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

// Quicksort sorts data in-place on the calling goroutine.
// It recurses into the shorter side of each partition and loops on the
// longer one, so stack depth is O(log n) on random input.
func Quicksort[T par.Ordered](data []T) {
	for len(data) > 1 {
		b := Partition(data)
		left, right := data[:b], data[b+1:]
		if len(left) < len(right) {
			Quicksort(left)
			data = right
		} else {
			Quicksort(right)
			data = left
		}
	}
}

// QuicksortFunc sorts data in-place using cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func QuicksortFunc[T any](data []T, cmp func(a, b T) int) {
	for len(data) > 1 {
		b := PartitionFunc(data, cmp)
		left, right := data[:b], data[b+1:]
		if len(left) < len(right) {
			QuicksortFunc(left, cmp)
			data = right
		} else {
			QuicksortFunc(right, cmp)
			data = left
		}
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T par.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
