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

import (
	"cmp"
	"slices"
	"testing"

	"github.com/ajroetker/parkernels/par/contrib/gen"
)

// TestPartitionInvariant checks the three-way split around the returned index
func TestPartitionInvariant(t *testing.T) {
	g := gen.New(1)
	sizes := []int{1, 2, 3, 7, 64, 1000}
	for _, n := range sizes {
		data := gen.Slice[int16](g, n)
		pivot := data[n-1]
		b := Partition(data)
		if data[b] != pivot {
			t.Errorf("n=%d: data[%d] = %d, want pivot %d", n, b, data[b], pivot)
		}
		for i := 0; i < b; i++ {
			if data[i] > pivot {
				t.Fatalf("n=%d: data[%d] = %d > pivot %d left of boundary %d", n, i, data[i], pivot, b)
			}
		}
		for i := b + 1; i < n; i++ {
			if data[i] < pivot {
				t.Fatalf("n=%d: data[%d] = %d < pivot %d right of boundary %d", n, i, data[i], pivot, b)
			}
		}
	}
}

// TestPartitionAllEqual tests that all-equal input still shrinks the problem
func TestPartitionAllEqual(t *testing.T) {
	data := []int{5, 5, 5, 5, 5, 5}
	if b := Partition(data); b != len(data)-1 {
		t.Errorf("Partition(all equal) = %d, want %d", b, len(data)-1)
	}
}

// TestPartitionPivotIsMin tests a pivot smaller than everything else
func TestPartitionPivotIsMin(t *testing.T) {
	data := []int{9, 8, 7, 1}
	b := Partition(data)
	if b != 0 || data[0] != 1 {
		t.Errorf("Partition(%v) = %d with data[0] = %d, want 0 and 1", []int{9, 8, 7, 1}, b, data[0])
	}
}

// TestPartitionEmpty tests partitioning empty slices
func TestPartitionEmpty(t *testing.T) {
	if b := Partition([]int(nil)); b != 0 {
		t.Errorf("Partition(nil) = %d, want 0", b)
	}
	if b := PartitionFunc([]int(nil), cmp.Compare[int]); b != 0 {
		t.Errorf("PartitionFunc(nil) = %d, want 0", b)
	}
}

// TestQuicksortEmpty tests sorting empty slices
func TestQuicksortEmpty(t *testing.T) {
	var empty []float32
	Quicksort(empty)
	if len(empty) != 0 {
		t.Errorf("Quicksort(empty) should not modify empty slice")
	}
}

// TestQuicksortSingle tests sorting single element slices
func TestQuicksortSingle(t *testing.T) {
	data := []float32{42.0}
	Quicksort(data)
	if data[0] != 42.0 {
		t.Errorf("Quicksort([42]) = %v, want [42]", data)
	}
}

func TestQuicksortPatterns(t *testing.T) {
	tests := []struct {
		name string
		data []int
	}{
		{"sorted", gen.Ascending[int](200)},
		{"reverse", gen.Descending[int](200)},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"all same", gen.Constant(500, 7)},
		{"two values", []int{1, 0, 1, 0, 1, 0, 1, 0}},
		{"negative", []int{-3, 0, -1, 2, -8, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := slices.Clone(tt.data)
			slices.Sort(want)

			Quicksort(tt.data)
			if !slices.Equal(tt.data, want) {
				t.Errorf("Quicksort() = %v, want %v", tt.data, want)
			}
		})
	}
}

// TestQuicksortRandom checks permutation and order against slices.Sort
func TestQuicksortRandom(t *testing.T) {
	g := gen.New(2)
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 50000}
	for _, n := range sizes {
		data := gen.Slice[int64](g, n)
		want := slices.Clone(data)
		slices.Sort(want)

		Quicksort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Quicksort(random int64, n=%d) differs from slices.Sort", n)
		}
	}
}

func TestQuicksortFloat(t *testing.T) {
	data := gen.Slice[float64](gen.New(3), 1000)
	Quicksort(data)
	if !IsSorted(data) {
		t.Errorf("Quicksort(random float64) produced unsorted result")
	}
}

func TestQuicksortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple"}
	Quicksort(data)
	want := []string{"apple", "apple", "banana", "fig", "pear"}
	if !slices.Equal(data, want) {
		t.Errorf("Quicksort(strings) = %v, want %v", data, want)
	}
}

func TestQuicksortIdempotent(t *testing.T) {
	data := gen.Slice[int32](gen.New(4), 5000)
	Quicksort(data)
	once := slices.Clone(data)
	Quicksort(data)
	if !slices.Equal(data, once) {
		t.Error("Quicksort(Quicksort(xs)) != Quicksort(xs)")
	}
}

type record struct {
	key  int
	name string
}

func compareRecords(a, b record) int {
	return cmp.Compare(a.key, b.key)
}

func TestQuicksortFunc(t *testing.T) {
	data := []record{{3, "c"}, {1, "a"}, {2, "b"}, {1, "a2"}, {0, "z"}}
	QuicksortFunc(data, compareRecords)
	if !IsSortedFunc(data, compareRecords) {
		t.Errorf("QuicksortFunc() = %v, not sorted by key", data)
	}
	if data[0].key != 0 || data[4].key != 3 {
		t.Errorf("QuicksortFunc() = %v, want keys 0..3", data)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("IsSorted rejected a sorted slice")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("IsSorted accepted [2 1]")
	}
}
