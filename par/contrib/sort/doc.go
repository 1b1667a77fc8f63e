// Package sort provides an in-place Lomuto quicksort in two forms: a
// sequential kernel and a parallel kernel that spreads the recursion over a
// worker pool.
//
// # Algorithm
//
// Both kernels share one partition rule. The last element is the pivot; a
// left-to-right scan moves every element <= pivot below a boundary, and the
// pivot is then swapped onto the boundary. Using <= rather than < makes the
// boundary advance on all-equal input, so every step shrinks the problem.
//
// The parallel kernel partitions a region, sorts any side shorter than the
// threshold inline, and submits the larger sides to the pool as new jobs.
// Each job owns a region.Region, so no two jobs can reach the same index.
// Shutting the pool down is the only join; a panicking job makes the whole
// sort return a *par.PanicError.
//
// # Example Usage
//
//	import "github.com/ajroetker/parkernels/par/contrib/sort"
//
//	func ProcessData(data []int64) error {
//	    return sort.ParallelQuicksort(data)
//	}
//
//	func Oracle(data []int64) {
//	    sort.Quicksort(data)
//	}
//
// # Performance
//
// Pivot choice is fixed to the last element, so already sorted and all-equal
// inputs take quadratic time in both kernels. Random data is the intended
// workload.
package sort
