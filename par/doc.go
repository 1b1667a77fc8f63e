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

// Package par holds the pieces shared by the parallel kernels under
// par/contrib: element constraints, processor discovery, environment
// configuration and the fault type used to carry a recovered panic out of a
// worker goroutine.
//
// The kernels themselves live in sub-packages:
//
//	par/contrib/workerpool  fixed-size pool with a closable job queue
//	par/contrib/region      disjoint regions of one shared slice
//	par/contrib/sort        sequential and pooled quicksort
//	par/contrib/matrix      square matrices and the parallel row transform
//	par/contrib/gen         random inputs for tests and benchmarks
//
// # Configuration
//
// The following environment variables are read at call time:
//
//	PARK_NUM_WORKERS     override the processor count returned by NumProcs
//	PARK_NO_PARALLEL     run every kernel on its sequential path
//	PARK_SORT_THRESHOLD  default region length below which sort runs inline
package par
