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

package par

import (
	"os"
	"runtime"
	"strconv"
)

const (
	envNumWorkers    = "PARK_NUM_WORKERS"
	envNoParallel    = "PARK_NO_PARALLEL"
	envSortThreshold = "PARK_SORT_THRESHOLD"
)

// DefaultSortThreshold is the region length below which quicksort sorts a
// region inline instead of submitting it to the pool.
const DefaultSortThreshold = 100_000

// NumProcs returns the number of usable parallel execution units.
//
// Resolution order:
//  1. PARK_NUM_WORKERS, if it parses as a positive integer.
//  2. The size of the scheduler affinity mask, where the platform exposes one.
//  3. runtime.NumCPU.
//
// Without an override the result is capped at GOMAXPROCS. It is always at
// least 1.
func NumProcs() int {
	if n, ok := envInt(envNumWorkers); ok && n > 0 {
		return n
	}

	n := affinityCount()
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(min(n, runtime.GOMAXPROCS(0)), 1)
}

// NoParallelEnv checks if the PARK_NO_PARALLEL environment variable is set.
// When set, the parallel entry points run their sequential kernels instead.
// This is useful for testing and debugging.
func NoParallelEnv() bool {
	val := os.Getenv(envNoParallel)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SortThreshold returns PARK_SORT_THRESHOLD when it is a positive integer,
// otherwise DefaultSortThreshold.
func SortThreshold() int {
	if n, ok := envInt(envSortThreshold); ok && n > 0 {
		return n
	}
	return DefaultSortThreshold
}

func envInt(name string) (int, bool) {
	val := os.Getenv(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
