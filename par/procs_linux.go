// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux

package par

import "golang.org/x/sys/unix"

// affinityCount returns the number of CPUs in this process's scheduler
// affinity mask, or 0 if it cannot be read. Containers and taskset pin the
// mask below the host CPU count, which runtime.NumCPU does not always see.
func affinityCount() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
