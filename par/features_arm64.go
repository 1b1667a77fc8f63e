// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package par

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is part of the ARMv8-A base architecture; it is listed anyway so
	// the report is never empty on arm64.
	f := features[:0]
	f = appendIf(f, cpu.ARM64.HasASIMD, "asimd")
	f = appendIf(f, cpu.ARM64.HasFP, "fp")
	f = appendIf(f, cpu.ARM64.HasATOMICS, "atomics")
	f = appendIf(f, cpu.ARM64.HasASIMDHP, "asimdhp")
	f = appendIf(f, cpu.ARM64.HasASIMDDP, "asimddp")
	f = appendIf(f, cpu.ARM64.HasSVE, "sve")
	f = appendIf(f, cpu.ARM64.HasSVE2, "sve2")
	features = f
}
