// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package par

import "runtime"

// features is filled by init() in features_*.go files.
var features []string

// Features returns the names of the CPU features detected at startup, for
// example "avx2" or "asimd". It is informational only; the kernels in this
// module are portable Go and do not dispatch on it.
func Features() []string {
	out := make([]string, len(features))
	copy(out, features)
	return out
}

// Arch returns GOARCH.
func Arch() string {
	return runtime.GOARCH
}

func appendIf(dst []string, ok bool, name string) []string {
	if ok {
		return append(dst, name)
	}
	return dst
}
