// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build !linux

package par

func affinityCount() int {
	return 0
}
