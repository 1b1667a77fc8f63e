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

// Command parkern times the parallel kernels against their sequential
// baselines on generated input.
//
// Usage:
//
//	parkern sort -n 10000000 --workers 8 --check
//	parkern multiply -n 2048 --pooled
//	parkern info
//
// Each run prints one line per kernel with the elapsed time; --check compares
// the parallel result against the sequential one and fails on a mismatch.
// Logs go to stderr; -v enables debug output from the worker pool.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
