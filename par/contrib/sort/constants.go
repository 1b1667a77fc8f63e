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

// Thresholds for different sorting strategies.
const (
	// DefaultThreshold: regions shorter than this are sorted inline by the
	// sequential kernel instead of being submitted to the pool.
	DefaultThreshold = par.DefaultSortThreshold
)
