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

//go:build amd64

package par

import "golang.org/x/sys/cpu"

func init() {
	f := features[:0]
	f = appendIf(f, cpu.X86.HasSSE2, "sse2")
	f = appendIf(f, cpu.X86.HasSSE41, "sse4.1")
	f = appendIf(f, cpu.X86.HasSSE42, "sse4.2")
	f = appendIf(f, cpu.X86.HasPOPCNT, "popcnt")
	f = appendIf(f, cpu.X86.HasAVX, "avx")
	f = appendIf(f, cpu.X86.HasAVX2, "avx2")
	f = appendIf(f, cpu.X86.HasFMA, "fma")
	f = appendIf(f, cpu.X86.HasBMI2, "bmi2")
	f = appendIf(f, cpu.X86.HasAVX512F, "avx512f")
	f = appendIf(f, cpu.X86.HasAVX512BF16, "avx512bf16")
	features = f
}
