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

package hwy

import "golang.org/x/sys/cpu"

// probe reads the raw x86 feature bits. AVX-512 is only reported when both
// the foundation and byte/word subsets are present, since the 512-bit
// primitives operate on bytes and 16-bit lanes.
func probe() Capabilities {
	return Capabilities{
		SSE2:       cpu.X86.HasSSE2,
		SSSE3:      cpu.X86.HasSSSE3,
		SSE41:      cpu.X86.HasSSE41,
		AVX2:       cpu.X86.HasAVX2,
		AVX512:     cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		AVX512VNNI: cpu.X86.HasAVX512VNNI,
	}
}
