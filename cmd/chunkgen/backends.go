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

package main

import "fmt"

// BackendInfo describes one generated chunk backend.
type BackendInfo struct {
	Name     string // lower-case name returned by Backend.Name, e.g. "avx2"
	TypeName string // exported Go type, e.g. "AVX2"
	Width    int    // chunk width in bytes
	Doc      string // one-line description of where the backend is selected
	Native   bool   // also rendered with simd/archsimd vectors for amd64
}

// ChunkType returns the chunk value type for the backend width.
func (b BackendInfo) ChunkType() string {
	switch b.Width {
	case 8:
		return "Chunk8"
	case 16:
		return "Chunk16"
	case 32:
		return "Chunk32"
	default:
		return "Chunk64"
	}
}

// Alias returns the name of the per-backend chunk type alias.
func (b BackendInfo) Alias() string {
	return b.Name + "Chunk"
}

// VecType returns the archsimd vector holding one chunk as 64-bit lanes.
func (b BackendInfo) VecType() string {
	return fmt.Sprintf("Uint64x%d", b.Width/8)
}

// ByteVecType returns the archsimd vector holding one chunk as bytes.
func (b BackendInfo) ByteVecType() string {
	return fmt.Sprintf("Uint8x%d", b.Width)
}

// PortableFile returns the name of the pure-Go backend file.
func (b BackendInfo) PortableFile() string {
	return "z_backend_" + b.Name + ".go"
}

// NativeFile returns the name of the archsimd backend file.
func (b BackendInfo) NativeFile() string {
	return "z_backend_" + b.Name + "_amd64.go"
}

var allBackends = []BackendInfo{
	{Name: "scalar", TypeName: "Scalar", Width: 8, Doc: "is the 8-byte reference backend used when no vector extension is available."},
	{Name: "sse2", TypeName: "SSE2", Width: 16, Doc: "is the 16-byte backend selected on x86-64 processors."},
	{Name: "neon", TypeName: "NEON", Width: 16, Doc: "is the 16-byte backend selected on arm64 processors with Advanced SIMD."},
	{Name: "vsx", TypeName: "VSX", Width: 16, Doc: "is the 16-byte backend selected on POWER8 and newer processors."},
	{Name: "avx2", TypeName: "AVX2", Width: 32, Doc: "is the 32-byte backend selected on x86-64 processors with AVX2.", Native: true},
	{Name: "avx512", TypeName: "AVX512", Width: 64, Doc: "is the 64-byte backend selected on x86-64 processors with AVX-512 F and BW.", Native: true},
}

// AllBackends returns every known backend.
func AllBackends() []BackendInfo {
	return append([]BackendInfo(nil), allBackends...)
}

// AvailableBackends returns the names of every known backend.
func AvailableBackends() []string {
	names := make([]string, len(allBackends))
	for i, b := range allBackends {
		names[i] = b.Name
	}
	return names
}

// LookupBackend finds a backend by name.
func LookupBackend(name string) (BackendInfo, bool) {
	for _, b := range allBackends {
		if b.Name == name {
			return b, true
		}
	}
	return BackendInfo{}, false
}
