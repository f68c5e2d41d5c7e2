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

// Package chunkset provides chunked memory copy and pattern fill for LZ77
// back-reference expansion.
//
// A Backend moves fixed-width chunks: it loads a chunk, stores a chunk and
// broadcasts a 1, 2, 4 or 8 byte unit across a chunk. Engine is the single
// width-parametric algorithm built on top of a Backend. It handles the three
// overlap regimes of a back-reference copy:
//
//   - distance >= chunk width: plain chunk load/store,
//   - distance in {1, 2, 4, 8}: broadcast the repeating unit and store it,
//   - any other short distance: unroll, doubling the materialised pattern until
//     it is at least one chunk wide.
//
// # Safety margin
//
// The fast paths may write up to ChunkSize()-1 bytes past the logical end of
// the copy. Callers size their windows with that slack, or use CopySafe and
// CopyOverlapSafe near the end of a buffer. Chunk loads and stores are the only
// raw memory accesses in the package; building with the hwydebug tag turns the
// margin preconditions into panics.
//
// # Backends
//
//	Backend  Width  Selected on
//	Scalar   8      every processor
//	SSE2     16     x86-64
//	NEON     16     arm64
//	VSX      16     POWER8+
//	AVX2     32     x86-64 with AVX2
//	AVX512   64     x86-64 with AVX-512 F+BW
//
// The width-specific backend files are generated by cmd/chunkgen.
package chunkset

//go:generate go run ../../../cmd/chunkgen -output . -backends all
