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

package chunkset

import (
	"slices"

	"github.com/ajroetker/go-zng/hwy"
)

// Backend moves chunks of a fixed width W. All backends of the same width are
// observably equivalent: Load followed by Store reproduces the input bytes,
// and FillK followed by Store yields the k-byte unit repeated W/k times.
//
// C is the backend's chunk value: a Chunk8..Chunk64 byte array for the
// pure-Go backends, an archsimd vector for the amd64 vector backends.
type Backend[C any] interface {
	// Name identifies the backend in diagnostics, e.g. "avx2".
	Name() string

	// Width returns W, the chunk width in bytes.
	Width() int

	// Supports reports whether FillK may be called for k-byte units.
	Supports(k int) bool

	// Load reads W bytes from src. len(src) must be at least W; the read is
	// unaligned.
	Load(src []byte) C

	// Store writes W bytes to dst. len(dst) must be at least W.
	Store(dst []byte, c C)

	// Copy copies the whole chunks of src[:n] to dst, one chunk at a time
	// from the front, and returns the number of bytes copied. dst may start
	// W or more bytes after src in the same buffer.
	Copy(dst, src []byte, n int) int

	// StoreN stores c over the whole chunks of dst[:n] and returns the
	// number of bytes written.
	StoreN(dst []byte, c C, n int) int

	// Fill1, Fill2, Fill4 and Fill8 read a 1, 2, 4 or 8 byte unit from the
	// front of unit and replicate it across a chunk.
	Fill1(unit []byte) C
	Fill2(unit []byte) C
	Fill4(unit []byte) C
	Fill8(unit []byte) C
}

// Copier is the width-independent view of an Engine used by the dispatcher.
type Copier interface {
	// Name returns the name of the underlying backend.
	Name() string

	// ChunkSize returns the backend width in bytes; fast paths may write up to
	// ChunkSize()-1 bytes past the end of a copy.
	ChunkSize() int

	// CopySafe copies min(n, len(dst), len(src)) bytes and returns the count.
	CopySafe(dst, src []byte, n int) int

	// CopyUnrolled copies n bytes in whole chunks.
	CopyUnrolled(dst, src []byte, n int)

	// CopyOverlap expands an LZ77 back-reference inside window.
	CopyOverlap(window []byte, pos, dist, n int) int

	// CopyOverlapSafe is CopyOverlap bounded by len(window).
	CopyOverlapSafe(window []byte, pos, dist, n int) int

	// Unroll materialises a short repeating pattern until it spans a chunk.
	Unroll(window []byte, pos, dist, n int) (int, int, int)
}

// copiers maps each dispatch level with a chunk backend to its engine.
var copiers = map[hwy.DispatchLevel]Copier{
	hwy.DispatchScalar: Engine[scalarChunk, Scalar]{},
	hwy.DispatchSSE2:   Engine[sse2Chunk, SSE2]{},
	hwy.DispatchNEON:   Engine[neonChunk, NEON]{},
	hwy.DispatchVSX:    Engine[vsxChunk, VSX]{},
	hwy.DispatchAVX2:   Engine[avx2Chunk, AVX2]{},
	hwy.DispatchAVX512: Engine[avx512Chunk, AVX512]{},
}

// Native reports whether the backend of level executes vector instructions
// and therefore must only run on a processor that supports level. The
// pure-Go backends run anywhere.
func Native(level hwy.DispatchLevel) bool {
	switch level {
	case hwy.DispatchAVX2, hwy.DispatchAVX512:
		return nativeSIMD
	}
	return false
}

// For returns the copier implemented for level, if any.
func For(level hwy.DispatchLevel) (Copier, bool) {
	c, ok := copiers[level]
	return c, ok
}

// Levels returns the dispatch levels that have a chunk backend, in
// ascending order.
func Levels() []hwy.DispatchLevel {
	levels := make([]hwy.DispatchLevel, 0, len(copiers))
	for l := range copiers {
		levels = append(levels, l)
	}
	slices.Sort(levels)
	return levels
}

// Select returns the copier chosen by policy p for a processor with
// capabilities c, and the level it belongs to. It never fails: the scalar
// backend is implemented for every processor.
func Select(c hwy.Capabilities, p hwy.Policy) (Copier, hwy.DispatchLevel) {
	level := p.Resolve(c, func(l hwy.DispatchLevel) bool {
		_, ok := copiers[l]
		return ok
	})
	return copiers[level], level
}
