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

package functable

import (
	"fmt"
	"hash"
	"slices"
	"sync"

	"github.com/containerd/log"

	"github.com/ajroetker/go-zng/hwy"
	"github.com/ajroetker/go-zng/hwy/contrib/adler32"
	"github.com/ajroetker/go-zng/hwy/contrib/chunkset"
	"github.com/ajroetker/go-zng/hwy/contrib/slidehash"
	"github.com/ajroetker/go-zng/hwy/contrib/workerpool"
)

// Table holds the implementation chosen for each primitive family together
// with the dispatch level it belongs to. A Table is immutable once built, so
// the one returned by Get can be shared freely.
type Table struct {
	copier    chunkset.Copier
	copyLevel hwy.DispatchLevel

	adler32      adler32.Func
	adler32Level hwy.DispatchLevel

	slideHash      slidehash.Func
	slideHashLevel hwy.DispatchLevel

	caps   hwy.Capabilities
	policy hwy.Policy
}

// Select builds a table for a processor with capabilities caps using policy p.
// A nil or empty policy means hwy.DefaultPolicy. The table keeps its own copy
// of p.
func Select(caps hwy.Capabilities, p hwy.Policy) *Table {
	if len(p) == 0 {
		p = hwy.DefaultPolicy()
	}
	t := &Table{caps: caps, policy: slices.Clone(p)}
	t.copier, t.copyLevel = chunkset.Select(caps, t.policy)
	t.adler32, t.adler32Level = adler32.Select(caps, t.policy)
	t.slideHash, t.slideHashLevel = slidehash.Select(caps, t.policy)
	return t
}

// Copier returns the bound overlap-copy engine.
func (t *Table) Copier() chunkset.Copier { return t.copier }

// CopyLevel returns the dispatch level of Copier.
func (t *Table) CopyLevel() hwy.DispatchLevel { return t.copyLevel }

// Adler32 returns the bound checksum update.
func (t *Table) Adler32() adler32.Func { return t.adler32 }

// Adler32Level returns the dispatch level of Adler32.
func (t *Table) Adler32Level() hwy.DispatchLevel { return t.adler32Level }

// SlideHash returns the bound table rebase.
func (t *Table) SlideHash() slidehash.Func { return t.slideHash }

// SlideHashLevel returns the dispatch level of SlideHash.
func (t *Table) SlideHashLevel() hwy.DispatchLevel { return t.slideHashLevel }

// Capabilities returns the processor capabilities the table was built for.
func (t *Table) Capabilities() hwy.Capabilities { return t.caps }

// Policy returns a copy of the policy the table was built with.
func (t *Table) Policy() hwy.Policy { return slices.Clone(t.policy) }

// Describe returns the chosen level of each family, e.g.
// "chunkset=avx2 adler32=avx512vnni slidehash=avx512".
func (t *Table) Describe() string {
	return fmt.Sprintf("chunkset=%s adler32=%s slidehash=%s", t.copyLevel, t.adler32Level, t.slideHashLevel)
}

func (t *Table) fields() log.Fields {
	return log.Fields{
		"capabilities": t.caps.String(),
		"policy":       t.policy.String(),
		"chunkset":     t.copyLevel.String(),
		"chunk_size":   t.copier.ChunkSize(),
		"adler32":      t.adler32Level.String(),
		"slidehash":    t.slideHashLevel.String(),
	}
}

var current = sync.OnceValue(func() *Table {
	t := Select(hwy.Detect(), hwy.PolicyFromEnv())
	log.L.WithFields(t.fields()).Debug("dispatch table bound")
	return t
})

// Get returns the process-wide table, building it on first use.
func Get() *Table {
	return current()
}

// ChunkSize returns the chunk width of the bound copier. Fast copies may
// write up to ChunkSize()-1 bytes past their logical end.
func ChunkSize() int {
	return Get().copier.ChunkSize()
}

// CopySafe copies min(n, len(dst), len(src)) bytes without touching anything
// past them and returns the number of bytes copied.
func CopySafe(dst, src []byte, n int) int {
	return Get().copier.CopySafe(dst, src, n)
}

// CopyOverlap expands the back-reference (dist, n) at pos in window and
// returns pos+n. window needs ChunkSize()-1 bytes of slack past pos+n.
func CopyOverlap(window []byte, pos, dist, n int) int {
	return Get().copier.CopyOverlap(window, pos, dist, n)
}

// CopyOverlapSafe is CopyOverlap without the slack requirement; n is clamped
// to the end of window.
func CopyOverlapSafe(window []byte, pos, dist, n int) int {
	return Get().copier.CopyOverlapSafe(window, pos, dist, n)
}

// CopyUnrolled copies n non-overlapping bytes in whole chunks. Both slices
// need ChunkSize()-1 bytes of slack past n.
func CopyUnrolled(dst, src []byte, n int) {
	Get().copier.CopyUnrolled(dst, src, n)
}

// Adler32 updates the checksum adler with p.
func Adler32(adler uint32, p []byte) uint32 {
	return Get().adler32(adler, p)
}

// Adler32Parallel is Adler32 computed on pool in segments of
// adler32.DefaultSegmentSize bytes.
func Adler32Parallel(pool *workerpool.Pool, adler uint32, p []byte) uint32 {
	return adler32.Parallel(pool, Get().adler32, adler, p, 0)
}

// NewAdler32 returns a hash.Hash32 computing Adler-32 with the bound
// implementation.
func NewAdler32() hash.Hash32 {
	return adler32.NewWith(Get().adler32)
}

// SlideHash slides the tables of s by s.WindowSize.
func SlideHash(s *slidehash.State) {
	Get().slideHash(s)
}
