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

package adler32

import (
	"slices"

	"github.com/ajroetker/go-zng/hwy"
)

// Func updates a running Adler-32 checksum with the bytes of p.
type Func func(adler uint32, p []byte) uint32

// variants maps each dispatch level to the implementation tuned for its
// vector width. SSE2 alone has no 16-bit multiply-add, so it keeps the
// scalar loop.
var variants = map[hwy.DispatchLevel]Func{
	hwy.DispatchScalar:     Base,
	hwy.DispatchSSSE3:      Lanes16,
	hwy.DispatchSSE41:      Lanes16,
	hwy.DispatchNEON:       Lanes16,
	hwy.DispatchVSX:        Lanes16,
	hwy.DispatchVX:         Lanes16,
	hwy.DispatchAVX2:       Lanes32,
	hwy.DispatchAVX512:     Lanes64,
	hwy.DispatchAVX512VNNI: Lanes64,
}

// For returns the implementation for level, if any.
func For(level hwy.DispatchLevel) (Func, bool) {
	fn, ok := variants[level]
	return fn, ok
}

// Levels returns the dispatch levels with an implementation, in ascending
// order.
func Levels() []hwy.DispatchLevel {
	levels := make([]hwy.DispatchLevel, 0, len(variants))
	for l := range variants {
		levels = append(levels, l)
	}
	slices.Sort(levels)
	return levels
}

// Select returns the implementation chosen by policy p for a processor with
// capabilities c, and its level. Base is the fallback.
func Select(c hwy.Capabilities, p hwy.Policy) (Func, hwy.DispatchLevel) {
	level := p.Resolve(c, func(l hwy.DispatchLevel) bool {
		_, ok := variants[l]
		return ok
	})
	return variants[level], level
}
