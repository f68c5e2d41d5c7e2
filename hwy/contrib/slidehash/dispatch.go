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

package slidehash

import (
	"slices"

	"github.com/ajroetker/go-zng/hwy"
)

// Func slides the tables of a hash-chain state in place.
type Func func(s *State)

var variants = map[hwy.DispatchLevel]Func{
	hwy.DispatchScalar: Base,
	hwy.DispatchSSE2:   Lanes8,
	hwy.DispatchNEON:   Lanes8,
	hwy.DispatchVSX:    Lanes8,
	hwy.DispatchAVX2:   Lanes16,
	hwy.DispatchAVX512: Lanes32,
}

// For returns the implementation registered for level, if any.
func For(level hwy.DispatchLevel) (Func, bool) {
	fn, ok := variants[level]
	return fn, ok
}

// Levels returns the levels with an implementation in ascending order.
func Levels() []hwy.DispatchLevel {
	levels := make([]hwy.DispatchLevel, 0, len(variants))
	for l := range variants {
		levels = append(levels, l)
	}
	slices.Sort(levels)
	return levels
}

// Select returns the implementation chosen by p for capabilities c.
func Select(c hwy.Capabilities, p hwy.Policy) (Func, hwy.DispatchLevel) {
	level := p.Resolve(c, func(l hwy.DispatchLevel) bool {
		_, ok := variants[l]
		return ok
	})
	return variants[level], level
}
