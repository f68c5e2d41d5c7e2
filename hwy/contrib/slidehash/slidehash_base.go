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

// State is the hash-chain state owned by a match finder.
type State struct {
	// Head maps a hash bucket to the most recent position with that hash.
	Head []uint16

	// Prev maps a window position to the previous position with the same hash.
	Prev []uint16

	// WindowSize is the distance the window moves on every slide.
	WindowSize uint32
}

// Slide applies fn to s. It exists so call sites read as s.Slide(fn).
func (s *State) Slide(fn Func) {
	fn(s)
}

// Base slides both tables of s with the element-wise loop.
func Base(s *State) {
	SlideTable(s.Head, s.WindowSize)
	SlideTable(s.Prev, s.WindowSize)
}

// SlideTable replaces every entry e of table with max(e-w, 0).
// Windows of 65536 or more clear the table.
func SlideTable(table []uint16, w uint32) {
	if w > 0xffff {
		clear(table)
		return
	}
	ws := uint16(w)
	for i, e := range table {
		if e >= ws {
			table[i] = e - ws
		} else {
			table[i] = 0
		}
	}
}
