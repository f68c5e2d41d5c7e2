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

const (
	// laneHigh selects the top bit of each 16-bit lane.
	laneHigh = 0x8000800080008000

	// laneOnes has the value 1 in each 16-bit lane.
	laneOnes = 0x0001000100010001
)

// Lanes8 slides 8 entries (one 128-bit vector) per step.
func Lanes8(s *State) {
	slideLanes(s.Head, s.WindowSize, 8)
	slideLanes(s.Prev, s.WindowSize, 8)
}

// Lanes16 slides 16 entries (one 256-bit vector) per step.
func Lanes16(s *State) {
	slideLanes(s.Head, s.WindowSize, 16)
	slideLanes(s.Prev, s.WindowSize, 16)
}

// Lanes32 slides 32 entries (one 512-bit vector) per step.
func Lanes32(s *State) {
	slideLanes(s.Head, s.WindowSize, 32)
	slideLanes(s.Prev, s.WindowSize, 32)
}

func slideLanes(table []uint16, w uint32, lanes int) {
	if w == 0 {
		return
	}
	if w > 0xffff {
		clear(table)
		return
	}
	ws := uint64(w) * laneOnes
	for len(table) >= lanes {
		v := table[:lanes:lanes]
		for i := 0; i < lanes; i += 4 {
			q := v[i : i+4 : i+4]
			x := uint64(q[0]) | uint64(q[1])<<16 | uint64(q[2])<<32 | uint64(q[3])<<48
			x = subSat16(x, ws)
			q[0], q[1], q[2], q[3] = uint16(x), uint16(x>>16), uint16(x>>32), uint16(x>>48)
		}
		table = table[lanes:]
	}
	SlideTable(table, w)
}

// subSat16 subtracts the 16-bit lanes of y from those of x, clamping each
// lane at zero.
func subSat16(x, y uint64) uint64 {
	// Lane-wise difference with borrows stopped at lane boundaries.
	d := ((x | laneHigh) - (y &^ laneHigh)) ^ ((x ^ ^y) & laneHigh)
	// Borrow out of the top bit of each lane means x < y.
	borrow := ((^x & y) | (^(x ^ y) & d)) & laneHigh
	mask := (borrow >> 15) * 0xffff
	return d &^ mask
}
