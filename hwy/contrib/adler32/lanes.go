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

import "encoding/binary"

// maxLaneWords is the number of 64-bit lanes in the widest vector.
const maxLaneWords = 8

// Lanes16 processes the input in 16-byte vectors of two lanes.
func Lanes16(adler uint32, p []byte) uint32 {
	return lanes(adler, p, 16)
}

// Lanes32 processes the input in 32-byte vectors of four lanes.
func Lanes32(adler uint32, p []byte) uint32 {
	return lanes(adler, p, 32)
}

// Lanes64 processes the input in 64-byte vectors of eight lanes.
func Lanes64(adler uint32, p []byte) uint32 {
	return lanes(adler, p, 64)
}

// lanes is the vector-width-parametric Adler-32 loop.
//
// For a block of k vectors of width bytes starting with sums (s1, s2):
//
//	s1' = s1 + sum(b)
//	s2' = s2 + k*width*s1 + width*sum(vs3) + sum(vs2)
//
// where, per lane j, vs1 is the byte sum, vs2 the in-vector weighted sum and
// vs3 the sum of vs1 before each vector was added.
func lanes(adler uint32, p []byte, width int) uint32 {
	if len(p) < width {
		return Base(adler, p)
	}
	words := width / 8
	perBlock := nmax / width
	s1, s2 := uint64(adler&0xffff), uint64(adler>>16)

	for len(p) >= width {
		k := min(len(p)/width, perBlock)
		block := p[:k*width]
		p = p[k*width:]

		var vs1, vs2, vs3 [maxLaneWords]uint32
		for ; len(block) >= width; block = block[width:] {
			for j := range words {
				sum, dot := wordSums(binary.LittleEndian.Uint64(block[8*j:]))
				vs3[j] += vs1[j]
				vs1[j] += sum
				vs2[j] += dot + uint32(8*(words-1-j))*sum
			}
		}

		// Horizontal reduction.
		var t1, t2, t3 uint64
		for j := range words {
			t1 += uint64(vs1[j])
			t2 += uint64(vs2[j])
			t3 += uint64(vs3[j])
		}
		s2 += uint64(k*width)*s1 + uint64(width)*t3 + t2
		s1 += t1
		s1 %= mod
		s2 %= mod
	}

	if len(p) > 0 {
		for _, b := range p {
			s1 += uint64(b)
			s2 += s1
		}
		s1 %= mod
		s2 %= mod
	}
	return uint32(s2<<16 | s1)
}

// wordSums returns, for the eight bytes of x in little-endian order, their
// sum and their dot product with the weights 8, 7, ..., 1.
//
// The bytes are split into even and odd 16-bit lanes; a multiply by a lane
// constant accumulates the weighted lanes into the top lane without carries.
func wordSums(x uint64) (sum, dot uint32) {
	const lo = 0x00ff00ff00ff00ff
	even := x & lo
	odd := (x >> 8) & lo
	sum = uint32(((even + odd) * 0x0001000100010001) >> 48)
	dot = uint32((even*0x0008000600040002)>>48) + uint32((odd*0x0007000500030001)>>48)
	return sum, dot
}
