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

const (
	// mod is the largest prime smaller than 65536.
	mod = 65521

	// nmax is the largest n such that 255n(n+1)/2 + (n+1)(mod-1) <= 2^32-1,
	// the longest run of bytes that can be summed before reducing.
	nmax = 5552
)

// Base is the scalar reference implementation. It updates the running
// checksum adler with the bytes of p.
func Base(adler uint32, p []byte) uint32 {
	s1, s2 := adler&0xffff, adler>>16
	if len(p) == 1 {
		s1 += uint32(p[0])
		if s1 >= mod {
			s1 -= mod
		}
		s2 += s1
		if s2 >= mod {
			s2 -= mod
		}
		return s2<<16 | s1
	}
	for len(p) > 0 {
		n := min(len(p), nmax)
		q := p[:n]
		p = p[n:]
		for len(q) >= 16 {
			s1 += uint32(q[0])
			s2 += s1
			s1 += uint32(q[1])
			s2 += s1
			s1 += uint32(q[2])
			s2 += s1
			s1 += uint32(q[3])
			s2 += s1
			s1 += uint32(q[4])
			s2 += s1
			s1 += uint32(q[5])
			s2 += s1
			s1 += uint32(q[6])
			s2 += s1
			s1 += uint32(q[7])
			s2 += s1
			s1 += uint32(q[8])
			s2 += s1
			s1 += uint32(q[9])
			s2 += s1
			s1 += uint32(q[10])
			s2 += s1
			s1 += uint32(q[11])
			s2 += s1
			s1 += uint32(q[12])
			s2 += s1
			s1 += uint32(q[13])
			s2 += s1
			s1 += uint32(q[14])
			s2 += s1
			s1 += uint32(q[15])
			s2 += s1
			q = q[16:]
		}
		for _, b := range q {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= mod
		s2 %= mod
	}
	return s2<<16 | s1
}

// Checksum returns the Adler-32 checksum of p computed with fn.
func Checksum(fn Func, p []byte) uint32 {
	return fn(1, p)
}

// Combine returns the checksum of the concatenation A||B given the
// checksums of A and B and the length of B. Both checksums must be reduced
// (as returned by any Func on non-empty input, or 1).
func Combine(adler1, adler2 uint32, len2 int64) uint32 {
	if len2 < 0 {
		return 0xffffffff
	}
	rem := uint32(len2 % mod)
	sum1 := adler1 & 0xffff
	sum2 := rem * sum1
	sum2 %= mod
	sum1 += adler2&0xffff + mod - 1
	sum2 += adler1>>16&0xffff + adler2>>16&0xffff + mod - rem
	if sum1 >= mod {
		sum1 -= mod
	}
	if sum1 >= mod {
		sum1 -= mod
	}
	if sum2 >= mod<<1 {
		sum2 -= mod << 1
	}
	if sum2 >= mod {
		sum2 -= mod
	}
	return sum2<<16 | sum1
}

// CopyUpdate copies src into dst and folds the copied bytes into adler with
// fn. It returns the updated checksum; the number of bytes copied is
// min(len(dst), len(src)). Inflate uses it to checksum output while moving it
// into the caller's buffer.
func CopyUpdate(fn Func, adler uint32, dst, src []byte) uint32 {
	n := copy(dst, src)
	return fn(adler, dst[:n])
}
