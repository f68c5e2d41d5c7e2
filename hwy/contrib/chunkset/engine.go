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

import "fmt"

// Engine implements the chunked copy algorithms on top of backend B.
// The zero value is ready to use.
//
// Positions passed to the window methods are indexes into a single output
// buffer: the back-reference source starts dist bytes before pos.
type Engine[C any, B Backend[C]] struct {
	b B
}

// Name returns the backend name.
func (e Engine[C, B]) Name() string {
	return e.b.Name()
}

// ChunkSize returns the backend width in bytes.
func (e Engine[C, B]) ChunkSize() int {
	return e.b.Width()
}

// CopySafe copies exactly min(n, len(dst), len(src)) bytes from src to dst and
// returns that count. It never reads or writes outside the copied range, so it
// needs no safety margin. The ranges must not overlap.
func (e Engine[C, B]) CopySafe(dst, src []byte, n int) int {
	n = min(n, len(dst), len(src))
	if n <= 0 {
		return 0
	}
	i := e.b.Copy(dst, src, n)
	copyTail(dst[i:n], src[i:n])
	return n
}

// CopyUnrolled copies n bytes from src to dst in whole chunks. The first
// chunk absorbs the remainder (n-1)%W+1 so every later chunk ends on n.
// Both slices need at least max(n, ChunkSize()) bytes. dst may start W or
// more bytes after src in the same buffer.
func (e Engine[C, B]) CopyUnrolled(dst, src []byte, n int) {
	if n <= 0 {
		return
	}
	w := e.b.Width()
	if debugChecks {
		assertSpan("unrolled copy dst", len(dst), max(n, w))
		assertSpan("unrolled copy src", len(src), max(n, w))
	}
	align := (n-1)%w + 1
	e.b.Store(dst, e.b.Load(src))
	e.b.Copy(dst[align:], src[align:], n-align)
}

// CopyOverlap writes window[pos+i] = window[pos+i-dist] for i in [0, n) and
// returns pos+n. dist may be smaller than n, in which case the output repeats
// the dist-byte pattern ending at pos. dist must be in [1, pos].
//
// window needs ChunkSize()-1 bytes of slack past pos+n; those bytes may be
// overwritten. Bytes before pos+n other than the copy target are untouched.
func (e Engine[C, B]) CopyOverlap(window []byte, pos, dist, n int) int {
	if n <= 0 {
		return pos
	}
	w := e.b.Width()
	if debugChecks {
		checkBackRef(pos, dist)
		assertSpan("overlap copy", len(window), pos+n+w-1)
	}
	switch {
	case dist >= w:
		return e.copyWide(window, pos, dist, n)
	case e.fillable(dist):
		return e.fill(window, pos, dist, n)
	}
	pos, dist, n = e.Unroll(window, pos, dist, n)
	if dist >= w {
		return e.copyWide(window, pos, dist, n)
	}
	// n <= dist < w: the source is fully materialised and one chunk covers it.
	e.b.Store(window[pos:], e.b.Load(window[pos-dist:]))
	return pos + n
}

// CopyOverlapSafe is CopyOverlap for the end of a window. n is clamped to the
// space left in window, and when fewer than ChunkSize()-1 slack bytes remain
// only exact-length copies are used.
func (e Engine[C, B]) CopyOverlapSafe(window []byte, pos, dist, n int) int {
	n = min(n, len(window)-pos)
	if n <= 0 {
		return pos
	}
	w := e.b.Width()
	if len(window)-(pos+n) >= w-1 {
		return e.CopyOverlap(window, pos, dist, n)
	}
	if debugChecks {
		checkBackRef(pos, dist)
	}
	switch {
	case dist >= w:
		return e.copyWide(window, pos, dist, n)
	case e.fillable(dist):
		return e.fill(window, pos, dist, n)
	}
	for dist < n {
		e.CopySafe(window[pos:], window[pos-dist:pos], dist)
		pos += dist
		n -= dist
		dist += dist
	}
	e.CopySafe(window[pos:pos+n], window[pos-dist:], n)
	return pos + n
}

// Unroll performs short chunk copies while the pattern distance is below both
// the remaining length and the chunk width, doubling the distance each step.
// It returns the advanced position, the new distance and the remaining length.
// Like CopyOverlap it needs ChunkSize()-1 bytes of slack past pos+n.
func (e Engine[C, B]) Unroll(window []byte, pos, dist, n int) (int, int, int) {
	w := e.b.Width()
	for dist < n && dist < w {
		e.b.Store(window[pos:], e.b.Load(window[pos-dist:]))
		pos += dist
		n -= dist
		dist += dist
	}
	return pos, dist, n
}

// copyWide handles dist >= W: every chunk load reads bytes that are already
// final. The remainder is copied exactly.
func (e Engine[C, B]) copyWide(window []byte, pos, dist, n int) int {
	done := e.b.Copy(window[pos:], window[pos-dist:], n)
	pos += done
	n -= done
	if n > 0 {
		copyTail(window[pos:pos+n], window[pos-dist:])
	}
	return pos + n
}

func (e Engine[C, B]) fillable(dist int) bool {
	return dist <= 8 && e.b.Supports(dist)
}

// fill handles dist in {1, 2, 4, 8} with dist < W. W is a multiple of dist,
// so every chunk starts at the same phase of the pattern.
func (e Engine[C, B]) fill(window []byte, pos, dist, n int) int {
	unit := window[pos-dist : pos]
	var c C
	switch dist {
	case 1:
		c = e.b.Fill1(unit)
	case 2:
		c = e.b.Fill2(unit)
	case 4:
		c = e.b.Fill4(unit)
	default:
		c = e.b.Fill8(unit)
	}
	done := e.b.StoreN(window[pos:], c, n)
	pos += done
	n -= done
	if n > 0 {
		var tmp [maxChunkSize]byte
		e.b.Store(tmp[:], c)
		copy(window[pos:pos+n], tmp[:n])
	}
	return pos + n
}

func checkBackRef(pos, dist int) {
	if dist <= 0 || dist > pos {
		panic(fmt.Sprintf("chunkset: invalid back-reference distance %d at position %d", dist, pos))
	}
}
