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
	"encoding/binary"
	"fmt"
	"unsafe"
)

// chunk is the set of register-sized chunk representations.
type chunk interface {
	~[8]byte | ~[16]byte | ~[32]byte | ~[64]byte
}

// Chunk types, one per supported width. They are plain values; a chunk never
// aliases the memory it was loaded from.
type (
	Chunk8  [8]byte
	Chunk16 [16]byte
	Chunk32 [32]byte
	Chunk64 [64]byte
)

// maxChunkSize is the widest chunk of any backend.
const maxChunkSize = 64

// loadRaw reads sizeof(C) bytes starting at src[0] without a bounds check.
// The caller guarantees len(src) >= sizeof(C).
func loadRaw[C chunk](src []byte) C {
	var c C
	if debugChecks {
		assertSpan("load", len(src), int(unsafe.Sizeof(c)))
	}
	return *(*C)(unsafe.Pointer(unsafe.SliceData(src)))
}

// storeRaw writes c to dst without a bounds check.
// The caller guarantees len(dst) >= sizeof(C).
func storeRaw[C chunk](dst []byte, c C) {
	if debugChecks {
		assertSpan("store", len(dst), int(unsafe.Sizeof(c)))
	}
	*(*C)(unsafe.Pointer(unsafe.SliceData(dst))) = c
}

func assertSpan(op string, have, need int) {
	if have < need {
		panic(fmt.Sprintf("chunkset: %s of %d bytes with only %d available", op, need, have))
	}
}

// splat replicates the 8-byte pattern v across every word of a chunk.
// Patterns are built and stored in native byte order, so a unit read from
// memory comes back out in the same byte order.
func splat[C chunk](v uint64) C {
	var c C
	b := unsafe.Slice((*byte)(unsafe.Pointer(&c)), unsafe.Sizeof(c))
	for i := 0; i < len(b); i += 8 {
		binary.NativeEndian.PutUint64(b[i:], v)
	}
	return c
}

// pattern1 through pattern8 widen a k-byte unit to an 8-byte pattern.
func pattern1(u []byte) uint64 {
	return uint64(u[0]) * 0x0101010101010101
}

func pattern2(u []byte) uint64 {
	return uint64(binary.NativeEndian.Uint16(u)) * 0x0001000100010001
}

func pattern4(u []byte) uint64 {
	return uint64(binary.NativeEndian.Uint32(u)) * 0x0000000100000001
}

func pattern8(u []byte) uint64 {
	return binary.NativeEndian.Uint64(u)
}

// supportsUnit reports whether a k-byte unit tiles a chunk of width w.
func supportsUnit(k, w int) bool {
	switch k {
	case 1, 2, 4, 8:
		return w%k == 0
	}
	return false
}

// copyTail copies len(dst) bytes, fewer than one chunk, with an 8/4/2/1 ladder.
// It touches nothing outside dst and src[:len(dst)].
func copyTail(dst, src []byte) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; n-i >= 8; i += 8 {
		binary.NativeEndian.PutUint64(dst[i:], binary.NativeEndian.Uint64(src[i:]))
	}
	if n-i >= 4 {
		binary.NativeEndian.PutUint32(dst[i:], binary.NativeEndian.Uint32(src[i:]))
		i += 4
	}
	if n-i >= 2 {
		binary.NativeEndian.PutUint16(dst[i:], binary.NativeEndian.Uint16(src[i:]))
		i += 2
	}
	if n-i >= 1 {
		dst[i] = src[i]
	}
}
