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
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-zng/hwy"
)

var namedVariants = []struct {
	name string
	fn   Func
}{
	{"base", Base},
	{"lanes8", Lanes8},
	{"lanes16", Lanes16},
	{"lanes32", Lanes32},
}

var windows = []uint32{0, 1, 6, 255, 4096, 32768, 65535, 65536, 1 << 20}

func reference(table []uint16, w uint32) []uint16 {
	out := make([]uint16, len(table))
	for i, e := range table {
		if uint32(e) > w {
			out[i] = uint16(uint32(e) - w)
		}
	}
	return out
}

func randomTable(rng *rand.Rand, n int) []uint16 {
	t := make([]uint16, n)
	for i := range t {
		switch rng.Intn(4) {
		case 0:
			t[i] = 0
		case 1:
			t[i] = 0xffff
		default:
			t[i] = uint16(rng.Intn(1 << 16))
		}
	}
	return t
}

func TestSlideSmallTable(t *testing.T) {
	for _, v := range namedVariants {
		s := &State{Head: []uint16{5, 0, 12}, Prev: []uint16{6, 7}, WindowSize: 6}
		v.fn(s)
		if diff := cmp.Diff([]uint16{0, 0, 6}, s.Head); diff != "" {
			t.Errorf("%s: Head mismatch (-want +got):\n%s", v.name, diff)
		}
		if diff := cmp.Diff([]uint16{0, 1}, s.Prev); diff != "" {
			t.Errorf("%s: Prev mismatch (-want +got):\n%s", v.name, diff)
		}
	}
}

func TestSlideMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, v := range namedVariants {
		t.Run(v.name, func(t *testing.T) {
			for n := 0; n <= 130; n++ {
				for _, w := range windows {
					head := randomTable(rng, n)
					prev := randomTable(rng, n+3)
					wantHead, wantPrev := reference(head, w), reference(prev, w)
					s := &State{Head: head, Prev: prev, WindowSize: w}
					v.fn(s)
					if !slices.Equal(s.Head, wantHead) {
						t.Fatalf("n=%d w=%d: Head = %v, want %v", n, w, s.Head, wantHead)
					}
					if !slices.Equal(s.Prev, wantPrev) {
						t.Fatalf("n=%d w=%d: Prev = %v, want %v", n, w, s.Prev, wantPrev)
					}
				}
			}
		})
	}
}

func TestSlideAdditive(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pairs := [][2]uint32{{1, 1}, {6, 10}, {32768, 32768}, {40000, 30000}, {0, 100}, {65535, 1}}
	for _, v := range namedVariants {
		for _, p := range pairs {
			table := randomTable(rng, 100)
			twice := &State{Head: slices.Clone(table), WindowSize: p[0]}
			v.fn(twice)
			twice.WindowSize = p[1]
			v.fn(twice)
			once := &State{Head: slices.Clone(table), WindowSize: p[0] + p[1]}
			v.fn(once)
			if diff := cmp.Diff(once.Head, twice.Head); diff != "" {
				t.Errorf("%s w1=%d w2=%d: mismatch (-once +twice):\n%s", v.name, p[0], p[1], diff)
			}
		}
	}
}

func TestSubSat16(t *testing.T) {
	tests := []struct {
		x, y, want [4]uint16
	}{
		{[4]uint16{5, 0, 12, 6}, [4]uint16{6, 6, 6, 6}, [4]uint16{0, 0, 6, 0}},
		{[4]uint16{0x8000, 0x7fff, 0xffff, 1}, [4]uint16{0x8000, 0x8000, 1, 0}, [4]uint16{0, 0, 0xfffe, 1}},
		{[4]uint16{0, 0xffff, 0, 0xffff}, [4]uint16{0xffff, 0xffff, 0, 0x7fff}, [4]uint16{0, 0, 0, 0x8000}},
	}
	pack := func(a [4]uint16) uint64 {
		return uint64(a[0]) | uint64(a[1])<<16 | uint64(a[2])<<32 | uint64(a[3])<<48
	}
	for _, tt := range tests {
		if got, want := subSat16(pack(tt.x), pack(tt.y)), pack(tt.want); got != want {
			t.Errorf("subSat16(%v, %v) = %#016x, want %#016x", tt.x, tt.y, got, want)
		}
	}
}

func TestSlideDoesNotAllocate(t *testing.T) {
	s := &State{Head: make([]uint16, 1024), Prev: make([]uint16, 1024), WindowSize: 7}
	for _, v := range namedVariants {
		if allocs := testing.AllocsPerRun(10, func() { s.Slide(v.fn) }); allocs != 0 {
			t.Errorf("%s: %v allocations per slide", v.name, allocs)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		caps hwy.Capabilities
		want hwy.DispatchLevel
	}{
		{hwy.Capabilities{}, hwy.DispatchScalar},
		{hwy.Capabilities{SSE2: true, SSSE3: true, SSE41: true}, hwy.DispatchSSE2},
		{hwy.Capabilities{SSE2: true, AVX2: true}, hwy.DispatchAVX2},
		{hwy.Capabilities{SSE2: true, AVX2: true, AVX512: true, AVX512VNNI: true}, hwy.DispatchAVX512},
		{hwy.Capabilities{VSX: true}, hwy.DispatchVSX},
		{hwy.Capabilities{VX: true}, hwy.DispatchScalar},
	}
	for _, tt := range tests {
		t.Run(tt.caps.String(), func(t *testing.T) {
			fn, level := Select(tt.caps, hwy.DefaultPolicy())
			if level != tt.want {
				t.Errorf("level = %v, want %v", level, tt.want)
			}
			if fn == nil {
				t.Fatal("Select returned a nil function")
			}
		})
	}
	if got := len(Levels()); got != len(variants) {
		t.Errorf("Levels() has %d entries, want %d", got, len(variants))
	}
}

// BenchmarkSlideHash slides tables of growing size with every implemented
// level, skipping the ones the processor cannot run.
func BenchmarkSlideHash(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	caps := hwy.Detect()
	for _, level := range Levels() {
		fn, _ := For(level)
		for size := 1024; size <= 32768; size *= 2 {
			b.Run(fmt.Sprintf("%s/%d", level, size), func(b *testing.B) {
				if !level.SupportedBy(caps) {
					b.Skipf("CPU does not support %s", level)
				}
				s := &State{
					Head:       randomTable(rng, size),
					Prev:       randomTable(rng, size),
					WindowSize: uint32(size),
				}
				for b.Loop() {
					fn(s)
				}
			})
		}
	}
}
