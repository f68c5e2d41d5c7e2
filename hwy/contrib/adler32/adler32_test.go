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
	"bytes"
	stdadler "hash/adler32"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-zng/hwy"
)

var namedVariants = []struct {
	name string
	fn   Func
}{
	{"base", Base},
	{"lanes16", Lanes16},
	{"lanes32", Lanes32},
	{"lanes64", Lanes64},
}

// patterns returns the adversarial and random inputs used for equivalence.
func patterns(n int) map[string][]byte {
	rng := rand.New(rand.NewSource(42))
	random := make([]byte, n)
	rng.Read(random)
	alternating := make([]byte, n)
	for i := range alternating {
		if i%2 == 1 {
			alternating[i] = 0xff
		}
	}
	return map[string][]byte{
		"random":      random,
		"zeros":       make([]byte, n),
		"ones":        bytes.Repeat([]byte{0xff}, n),
		"alternating": alternating,
	}
}

func TestEmptyInputReturnsSeed(t *testing.T) {
	for _, v := range namedVariants {
		for _, seed := range []uint32{0, 1, 0xdeadbeef, 0xffffffff} {
			if got := v.fn(seed, nil); got != seed {
				t.Errorf("%s(%#x, nil) = %#x, want the seed", v.name, seed, got)
			}
		}
		if got := v.fn(1, []byte{}); got != 1 {
			t.Errorf("%s(1, empty) = %#x, want 1", v.name, got)
		}
	}
}

func TestMatchesStdlib(t *testing.T) {
	for name, data := range patterns(1 << 16) {
		want := stdadler.Checksum(data)
		for _, v := range namedVariants {
			if got := Checksum(v.fn, data); got != want {
				t.Errorf("%s on %s: got %#08x, want %#08x", v.name, name, got, want)
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0x00000001},
		{"a", 0x00620062},
		{"abc", 0x024d0127},
		{"Wikipedia", 0x11e60398},
		{"message digest", 0x29750586},
	}
	for _, tt := range tests {
		for _, v := range namedVariants {
			if got := Checksum(v.fn, []byte(tt.in)); got != tt.want {
				t.Errorf("%s(%q) = %#08x, want %#08x", v.name, tt.in, got, tt.want)
			}
		}
	}
}

func TestVariantsMatchBaseAllLengths(t *testing.T) {
	data := patterns(4096)["random"]
	seeds := []uint32{1, 0, 0x12345678, 0xffffffff}
	for _, v := range namedVariants[1:] {
		t.Run(v.name, func(t *testing.T) {
			for _, seed := range seeds {
				for n := 0; n <= len(data); n++ {
					want := Base(seed, data[:n])
					if got := v.fn(seed, data[:n]); got != want {
						t.Fatalf("seed=%#x len=%d: got %#08x, want %#08x", seed, n, got, want)
					}
				}
			}
		})
	}
}

func TestVariantsMatchBaseAdversarial(t *testing.T) {
	for name, data := range patterns(4096) {
		for _, v := range namedVariants[1:] {
			for n := 0; n <= len(data); n += 7 {
				want := Base(1, data[:n])
				if got := v.fn(1, data[:n]); got != want {
					t.Fatalf("%s on %s len=%d: got %#08x, want %#08x", v.name, name, n, got, want)
				}
			}
		}
	}
}

func TestLongInputsCrossReductionBlocks(t *testing.T) {
	// Lengths around multiples of nmax exercise the block reduction.
	data := patterns(4*nmax + 200)["ones"]
	for _, n := range []int{nmax - 1, nmax, nmax + 1, 2*nmax + 63, 4*nmax + 200} {
		want := Base(0xffffffff, data[:n])
		for _, v := range namedVariants[1:] {
			if got := v.fn(0xffffffff, data[:n]); got != want {
				t.Errorf("%s len=%d: got %#08x, want %#08x", v.name, n, got, want)
			}
		}
	}
}

func TestIncrementalUpdates(t *testing.T) {
	data := patterns(10000)["random"]
	want := Base(1, data)
	for _, v := range namedVariants {
		sum := uint32(1)
		for i := 0; i < len(data); {
			n := min(1+i%97, len(data)-i)
			sum = v.fn(sum, data[i:i+n])
			i += n
		}
		if sum != want {
			t.Errorf("%s: chunked update = %#08x, want %#08x", v.name, sum, want)
		}
	}
}

func TestWordSums(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var b [8]byte
	for range 1000 {
		rng.Read(b[:])
		var wantSum, wantDot uint32
		for i, x := range b {
			wantSum += uint32(x)
			wantDot += uint32(8-i) * uint32(x)
		}
		x := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
		sum, dot := wordSums(x)
		if sum != wantSum || dot != wantDot {
			t.Fatalf("wordSums(%x) = %d, %d; want %d, %d", b, sum, dot, wantSum, wantDot)
		}
	}
	if sum, dot := wordSums(^uint64(0)); sum != 8*255 || dot != 36*255 {
		t.Errorf("wordSums(all ones) = %d, %d", sum, dot)
	}
}

func TestCombine(t *testing.T) {
	data := patterns(5000)["random"]
	for _, split := range []int{0, 1, 100, 2500, 4999, 5000} {
		a, b := data[:split], data[split:]
		got := Combine(Base(1, a), Base(1, b), int64(len(b)))
		if want := Base(1, data); got != want {
			t.Errorf("split=%d: Combine = %#08x, want %#08x", split, got, want)
		}
	}
	if got := Combine(1, 1, -1); got != 0xffffffff {
		t.Errorf("Combine with negative length = %#x", got)
	}
}

func TestCopyUpdate(t *testing.T) {
	src := patterns(300)["random"]
	for _, v := range namedVariants {
		dst := make([]byte, 200)
		got := CopyUpdate(v.fn, 1, dst, src)
		if !bytes.Equal(dst, src[:200]) {
			t.Errorf("%s: dst not copied", v.name)
		}
		if want := Base(1, src[:200]); got != want {
			t.Errorf("%s: CopyUpdate = %#08x, want %#08x", v.name, got, want)
		}
	}
}

func TestDigest(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	for _, v := range namedVariants {
		h := NewWith(v.fn)
		h.Write(data[:10])
		h.Write(data[10:])
		if got, want := h.Sum32(), stdadler.Checksum(data); got != want {
			t.Errorf("%s: Sum32 = %#08x, want %#08x", v.name, got, want)
		}
		ref := stdadler.New()
		ref.Write(data)
		if got, want := h.Sum([]byte{0xaa}), ref.Sum([]byte{0xaa}); !bytes.Equal(got, want) {
			t.Errorf("%s: Sum = %x, want %x", v.name, got, want)
		}
		h.Reset()
		if h.Sum32() != 1 {
			t.Errorf("%s: Reset did not restore the initial value", v.name)
		}
		if h.Size() != Size || h.BlockSize() != 4 {
			t.Errorf("%s: Size/BlockSize = %d/%d", v.name, h.Size(), h.BlockSize())
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		caps hwy.Capabilities
		want hwy.DispatchLevel
	}{
		{"none", hwy.Capabilities{}, hwy.DispatchScalar},
		{"sse2 only", hwy.Capabilities{SSE2: true}, hwy.DispatchScalar},
		{"ssse3", hwy.Capabilities{SSE2: true, SSSE3: true}, hwy.DispatchSSSE3},
		{"avx2", hwy.Capabilities{SSE2: true, SSSE3: true, SSE41: true, AVX2: true}, hwy.DispatchAVX2},
		{"vnni", hwy.Capabilities{AVX2: true, AVX512: true, AVX512VNNI: true}, hwy.DispatchAVX512VNNI},
		{"neon", hwy.Capabilities{NEON: true}, hwy.DispatchNEON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, level := Select(tt.caps, hwy.DefaultPolicy())
			if level != tt.want {
				t.Errorf("level = %v, want %v", level, tt.want)
			}
			if fn == nil {
				t.Fatal("Select returned a nil function")
			}
			if got := fn(1, []byte("abc")); got != 0x024d0127 {
				t.Errorf("selected function computed %#08x", got)
			}
		})
	}
	for _, l := range Levels() {
		if _, ok := For(l); !ok {
			t.Errorf("For(%v) missing", l)
		}
	}
}
