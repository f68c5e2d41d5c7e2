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

package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

var allCaps = Capabilities{
	SSE2: true, SSSE3: true, SSE41: true, AVX2: true, AVX512: true, AVX512VNNI: true,
	NEON: true, VSX: true, VX: true,
}

func TestCapabilitiesNames(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want []string
	}{
		{"empty", Capabilities{}, nil},
		{"x86", Capabilities{SSE2: true, AVX2: true}, []string{"sse2", "avx2"}},
		{"arm64", Capabilities{NEON: true}, []string{"neon"}},
		{"all", allCaps, capabilityNames},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.caps.Names()
			if diff := cmp.Diff(tt.want, got, cmpEmpty); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
			for _, n := range got {
				if !tt.caps.Has(n) {
					t.Errorf("Has(%q) = false for a listed name", n)
				}
			}
		})
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestCapabilitiesString(t *testing.T) {
	if got := (Capabilities{}).String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
	if got := (Capabilities{SSE2: true, AVX512: true}).String(); got != "sse2,avx512" {
		t.Errorf("String() = %q, want %q", got, "sse2,avx512")
	}
}

func TestCapabilitiesWithout(t *testing.T) {
	c, err := allCaps.Without("AVX512", "avx2")
	if err != nil {
		t.Fatalf("Without: %v", err)
	}
	if c.AVX512 || c.AVX2 {
		t.Errorf("Without left flags set: %v", c)
	}
	if !c.SSE2 || !c.NEON {
		t.Errorf("Without cleared unrelated flags: %v", c)
	}

	if _, err := allCaps.Without("mmx"); err == nil {
		t.Error("Without(mmx) succeeded, want error")
	}
}

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Capabilities
	}{
		{
			name: "no overrides",
			env:  nil,
			want: allCaps,
		},
		{
			name: "no simd",
			env:  map[string]string{EnvNoSimd: "1"},
			want: Capabilities{},
		},
		{
			name: "no simd false",
			env:  map[string]string{EnvNoSimd: "false"},
			want: allCaps,
		},
		{
			name: "no simd arbitrary value",
			env:  map[string]string{EnvNoSimd: "yes please"},
			want: Capabilities{},
		},
		{
			name: "disable list",
			env:  map[string]string{EnvDisable: " avx512 , AVX2,,avx512vnni"},
			want: Capabilities{SSE2: true, SSSE3: true, SSE41: true, NEON: true, VSX: true, VX: true},
		},
		{
			name: "unknown names ignored",
			env:  map[string]string{EnvDisable: "bogus,neon"},
			want: Capabilities{
				SSE2: true, SSSE3: true, SSE41: true, AVX2: true, AVX512: true, AVX512VNNI: true,
				VSX: true, VX: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFrom(allCaps, envOf(tt.env))
			if got != tt.want {
				t.Errorf("DetectFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectIsStable(t *testing.T) {
	first := Detect()
	for range 10 {
		if got := Detect(); got != first {
			t.Fatalf("Detect() changed between calls: %v then %v", first, got)
		}
	}
}
