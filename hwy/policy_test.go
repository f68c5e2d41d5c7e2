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
)

func TestParseLevel(t *testing.T) {
	for i, name := range levelNames {
		level, ok := ParseLevel(name)
		if !ok || level != DispatchLevel(i) {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, true", name, level, ok, DispatchLevel(i))
		}
		if got := level.String(); got != name {
			t.Errorf("String() = %q, want %q", got, name)
		}
	}
	if _, ok := ParseLevel("AVX2 "); !ok {
		t.Error("ParseLevel should trim and ignore case")
	}
	if _, ok := ParseLevel("mmx"); ok {
		t.Error("ParseLevel(mmx) succeeded")
	}
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

func TestLevelWidth(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  int
	}{
		{DispatchScalar, 8},
		{DispatchSSE2, 16},
		{DispatchNEON, 16},
		{DispatchVSX, 16},
		{DispatchAVX2, 32},
		{DispatchAVX512, 64},
		{DispatchAVX512VNNI, 64},
	}
	for _, tt := range tests {
		if got := tt.level.Width(); got != tt.want {
			t.Errorf("%v.Width() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPolicyResolve(t *testing.T) {
	x86 := Capabilities{SSE2: true, SSSE3: true, SSE41: true, AVX2: true}
	tests := []struct {
		name        string
		policy      Policy
		caps        Capabilities
		implemented []DispatchLevel
		want        DispatchLevel
	}{
		{"empty caps", DefaultPolicy(), Capabilities{}, nil, DispatchScalar},
		{"widest wins", DefaultPolicy(), x86, nil, DispatchAVX2},
		{"family gap", DefaultPolicy(), x86, []DispatchLevel{DispatchSSE2, DispatchScalar}, DispatchSSE2},
		{"vnni needs avx512", DefaultPolicy(), Capabilities{AVX512VNNI: true}, nil, DispatchScalar},
		{"arm", DefaultPolicy(), Capabilities{NEON: true}, nil, DispatchNEON},
		{"custom order", Policy{DispatchSSE2, DispatchAVX2}, x86, nil, DispatchSSE2},
		{"nothing implemented", DefaultPolicy(), x86, []DispatchLevel{}, DispatchScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var impl func(DispatchLevel) bool
			if tt.implemented != nil {
				impl = func(l DispatchLevel) bool {
					for _, x := range tt.implemented {
						if x == l {
							return true
						}
					}
					return false
				}
			}
			if got := tt.policy.Resolve(tt.caps, impl); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("sse2, AVX2,sse2")
	if err != nil {
		t.Fatalf("ParsePolicy: %v", err)
	}
	if got, want := p.String(), "sse2,avx2,scalar"; got != want {
		t.Errorf("policy = %q, want %q", got, want)
	}

	if _, err := ParsePolicy(" , "); err == nil {
		t.Error("ParsePolicy of empty list succeeded")
	}
	if _, err := ParsePolicy("avx2,mmx"); err == nil {
		t.Error("ParsePolicy with unknown level succeeded")
	}
}

func TestPolicyFromEnv(t *testing.T) {
	def := DefaultPolicy().String()
	tests := []struct {
		val  string
		want string
	}{
		{"", def},
		{"neon,scalar", "neon,scalar"},
		{"bogus", def},
	}
	for _, tt := range tests {
		got := policyFrom(envOf(map[string]string{EnvTargets: tt.val})).String()
		if got != tt.want {
			t.Errorf("policyFrom(%q) = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if !CurrentLevel().SupportedBy(Detect()) {
		t.Errorf("CurrentLevel() = %v is not supported by %v", CurrentLevel(), Detect())
	}
	if CurrentWidth() != CurrentLevel().Width() {
		t.Errorf("CurrentWidth() = %d, want %d", CurrentWidth(), CurrentLevel().Width())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
}
