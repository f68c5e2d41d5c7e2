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
	"os"
	"strings"
	"sync"

	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Environment variables read by Detect and PolicyFromEnv.
const (
	// EnvNoSimd disables every capability when set to a truthy value.
	EnvNoSimd = "HWY_NO_SIMD"

	// EnvDisable is a comma-separated list of capability names to clear,
	// e.g. "avx512,avx2".
	EnvDisable = "HWY_DISABLE"

	// EnvTargets is a comma-separated dispatch priority order,
	// e.g. "avx2,sse2,scalar".
	EnvTargets = "HWY_TARGETS"
)

// Capabilities is the set of vector instruction-set extensions reported by
// the running processor. The zero value describes a processor with no
// extensions, on which every primitive still has a scalar implementation.
type Capabilities struct {
	SSE2       bool // x86-64 baseline, 128-bit
	SSSE3      bool // x86 supplemental SSE3
	SSE41      bool // x86 SSE4.1
	AVX2       bool // x86 256-bit integer vectors
	AVX512     bool // x86 AVX-512 F and BW
	AVX512VNNI bool // x86 AVX-512 vector neural network instructions
	NEON       bool // arm64 Advanced SIMD
	VSX        bool // POWER8 vector-scalar extension
	VX         bool // s390x vector facility
}

// capabilityNames lists the flags in the fixed order used by Names.
var capabilityNames = []string{
	"sse2", "ssse3", "sse41", "avx2", "avx512", "avx512vnni", "neon", "vsx", "vx",
}

func (c *Capabilities) flag(name string) *bool {
	switch name {
	case "sse2":
		return &c.SSE2
	case "ssse3":
		return &c.SSSE3
	case "sse41":
		return &c.SSE41
	case "avx2":
		return &c.AVX2
	case "avx512":
		return &c.AVX512
	case "avx512vnni":
		return &c.AVX512VNNI
	case "neon":
		return &c.NEON
	case "vsx":
		return &c.VSX
	case "vx":
		return &c.VX
	}
	return nil
}

// Has reports whether the named capability is set. Names are the lower-case
// forms returned by Names, e.g. "avx2".
func (c Capabilities) Has(name string) bool {
	f := c.flag(strings.ToLower(name))
	return f != nil && *f
}

// Names returns the names of all set capabilities in a fixed order.
func (c Capabilities) Names() []string {
	return lo.Filter(capabilityNames, func(name string, _ int) bool {
		return c.Has(name)
	})
}

// String returns the set capabilities as a comma-separated list.
func (c Capabilities) String() string {
	names := c.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Without returns c with the named capabilities cleared.
// It fails on the first unknown name without modifying anything.
func (c Capabilities) Without(names ...string) (Capabilities, error) {
	out := c
	for _, name := range names {
		f := out.flag(strings.ToLower(name))
		if f == nil {
			return c, errors.Errorf("unknown capability %q", name)
		}
		*f = false
	}
	return out, nil
}

// detected is the write-once capability cell. The probe runs on first use.
var detected = sync.OnceValue(func() Capabilities {
	return DetectFrom(probe(), os.Getenv)
})

// Detect returns the capabilities of the running processor after applying
// the HWY_NO_SIMD and HWY_DISABLE overrides. The probe runs once; later
// calls return the cached value and are safe from any goroutine.
func Detect() Capabilities {
	return detected()
}

// DetectFrom applies the environment overrides read through getenv to the
// raw capability set. Unknown names in HWY_DISABLE are logged and ignored.
func DetectFrom(raw Capabilities, getenv func(string) string) Capabilities {
	if noSimd(getenv) {
		return Capabilities{}
	}
	names := splitList(getenv(EnvDisable))
	if len(names) == 0 {
		return raw
	}
	out := raw
	for _, name := range names {
		c, err := out.Without(name)
		if err != nil {
			log.L.WithError(err).WithField("env", EnvDisable).Warn("ignoring capability override")
			continue
		}
		out = c
	}
	return out
}

// splitList splits a comma-separated configuration value into trimmed,
// lower-cased, de-duplicated entries.
func splitList(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.ToLower(strings.TrimSpace(p))
	})
	return lo.Uniq(lo.Compact(parts))
}
