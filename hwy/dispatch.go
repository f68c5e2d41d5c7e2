package hwy

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents an instruction-set target a primitive can be
// specialised for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchSSSE3 indicates SSSE3 instructions (128-bit, byte shuffles and PMADDUBSW).
	DispatchSSSE3

	// DispatchSSE41 indicates SSE4.1 instructions (128-bit).
	DispatchSSE41

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 F+BW instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchAVX512VNNI indicates AVX-512 with VNNI dot-product instructions.
	DispatchAVX512VNNI

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchVSX indicates POWER8 VSX instructions (128-bit SIMD).
	DispatchVSX

	// DispatchVX indicates the s390x vector facility (128-bit SIMD).
	DispatchVX
)

var levelNames = [...]string{
	DispatchScalar:     "scalar",
	DispatchSSE2:       "sse2",
	DispatchSSSE3:      "ssse3",
	DispatchSSE41:      "sse41",
	DispatchAVX2:       "avx2",
	DispatchAVX512:     "avx512",
	DispatchAVX512VNNI: "avx512vnni",
	DispatchNEON:       "neon",
	DispatchVSX:        "vsx",
	DispatchVX:         "vx",
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// Width returns the vector register width in bytes used by the level.
// The scalar level works on 64-bit words.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX512, DispatchAVX512VNNI:
		return 64
	case DispatchAVX2:
		return 32
	case DispatchSSE2, DispatchSSSE3, DispatchSSE41, DispatchNEON, DispatchVSX, DispatchVX:
		return 16
	default:
		return 8
	}
}

// SupportedBy reports whether a processor with capabilities c can run code
// compiled for level d. The scalar level is supported everywhere.
func (d DispatchLevel) SupportedBy(c Capabilities) bool {
	switch d {
	case DispatchScalar:
		return true
	case DispatchSSE2:
		return c.SSE2
	case DispatchSSSE3:
		return c.SSSE3
	case DispatchSSE41:
		return c.SSE41
	case DispatchAVX2:
		return c.AVX2
	case DispatchAVX512:
		return c.AVX512
	case DispatchAVX512VNNI:
		return c.AVX512 && c.AVX512VNNI
	case DispatchNEON:
		return c.NEON
	case DispatchVSX:
		return c.VSX
	case DispatchVX:
		return c.VX
	default:
		return false
	}
}

// ParseLevel returns the level with the given name (case-insensitive).
func ParseLevel(name string) (DispatchLevel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return DispatchLevel(i), true
		}
	}
	return 0, false
}

// currentLevel is the widest level supported by the detected capabilities.
// Set by init() from Detect().
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

func init() {
	currentLevel = DefaultPolicy().Resolve(Detect(), nil)
	currentWidth = currentLevel.Width()
	currentName = currentLevel.String()
}

// CurrentLevel returns the widest SIMD instruction set available to this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every capability flag reads as false and all primitives use
// their scalar fallback. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return noSimd(os.Getenv)
}

func noSimd(getenv func(string) string) bool {
	val := getenv(EnvNoSimd)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
