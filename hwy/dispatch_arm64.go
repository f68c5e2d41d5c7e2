//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// probe reads the raw arm64 feature bits.
//
// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
// ARMv8-A base architecture. We still check the cpu package for consistency.
func probe() Capabilities {
	return Capabilities{
		NEON: cpu.ARM64.HasASIMD,
	}
}
