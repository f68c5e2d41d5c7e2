//go:build amd64 && goexperiment.simd

package chunkset

// nativeSIMD reports that the AVX2 and AVX-512 backends are built from
// simd/archsimd vectors.
const nativeSIMD = true
