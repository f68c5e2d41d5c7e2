//go:build !amd64 || !goexperiment.simd

package chunkset

const nativeSIMD = false
