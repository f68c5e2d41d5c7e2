//go:build !amd64 && !arm64 && !ppc64 && !ppc64le && !s390x

package hwy

// probe reports no extensions. Other architectures (wasm, riscv64, ...)
// use the scalar primitives.
func probe() Capabilities {
	return Capabilities{}
}
