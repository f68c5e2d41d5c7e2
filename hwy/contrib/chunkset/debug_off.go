//go:build !hwydebug

package chunkset

const debugChecks = false
