//go:build hwydebug

package chunkset

// debugChecks enables precondition assertions on raw chunk accesses.
const debugChecks = true
