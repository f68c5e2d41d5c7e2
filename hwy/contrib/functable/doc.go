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

// Package functable binds one implementation of each primitive family to the
// running processor.
//
// Select is the pure selection function: given a capability set and a
// dispatch policy it picks, independently for the chunk copier, the Adler-32
// checksum and the hash slide, the first policy level that the processor
// supports and the family implements. The scalar level is implemented by
// every family, so selection never fails.
//
// Get returns the process-wide Table. It is built on first use from
// hwy.Detect and the HWY_TARGETS policy and never changes afterwards, so the
// package-level functions below may be called from any goroutine.
//
// Example:
//
//	window := make([]byte, size+functable.ChunkSize()-1)
//	pos = functable.CopyOverlap(window, pos, dist, length)
//	sum := functable.Adler32(1, window[:pos])
package functable
