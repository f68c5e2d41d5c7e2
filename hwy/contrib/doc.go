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

// Package contrib groups the dispatched primitive families used by an
// LZ77/DEFLATE engine.
//
// # Subpackages
//
//   - chunkset: chunked copy and pattern fill for back-reference expansion
//   - adler32: the Adler-32 checksum
//   - slidehash: hash-chain table slide when the window moves
//   - functable: the process-wide table binding one implementation per family
//   - workerpool: segment scheduling for the parallel checksum
//
// Each family package exposes the same selection surface:
//
//	fn, ok := adler32.For(hwy.DispatchAVX2)    // a specific level
//	levels := adler32.Levels()                 // every implemented level
//	fn, level := adler32.Select(caps, policy)  // best level for a processor
//
// Most callers only need functable:
//
//	import "github.com/ajroetker/go-zng/hwy/contrib/functable"
//
//	sum := functable.Adler32(1, data)
//	pos = functable.CopyOverlap(window, pos, dist, length)
package contrib
