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

// Package slidehash slides the position tables of a hash-chain match finder
// when the compression window moves.
//
// A match finder records buffer positions in two tables: Head maps a hash
// bucket to the most recent position with that hash and Prev links each
// position to the previous one sharing its hash. Position 0 means "no entry".
// When the window advances by WindowSize bytes every stored position must be
// rebased, and positions that fall out of the window become 0:
//
//	e = max(e - WindowSize, 0)
//
// Base is the element-wise reference. The lane variants apply the same
// saturating subtract to 16-bit lanes packed into 64-bit words, 8, 16 or 32
// entries per step, and finish the tail with the reference loop.
package slidehash
