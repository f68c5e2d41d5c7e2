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

package adler32

import "github.com/ajroetker/go-zng/hwy/contrib/workerpool"

// DefaultSegmentSize is the segment length used by Parallel when segment <= 0.
const DefaultSegmentSize = 1 << 20

// Parallel updates adler with p by checksumming segments of p on pool and
// merging the partial sums with Combine. The result equals fn(adler, p).
// Inputs no longer than one segment are checksummed directly.
func Parallel(pool *workerpool.Pool, fn Func, adler uint32, p []byte, segment int) uint32 {
	if segment <= 0 {
		segment = DefaultSegmentSize
	}
	if len(p) <= segment {
		return fn(adler, p)
	}
	sums := make([]uint32, workerpool.NumSegments(len(p), segment))
	pool.Segments(len(p), segment, func(i, start, end int) {
		sums[i] = fn(1, p[start:end])
	})
	for i, s := range sums {
		n := min(segment, len(p)-i*segment)
		adler = Combine(adler, s, int64(n))
	}
	return adler
}
