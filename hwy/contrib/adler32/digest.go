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

import "hash"

// Size of an Adler-32 checksum in bytes.
const Size = 4

type digest struct {
	fn  Func
	sum uint32
}

// NewWith returns a hash.Hash32 computing Adler-32 with fn. The
// functable package wires it to the dispatched implementation.
func NewWith(fn Func) hash.Hash32 {
	return &digest{fn: fn, sum: 1}
}

func (d *digest) Reset() { d.sum = 1 }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 4 }

func (d *digest) Write(p []byte) (int, error) {
	if len(p) > 0 {
		d.sum = d.fn(d.sum, p)
	}
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.sum }

func (d *digest) Sum(in []byte) []byte {
	s := d.sum
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
