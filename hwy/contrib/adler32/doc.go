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

// Package adler32 provides interchangeable implementations of the Adler-32
// rolling checksum used by zlib streams.
//
// Every implementation has the signature of Func and returns exactly the
// value of the scalar reference Base for every seed and input, including the
// empty input, which returns the seed unchanged.
//
// The lane implementations mirror the structure of vectorised Adler-32: the
// input is consumed in vectors of 16, 32 or 64 bytes, each 64-bit word of a
// vector is one lane with its own byte sum, weighted sum and running prefix
// sum, and the lanes are reduced horizontally at the end of every block short
// enough that no 32-bit lane can overflow.
package adler32
