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

// Package hwy detects the vector instruction sets of the running processor
// and ranks them as dispatch levels.
//
// Detect returns the capability set once per process. It is the only input
// of the per-family selectors under hwy/contrib, which pick one
// implementation per primitive family:
//
//	caps := hwy.Detect()
//	level := hwy.PolicyFromEnv().Resolve(caps, implemented)
//
// Three environment variables adjust detection and ranking:
//
//	HWY_NO_SIMD=1             report no capabilities (scalar everywhere)
//	HWY_DISABLE=avx512,avx2   clear individual capabilities
//	HWY_TARGETS=avx2,sse2     replace the default priority order
//
// Building with the hwydebug tag turns the buffer-margin preconditions of
// the raw-memory fast paths into panics.
package hwy
