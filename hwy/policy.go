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

package hwy

import (
	"os"
	"strings"

	"github.com/containerd/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Policy is an ordered list of dispatch levels, most preferred first.
// Resolution walks the list and picks the first level that is both supported
// by the processor and implemented by the primitive family. Levels of equal
// width are ranked purely by their position in the list.
type Policy []DispatchLevel

// defaultOrder prefers wider vectors. Within a width the more capable
// extension comes first; architectures never overlap, so the 128-bit
// targets of different ISAs cannot tie on a real processor.
var defaultOrder = Policy{
	DispatchAVX512VNNI,
	DispatchAVX512,
	DispatchAVX2,
	DispatchSSE41,
	DispatchSSSE3,
	DispatchSSE2,
	DispatchNEON,
	DispatchVSX,
	DispatchVX,
	DispatchScalar,
}

// DefaultPolicy returns the built-in priority order.
func DefaultPolicy() Policy {
	return append(Policy(nil), defaultOrder...)
}

// ParsePolicy parses a comma-separated list of level names. The scalar level
// is appended when missing so that resolution can never fail.
func ParsePolicy(s string) (Policy, error) {
	names := splitList(s)
	if len(names) == 0 {
		return nil, errors.New("empty dispatch policy")
	}
	p := make(Policy, 0, len(names)+1)
	for _, name := range names {
		level, ok := ParseLevel(name)
		if !ok {
			return nil, errors.Errorf("unknown dispatch level %q", name)
		}
		p = append(p, level)
	}
	if !lo.Contains(p, DispatchScalar) {
		p = append(p, DispatchScalar)
	}
	return p, nil
}

// PolicyFromEnv returns the policy configured through HWY_TARGETS, or the
// default policy when the variable is unset or invalid.
func PolicyFromEnv() Policy {
	return policyFrom(os.Getenv)
}

func policyFrom(getenv func(string) string) Policy {
	val := getenv(EnvTargets)
	if strings.TrimSpace(val) == "" {
		return DefaultPolicy()
	}
	p, err := ParsePolicy(val)
	if err != nil {
		log.L.WithError(errors.Wrapf(err, "parsing %s", EnvTargets)).Warn("using default dispatch policy")
		return DefaultPolicy()
	}
	return p
}

// Resolve returns the first level in p supported by c for which implemented
// reports true. A nil implemented accepts every level. The scalar level is
// returned when nothing else matches.
func (p Policy) Resolve(c Capabilities, implemented func(DispatchLevel) bool) DispatchLevel {
	for _, level := range p {
		if !level.SupportedBy(c) {
			continue
		}
		if implemented == nil || implemented(level) {
			return level
		}
	}
	return DispatchScalar
}

// String returns the policy as a comma-separated list of level names.
func (p Policy) String() string {
	return strings.Join(lo.Map(p, func(l DispatchLevel, _ int) string {
		return l.String()
	}), ",")
}
