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

// Command chunkgen generates the width-specific chunk backends of package
// chunkset from a single template.
//
// Usage:
//
//	chunkgen -output . -backends sse2,avx2
//	chunkgen -output . -backends all
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/chunkgen -output . -backends all
//
// Every backend file is named z_backend_<name>.go and contains one zero-size
// type implementing chunkset.Backend for its chunk width.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	backends   = flag.String("backends", "all", "Comma-separated backends ("+strings.Join(AvailableBackends(), ",")+") or 'all'")
	packageOut = flag.String("pkg", "chunkset", "Output package name")
)

func main() {
	flag.Parse()

	list, err := parseBackends(*backends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Backends:   list,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	fmt.Printf("Successfully generated backends: %s\n", strings.Join(names, ", "))
}

func parseBackends(s string) ([]BackendInfo, error) {
	var result []BackendInfo
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if p == "all" {
			return AllBackends(), nil
		}
		b, ok := LookupBackend(p)
		if !ok {
			return nil, fmt.Errorf("unknown backend %q", p)
		}
		result = append(result, b)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no backends specified")
	}
	return result, nil
}
