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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders backend files into OutputDir.
type Generator struct {
	OutputDir  string
	PackageOut string
	Backends   []BackendInfo
}

// methodDocs is shared by both templates so the two renditions of a backend
// document the same contract.
const methodDocs = `{{define "header"}}// {{.B.TypeName}} {{.B.Doc}}
type {{.B.TypeName}} struct{}

// Name returns "{{.B.Name}}".
func ({{.B.TypeName}}) Name() string { return "{{.B.Name}}" }

// Width returns the chunk width in bytes.
func ({{.B.TypeName}}) Width() int { return {{.B.Width}} }

// Supports reports whether k-byte units can be broadcast into a chunk.
func ({{.B.TypeName}}) Supports(k int) bool { return supportsUnit(k, {{.B.Width}}) }
{{end}}`

var portableTemplate = template.Must(template.New("portable").Parse(methodDocs + `// Code generated by chunkgen. DO NOT EDIT.
{{if .B.Native}}
//go:build !amd64 || !goexperiment.simd
{{end}}
package {{.Package}}

// {{.B.Alias}} is the chunk value type of {{.B.TypeName}}.
type {{.B.Alias}} = {{.B.ChunkType}}

{{template "header" .}}
// Load reads {{.B.Width}} bytes from src.
func ({{.B.TypeName}}) Load(src []byte) {{.B.Alias}} { return loadRaw[{{.B.Alias}}](src) }

// Store writes c to dst[:{{.B.Width}}].
func ({{.B.TypeName}}) Store(dst []byte, c {{.B.Alias}}) { storeRaw(dst, c) }

// Copy copies whole chunks of src[:n] to dst front to back and returns the
// number of bytes copied.
func ({{.B.TypeName}}) Copy(dst, src []byte, n int) int {
	i := 0
	for ; n-i >= {{.B.Width}}; i += {{.B.Width}} {
		storeRaw(dst[i:], loadRaw[{{.B.Alias}}](src[i:]))
	}
	return i
}

// StoreN stores c over every whole chunk of dst[:n] and returns the number of
// bytes written.
func ({{.B.TypeName}}) StoreN(dst []byte, c {{.B.Alias}}, n int) int {
	i := 0
	for ; n-i >= {{.B.Width}}; i += {{.B.Width}} {
		storeRaw(dst[i:], c)
	}
	return i
}

// Fill1 broadcasts unit[0].
func ({{.B.TypeName}}) Fill1(unit []byte) {{.B.Alias}} { return splat[{{.B.Alias}}](pattern1(unit)) }

// Fill2 broadcasts unit[:2].
func ({{.B.TypeName}}) Fill2(unit []byte) {{.B.Alias}} { return splat[{{.B.Alias}}](pattern2(unit)) }

// Fill4 broadcasts unit[:4].
func ({{.B.TypeName}}) Fill4(unit []byte) {{.B.Alias}} { return splat[{{.B.Alias}}](pattern4(unit)) }

// Fill8 broadcasts unit[:8].
func ({{.B.TypeName}}) Fill8(unit []byte) {{.B.Alias}} { return splat[{{.B.Alias}}](pattern8(unit)) }
`))

var nativeTemplate = template.Must(template.New("native").Parse(methodDocs + `// Code generated by chunkgen. DO NOT EDIT.

//go:build amd64 && goexperiment.simd

package {{.Package}}

import "simd/archsimd"

// {{.B.Alias}} is the chunk value type of {{.B.TypeName}}: one vector register
// of {{.B.Width}} bytes viewed as 64-bit lanes.
type {{.B.Alias}} = archsimd.{{.B.VecType}}

{{template "header" .}}
// Load reads {{.B.Width}} bytes from src with one unaligned vector load.
func ({{.B.TypeName}}) Load(src []byte) {{.B.Alias}} {
	if debugChecks {
		assertSpan("load", len(src), {{.B.Width}})
	}
	return archsimd.Load{{.B.ByteVecType}}Slice(src).As{{.B.VecType}}()
}

// Store writes c to dst[:{{.B.Width}}] with one unaligned vector store.
func ({{.B.TypeName}}) Store(dst []byte, c {{.B.Alias}}) {
	if debugChecks {
		assertSpan("store", len(dst), {{.B.Width}})
	}
	c.As{{.B.ByteVecType}}().StoreSlice(dst)
}

// Copy copies whole chunks of src[:n] to dst front to back and returns the
// number of bytes copied.
func ({{.B.TypeName}}) Copy(dst, src []byte, n int) int {
	i := 0
	for ; n-i >= {{.B.Width}}; i += {{.B.Width}} {
		archsimd.Load{{.B.ByteVecType}}Slice(src[i:]).StoreSlice(dst[i:])
	}
	return i
}

// StoreN stores c over every whole chunk of dst[:n] and returns the number of
// bytes written.
func ({{.B.TypeName}}) StoreN(dst []byte, c {{.B.Alias}}, n int) int {
	v := c.As{{.B.ByteVecType}}()
	i := 0
	for ; n-i >= {{.B.Width}}; i += {{.B.Width}} {
		v.StoreSlice(dst[i:])
	}
	return i
}

// Fill1 broadcasts unit[0].
func ({{.B.TypeName}}) Fill1(unit []byte) {{.B.Alias}} { return archsimd.Broadcast{{.B.VecType}}(pattern1(unit)) }

// Fill2 broadcasts unit[:2].
func ({{.B.TypeName}}) Fill2(unit []byte) {{.B.Alias}} { return archsimd.Broadcast{{.B.VecType}}(pattern2(unit)) }

// Fill4 broadcasts unit[:4].
func ({{.B.TypeName}}) Fill4(unit []byte) {{.B.Alias}} { return archsimd.Broadcast{{.B.VecType}}(pattern4(unit)) }

// Fill8 broadcasts unit[:8].
func ({{.B.TypeName}}) Fill8(unit []byte) {{.B.Alias}} { return archsimd.Broadcast{{.B.VecType}}(pattern8(unit)) }
`))

// Run writes the portable file of every backend and, for backends with a
// vector rendition, the archsimd file next to it.
func (g *Generator) Run() error {
	for _, b := range g.Backends {
		if err := g.write(b.PortableFile(), g.Render, b); err != nil {
			return err
		}
		if b.Native {
			if err := g.write(b.NativeFile(), g.RenderNative, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) write(name string, render func(BackendInfo) ([]byte, error), b BackendInfo) error {
	src, err := render(b)
	if err != nil {
		return err
	}
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Render returns the formatted source of the pure-Go backend file for b.
func (g *Generator) Render(b BackendInfo) ([]byte, error) {
	return g.render(portableTemplate, b.PortableFile(), b)
}

// RenderNative returns the formatted source of the archsimd backend file for b.
func (g *Generator) RenderNative(b BackendInfo) ([]byte, error) {
	if !b.Native {
		return nil, fmt.Errorf("backend %s has no vector rendition", b.Name)
	}
	return g.render(nativeTemplate, b.NativeFile(), b)
}

func (g *Generator) render(tmpl *template.Template, name string, b BackendInfo) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		B       BackendInfo
	}{g.PackageOut, b})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	out, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return out, nil
}
