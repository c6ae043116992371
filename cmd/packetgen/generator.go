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

var vectorTemplate = template.Must(template.New("vector").Parse(`// Code generated by packetgen. DO NOT EDIT.
{{if .BuildTag}}
//go:build {{.BuildTag}}
{{end}}
package {{.Package}}

// VectorBytes is the width in bytes of every packet in this build ({{.Bits}} bits).
const VectorBytes = {{.Bytes}}

// Named packet types of the {{.Bits}}-bit generic backend.
type (
{{- range .Aliases}}
	{{.Name}} = Packet[{{.Elem}}]
{{- end}}
)
`))

// FileName returns the name of the file generated for w.
func FileName(w Width) string {
	return fmt.Sprintf("vector_%d.go", w.Bits)
}

// Render returns the formatted source of the file for w.
func Render(pkg string, w Width) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Width
		Package string
		Bytes   int
	}{w, pkg, w.Bytes()}
	if err := vectorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", FileName(w), err)
	}

	formatted, err := imports.Process(FileName(w), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", FileName(w), err)
	}
	return formatted, nil
}

// Generate writes one file per width into outDir and returns their names.
func Generate(outDir, pkg string, bits []int) ([]string, error) {
	all, err := Widths(bits)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, w := range all {
		src, err := Render(pkg, w)
		if err != nil {
			return nil, err
		}
		filename := filepath.Join(outDir, FileName(w))
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", filename, err)
		}
		files = append(files, FileName(w))
	}
	return files, nil
}
