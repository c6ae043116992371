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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWidths(t *testing.T) {
	got, err := Widths([]int{512, 128, 256, 256})
	if err != nil {
		t.Fatalf("Widths failed: %v", err)
	}

	tests := []struct {
		bits     int
		buildTag string
		first    string
	}{
		{128, "hwy_vec128", "Packet4f"},
		{256, "hwy_vec256 && !hwy_vec128", "Packet8f"},
		{512, "!hwy_vec128 && !hwy_vec256", "Packet16f"},
	}

	if len(got) != len(tests) {
		t.Fatalf("Widths returned %d entries, want %d", len(got), len(tests))
	}
	for i, tt := range tests {
		if got[i].Bits != tt.bits {
			t.Errorf("Widths[%d].Bits = %d, want %d", i, got[i].Bits, tt.bits)
		}
		if got[i].BuildTag != tt.buildTag {
			t.Errorf("Widths[%d].BuildTag = %q, want %q", i, got[i].BuildTag, tt.buildTag)
		}
		if got[i].Aliases[0].Name != tt.first {
			t.Errorf("Widths[%d] first alias = %q, want %q", i, got[i].Aliases[0].Name, tt.first)
		}
	}
}

func TestWidthsInvalid(t *testing.T) {
	for _, bits := range []int{64, 200, 0} {
		if _, err := Widths([]int{bits}); err == nil {
			t.Errorf("Widths(%d): expected error", bits)
		}
	}
}

func TestWidthsSingle(t *testing.T) {
	got, err := Widths([]int{256})
	if err != nil {
		t.Fatalf("Widths failed: %v", err)
	}
	if got[0].BuildTag != "" {
		t.Errorf("single width BuildTag = %q, want empty", got[0].BuildTag)
	}

	src, err := Render("hwy", got[0])
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(src), "go:build") {
		t.Errorf("single width output has a build constraint:\n%s", src)
	}
}

func TestParseWidths(t *testing.T) {
	got, err := parseWidths(" 128, 512 ,")
	if err != nil {
		t.Fatalf("parseWidths failed: %v", err)
	}
	if len(got) != 2 || got[0] != 128 || got[1] != 512 {
		t.Errorf("parseWidths = %v, want [128 512]", got)
	}

	if _, err := parseWidths("wide"); err == nil {
		t.Error("parseWidths(\"wide\"): expected error")
	}
	if _, err := parseWidths(""); err == nil {
		t.Error("parseWidths(\"\"): expected error")
	}
}

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()

	files, err := Generate(tmpDir, "simd", []int{128, 512})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Generate wrote %d files, want 2", len(files))
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "vector_512.go"))
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	src := string(content)

	for _, want := range []string{
		"// Code generated by packetgen. DO NOT EDIT.",
		"//go:build !hwy_vec128\n",
		"package simd",
		"const VectorBytes = 64",
		"Packet16f = Packet[float32]",
		"Packet8l  = Packet[int64]",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("vector_512.go missing %q:\n%s", want, src)
		}
	}
}

// TestCheckedInFilesUpToDate fails when hwy/vector_*.go drift from the
// generator output.
func TestCheckedInFilesUpToDate(t *testing.T) {
	all, err := Widths([]int{128, 256, 512})
	if err != nil {
		t.Fatalf("Widths failed: %v", err)
	}

	for _, w := range all {
		t.Run(FileName(w), func(t *testing.T) {
			want, err := Render("hwy", w)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			got, err := os.ReadFile(filepath.Join("..", "..", "hwy", FileName(w)))
			if err != nil {
				t.Fatalf("Failed to read checked-in file: %v", err)
			}
			if string(got) != string(want) {
				t.Errorf("%s is stale; run go generate ./hwy\ngot:\n%s\nwant:\n%s", FileName(w), got, want)
			}
		})
	}
}
