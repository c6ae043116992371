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


// Command packetgen writes the per-width VectorBytes constant and named
// packet aliases of package hwy.
//
// Usage:
//
//	packetgen -output ./hwy -widths 128,256,512
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/packetgen -output . -widths 128,256,512
//
// One vector_<bits>.go file is written per width. The widest width is the
// default build; narrower ones are selected with the hwy_vec<bits> tags.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	widths     = flag.String("widths", "128,256,512", "Comma-separated packet widths in bits")
	packageOut = flag.String("pkg", "hwy", "Output package name")
)

func main() {
	flag.Parse()

	bits, err := parseWidths(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	files, err := Generate(*outputDir, *packageOut, bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", strings.Join(files, ", "))
}

func parseWidths(s string) ([]int, error) {
	var result []int
	for p := range strings.SplitSeq(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", p, err)
		}
		result = append(result, n)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no widths specified")
	}
	return result, nil
}
