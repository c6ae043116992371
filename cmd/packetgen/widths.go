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
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Width describes one generated vector_<bits>.go file.
type Width struct {
	Bits     int     // 128, 256, 512
	BuildTag string  // "hwy_vec256 && !hwy_vec128", ...
	Aliases  []Alias // Packet16f, Packet8d, ...
}

// Alias is a named packet type such as Packet16f = Packet[float32].
type Alias struct {
	Name string
	Elem string
}

// Bytes returns the packet width in bytes.
func (w Width) Bytes() int {
	return w.Bits / 8
}

// aliasElems lists the lane types that get a named alias, with the
// suffix each one uses.
var aliasElems = []struct {
	elem   string
	size   int
	suffix string
}{
	{"float32", 4, "f"},
	{"float64", 8, "d"},
	{"int32", 4, "i"},
	{"int64", 8, "l"},
}

// Widths validates bits and returns one Width per entry, narrowest first.
// The widest entry is the untagged default.
func Widths(bits []int) ([]Width, error) {
	sorted := slices.Clone(bits)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, b := range sorted {
		if b < 128 || b&(b-1) != 0 {
			return nil, fmt.Errorf("width %d: must be a power of two of at least 128 bits", b)
		}
	}

	result := make([]Width, 0, len(sorted))
	for i, b := range sorted {
		w := Width{Bits: b, BuildTag: buildTag(sorted, i)}
		for _, e := range aliasElems {
			w.Aliases = append(w.Aliases, Alias{
				Name: "Packet" + strconv.Itoa(w.Bytes()/e.size) + e.suffix,
				Elem: e.elem,
			})
		}
		result = append(result, w)
	}
	return result, nil
}

// buildTag selects sorted[i]: its own tag wins over every wider width,
// and the widest width applies when no tag is set.
func buildTag(sorted []int, i int) string {
	var terms []string
	if i < len(sorted)-1 {
		terms = append(terms, tagName(sorted[i]))
	}
	for _, narrower := range sorted[:i] {
		terms = append(terms, "!"+tagName(narrower))
	}
	return strings.Join(terms, " && ")
}

func tagName(bits int) string {
	return "hwy_vec" + strconv.Itoa(bits)
}
