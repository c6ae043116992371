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

import "reflect"

//go:generate go run ../cmd/packetgen -output . -widths 128,256,512

// Alignment is the byte alignment Pload and Pstore expect of their buffers.
const Alignment = VectorBytes

// UnpacketTraits describes the scalar layout of a packet type.
type UnpacketTraits struct {
	// Type is the lane scalar type.
	Type reflect.Type

	// Size is the number of lanes.
	Size int

	// Alignment is the buffer alignment, in bytes, required by Pload/Pstore.
	Alignment int

	// LaneBits is the width of one lane in bits.
	LaneBits int
}

// Traits returns the traits of Packet[T].
func Traits[T Lanes]() UnpacketTraits {
	return UnpacketTraits{
		Type:      reflect.TypeFor[T](),
		Size:      NumLanes[T](),
		Alignment: Alignment,
		LaneBits:  int(laneBits[T]()),
	}
}

// TraitsOf returns the traits of p's packet type.
func TraitsOf[T Lanes](p Packet[T]) UnpacketTraits {
	return Traits[T]()
}
