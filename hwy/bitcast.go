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
	"fmt"
	"math"
)

// This file holds the only path by which lane values cross between their
// typed view and their raw bits. Everything that needs the bits of a float
// (bitwise ops, NaN constants, logical shifts) goes through toBits/fromBits.

// BitCast reinterprets the bits of v as a value of type To.
// To and From must have the same size; BitCast panics otherwise.
//
//	BitCast[uint32](float32(1))   // 0x3F800000
//	BitCast[float64](int64(-1))   // a NaN with all bits set
func BitCast[To, From Lanes](v From) To {
	if sizeOf[To]() != sizeOf[From]() {
		panic(fmt.Sprintf("hwy: BitCast: size mismatch: %T is %d bytes, %T is %d bytes",
			v, sizeOf[From](), *new(To), sizeOf[To]()))
	}
	return fromBits[To](toBits(v))
}

// Preinterpret reinterprets the bits of p as a packet of To lanes.
//
// All packets in a build are VectorBytes wide, so the cast is always
// defined. When the lane widths differ the lane count changes accordingly:
// a Packet[int64] viewed as Packet[int32] has twice as many lanes.
func Preinterpret[To, From Lanes](p Packet[From]) Packet[To] {
	return Packet[To]{words: p.words}
}

// toBits returns the bit pattern of v zero-extended to 64 bits.
func toBits[T Lanes](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	default:
		return 0
	}
}

// fromBits builds a T from the low bits of b.
func fromBits[T Lanes](b uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(b)).(T)
	case int8:
		return any(int8(uint8(b))).(T)
	case int16:
		return any(int16(uint16(b))).(T)
	case int32:
		return any(int32(uint32(b))).(T)
	case int64:
		return any(int64(b)).(T)
	case uint8:
		return any(uint8(b)).(T)
	case uint16:
		return any(uint16(b)).(T)
	case uint32:
		return any(uint32(b)).(T)
	case uint64:
		return any(b).(T)
	default:
		return zero
	}
}

// signBit returns the bit pattern with only the lane's top bit set.
func signBit[T Lanes]() uint64 {
	return uint64(1) << (laneBits[T]() - 1)
}
