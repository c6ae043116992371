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

import "math/bits"

// This file provides the bit-level primitives. Logical operations work on
// the packet words directly, which are the unsigned view of every lane type,
// so they behave identically for float and integer packets.

// Pand performs a bitwise AND of a and b.
func Pand[T Lanes](a, b Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = a.words[i] & b.words[i]
	}
	return r
}

// Por performs a bitwise OR of a and b.
func Por[T Lanes](a, b Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = a.words[i] | b.words[i]
	}
	return r
}

// Pxor performs a bitwise XOR of a and b.
func Pxor[T Lanes](a, b Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = a.words[i] ^ b.words[i]
	}
	return r
}

// Pandnot computes a AND NOT b.
func Pandnot[T Lanes](a, b Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = a.words[i] &^ b.words[i]
	}
	return r
}

// Pnot flips every bit of a.
func Pnot[T Lanes](a Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = ^a.words[i]
	}
	return r
}

// Pselect returns a where mask is set and b elsewhere.
// mask must be a mask packet; partial lanes mix the bits of a and b.
func Pselect[T Lanes](mask, a, b Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range r.words {
		r.words[i] = a.words[i]&mask.words[i] | b.words[i]&^mask.words[i]
	}
	return r
}

// ParithmeticShiftRight shifts every lane right by k bits using T's own
// shift: signed lanes are sign-extended, so -16 >> 2 is -4.
// k must be in [0, bit width of T).
func ParithmeticShiftRight[T Integers](p Packet[T], k int) Packet[T] {
	assertShift[T]("ParithmeticShiftRight", k)
	return mapLanes(p, func(x T) T { return x >> k })
}

// PlogicalShiftRight shifts the unsigned bits of every lane right by k,
// filling with zeros regardless of sign.
// k must be in [0, bit width of T).
func PlogicalShiftRight[T Integers](p Packet[T], k int) Packet[T] {
	assertShift[T]("PlogicalShiftRight", k)
	var r Packet[T]
	for i := range NumLanes[T]() {
		r.setBits(i, p.bits(i)>>k)
	}
	return r
}

// PlogicalShiftLeft shifts every lane left by k, filling with zeros.
// Bits shifted past the lane width are discarded.
// k must be in [0, bit width of T).
func PlogicalShiftLeft[T Integers](p Packet[T], k int) Packet[T] {
	assertShift[T]("PlogicalShiftLeft", k)
	var r Packet[T]
	for i := range NumLanes[T]() {
		r.setBits(i, p.bits(i)<<k)
	}
	return r
}

func assertShift[T Integers](op string, k int) {
	assertf(k >= 0 && k < int(laneBits[T]()), op, "shift %d out of range [0, %d)", k, laneBits[T]())
}

// IsMask reports whether every lane of p is all-zero or all-one.
func IsMask[T Lanes](p Packet[T]) bool {
	full := laneMask(laneBits[T]())
	for i := range NumLanes[T]() {
		if b := p.bits(i); b != 0 && b != full {
			return false
		}
	}
	return true
}

// PreduxAny reports whether any bit of mask is set.
func PreduxAny[T Lanes](mask Packet[T]) bool {
	for _, w := range mask.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// PreduxAll reports whether every bit of mask is set.
func PreduxAll[T Lanes](mask Packet[T]) bool {
	for _, w := range mask.words {
		if w != ^uint64(0) {
			return false
		}
	}
	return true
}

// CountTrue returns the number of all-one lanes in mask.
func CountTrue[T Lanes](mask Packet[T]) int {
	set := 0
	for _, w := range mask.words {
		set += bits.OnesCount64(w)
	}
	return set / int(laneBits[T]())
}
