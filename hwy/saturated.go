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

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the lane type's range instead of wrapping.

// PaddSat performs lane-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func PaddSat[T Integers](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, saturatedAdd[T])
}

// PsubSat performs lane-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func PsubSat[T Integers](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, saturatedSub[T])
}

// Pclamp clamps every lane of v to [lo, hi].
func Pclamp[T Lanes](v, lo, hi Packet[T]) Packet[T] {
	var r Packet[T]
	for i := range NumLanes[T]() {
		val := v.Lane(i)
		if val < lo.Lane(i) {
			val = lo.Lane(i)
		}
		if val > hi.Lane(i) {
			val = hi.Lane(i)
		}
		r.setBits(i, toBits(val))
	}
	return r
}

// PabsDiff computes |a - b| lane-wise without overflow for unsigned lanes.
func PabsDiff[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T {
		if x > y {
			return x - y
		}
		return y - x
	})
}

func isSigned[T Integers]() bool {
	var zero T
	return zero-1 < zero
}

// maxOf and minOf return the representable extremes of T.
func maxOf[T Integers]() T {
	if isSigned[T]() {
		return fromBits[T](laneMask(laneBits[T]()) >> 1)
	}
	return fromBits[T](laneMask(laneBits[T]()))
}

func minOf[T Integers]() T {
	if isSigned[T]() {
		return fromBits[T](signBit[T]())
	}
	return 0
}

func saturatedAdd[T Integers](a, b T) T {
	sum := a + b
	if !isSigned[T]() {
		if sum < a {
			return maxOf[T]()
		}
		return sum
	}
	// Overflow happened iff the sum moved against the sign of b.
	if b > 0 && sum < a {
		return maxOf[T]()
	}
	if b < 0 && sum > a {
		return minOf[T]()
	}
	return sum
}

func saturatedSub[T Integers](a, b T) T {
	diff := a - b
	if !isSigned[T]() {
		if b > a {
			return 0
		}
		return diff
	}
	if b > 0 && diff > a {
		return minOf[T]()
	}
	if b < 0 && diff < a {
		return maxOf[T]()
	}
	return diff
}
