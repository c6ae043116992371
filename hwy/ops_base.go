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

import "math"

// This file provides the generic (portable) implementations of the packet
// construction, arithmetic, comparison and reduction primitives. Lanes are
// visited one at a time through the typed view; the bit-level primitives
// live in bitops.go.

// Pzero returns a packet with every bit cleared.
func Pzero[T Lanes]() Packet[T] {
	return Packet[T]{}
}

// Ptrue returns a packet with every bit set.
//
// For integer lanes the value is -1 (signed) or the maximum (unsigned).
// For float lanes the pattern is a NaN encoding: callers may only rely on
// it being non-zero with all bits set.
func Ptrue[T Lanes]() Packet[T] {
	var p Packet[T]
	for i := range p.words {
		p.words[i] = ^uint64(0)
	}
	return p
}

// Pset1 returns a packet with every lane set to v.
func Pset1[T Lanes](v T) Packet[T] {
	return Pset1frombits[T](toBits(v))
}

// Pset1frombits returns a packet with every lane holding the low lane-width
// bits of b. Use it to build NaN payloads or sign masks without going
// through a float value.
func Pset1frombits[T Lanes](b uint64) Packet[T] {
	var p Packet[T]
	for i := range NumLanes[T]() {
		p.setBits(i, b)
	}
	return p
}

// Plset returns the packet {a, a+1, a+2, ...}.
func Plset[T Lanes](a T) Packet[T] {
	var p Packet[T]
	for i := range NumLanes[T]() {
		p.setBits(i, toBits(a+T(i)))
	}
	return p
}

// mapLanes applies f to each lane of p.
func mapLanes[T Lanes](p Packet[T], f func(T) T) Packet[T] {
	var r Packet[T]
	for i := range NumLanes[T]() {
		r.setBits(i, toBits(f(p.Lane(i))))
	}
	return r
}

// zipLanes applies f lane-wise to a and b.
func zipLanes[T Lanes](a, b Packet[T], f func(T, T) T) Packet[T] {
	var r Packet[T]
	for i := range NumLanes[T]() {
		r.setBits(i, toBits(f(a.Lane(i), b.Lane(i))))
	}
	return r
}

// maskLanes builds a mask whose lane i is all-one when pred holds.
func maskLanes[T Lanes](a, b Packet[T], pred func(T, T) bool) Packet[T] {
	var r Packet[T]
	for i := range NumLanes[T]() {
		if pred(a.Lane(i), b.Lane(i)) {
			r.setBits(i, ^uint64(0))
		}
	}
	return r
}

// Padd performs lane-wise addition.
func Padd[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T { return x + y })
}

// Psub performs lane-wise subtraction.
func Psub[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T { return x - y })
}

// Pmul performs lane-wise multiplication.
func Pmul[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T { return x * y })
}

// Pdiv performs lane-wise division.
// For integer lanes a zero divisor is a caller error and panics.
func Pdiv[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T { return x / y })
}

// Pnegate negates every lane in T's own arithmetic: two's complement for
// integers, a sign flip for floats (so +0 becomes -0).
func Pnegate[T Lanes](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return -x })
}

// Pabs returns the absolute value of every lane.
// Float lanes have their sign bit cleared, so -0 and -NaN become +0 and +NaN.
func Pabs[T Lanes](p Packet[T]) Packet[T] {
	if isFloat[T]() {
		sign := signBit[T]()
		var r Packet[T]
		for i := range NumLanes[T]() {
			r.setBits(i, p.bits(i)&^sign)
		}
		return r
	}
	return mapLanes(p, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Pmin returns the lane-wise minimum. If either lane is NaN the result
// lane is b's.
func Pmin[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Pmax returns the lane-wise maximum. If either lane is NaN the result
// lane is b's.
func Pmax[T Lanes](a, b Packet[T]) Packet[T] {
	return zipLanes(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Psqrt computes the square root of every lane.
// Negative lanes produce NaN.
func Psqrt[T Floats](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Pfloor rounds every lane towards negative infinity.
func Pfloor[T Floats](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return T(math.Floor(float64(x))) })
}

// Pceil rounds every lane towards positive infinity.
func Pceil[T Floats](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return T(math.Ceil(float64(x))) })
}

// Pround rounds every lane to the nearest integer, halfway cases away
// from zero.
func Pround[T Floats](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return T(math.Round(float64(x))) })
}

// Print rounds every lane to the nearest integer, halfway cases to even.
// This is the default IEEE 754 rounding mode.
func Print[T Floats](p Packet[T]) Packet[T] {
	return mapLanes(p, func(x T) T { return T(math.RoundToEven(float64(x))) })
}

// Pisnan returns a mask whose lanes are all-one where p holds a NaN.
// A lane is NaN exactly when it compares unequal to itself.
func Pisnan[T Floats](p Packet[T]) Packet[T] {
	return maskLanes(p, p, func(x, y T) bool { return x != y })
}

// PcmpEq returns a mask of lanes where a == b.
func PcmpEq[T Lanes](a, b Packet[T]) Packet[T] {
	return maskLanes(a, b, func(x, y T) bool { return x == y })
}

// PcmpLt returns a mask of lanes where a < b.
func PcmpLt[T Lanes](a, b Packet[T]) Packet[T] {
	return maskLanes(a, b, func(x, y T) bool { return x < y })
}

// PcmpLe returns a mask of lanes where a <= b.
func PcmpLe[T Lanes](a, b Packet[T]) Packet[T] {
	return maskLanes(a, b, func(x, y T) bool { return x <= y })
}

// PcmpLtOrNan returns a mask of lanes where a < b or either lane is NaN.
func PcmpLtOrNan[T Lanes](a, b Packet[T]) Packet[T] {
	return maskLanes(a, b, func(x, y T) bool { return !(x >= y) })
}

// Pfirst returns lane 0.
func Pfirst[T Lanes](p Packet[T]) T {
	return p.Lane(0)
}

// Predux returns the sum of all lanes.
func Predux[T Lanes](p Packet[T]) T {
	var sum T
	for i := range NumLanes[T]() {
		sum += p.Lane(i)
	}
	return sum
}

// PreduxMin returns the smallest lane.
func PreduxMin[T Lanes](p Packet[T]) T {
	m := p.Lane(0)
	for i := 1; i < NumLanes[T](); i++ {
		if v := p.Lane(i); v < m {
			m = v
		}
	}
	return m
}

// PreduxMax returns the largest lane.
func PreduxMax[T Lanes](p Packet[T]) T {
	m := p.Lane(0)
	for i := 1; i < NumLanes[T](); i++ {
		if v := p.Lane(i); v > m {
			m = v
		}
	}
	return m
}

// Pcast converts every lane value of p to To.
// The packets must have the same lane count, e.g. float32 to int32 or
// int64 to float64. Float to integer conversion truncates toward zero;
// out-of-range values are implementation-specific, as in Go.
func Pcast[To, From Lanes](p Packet[From]) Packet[To] {
	n := NumLanes[From]()
	assertf(n == NumLanes[To](), "Pcast", "lane count mismatch: %d vs %d", n, NumLanes[To]())
	var r Packet[To]
	for i := range min(n, NumLanes[To]()) {
		r.setBits(i, toBits(To(p.Lane(i))))
	}
	return r
}
