// Package hwy provides portable fixed-width packet operations.
//
// A Packet[T] holds VectorBytes/sizeof(T) lanes of a single scalar type.
// The lane count is fixed per build: 64-byte packets by default, 32 bytes
// with the hwy_vec256 build tag and 16 bytes with hwy_vec128. Every
// operation is a pure function that returns a new packet.
//
// Packets keep their lanes as raw bit patterns. Bitwise operations act on
// those bits directly, whatever the lane type, and every crossing between
// the floating-point and integer views goes through one bit-cast path
// (BitCast, Preinterpret) built on math.Float32bits and friends.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-packet/hwy"
//
//	a := hwy.Pload(src)
//	b := hwy.Pset1[float32](2)
//	hwy.Pstore(dst, hwy.Pmul(a, b))
//
// Masks are ordinary packets whose lanes are either all-zero or all-one:
//
//	nan := hwy.Pisnan(a)
//	clean := hwy.Pselect(nan, hwy.Pzero[float32](), a)
package hwy

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in packet lanes.
type Lanes interface {
	Floats | Integers
}

// Packet is a fixed-width vector of lanes of type T.
//
// Lanes are packed little-endian into 64-bit words: lane 0 occupies the low
// bits of the first word. Packets are comparable; == compares bit patterns,
// so two NaN lanes with identical encodings are equal.
//
// The zero value is the all-zero packet.
type Packet[T Lanes] struct {
	words [VectorBytes / 8]uint64
}

// NumLanes returns the number of lanes in this packet.
func (p Packet[T]) NumLanes() int {
	return NumLanes[T]()
}

// Lane returns the value of lane i. It panics if i is out of range.
func (p Packet[T]) Lane(i int) T {
	return fromBits[T](p.bits(i))
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and diagnostics.
func (p Packet[T]) Data() []T {
	out := make([]T, NumLanes[T]())
	for i := range out {
		out[i] = p.Lane(i)
	}
	return out
}

// String formats the lanes like a slice.
func (p Packet[T]) String() string {
	return fmt.Sprint(p.Data())
}

// bits returns the raw bits of lane i, zero-extended to 64 bits.
func (p Packet[T]) bits(i int) uint64 {
	w := laneBits[T]()
	pos := uint(i) * w
	return (p.words[pos/64] >> (pos % 64)) & laneMask(w)
}

// setBits overwrites lane i with the low laneBits of v.
func (p *Packet[T]) setBits(i int, v uint64) {
	w := laneBits[T]()
	pos := uint(i) * w
	m := laneMask(w) << (pos % 64)
	p.words[pos/64] = p.words[pos/64]&^m | (v<<(pos%64))&m
}

// NumLanes returns the lane count of Packet[T] in this build.
//
// For the default 64-byte packets:
//   - float32, int32, uint32: 16 lanes
//   - float64, int64, uint64: 8 lanes
func NumLanes[T Lanes]() int {
	return VectorBytes / sizeOf[T]()
}

func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func laneBits[T Lanes]() uint {
	return uint(sizeOf[T]()) * 8
}

func laneMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

func isFloat[T Lanes]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}
