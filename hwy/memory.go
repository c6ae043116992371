package hwy

import "unsafe"

// This file provides the load and store primitives. Pload and Pstore carry
// an alignment precondition that is part of the packet traits; it is only
// verified in hwy_debug builds. The u-suffixed variants have none.

// Pload reads NumLanes[T]() scalars from src into a packet: lane i = src[i].
// src must be aligned to Alignment bytes and hold at least NumLanes[T]()
// elements.
func Pload[T Lanes](src []T) Packet[T] {
	assertf(IsAligned(src), "Pload", "source %p not aligned to %d bytes", unsafe.SliceData(src), Alignment)
	return Ploadu(src)
}

// Ploadu is Pload without the alignment precondition.
func Ploadu[T Lanes](src []T) Packet[T] {
	n := NumLanes[T]()
	assertf(len(src) >= n, "Ploadu", "source has %d elements, need %d", len(src), n)
	src = src[:n]
	var p Packet[T]
	for i, v := range src {
		p.setBits(i, toBits(v))
	}
	return p
}

// Pstore writes the lanes of p to dst: dst[i] = lane i.
// dst must be aligned to Alignment bytes and hold at least NumLanes[T]()
// elements.
func Pstore[T Lanes](dst []T, p Packet[T]) {
	assertf(IsAligned(dst), "Pstore", "destination %p not aligned to %d bytes", unsafe.SliceData(dst), Alignment)
	Pstoreu(dst, p)
}

// Pstoreu is Pstore without the alignment precondition.
func Pstoreu[T Lanes](dst []T, p Packet[T]) {
	n := NumLanes[T]()
	assertf(len(dst) >= n, "Pstoreu", "destination has %d elements, need %d", len(dst), n)
	dst = dst[:n]
	for i := range dst {
		dst[i] = p.Lane(i)
	}
}

// PloadPartial loads min(len(src), NumLanes[T]()) elements and zeroes the
// remaining lanes. Use it for the tail of a buffer.
func PloadPartial[T Lanes](src []T) Packet[T] {
	var p Packet[T]
	n := min(len(src), NumLanes[T]())
	for i := range n {
		p.setBits(i, toBits(src[i]))
	}
	return p
}

// PstorePartial stores the first min(len(dst), NumLanes[T]()) lanes of p
// and leaves the rest of dst untouched.
func PstorePartial[T Lanes](dst []T, p Packet[T]) {
	n := min(len(dst), NumLanes[T]())
	for i := range n {
		dst[i] = p.Lane(i)
	}
}

// AlignedSlice allocates a slice of n elements whose first element is
// aligned to Alignment bytes, suitable for Pload and Pstore.
func AlignedSlice[T Lanes](n int) []T {
	pad := Alignment / sizeOf[T]()
	buf := make([]T, n+pad)
	off := 0
	for off < pad && !isAlignedPtr(unsafe.Pointer(&buf[off])) {
		off++
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s is aligned to Alignment
// bytes. An empty slice is considered aligned.
func IsAligned[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return isAlignedPtr(unsafe.Pointer(&s[0]))
}

func isAlignedPtr(p unsafe.Pointer) bool {
	return uintptr(p)%Alignment == 0
}
