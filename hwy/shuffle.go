package hwy

// This file provides lane permutations. They move whole lanes and never
// look at lane values, so they are exact for every lane type, NaN payloads
// included.

// Preverse reverses the order of lanes.
// [0,1,2,3] -> [3,2,1,0]
func Preverse[T Lanes](p Packet[T]) Packet[T] {
	n := NumLanes[T]()
	var r Packet[T]
	for i := range n {
		r.setBits(i, p.bits(n-1-i))
	}
	return r
}

// Pbroadcast copies lane `lane` of p to every lane. An out-of-range lane
// returns the zero packet.
func Pbroadcast[T Lanes](p Packet[T], lane int) Packet[T] {
	if lane < 0 || lane >= NumLanes[T]() {
		return Pzero[T]()
	}
	return Pset1frombits[T](p.bits(lane))
}

// Ploaddup loads NumLanes[T]()/2 elements from src and duplicates each one.
// [a0,a1,...] -> [a0,a0,a1,a1,...]
func Ploaddup[T Lanes](src []T) Packet[T] {
	half := NumLanes[T]() / 2
	assertf(len(src) >= half, "Ploaddup", "source has %d elements, need %d", len(src), half)
	var r Packet[T]
	for i, v := range src[:half] {
		r.setBits(2*i, toBits(v))
		r.setBits(2*i+1, toBits(v))
	}
	return r
}

// PinsertLane returns p with lane idx replaced by val.
// An out-of-range idx returns p unchanged.
func PinsertLane[T Lanes](p Packet[T], idx int, val T) Packet[T] {
	if idx >= 0 && idx < NumLanes[T]() {
		p.setBits(idx, toBits(val))
	}
	return p
}

// PinterleaveLower interleaves the lower halves of two packets.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func PinterleaveLower[T Lanes](a, b Packet[T]) Packet[T] {
	half := NumLanes[T]() / 2
	var r Packet[T]
	for i := range half {
		r.setBits(2*i, a.bits(i))
		r.setBits(2*i+1, b.bits(i))
	}
	return r
}

// PinterleaveUpper interleaves the upper halves of two packets.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func PinterleaveUpper[T Lanes](a, b Packet[T]) Packet[T] {
	half := NumLanes[T]() / 2
	var r Packet[T]
	for i := range half {
		r.setBits(2*i, a.bits(half+i))
		r.setBits(2*i+1, b.bits(half+i))
	}
	return r
}

// PslideUp moves every lane up (toward higher indices) by offset.
// Vacated lower lanes are zero.
// [1,2,3,4] with offset=1 -> [0,1,2,3]
func PslideUp[T Lanes](p Packet[T], offset int) Packet[T] {
	n := NumLanes[T]()
	if offset <= 0 {
		return p
	}
	var r Packet[T]
	for i := offset; i < n; i++ {
		r.setBits(i, p.bits(i-offset))
	}
	return r
}

// PslideDown moves every lane down (toward lower indices) by offset.
// Vacated upper lanes are zero.
// [1,2,3,4] with offset=1 -> [2,3,4,0]
func PslideDown[T Lanes](p Packet[T], offset int) Packet[T] {
	n := NumLanes[T]()
	if offset <= 0 {
		return p
	}
	var r Packet[T]
	for i := 0; i+offset < n; i++ {
		r.setBits(i, p.bits(i+offset))
	}
	return r
}
