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

// ProcessWithTail walks a buffer of size elements one packet at a time.
//
// It calls:
//   - fullFn(offset) for each full packet (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if size is not a
//     multiple of NumLanes[T]()
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := hwy.Ploadu(data[offset:])
//	        hwy.Pstoreu(out[offset:], hwy.Psqrt(v))
//	    },
//	    func(offset, count int) {
//	        v := hwy.PloadPartial(data[offset : offset+count])
//	        hwy.PstorePartial(out[offset:offset+count], hwy.Psqrt(v))
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := NumLanes[T]()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the lane count.
// This is useful for allocating buffers that will be processed in whole
// packets.
func AlignedSize[T Lanes](size int) int {
	lanes := NumLanes[T]()
	return ((size + lanes - 1) / lanes) * lanes
}
