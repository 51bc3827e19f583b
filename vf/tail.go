// Copyright 2025 go-vfunc Authors
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

package vf

// ProcessWithTail is a helper for processing arrays that handles both full
// vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the vector width
//
// Example:
//
//	vf.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := vf.Load(data[offset:])
//	        vf.Store(vf.Add(v, v), out[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := vf.TailMask[float32](count)
//	        v := vf.MaskLoad(mask, data[offset:])
//	        vf.MaskStore(mask, vf.Add(v, v), out[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the vector width.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned[T Lanes](size int) bool {
	return size%MaxLanes[T]() == 0
}
