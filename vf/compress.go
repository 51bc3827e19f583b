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

import "math/bits"

// Compress support. A vector is packed eight lanes at a time: the 8-bit
// slice of the comparison mask indexes a table listing which source lanes
// survive, in order, and the group is gathered with that permutation. This
// is the table-driven compaction vectorized query engines use in place of
// a native compress instruction.

// compressGroup is the number of lanes covered by one table entry.
const compressGroup = 8

// compressTable[m][k] is the source lane of the k-th set bit of m.
var compressTable = buildCompressTable()

func buildCompressTable() (t [256][compressGroup]uint8) {
	for m := range 256 {
		k := 0
		for lane := range compressGroup {
			if m&(1<<lane) != 0 {
				t[m][k] = uint8(lane)
				k++
			}
		}
	}
	return t
}

// CompressTable returns the permutation for an 8-lane mask and the number
// of entries in it that are valid.
func CompressTable(m uint8) ([compressGroup]uint8, int) {
	return compressTable[m], bits.OnesCount8(m)
}

// Compress packs the active lanes of v to the front. The remaining lanes
// are zero. It returns the packed vector and the number of active lanes.
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	var r Vec[T]
	r.n = v.n
	count := compressInto(r.data[:], v, mask)
	return r, count
}

// CompressStore packs the active lanes of v into dst and returns how many
// were written. dst must have room for CountTrue(mask) elements.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	return compressInto(dst, v, mask)
}

func compressInto[T Lanes](dst []T, v Vec[T], mask Mask[T]) int {
	m := mask.bits & allBits(v.n)
	count := 0
	for g := 0; m != 0; g += compressGroup {
		sel := uint8(m)
		m >>= compressGroup
		if sel == 0 {
			continue
		}
		perm := &compressTable[sel]
		k := bits.OnesCount8(sel)
		out := dst[count : count+k]
		for j := range out {
			out[j] = v.data[g+int(perm[j])]
		}
		count += k
	}
	return count
}

// CompressStoreScan is the reference form of CompressStore: it walks the
// mask one bit at a time and stores each active lane. Kernels use
// CompressStore; this exists to check it.
func CompressStoreScan[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	count := 0
	for i := 0; i < v.n; i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[count] = v.data[i]
			count++
		}
	}
	return count
}
