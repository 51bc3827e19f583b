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

// allBits returns a word with the low n bits set.
func allBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// CountTrue returns the number of active lanes.
func CountTrue[T Lanes](m Mask[T]) int {
	return bits.OnesCount64(m.bits)
}

// AllTrue returns true if all lanes are active.
func AllTrue[T Lanes](m Mask[T]) bool {
	return m.bits == allBits(m.n)
}

// AllFalse returns true if no lane is active.
func AllFalse[T Lanes](m Mask[T]) bool {
	return m.bits == 0
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[T Lanes](m Mask[T]) int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// FindLastTrue returns the index of the last active lane, or -1.
func FindLastTrue[T Lanes](m Mask[T]) int {
	if m.bits == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(m.bits)
}

// FirstN creates a mask with the first n lanes active.
func FirstN[T Lanes](n int) Mask[T] {
	lanes := MaxLanes[T]()
	n = max(0, min(n, lanes))
	return Mask[T]{bits: allBits(n), n: lanes}
}

// TailMask creates a mask with the first count lanes active. It is the
// mask used to load and store the remainder of a slice that does not fill
// a whole vector.
//
//	lanes := vf.MaxLanes[float32]()
//	if rem := len(x) % lanes; rem > 0 {
//	    m := vf.TailMask[float32](rem)
//	    v := vf.MaskLoad(m, x[len(x)-rem:])
//	    ...
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// MaskFromBits creates a mask from a bitmask integer, lane i from bit i.
func MaskFromBits[T Lanes](b uint64) Mask[T] {
	lanes := MaxLanes[T]()
	return Mask[T]{bits: b & allBits(lanes), n: lanes}
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits & b.bits, n: min(a.n, b.n)}
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits | b.bits, n: min(a.n, b.n)}
}

// MaskNot inverts the active lanes of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T]{bits: ^m.bits & allBits(m.n), n: m.n}
}
