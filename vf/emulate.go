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

import "unsafe"

// This file holds the scalar forms of the bit tricks used to stand in for
// instructions some targets lack. The lane operations in ops.go call these,
// so a kernel gets the same bits whether it runs on a target with the
// native instruction or not.

// AbsInt returns |x| without a branch: s is all ones for negative x and
// zero otherwise, and (x ^ s) - s is the two's complement negation when s
// is set. The most negative value maps to itself.
func AbsInt[T SignedInts](x T) T {
	s := x >> (8*unsafe.Sizeof(x) - 1)
	return (x ^ s) - s
}

// AbsSigned applies AbsInt to every lane using only shift, xor and
// subtract, which is how the operation is lowered on SSE2.
func AbsSigned[T SignedInts](v Vec[T]) Vec[T] {
	var zero T
	s := ShiftRight(v, int(8*unsafe.Sizeof(zero))-1)
	return Sub(Xor(v, s), s)
}

// MulNarrowInt8 multiplies in 16-bit precision and keeps the low byte.
func MulNarrowInt8(a, b int8) int8 {
	return int8(int16(a) * int16(b))
}

// MulNarrowUint8 multiplies in 16-bit precision and keeps the low byte.
func MulNarrowUint8(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b))
}

// LessUnsigned32 compares as unsigned using a signed compare: flipping the
// sign bit of both operands maps [0, 2^32) monotonically onto
// [-2^31, 2^31).
func LessUnsigned32(a, b uint32) bool {
	const sign = 1 << 31
	return int32(a^sign) < int32(b^sign)
}

// LessUnsigned64 is the 64-bit form of LessUnsigned32.
func LessUnsigned64(a, b uint64) bool {
	const sign = 1 << 63
	return int64(a^sign) < int64(b^sign)
}

// AbsDiffUnsigned returns |a - b| as max(a,b) - min(a,b).
func AbsDiffUnsigned[T UnsignedInts](a, b T) T {
	return max(a, b) - min(a, b)
}
