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

import "math"

// This file holds the lane-wise operations. Each one is the portable
// rendition of a single vector instruction; kernels in contrib/ are written
// only in terms of these.

// Load creates a vector from the first MaxLanes[T]() elements of src.
// If src is shorter, the vector has len(src) active lanes.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:MaxLanes[T]()], src)
	return v
}

// Load4 loads 4 consecutive vectors for 4x unrolled loops. src must hold
// at least 4*MaxLanes[T]() elements.
func Load4[T Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	lanes := MaxLanes[T]()
	return Load(src), Load(src[lanes:]), Load(src[lanes*2:]), Load(src[lanes*3:])
}

// Store writes a vector's lanes to dst, truncating to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with all lanes set to value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := 0; i < v.n; i++ {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Iota creates a vector whose lane i holds i.
func Iota[T Lanes]() Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := 0; i < v.n; i++ {
		v.data[i] = T(i)
	}
	return v
}

// GetLane returns lane i, or zero if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication. 8-bit lanes are multiplied in
// 16-bit precision and truncated, as there is no byte multiply instruction.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	mul := mulFunc[T]()
	for i := 0; i < r.n; i++ {
		r.data[i] = mul(a.data[i], b.data[i])
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// MulAdd computes a*b + c per lane.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return r
}

// Neg negates every lane. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] = -v.data[i]
	}
	return v
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	less := lessFunc[T]()
	for i := 0; i < r.n; i++ {
		if less(b.data[i], a.data[i]) {
			r.data[i] = b.data[i]
		} else {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	less := lessFunc[T]()
	for i := 0; i < r.n; i++ {
		if less(a.data[i], b.data[i]) {
			r.data[i] = b.data[i]
		} else {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Clamp limits every lane of v to [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// Abs returns the absolute value of every lane.
// Signed integers use the sign-mask identity (x ^ s) - s, so the most
// negative value maps to itself. Unsigned lanes are returned unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	switch kindOf[T]() {
	case kindFloat:
		for i := 0; i < v.n; i++ {
			v.data[i] = T(math.Abs(float64(v.data[i])))
		}
	case kindSigned:
		for i := 0; i < v.n; i++ {
			v.data[i] = T(AbsInt(int64(v.data[i])))
		}
	}
	return v
}

// AbsDiff returns |a - b| per lane. Integer lanes compute max(a,b)-min(a,b),
// which cannot overflow for unsigned types.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	if kindOf[T]() == kindFloat {
		return Abs(Sub(a, b))
	}
	return Sub(Max(a, b), Min(a, b))
}

// Sqrt computes the square root of every lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return v
}

// And performs bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// Xor performs bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] ^ b.data[i]
	}
	return r
}

// ShiftRight shifts every lane right by s bits. Signed lanes shift in copies
// of the sign bit.
func ShiftRight[T Integers](v Vec[T], s int) Vec[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] >>= s
	}
	return v
}

// ShiftLeft shifts every lane left by s bits.
func ShiftLeft[T Integers](v Vec[T], s int) Vec[T] {
	for i := 0; i < v.n; i++ {
		v.data[i] <<= s
	}
	return v
}

// ReduceSum adds all lanes with a pairwise tree: lanes [0,h) absorb lanes
// [h,n) until one remains, matching the shuffle-and-add sequence of a
// hardware horizontal reduction.
func ReduceSum[T Lanes](v Vec[T]) T {
	n := v.n
	if n == 0 {
		return 0
	}
	for n > 1 {
		h := (n + 1) / 2
		for i := 0; i+h < n; i++ {
			v.data[i] += v.data[i+h]
		}
		n = h
	}
	return v.data[0]
}

// ReduceMul multiplies all lanes with the same tree as ReduceSum.
// It returns 1 for an empty vector.
func ReduceMul[T Lanes](v Vec[T]) T {
	n := v.n
	if n == 0 {
		return 1
	}
	mul := mulFunc[T]()
	for n > 1 {
		h := (n + 1) / 2
		for i := 0; i+h < n; i++ {
			v.data[i] = mul(v.data[i], v.data[i+h])
		}
		n = h
	}
	return v.data[0]
}

// ReduceMin returns the minimum lane, or zero for an empty vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	n := v.n
	if n == 0 {
		var zero T
		return zero
	}
	less := lessFunc[T]()
	for n > 1 {
		h := (n + 1) / 2
		for i := 0; i+h < n; i++ {
			if less(v.data[i+h], v.data[i]) {
				v.data[i] = v.data[i+h]
			}
		}
		n = h
	}
	return v.data[0]
}

// ReduceMax returns the maximum lane, or zero for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	n := v.n
	if n == 0 {
		var zero T
		return zero
	}
	less := lessFunc[T]()
	for n > 1 {
		h := (n + 1) / 2
		for i := 0; i+h < n; i++ {
			if less(v.data[i], v.data[i+h]) {
				v.data[i] = v.data[i+h]
			}
		}
		n = h
	}
	return v.data[0]
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := 0; i < m.n; i++ {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	less := lessFunc[T]()
	for i := 0; i < m.n; i++ {
		if less(a.data[i], b.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return MaskOr(LessThan(a, b), Equal(a, b))
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return LessThan(b, a)
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return MaskOr(LessThan(b, a), Equal(a, b))
}

// IfThenElse selects a where the mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskLoad loads the active lanes from src; inactive lanes are zero.
// Only indices that are active are read, so src may be shorter than a
// full vector as long as it covers every active lane.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := 0; i < v.n && i < len(src); i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore writes only the active lanes of v to dst.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := 0; i < v.n && i < len(dst); i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}

// lessFunc returns the lane ordering for T. 32- and 64-bit unsigned lanes
// go through the sign-flip emulation since SSE/AVX only compare signed.
func lessFunc[T Lanes]() func(a, b T) bool {
	if kindOf[T]() == kindUnsigned {
		switch sizeOf[T]() {
		case 4:
			return func(a, b T) bool { return LessUnsigned32(uint32(a), uint32(b)) }
		case 8:
			return func(a, b T) bool { return LessUnsigned64(uint64(a), uint64(b)) }
		}
	}
	return func(a, b T) bool { return a < b }
}

// mulFunc returns the lane multiply for T.
func mulFunc[T Lanes]() func(a, b T) T {
	if sizeOf[T]() == 1 {
		if kindOf[T]() == kindSigned {
			return func(a, b T) T { return T(MulNarrowInt8(int8(a), int8(b))) }
		}
		return func(a, b T) T { return T(MulNarrowUint8(uint8(a), uint8(b))) }
	}
	return func(a, b T) T { return a * b }
}

// SlideUpLanes moves every lane up by k positions: lane i receives lane
// i-k and the lowest k lanes become zero.
func SlideUpLanes[T Lanes](v Vec[T], k int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := k; i < v.n; i++ {
		r.data[i] = v.data[i-k]
	}
	return r
}
