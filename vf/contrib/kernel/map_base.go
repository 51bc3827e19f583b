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

package kernel

import "github.com/ajroetker/go-vfunc/vf"

// mapLanes applies op to every full vector of src and to the remainder
// through a tail mask, so the last partial vector goes through the same
// lane operation. len(dst) must be at least len(src).
func mapLanes[T vf.Lanes](dst, src []T, op func(v vf.Vec[T]) vf.Vec[T]) {
	vf.ProcessWithTail[T](len(src),
		func(offset int) {
			op(vf.Load(src[offset:])).Store(dst[offset:])
		},
		func(offset, count int) {
			mask := vf.TailMask[T](count)
			vf.MaskStore(mask, op(vf.MaskLoad(mask, src[offset:])), dst[offset:])
		},
	)
}

// BaseScale computes dst[i] = src[i] * s.
func BaseScale[T vf.Lanes](dst, src []T, s T) {
	sv := vf.Set(s)
	mapLanes(dst, src, func(v vf.Vec[T]) vf.Vec[T] { return vf.Mul(v, sv) })
}

// BaseOffset computes dst[i] = src[i] + c.
func BaseOffset[T vf.Lanes](dst, src []T, c T) {
	cv := vf.Set(c)
	mapLanes(dst, src, func(v vf.Vec[T]) vf.Vec[T] { return vf.Add(v, cv) })
}

// BaseAbs computes dst[i] = |src[i]|. The most negative signed value maps
// to itself.
func BaseAbs[T vf.Lanes](dst, src []T) {
	mapLanes(dst, src, vf.Abs[T])
}

// BaseSqrt computes dst[i] = sqrt(src[i]).
func BaseSqrt[T vf.Floats](dst, src []T) {
	mapLanes(dst, src, vf.Sqrt[T])
}

// BaseClamp limits every element to [lo, hi].
func BaseClamp[T vf.Lanes](dst, src []T, lo, hi T) {
	lv, hv := vf.Set(lo), vf.Set(hi)
	mapLanes(dst, src, func(v vf.Vec[T]) vf.Vec[T] { return vf.Clamp(v, lv, hv) })
}

// BaseSquare computes dst[i] = src[i] * src[i].
func BaseSquare[T vf.Lanes](dst, src []T) {
	mapLanes(dst, src, func(v vf.Vec[T]) vf.Vec[T] { return vf.Mul(v, v) })
}

// BaseNegate computes dst[i] = -src[i]. Unsigned values wrap.
func BaseNegate[T vf.Lanes](dst, src []T) {
	mapLanes(dst, src, vf.Neg[T])
}

// zipLanes is mapLanes for two inputs of equal length.
func zipLanes[T vf.Lanes](dst, a, b []T, op func(x, y vf.Vec[T]) vf.Vec[T]) {
	vf.ProcessWithTail[T](len(a),
		func(offset int) {
			op(vf.Load(a[offset:]), vf.Load(b[offset:])).Store(dst[offset:])
		},
		func(offset, count int) {
			mask := vf.TailMask[T](count)
			x := vf.MaskLoad(mask, a[offset:])
			y := vf.MaskLoad(mask, b[offset:])
			vf.MaskStore(mask, op(x, y), dst[offset:])
		},
	)
}

// BaseAdd computes dst[i] = a[i] + b[i].
func BaseAdd[T vf.Lanes](dst, a, b []T) {
	zipLanes(dst, a, b, vf.Add[T])
}

// BaseSub computes dst[i] = a[i] - b[i].
func BaseSub[T vf.Lanes](dst, a, b []T) {
	zipLanes(dst, a, b, vf.Sub[T])
}

// BaseMul computes dst[i] = a[i] * b[i].
func BaseMul[T vf.Lanes](dst, a, b []T) {
	zipLanes(dst, a, b, vf.Mul[T])
}

// BaseAXPY computes dst[i] = alpha*x[i] + y[i].
func BaseAXPY[T vf.Floats](dst []T, alpha T, x, y []T) {
	av := vf.Set(alpha)
	zipLanes(dst, x, y, func(xv, yv vf.Vec[T]) vf.Vec[T] { return vf.MulAdd(av, xv, yv) })
}
