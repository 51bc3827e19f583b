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

import (
	"math"

	"github.com/ajroetker/go-vfunc/vf"
)

// Sum returns the sum of x, or 0 if x is empty.
//
// Example:
//
//	kernel.Sum([]int64{1, 2, 3, 4, 5}) // 15
func Sum[T vf.Lanes](x []T) T {
	switch x := any(x).(type) {
	case []float32:
		return any(SumFloat32(x)).(T)
	case []float64:
		return any(SumFloat64(x)).(T)
	}
	return BaseSum(x)
}

// Product returns the product of x, or 1 if x is empty.
func Product[T vf.Lanes](x []T) T {
	return BaseProduct(x)
}

// Min returns the smallest element of x, or vf.HighestValue[T]() if x is
// empty.
func Min[T vf.Lanes](x []T) T {
	switch x := any(x).(type) {
	case []float32:
		return any(MinFloat32(x)).(T)
	case []float64:
		return any(MinFloat64(x)).(T)
	}
	return BaseMin(x)
}

// Max returns the largest element of x, or vf.LowestValue[T]() if x is
// empty.
func Max[T vf.Lanes](x []T) T {
	switch x := any(x).(type) {
	case []float32:
		return any(MaxFloat32(x)).(T)
	case []float64:
		return any(MaxFloat64(x)).(T)
	}
	return BaseMax(x)
}

// MinMax returns the smallest and largest element of x in one pass.
func MinMax[T vf.Lanes](x []T) (lo, hi T) {
	return BaseMinMax(x)
}

// Mean returns the arithmetic mean of x, or NaN if x is empty.
func Mean[T vf.Floats](x []T) T {
	if len(x) == 0 {
		return T(math.NaN())
	}
	return Sum(x) / T(len(x))
}

// SumSquares returns the sum of x[i]².
func SumSquares[T vf.Lanes](x []T) T {
	return BaseSumSquares(x)
}

// PowerSums returns the sums of x, x², x³ and x⁴ in a single pass.
func PowerSums[T vf.Floats](x []T) (s1, s2, s3, s4 T) {
	return BasePowerSums(x)
}

// Dot returns the dot product of a and b.
// It returns vf.ErrLengthMismatch if the lengths differ.
func Dot[T vf.Lanes](a, b []T) (T, error) {
	if err := vf.CheckSameLen("kernel.Dot", "b", len(a), len(b)); err != nil {
		return 0, err
	}
	switch a := any(a).(type) {
	case []float32:
		return any(DotFloat32(a, any(b).([]float32))).(T), nil
	case []float64:
		return any(DotFloat64(a, any(b).([]float64))).(T), nil
	}
	return BaseDot(a, b), nil
}

// SumAbsDiff returns the sum of |a[i]-b[i]| (the L1 distance).
// It returns vf.ErrLengthMismatch if the lengths differ.
func SumAbsDiff[T vf.Lanes](a, b []T) (T, error) {
	if err := vf.CheckSameLen("kernel.SumAbsDiff", "b", len(a), len(b)); err != nil {
		return 0, err
	}
	return BaseSumAbsDiff(a, b), nil
}

// Scale computes dst[i] = src[i] * s. dst may alias src.
// It returns vf.ErrShortBuffer if len(dst) < len(src).
func Scale[T vf.Lanes](dst, src []T, s T) error {
	if err := vf.CheckDst("kernel.Scale", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	switch d := any(dst).(type) {
	case []float32:
		ScaleFloat32(d, any(src).([]float32), any(s).(float32))
	case []float64:
		ScaleFloat64(d, any(src).([]float64), any(s).(float64))
	default:
		BaseScale(dst, src, s)
	}
	return nil
}

// Offset computes dst[i] = src[i] + c. dst may alias src.
func Offset[T vf.Lanes](dst, src []T, c T) error {
	if err := vf.CheckDst("kernel.Offset", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	switch d := any(dst).(type) {
	case []float32:
		OffsetFloat32(d, any(src).([]float32), any(c).(float32))
	case []float64:
		OffsetFloat64(d, any(src).([]float64), any(c).(float64))
	default:
		BaseOffset(dst, src, c)
	}
	return nil
}

// Abs computes dst[i] = |src[i]|. For signed integers the most negative
// value maps to itself; unsigned values are copied.
func Abs[T vf.Lanes](dst, src []T) error {
	if err := vf.CheckDst("kernel.Abs", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	switch d := any(dst).(type) {
	case []float32:
		AbsFloat32(d, any(src).([]float32))
	case []float64:
		AbsFloat64(d, any(src).([]float64))
	default:
		BaseAbs(dst, src)
	}
	return nil
}

// Sqrt computes dst[i] = sqrt(src[i]).
func Sqrt[T vf.Floats](dst, src []T) error {
	if err := vf.CheckDst("kernel.Sqrt", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	switch d := any(dst).(type) {
	case []float32:
		SqrtFloat32(d, any(src).([]float32))
	case []float64:
		SqrtFloat64(d, any(src).([]float64))
	default:
		BaseSqrt(dst, src)
	}
	return nil
}

// Clamp limits every element of src to [lo, hi] and writes it to dst.
// It returns vf.ErrInvalidArgument if lo > hi.
func Clamp[T vf.Lanes](dst, src []T, lo, hi T) error {
	if err := vf.CheckDst("kernel.Clamp", "dst", len(dst), len(src)); err != nil {
		return err
	}
	if lo > hi {
		return vf.InvalidArgument("kernel.Clamp", "lo", "%v is greater than hi %v", lo, hi)
	}
	BaseClamp(dst[:len(src)], src, lo, hi)
	return nil
}

// Square computes dst[i] = src[i]².
func Square[T vf.Lanes](dst, src []T) error {
	if err := vf.CheckDst("kernel.Square", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	switch d := any(dst).(type) {
	case []float32:
		SquareFloat32(d, any(src).([]float32))
	case []float64:
		SquareFloat64(d, any(src).([]float64))
	default:
		BaseSquare(dst, src)
	}
	return nil
}

// Negate computes dst[i] = -src[i].
func Negate[T vf.Lanes](dst, src []T) error {
	if err := vf.CheckDst("kernel.Negate", "dst", len(dst), len(src)); err != nil {
		return err
	}
	BaseNegate(dst[:len(src)], src)
	return nil
}

func checkZip(op string, dst, a, b int) error {
	if err := vf.CheckSameLen(op, "b", a, b); err != nil {
		return err
	}
	return vf.CheckDst(op, "dst", dst, a)
}

// Add computes dst[i] = a[i] + b[i].
func Add[T vf.Lanes](dst, a, b []T) error {
	if err := checkZip("kernel.Add", len(dst), len(a), len(b)); err != nil {
		return err
	}
	dst = dst[:len(a)]
	switch d := any(dst).(type) {
	case []float32:
		AddFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		AddFloat64(d, any(a).([]float64), any(b).([]float64))
	default:
		BaseAdd(dst, a, b)
	}
	return nil
}

// Sub computes dst[i] = a[i] - b[i].
func Sub[T vf.Lanes](dst, a, b []T) error {
	if err := checkZip("kernel.Sub", len(dst), len(a), len(b)); err != nil {
		return err
	}
	dst = dst[:len(a)]
	switch d := any(dst).(type) {
	case []float32:
		SubFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		SubFloat64(d, any(a).([]float64), any(b).([]float64))
	default:
		BaseSub(dst, a, b)
	}
	return nil
}

// Mul computes dst[i] = a[i] * b[i]. 8-bit lanes keep the low byte of the
// product.
func Mul[T vf.Lanes](dst, a, b []T) error {
	if err := checkZip("kernel.Mul", len(dst), len(a), len(b)); err != nil {
		return err
	}
	dst = dst[:len(a)]
	switch d := any(dst).(type) {
	case []float32:
		MulFloat32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		MulFloat64(d, any(a).([]float64), any(b).([]float64))
	default:
		BaseMul(dst, a, b)
	}
	return nil
}

// AXPY computes dst[i] = alpha*x[i] + y[i]. dst may alias x or y.
func AXPY[T vf.Floats](dst []T, alpha T, x, y []T) error {
	if err := checkZip("kernel.AXPY", len(dst), len(x), len(y)); err != nil {
		return err
	}
	dst = dst[:len(x)]
	switch d := any(dst).(type) {
	case []float32:
		AXPYFloat32(d, any(alpha).(float32), any(x).([]float32), any(y).([]float32))
	case []float64:
		AXPYFloat64(d, any(alpha).(float64), any(x).([]float64), any(y).([]float64))
	default:
		BaseAXPY(dst, alpha, x, y)
	}
	return nil
}
