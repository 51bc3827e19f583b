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
	"os"
	"unsafe"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Concrete float implementations. They start out as the Base
// instantiations and init replaces the ones an accelerated backend covers.
var (
	SumFloat32 func(x []float32) float32    = BaseSum[float32]
	SumFloat64 func(x []float64) float64    = BaseSum[float64]
	MinFloat32 func(x []float32) float32    = BaseMin[float32]
	MinFloat64 func(x []float64) float64    = BaseMin[float64]
	MaxFloat32 func(x []float32) float32    = BaseMax[float32]
	MaxFloat64 func(x []float64) float64    = BaseMax[float64]
	DotFloat32 func(a, b []float32) float32 = BaseDot[float32]
	DotFloat64 func(a, b []float64) float64 = BaseDot[float64]

	AddFloat32 func(dst, a, b []float32) = BaseAdd[float32]
	AddFloat64 func(dst, a, b []float64) = BaseAdd[float64]
	SubFloat32 func(dst, a, b []float32) = BaseSub[float32]
	SubFloat64 func(dst, a, b []float64) = BaseSub[float64]
	MulFloat32 func(dst, a, b []float32) = BaseMul[float32]
	MulFloat64 func(dst, a, b []float64) = BaseMul[float64]

	AXPYFloat32 func(dst []float32, alpha float32, x, y []float32) = BaseAXPY[float32]
	AXPYFloat64 func(dst []float64, alpha float64, x, y []float64) = BaseAXPY[float64]

	ScaleFloat32  func(dst, src []float32, s float32) = BaseScale[float32]
	ScaleFloat64  func(dst, src []float64, s float64) = BaseScale[float64]
	OffsetFloat32 func(dst, src []float32, c float32) = BaseOffset[float32]
	OffsetFloat64 func(dst, src []float64, c float64) = BaseOffset[float64]
	AbsFloat32    func(dst, src []float32)            = BaseAbs[float32]
	AbsFloat64    func(dst, src []float64)            = BaseAbs[float64]
	SqrtFloat32   func(dst, src []float32)            = BaseSqrt[float32]
	SqrtFloat64   func(dst, src []float64)            = BaseSqrt[float64]
	SquareFloat32 func(dst, src []float32)            = BaseSquare[float32]
	SquareFloat64 func(dst, src []float64)            = BaseSquare[float64]
)

var accelEnabled bool

func init() {
	if os.Getenv("VF_NO_ACCEL") != "" {
		return
	}
	useAccel()
}

func useAccel() {
	accelEnabled = true

	SumFloat32 = vek32.Sum
	SumFloat64 = vek.Sum
	MinFloat32 = accelMinF32
	MinFloat64 = accelMinF64
	MaxFloat32 = accelMaxF32
	MaxFloat64 = accelMaxF64
	DotFloat32 = vek32.Dot
	DotFloat64 = vek.Dot

	AddFloat32 = func(dst, a, b []float32) { vek32.Add_Into(dst, a, b) }
	AddFloat64 = func(dst, a, b []float64) { vek.Add_Into(dst, a, b) }
	SubFloat32 = func(dst, a, b []float32) { vek32.Sub_Into(dst, a, b) }
	SubFloat64 = func(dst, a, b []float64) { vek.Sub_Into(dst, a, b) }
	MulFloat32 = func(dst, a, b []float32) { vek32.Mul_Into(dst, a, b) }
	MulFloat64 = func(dst, a, b []float64) { vek.Mul_Into(dst, a, b) }

	AXPYFloat32 = accelAXPYF32
	AXPYFloat64 = accelAXPYF64

	ScaleFloat32 = func(dst, src []float32, s float32) { vek32.MulNumber_Into(dst, src, s) }
	ScaleFloat64 = func(dst, src []float64, s float64) { vecmath.ScaleBlock(dst, src, s) }
	OffsetFloat32 = func(dst, src []float32, c float32) { vek32.AddNumber_Into(dst, src, c) }
	OffsetFloat64 = func(dst, src []float64, c float64) { vek.AddNumber_Into(dst, src, c) }
	AbsFloat32 = func(dst, src []float32) { vek32.Abs_Into(dst, src) }
	AbsFloat64 = func(dst, src []float64) { vek.Abs_Into(dst, src) }
	SqrtFloat32 = func(dst, src []float32) { vek32.Sqrt_Into(dst, src) }
	SqrtFloat64 = func(dst, src []float64) { vek.Sqrt_Into(dst, src) }
	SquareFloat32 = func(dst, src []float32) { vek32.Mul_Into(dst, src, src) }
	SquareFloat64 = func(dst, src []float64) { vecmath.MulBlock(dst, src, src) }
}

func useBase() {
	accelEnabled = false

	SumFloat32, SumFloat64 = BaseSum[float32], BaseSum[float64]
	MinFloat32, MinFloat64 = BaseMin[float32], BaseMin[float64]
	MaxFloat32, MaxFloat64 = BaseMax[float32], BaseMax[float64]
	DotFloat32, DotFloat64 = BaseDot[float32], BaseDot[float64]
	AddFloat32, AddFloat64 = BaseAdd[float32], BaseAdd[float64]
	SubFloat32, SubFloat64 = BaseSub[float32], BaseSub[float64]
	MulFloat32, MulFloat64 = BaseMul[float32], BaseMul[float64]
	AXPYFloat32, AXPYFloat64 = BaseAXPY[float32], BaseAXPY[float64]
	ScaleFloat32, ScaleFloat64 = BaseScale[float32], BaseScale[float64]
	OffsetFloat32, OffsetFloat64 = BaseOffset[float32], BaseOffset[float64]
	AbsFloat32, AbsFloat64 = BaseAbs[float32], BaseAbs[float64]
	SqrtFloat32, SqrtFloat64 = BaseSqrt[float32], BaseSqrt[float64]
	SquareFloat32, SquareFloat64 = BaseSquare[float32], BaseSquare[float64]
}

// SetAccel switches the float entry points between the accelerated backend
// and the Base implementations, and returns a function restoring the
// previous choice. It is meant for tests and benchmarks and must not be
// called while kernels run on other goroutines.
func SetAccel(on bool) (restore func()) {
	prev := accelEnabled
	apply := func(on bool) {
		if on {
			useAccel()
		} else {
			useBase()
		}
	}
	apply(on)
	return func() { apply(prev) }
}

// AccelInfo describes the float backend in use.
type AccelInfo struct {
	Enabled      bool     // false when VF_NO_ACCEL is set or SetAccel(false)
	Accelerated  bool     // backend runs hardware-specific code
	Architecture string   // as reported by the backend
	CPUFeatures  []string // features the backend detected
}

// Accel reports the float backend in use.
func Accel() AccelInfo {
	info := vek32.Info()
	return AccelInfo{
		Enabled:      accelEnabled,
		Accelerated:  accelEnabled && info.Acceleration,
		Architecture: info.CPUArchitecture,
		CPUFeatures:  info.CPUFeatures,
	}
}

// The backend rejects empty input for Min and Max.
func accelMinF32(x []float32) float32 {
	if len(x) == 0 {
		return float32(math.Inf(1))
	}
	return vek32.Min(x)
}

func accelMinF64(x []float64) float64 {
	if len(x) == 0 {
		return math.Inf(1)
	}
	return vek.Min(x)
}

func accelMaxF32(x []float32) float32 {
	if len(x) == 0 {
		return float32(math.Inf(-1))
	}
	return vek32.Max(x)
}

func accelMaxF64(x []float64) float64 {
	if len(x) == 0 {
		return math.Inf(-1)
	}
	return vek.Max(x)
}

// accelAXPYF64 scales x into dst and adds y in place, which clobbers y
// when it shares storage with dst.
func accelAXPYF64(dst []float64, alpha float64, x, y []float64) {
	if overlaps(dst, y) {
		BaseAXPY(dst, alpha, x, y)
		return
	}
	vecmath.ScaleBlock(dst, x, alpha)
	vecmath.AddBlockInPlace(dst, y)
}

func accelAXPYF32(dst []float32, alpha float32, x, y []float32) {
	if overlaps(dst, y) {
		BaseAXPY(dst, alpha, x, y)
		return
	}
	vek32.MulNumber_Into(dst, x, alpha)
	vek32.Add_Inplace(dst, y)
}

// overlaps reports whether a and b share any element.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
