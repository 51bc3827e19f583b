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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-vfunc/vf"
)

var widths = []int{16, 32, 64}

// sweep runs fn for every lane width and every length in [0, 3*lanes+1].
func sweep[T vf.Lanes](t *testing.T, fn func(t *testing.T, n int)) {
	t.Helper()
	for _, w := range widths {
		restore := vf.SetWidth(w)
		lanes := vf.MaxLanes[T]()
		for n := 0; n <= 3*lanes+1; n++ {
			fn(t, n)
			if t.Failed() {
				restore()
				t.Fatalf("width %d, n %d", w, n)
			}
		}
		restore()
	}
}

func gen[T vf.Lanes](n int, f func(i int) T) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = f(i)
	}
	return x
}

func checkIntReductions[T vf.Integers](t *testing.T, f func(i int) T) {
	sweep[T](t, func(t *testing.T, n int) {
		x := gen(n, f)
		y := gen(n, func(i int) T { return f(n - i) })

		var sum, prod, sq, dot, sad T = 0, 1, 0, 0, 0
		lo, hi := vf.HighestValue[T](), vf.LowestValue[T]()
		for i, v := range x {
			sum += v
			prod *= v
			sq += v * v
			dot += v * y[i]
			if v > y[i] {
				sad += v - y[i]
			} else {
				sad += y[i] - v
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}

		if got := BaseSum(x); got != sum {
			t.Errorf("BaseSum = %v, want %v", got, sum)
		}
		if got := BaseProduct(x); got != prod {
			t.Errorf("BaseProduct = %v, want %v", got, prod)
		}
		if got := BaseSumSquares(x); got != sq {
			t.Errorf("BaseSumSquares = %v, want %v", got, sq)
		}
		if got := BaseDot(x, y); got != dot {
			t.Errorf("BaseDot = %v, want %v", got, dot)
		}
		if got := BaseSumAbsDiff(x, y); got != sad {
			t.Errorf("BaseSumAbsDiff = %v, want %v", got, sad)
		}
		if got := BaseMin(x); got != lo {
			t.Errorf("BaseMin = %v, want %v", got, lo)
		}
		if got := BaseMax(x); got != hi {
			t.Errorf("BaseMax = %v, want %v", got, hi)
		}
		if gotLo, gotHi := BaseMinMax(x); gotLo != lo || gotHi != hi {
			t.Errorf("BaseMinMax = (%v, %v), want (%v, %v)", gotLo, gotHi, lo, hi)
		}
	})
}

func TestIntReductions(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		checkIntReductions(t, func(i int) int8 { return int8(i*37 - 90) })
	})
	t.Run("uint8", func(t *testing.T) {
		checkIntReductions(t, func(i int) uint8 { return uint8(i*53 + 7) })
	})
	t.Run("int16", func(t *testing.T) {
		checkIntReductions(t, func(i int) int16 { return int16(i*1009 - 20000) })
	})
	t.Run("int32", func(t *testing.T) {
		checkIntReductions(t, func(i int) int32 { return int32(i*7919 - 100000) })
	})
	t.Run("uint32", func(t *testing.T) {
		checkIntReductions(t, func(i int) uint32 { return uint32(i) * 0x9e3779b9 })
	})
	t.Run("int64", func(t *testing.T) {
		checkIntReductions(t, func(i int) int64 { return int64(i*i) - 500 })
	})
	t.Run("uint64", func(t *testing.T) {
		checkIntReductions(t, func(i int) uint64 { return uint64(i) * 0x9e3779b97f4a7c15 })
	})
}

func TestSumConcrete(t *testing.T) {
	if got := Sum([]int64{1, 2, 3, 4, 5}); got != 15 {
		t.Errorf("Sum = %d, want 15", got)
	}
	if got := Sum([]float32{1, 2, 3, 4, 5}); got != 15 {
		t.Errorf("Sum float32 = %v, want 15", got)
	}
}

func TestEmptyReductions(t *testing.T) {
	if Sum([]int32(nil)) != 0 || Product([]int32(nil)) != 1 {
		t.Error("Sum/Product identity")
	}
	if !math.IsInf(Min([]float64(nil)), 1) || !math.IsInf(Max([]float64(nil)), -1) {
		t.Error("float Min/Max sentinels")
	}
	if Min([]uint16(nil)) != math.MaxUint16 || Max([]int16(nil)) != math.MinInt16 {
		t.Error("integer Min/Max sentinels")
	}
	if !math.IsNaN(Mean([]float64(nil))) {
		t.Error("Mean of empty slice should be NaN")
	}
}

func TestFloatReductions(t *testing.T) {
	for _, accel := range []bool{false, true} {
		restore := SetAccel(accel)
		sweep[float64](t, func(t *testing.T, n int) {
			x := gen(n, func(i int) float64 { return math.Sin(float64(i)) * 10 })
			y := gen(n, func(i int) float64 { return float64(i%7) - 3 })
			var sum, dot, sq float64
			lo, hi := math.Inf(1), math.Inf(-1)
			for i, v := range x {
				sum += v
				dot += v * y[i]
				sq += v * v
				lo, hi = min(lo, v), max(hi, v)
			}
			approx := cmpopts.EquateApprox(0, 1e-9)
			if got := Sum(x); !cmp.Equal(got, sum, approx) {
				t.Errorf("accel=%v: Sum = %v, want %v", accel, got, sum)
			}
			if got, _ := Dot(x, y); !cmp.Equal(got, dot, approx) {
				t.Errorf("accel=%v: Dot = %v, want %v", accel, got, dot)
			}
			if got := SumSquares(x); !cmp.Equal(got, sq, approx) {
				t.Errorf("accel=%v: SumSquares = %v, want %v", accel, got, sq)
			}
			if got := Min(x); got != lo {
				t.Errorf("accel=%v: Min = %v, want %v", accel, got, lo)
			}
			if got := Max(x); got != hi {
				t.Errorf("accel=%v: Max = %v, want %v", accel, got, hi)
			}
		})
		restore()
	}
}

func TestPowerSums(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}
	s1, s2, s3, s4 := PowerSums(x)
	if s1 != 28 || s2 != 140 || s3 != 784 || s4 != 4676 {
		t.Errorf("PowerSums = %v %v %v %v", s1, s2, s3, s4)
	}
	if got := Mean(x); got != 4 {
		t.Errorf("Mean = %v, want 4", got)
	}
}

func TestIntMaps(t *testing.T) {
	sweep[int8](t, func(t *testing.T, n int) {
		src := gen(n, func(i int) int8 { return int8(i*41 - 128) })
		other := gen(n, func(i int) int8 { return int8(100 - i*3) })
		want := make([]int8, n)
		dst := make([]int8, n)

		check := func(name string, run func(), ref func(i int) int8) {
			t.Helper()
			clear(dst)
			run()
			for i := range want {
				want[i] = ref(i)
			}
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
			}
		}

		check("Scale", func() { _ = Scale(dst, src, 3) }, func(i int) int8 { return src[i] * 3 })
		check("Offset", func() { _ = Offset(dst, src, -5) }, func(i int) int8 { return src[i] - 5 })
		check("Abs", func() { _ = Abs(dst, src) }, func(i int) int8 { return vf.AbsInt(src[i]) })
		check("Clamp", func() { _ = Clamp(dst, src, -10, 10) }, func(i int) int8 { return min(max(src[i], -10), 10) })
		check("Square", func() { _ = Square(dst, src) }, func(i int) int8 { return src[i] * src[i] })
		check("Negate", func() { _ = Negate(dst, src) }, func(i int) int8 { return -src[i] })
		check("Add", func() { _ = Add(dst, src, other) }, func(i int) int8 { return src[i] + other[i] })
		check("Sub", func() { _ = Sub(dst, src, other) }, func(i int) int8 { return src[i] - other[i] })
		check("Mul", func() { _ = Mul(dst, src, other) }, func(i int) int8 { return src[i] * other[i] })
	})
}

func TestFloatMaps(t *testing.T) {
	for _, accel := range []bool{false, true} {
		restore := SetAccel(accel)
		sweep[float32](t, func(t *testing.T, n int) {
			src := gen(n, func(i int) float32 { return float32(i)*0.5 - 7 })
			other := gen(n, func(i int) float32 { return float32(i%5) + 1 })
			dst := make([]float32, n)
			want := make([]float32, n)
			approx := cmpopts.EquateApprox(1e-6, 1e-6)

			check := func(name string, run func(), ref func(i int) float32) {
				t.Helper()
				clear(dst)
				run()
				for i := range want {
					want[i] = ref(i)
				}
				if diff := cmp.Diff(want, dst, approx); diff != "" {
					t.Errorf("accel=%v: %s mismatch (-want +got):\n%s", accel, name, diff)
				}
			}

			check("Scale", func() { _ = Scale(dst, src, 2) }, func(i int) float32 { return src[i] * 2 })
			check("Offset", func() { _ = Offset(dst, src, 1.5) }, func(i int) float32 { return src[i] + 1.5 })
			check("Abs", func() { _ = Abs(dst, src) }, func(i int) float32 { return float32(math.Abs(float64(src[i]))) })
			check("Sqrt", func() { _ = Sqrt(dst, other) }, func(i int) float32 { return float32(math.Sqrt(float64(other[i]))) })
			check("Square", func() { _ = Square(dst, src) }, func(i int) float32 { return src[i] * src[i] })
			check("Add", func() { _ = Add(dst, src, other) }, func(i int) float32 { return src[i] + other[i] })
			check("Sub", func() { _ = Sub(dst, src, other) }, func(i int) float32 { return src[i] - other[i] })
			check("Mul", func() { _ = Mul(dst, src, other) }, func(i int) float32 { return src[i] * other[i] })
			check("AXPY", func() { _ = AXPY(dst, 3, src, other) }, func(i int) float32 { return 3*src[i] + other[i] })
		})
		restore()
	}
}

func TestAXPYAliasing(t *testing.T) {
	for _, accel := range []bool{false, true} {
		restore := SetAccel(accel)
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{10, 20, 30, 40, 50}
		if err := AXPY(y, 2, x, y); err != nil {
			t.Fatal(err)
		}
		want := []float64{12, 24, 36, 48, 60}
		if diff := cmp.Diff(want, y); diff != "" {
			t.Errorf("accel=%v: AXPY into y (-want +got):\n%s", accel, diff)
		}
		restore()
	}
}

func TestPreconditions(t *testing.T) {
	src := []float32{1, 2, 3}
	if err := Scale(make([]float32, 2), src, 2); !errors.Is(err, vf.ErrShortBuffer) {
		t.Errorf("Scale short dst: %v", err)
	}
	if err := Add(make([]float32, 3), src, src[:2]); !errors.Is(err, vf.ErrLengthMismatch) {
		t.Errorf("Add mismatched: %v", err)
	}
	if _, err := Dot(src, src[:1]); !errors.Is(err, vf.ErrLengthMismatch) {
		t.Errorf("Dot mismatched: %v", err)
	}
	if err := Clamp(make([]int32, 3), []int32{1, 2, 3}, 5, 1); !errors.Is(err, vf.ErrInvalidArgument) {
		t.Errorf("Clamp lo > hi: %v", err)
	}
	// A longer dst is fine and its extra elements are left alone.
	dst := []float32{0, 0, 0, 9}
	if err := Scale(dst, src, 2); err != nil || dst[3] != 9 {
		t.Errorf("Scale long dst: %v %v", err, dst)
	}
}

func TestAccelInfo(t *testing.T) {
	restore := SetAccel(false)
	if Accel().Enabled {
		t.Error("SetAccel(false) left the backend enabled")
	}
	restore()
}

func BenchmarkSum(b *testing.B) {
	x := gen(4096, func(i int) float32 { return float32(i) })
	for _, accel := range []bool{false, true} {
		name := "base"
		if accel {
			name = "accel"
		}
		b.Run(name, func(b *testing.B) {
			restore := SetAccel(accel)
			defer restore()
			for b.Loop() {
				_ = Sum(x)
			}
		})
	}
}
