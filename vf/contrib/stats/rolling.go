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

package stats

import (
	"math"

	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
)

// windows validates a sliding-window request and returns the number of
// windows, len(src)-window+1.
func windows(op string, dst, src, window int) (int, error) {
	if window < 1 || window > src {
		return 0, vf.InvalidArgument(op, "window", "window %d outside [1, %d]", window, src)
	}
	out := src - window + 1
	if err := vf.CheckDst(op, "dst", dst, out); err != nil {
		return 0, err
	}
	return out, nil
}

// RollingReduce writes reduce(src[i:i+window]) to dst[i] for every window.
// Any kernel reduction works, e.g. RollingReduce(dst, x, 5, kernel.Max).
// dst must hold len(src)-window+1 values.
func RollingReduce[T vf.Lanes](dst, src []T, window int, reduce func([]T) T) error {
	out, err := windows("stats.RollingReduce", len(dst), len(src), window)
	if err != nil {
		return err
	}
	for i := range out {
		dst[i] = reduce(src[i : i+window])
	}
	return nil
}

// RollingSum writes the sum of every window. The first window is summed
// with kernel.Sum; each later one subtracts the element leaving and adds
// the one entering. The window is summed again from scratch every window
// steps, when the element leaving is Inf or NaN, and when the update
// cancels (the new sum is smaller in magnitude than the element removed),
// so rounding error cannot outlive the values that caused it.
func RollingSum[T vf.Lanes](dst, src []T, window int) error {
	out, err := windows("stats.RollingSum", len(dst), len(src), window)
	if err != nil {
		return err
	}
	if window == 1 {
		copy(dst, src)
		return nil
	}
	s := kernel.Sum(src[:window])
	dst[0] = s
	for i := 1; i < out; i++ {
		leaving := src[i-1]
		s += src[i+window-1] - leaving
		if i%window == 0 || lossy(s, leaving) {
			s = kernel.Sum(src[i : i+window])
		}
		dst[i] = s
	}
	return nil
}

// lossy reports whether subtracting leaving from a float running sum may
// have left it inexact. Integer sums are always exact.
func lossy[T vf.Lanes](sum, leaving T) bool {
	l := float64(leaving)
	if math.IsInf(l, 0) || math.IsNaN(l) {
		return true
	}
	var one T = 1
	if one/(one+one) == 0 {
		return false
	}
	return math.Abs(float64(sum)) < math.Abs(l)
}

// RollingMean writes the mean of every window. It is also the simple
// moving average.
func RollingMean[T vf.Floats](dst, src []T, window int) error {
	if err := RollingSum(dst, src, window); err != nil {
		return err
	}
	w := T(window)
	for i := range len(src) - window + 1 {
		dst[i] /= w
	}
	return nil
}

// SMA is the simple moving average; it is RollingMean.
func SMA[T vf.Floats](dst, src []T, window int) error {
	return RollingMean(dst, src, window)
}

// RollingMin writes the minimum of every window.
func RollingMin[T vf.Lanes](dst, src []T, window int) error {
	return RollingReduce(dst, src, window, kernel.Min[T])
}

// RollingMax writes the maximum of every window.
func RollingMax[T vf.Lanes](dst, src []T, window int) error {
	return RollingReduce(dst, src, window, kernel.Max[T])
}

// RollingVariance writes the population variance of every window.
func RollingVariance[T vf.Floats](dst, src []T, window int) error {
	return RollingReduce(dst, src, window, Variance[T])
}

// RollingStd writes the population standard deviation of every window.
func RollingStd[T vf.Floats](dst, src []T, window int) error {
	return RollingReduce(dst, src, window, StdDev[T])
}
