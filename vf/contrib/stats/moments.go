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

// PowerMoments holds the raw power sums of a sample.
type PowerMoments[T vf.Floats] struct {
	N              int
	S1, S2, S3, S4 T
}

// DescriptiveStats summarizes a sample. Variance is the population
// variance and Kurtosis is excess kurtosis (0 for a normal distribution).
type DescriptiveStats[T vf.Floats] struct {
	N        int
	Mean     T
	Variance T
	StdDev   T
	Skewness T
	Kurtosis T
	Min, Max T
}

func nan[T vf.Floats]() T {
	return T(math.NaN())
}

// Moments returns Σx, Σx², Σx³ and Σx⁴ from one pass over x.
func Moments[T vf.Floats](x []T) PowerMoments[T] {
	s1, s2, s3, s4 := kernel.PowerSums(x)
	return PowerMoments[T]{N: len(x), S1: s1, S2: s2, S3: s3, S4: s4}
}

// Mean returns the arithmetic mean, or NaN for an empty sample.
func (m PowerMoments[T]) Mean() T {
	if m.N == 0 {
		return nan[T]()
	}
	return m.S1 / T(m.N)
}

// Variance returns the population variance, or NaN for an empty sample.
// Rounding can push the raw-moment formula slightly below zero; the
// result is clamped at 0.
func (m PowerMoments[T]) Variance() T {
	if m.N == 0 {
		return nan[T]()
	}
	n := T(m.N)
	mean := m.S1 / n
	v := m.S2/n - mean*mean
	if v < 0 {
		return 0
	}
	return v
}

// Merge returns the moments of the concatenation of the two samples.
// Power sums add, so moments of disjoint ranges can be computed
// independently and merged.
func (m PowerMoments[T]) Merge(o PowerMoments[T]) PowerMoments[T] {
	return PowerMoments[T]{N: m.N + o.N, S1: m.S1 + o.S1, S2: m.S2 + o.S2, S3: m.S3 + o.S3, S4: m.S4 + o.S4}
}

// Describe computes the descriptive statistics of x. Skewness and
// kurtosis are NaN when the variance is zero; every field except N is NaN
// for an empty sample.
func Describe[T vf.Floats](x []T) DescriptiveStats[T] {
	if len(x) == 0 {
		return DescribeMoments(PowerMoments[T]{}, 0, 0)
	}
	lo, hi := kernel.MinMax(x)
	return DescribeMoments(Moments(x), lo, hi)
}

// DescribeMoments derives the descriptive statistics from power sums and
// the sample extremes.
func DescribeMoments[T vf.Floats](m PowerMoments[T], lo, hi T) DescriptiveStats[T] {
	if m.N == 0 {
		return DescriptiveStats[T]{
			Mean: nan[T](), Variance: nan[T](), StdDev: nan[T](),
			Skewness: nan[T](), Kurtosis: nan[T](), Min: nan[T](), Max: nan[T](),
		}
	}
	n := float64(m.N)
	mean := float64(m.S1) / n
	e2 := float64(m.S2) / n
	e3 := float64(m.S3) / n
	e4 := float64(m.S4) / n

	m2 := max(e2-mean*mean, 0)
	m3 := e3 - 3*mean*e2 + 2*mean*mean*mean
	m4 := e4 - 4*mean*e3 + 6*mean*mean*e2 - 3*mean*mean*mean*mean
	if lo == hi {
		// The raw sums of a constant series cancel only approximately.
		mean, m2, m3, m4 = float64(lo), 0, 0, 0
	}

	skew, kurt := math.NaN(), math.NaN()
	if m2 > 0 {
		skew = m3 / math.Pow(m2, 1.5)
		kurt = m4/(m2*m2) - 3
	}
	return DescriptiveStats[T]{
		N:        m.N,
		Mean:     T(mean),
		Variance: T(m2),
		StdDev:   T(math.Sqrt(m2)),
		Skewness: T(skew),
		Kurtosis: T(kurt),
		Min:      lo,
		Max:      hi,
	}
}

// Mean returns the arithmetic mean of x, or NaN if x is empty.
func Mean[T vf.Floats](x []T) T {
	return kernel.Mean(x)
}

// Variance returns the population variance of x. A constant x has
// variance exactly 0.
func Variance[T vf.Floats](x []T) T {
	return Describe(x).Variance
}

// StdDev returns the population standard deviation of x.
func StdDev[T vf.Floats](x []T) T {
	return T(math.Sqrt(float64(Variance(x))))
}

// SampleVariance returns the unbiased (n-1) variance of x, or NaN when x
// has fewer than two elements.
func SampleVariance[T vf.Floats](x []T) T {
	if len(x) < 2 {
		return nan[T]()
	}
	n := T(len(x))
	return Variance(x) * n / (n - 1)
}
