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
	"github.com/ajroetker/go-vfunc/vf/contrib/sort"
)

// Quartiles holds the three quartiles of a sample and its interquartile
// range Q3 - Q1.
type Quartiles[T vf.Floats] struct {
	Q1, Median, Q3 T
	IQR            T
}

func checkP(op string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return vf.InvalidArgument(op, "p", "percentile %v outside [0, 1]", p)
	}
	return nil
}

// PercentileSorted returns the p-th percentile (p in [0, 1]) of an
// ascending slice. The rank p*(n-1) is linearly interpolated between its
// floor and ceiling neighbours. It returns NaN for an empty slice.
//
// Example:
//
//	stats.PercentileSorted([]float64{1, 2, 3, 4, 5}, 0.5) // 3
func PercentileSorted[T vf.Floats](sorted []T, p float64) (T, error) {
	if err := checkP("stats.PercentileSorted", p); err != nil {
		return 0, err
	}
	return percentileSorted(sorted, p), nil
}

func percentileSorted[T vf.Floats](sorted []T, p float64) T {
	n := len(sorted)
	if n == 0 {
		return nan[T]()
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := T(pos - float64(lo))
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// sortedCopy is the scratch buffer of the unsorted wrappers; it never
// escapes the call that made it.
func sortedCopy[T vf.Floats](x []T) []T {
	s := make([]T, len(x))
	copy(s, x)
	sort.Sort(s)
	return s
}

// Percentile is PercentileSorted over a sorted copy of x. x is not
// modified.
func Percentile[T vf.Floats](x []T, p float64) (T, error) {
	if err := checkP("stats.Percentile", p); err != nil {
		return 0, err
	}
	return percentileSorted(sortedCopy(x), p), nil
}

// MedianSorted returns the median of an ascending slice.
func MedianSorted[T vf.Floats](sorted []T) T {
	return percentileSorted(sorted, 0.5)
}

// Median returns the median of x, or NaN if x is empty.
func Median[T vf.Floats](x []T) T {
	return percentileSorted(sortedCopy(x), 0.5)
}

// QuartilesSorted returns the quartiles of an ascending slice.
func QuartilesSorted[T vf.Floats](sorted []T) Quartiles[T] {
	q := Quartiles[T]{
		Q1:     percentileSorted(sorted, 0.25),
		Median: percentileSorted(sorted, 0.5),
		Q3:     percentileSorted(sorted, 0.75),
	}
	q.IQR = q.Q3 - q.Q1
	return q
}

// QuartilesOf returns the quartiles of x. x is not modified.
func QuartilesOf[T vf.Floats](x []T) Quartiles[T] {
	return QuartilesSorted(sortedCopy(x))
}
