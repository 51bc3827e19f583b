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

// Covariance returns the population covariance E[XY] - E[X]E[Y] of x and
// y, or NaN if they are empty. It is 0 when either series is constant.
func Covariance[T vf.Floats](x, y []T) (T, error) {
	if err := vf.CheckSameLen("stats.Covariance", "y", len(x), len(y)); err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return nan[T](), nil
	}
	if constant(x) || constant(y) {
		return 0, nil
	}
	sxy, _ := kernel.Dot(x, y)
	n := T(len(x))
	return sxy/n - (kernel.Sum(x)/n)*(kernel.Sum(y)/n), nil
}

// Correlation returns the Pearson correlation coefficient of x and y. It
// is NaN when either series is empty or constant.
func Correlation[T vf.Floats](x, y []T) (T, error) {
	if err := vf.CheckSameLen("stats.Correlation", "y", len(x), len(y)); err != nil {
		return 0, err
	}
	if len(x) == 0 || constant(x) || constant(y) {
		return nan[T](), nil
	}
	n := float64(len(x))
	sx, sy := float64(kernel.Sum(x)), float64(kernel.Sum(y))
	sxx, _ := kernel.Dot(x, x)
	syy, _ := kernel.Dot(y, y)
	sxy, _ := kernel.Dot(x, y)

	mx, my := sx/n, sy/n
	vx := float64(sxx)/n - mx*mx
	vy := float64(syy)/n - my*my
	if vx <= 0 || vy <= 0 {
		return nan[T](), nil
	}
	r := (float64(sxy)/n - mx*my) / math.Sqrt(vx*vy)
	return T(max(-1, min(1, r))), nil
}

// LinearRegression is an ordinary least squares fit y = Slope*x + Intercept.
// StdError is the standard error of the estimate, sqrt(SSE/(n-2)).
type LinearRegression[T vf.Floats] struct {
	Slope     T
	Intercept T
	RSquared  T
	StdError  T
}

// Regress fits a line through the points (x[i], y[i]). Every field is NaN
// when there are fewer than two points or x is constant. Two points give
// an exact fit with RSquared 1 and StdError 0. A constant y is fit exactly
// by a zero slope and also reports RSquared 1.
func Regress[T vf.Floats](x, y []T) (LinearRegression[T], error) {
	if err := vf.CheckSameLen("stats.Regress", "y", len(x), len(y)); err != nil {
		return LinearRegression[T]{}, err
	}
	undefined := LinearRegression[T]{Slope: nan[T](), Intercept: nan[T](), RSquared: nan[T](), StdError: nan[T]()}
	if len(x) < 2 || constant(x) {
		return undefined, nil
	}
	if constant(y) {
		return LinearRegression[T]{Slope: 0, Intercept: y[0], RSquared: 1, StdError: 0}, nil
	}

	n := float64(len(x))
	sx, sy := float64(kernel.Sum(x)), float64(kernel.Sum(y))
	sxxT, _ := kernel.Dot(x, x)
	syyT, _ := kernel.Dot(y, y)
	sxyT, _ := kernel.Dot(x, y)
	sxx, syy, sxy := float64(sxxT), float64(syyT), float64(sxyT)

	denom := n*sxx - sx*sx
	if denom <= 0 {
		return undefined, nil
	}
	slope := (n*sxy - sx*sy) / denom
	intercept := (sy - slope*sx) / n

	ssTot := syy - sy*sy/n
	sse := max(ssTot-slope*(sxy-sx*sy/n), 0)
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - sse/ssTot
	}
	stdErr := 0.0
	if len(x) > 2 {
		stdErr = math.Sqrt(sse / (n - 2))
	} else {
		r2 = 1
	}
	return LinearRegression[T]{
		Slope:     T(slope),
		Intercept: T(intercept),
		RSquared:  T(r2),
		StdError:  T(stdErr),
	}, nil
}

// Predict evaluates the fitted line at x.
func (r LinearRegression[T]) Predict(x T) T {
	return r.Slope*x + r.Intercept
}

// constant reports whether every element of x is equal. Sums of squares
// cannot decide this: for values like 0.1 they cancel to a tiny nonzero
// residue instead of 0.
func constant[T vf.Floats](x []T) bool {
	lo, hi := kernel.MinMax(x)
	return lo == hi
}
