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

// reduce folds x with a lane operation and its scalar twin. It runs four
// accumulators over the bulk, a single accumulator over the remaining full
// vectors and the scalar operator over the tail.
func reduce[T vf.Lanes](x []T, identity T,
	op func(a, b vf.Vec[T]) vf.Vec[T],
	horizontal func(v vf.Vec[T]) T,
	scalar func(a, b T) T,
) T {
	acc0 := vf.Set(identity)
	acc1, acc2, acc3 := acc0, acc0, acc0
	lanes := acc0.NumLanes()

	var i int
	for ; i+4*lanes <= len(x); i += 4 * lanes {
		v0, v1, v2, v3 := vf.Load4(x[i:])
		acc0 = op(acc0, v0)
		acc1 = op(acc1, v1)
		acc2 = op(acc2, v2)
		acc3 = op(acc3, v3)
	}
	for ; i+lanes <= len(x); i += lanes {
		acc0 = op(acc0, vf.Load(x[i:]))
	}

	acc0 = op(op(acc0, acc1), op(acc2, acc3))
	result := horizontal(acc0)

	for ; i < len(x); i++ {
		result = scalar(result, x[i])
	}
	return result
}

// BaseSum returns the sum of x, or 0 if x is empty.
//
// Integer sums wrap on overflow exactly like a scalar loop would.
func BaseSum[T vf.Lanes](x []T) T {
	return reduce(x, 0, vf.Add[T], vf.ReduceSum[T], func(a, b T) T { return a + b })
}

// BaseProduct returns the product of x, or 1 if x is empty.
// 8-bit lanes multiply through the 16-bit promotion in vf.Mul.
func BaseProduct[T vf.Lanes](x []T) T {
	return reduce(x, 1, vf.Mul[T], vf.ReduceMul[T], func(a, b T) T { return a * b })
}

// BaseMin returns the smallest element of x. An empty slice yields
// vf.HighestValue[T](): +Inf for floats, the type maximum for integers.
//
// For slices containing NaN the result follows Go comparison semantics,
// where comparisons against NaN are false.
func BaseMin[T vf.Lanes](x []T) T {
	return reduce(x, vf.HighestValue[T](), vf.Min[T], vf.ReduceMin[T], func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// BaseMax returns the largest element of x. An empty slice yields
// vf.LowestValue[T]().
func BaseMax[T vf.Lanes](x []T) T {
	return reduce(x, vf.LowestValue[T](), vf.Max[T], vf.ReduceMax[T], func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// BaseMinMax returns the smallest and largest element of x in one pass.
// An empty slice yields (vf.HighestValue[T](), vf.LowestValue[T]()).
func BaseMinMax[T vf.Lanes](x []T) (lo, hi T) {
	minAcc := vf.Set(vf.HighestValue[T]())
	maxAcc := vf.Set(vf.LowestValue[T]())
	lanes := minAcc.NumLanes()

	var i int
	for ; i+lanes <= len(x); i += lanes {
		v := vf.Load(x[i:])
		minAcc = vf.Min(minAcc, v)
		maxAcc = vf.Max(maxAcc, v)
	}
	lo, hi = vf.ReduceMin(minAcc), vf.ReduceMax(maxAcc)
	for ; i < len(x); i++ {
		if x[i] < lo {
			lo = x[i]
		}
		if x[i] > hi {
			hi = x[i]
		}
	}
	return lo, hi
}
