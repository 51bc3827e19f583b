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

// fold2 is reduce for two equally long inputs: the lanes of a and b are
// combined by pair and summed into four accumulators.
func fold2[T vf.Lanes](a, b []T,
	pair func(x, y vf.Vec[T]) vf.Vec[T],
	scalar func(x, y T) T,
) T {
	n := min(len(a), len(b))
	acc0 := vf.Zero[T]()
	acc1, acc2, acc3 := acc0, acc0, acc0
	lanes := acc0.NumLanes()

	var i int
	for ; i+4*lanes <= n; i += 4 * lanes {
		a0, a1, a2, a3 := vf.Load4(a[i:])
		b0, b1, b2, b3 := vf.Load4(b[i:])
		acc0 = vf.Add(acc0, pair(a0, b0))
		acc1 = vf.Add(acc1, pair(a1, b1))
		acc2 = vf.Add(acc2, pair(a2, b2))
		acc3 = vf.Add(acc3, pair(a3, b3))
	}
	for ; i+lanes <= n; i += lanes {
		acc0 = vf.Add(acc0, pair(vf.Load(a[i:]), vf.Load(b[i:])))
	}

	acc0 = vf.Add(vf.Add(acc0, acc1), vf.Add(acc2, acc3))
	result := vf.ReduceSum(acc0)

	for ; i < n; i++ {
		result += scalar(a[i], b[i])
	}
	return result
}

// BaseDot returns the sum of a[i]*b[i] over the common prefix of a and b.
func BaseDot[T vf.Lanes](a, b []T) T {
	return fold2(a, b, vf.Mul[T], func(x, y T) T { return x * y })
}

// BaseSumSquares returns the sum of x[i]*x[i].
func BaseSumSquares[T vf.Lanes](x []T) T {
	return fold2(x, x, vf.Mul[T], func(x, y T) T { return x * y })
}

// BaseSumAbsDiff returns the sum of |a[i]-b[i]| over the common prefix.
// Integer lanes use max-min, so unsigned inputs never underflow.
func BaseSumAbsDiff[T vf.Lanes](a, b []T) T {
	return fold2(a, b, vf.AbsDiff[T], func(x, y T) T {
		if x > y {
			return x - y
		}
		return y - x
	})
}

// BasePowerSums returns the first four power sums of x (sum of x, x², x³
// and x⁴) in a single pass. They are the raw material for mean, variance,
// skewness and kurtosis.
func BasePowerSums[T vf.Floats](x []T) (s1, s2, s3, s4 T) {
	acc1, acc2, acc3, acc4 := vf.Zero[T](), vf.Zero[T](), vf.Zero[T](), vf.Zero[T]()
	lanes := acc1.NumLanes()

	var i int
	for ; i+lanes <= len(x); i += lanes {
		v := vf.Load(x[i:])
		v2 := vf.Mul(v, v)
		acc1 = vf.Add(acc1, v)
		acc2 = vf.Add(acc2, v2)
		acc3 = vf.MulAdd(v2, v, acc3)
		acc4 = vf.MulAdd(v2, v2, acc4)
	}
	s1, s2 = vf.ReduceSum(acc1), vf.ReduceSum(acc2)
	s3, s4 = vf.ReduceSum(acc3), vf.ReduceSum(acc4)

	for ; i < len(x); i++ {
		v := x[i]
		v2 := v * v
		s1 += v
		s2 += v2
		s3 += v2 * v
		s4 += v2 * v2
	}
	return s1, s2, s3, s4
}
