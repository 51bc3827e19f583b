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

// Package scan computes running sums.
//
// An inclusive prefix sum carries a dependency from every element to the
// next, so PrefixSum walks the slice in order with a four-way unrolled
// loop and the floating-point result matches a plain left-to-right
// accumulation. The integer decoders in this package instead scan each
// vector in log2(lanes) shift-and-add steps and carry the last lane
// forward, which is exact for integers.
package scan

import "github.com/ajroetker/go-vfunc/vf"

// PrefixSum writes the inclusive prefix sum of src to dst:
// dst[i] = src[0] + ... + src[i]. dst may alias src.
//
// Example:
//
//	src := []int64{1, 2, 3, 4, 5}
//	dst := make([]int64, len(src))
//	_ = scan.PrefixSum(dst, src) // dst = [1 3 6 10 15]
func PrefixSum[T vf.Lanes](dst, src []T) error {
	if err := vf.CheckDst("scan.PrefixSum", "dst", len(dst), len(src)); err != nil {
		return err
	}
	prefixSum(dst, src, 0)
	return nil
}

// PrefixSumInPlace replaces every element of data with its inclusive
// prefix sum.
func PrefixSumInPlace[T vf.Lanes](data []T) {
	prefixSum(data, data, 0)
}

// ExclusivePrefixSum writes dst[i] = init + src[0] + ... + src[i-1], so
// dst[0] = init.
func ExclusivePrefixSum[T vf.Lanes](dst, src []T, init T) error {
	if err := vf.CheckDst("scan.ExclusivePrefixSum", "dst", len(dst), len(src)); err != nil {
		return err
	}
	carry := init
	for i, v := range src {
		dst[i] = carry
		carry += v
	}
	return nil
}

func prefixSum[T vf.Lanes](dst, src []T, carry T) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 := carry + src[i]
		s1 := s0 + src[i+1]
		s2 := s1 + src[i+2]
		s3 := s2 + src[i+3]
		dst[i], dst[i+1], dst[i+2], dst[i+3] = s0, s1, s2, s3
		carry = s3
	}
	for ; i < n; i++ {
		carry += src[i]
		dst[i] = carry
	}
}

// PrefixSumVec computes the inclusive prefix sum within a single vector
// using the Hillis-Steele algorithm.
//
// For a vector [a, b, c, d]:
//   - shift by 1, add -> [a, a+b, b+c, c+d]
//   - shift by 2, add -> [a, a+b, a+b+c, a+b+c+d]
func PrefixSumVec[T vf.Integers](v vf.Vec[T]) vf.Vec[T] {
	for k := 1; k < v.NumLanes(); k <<= 1 {
		v = vf.Add(v, vf.SlideUpLanes(v, k))
	}
	return v
}

// DeltaDecode decodes delta-encoded values in place:
// data[i] = base + data[0] + ... + data[i].
//
// This is the decoding step for sorted posting lists.
//
// Example:
//
//	data := []uint64{3, 2, 5, 1}
//	scan.DeltaDecode(data, 10) // data = [13 15 20 21]
func DeltaDecode[T vf.Integers](data []T, base T) {
	lanes := vf.MaxLanes[T]()
	carry := base
	i := 0
	for ; i+lanes <= len(data); i += lanes {
		v := vf.Add(PrefixSumVec(vf.Load(data[i:])), vf.Set(carry))
		v.Store(data[i:])
		carry = vf.GetLane(v, lanes-1)
	}
	for ; i < len(data); i++ {
		carry += data[i]
		data[i] = carry
	}
}

// DeltaEncode is the inverse of DeltaDecode: dst[i] = src[i] - src[i-1],
// with src[-1] taken to be base. dst may alias src.
func DeltaEncode[T vf.Integers](dst, src []T, base T) error {
	if err := vf.CheckDst("scan.DeltaEncode", "dst", len(dst), len(src)); err != nil {
		return err
	}
	prev := base
	for i, v := range src {
		dst[i] = v - prev
		prev = v
	}
	return nil
}
