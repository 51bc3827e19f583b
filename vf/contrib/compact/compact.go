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

// Package compact implements stream compaction: filtering a slice down to
// the elements that satisfy a predicate while keeping their order.
//
// Full vectors are compared against the predicate to form a lane mask, and
// vf.CompressStore packs the selected lanes through a precomputed
// permutation table indexed by the mask bits. The few elements after the
// last full vector are tested one at a time.
//
// Example:
//
//	src := []int32{5, 10, 15, 20}
//	dst := make([]int32, len(src))
//	n, _ := compact.FilterGT(dst, src, 10) // dst[:n] = [15 20]
package compact

import "github.com/ajroetker/go-vfunc/vf"

// Filter copies the elements of src that satisfy pred into dst, in order,
// and returns how many were written. dst must be at least as long as src.
func Filter[T vf.Lanes, P Predicate[T]](dst, src []T, pred P) (int, error) {
	if err := vf.CheckDst("compact.Filter", "dst", len(dst), len(src)); err != nil {
		return 0, err
	}
	return filter(dst, src, prepare[T](pred), vf.CompressStore[T]), nil
}

// FilterScan is Filter with a bit-by-bit scan in place of the permutation
// table. It produces identical output and serves as its reference.
func FilterScan[T vf.Lanes, P Predicate[T]](dst, src []T, pred P) (int, error) {
	if err := vf.CheckDst("compact.FilterScan", "dst", len(dst), len(src)); err != nil {
		return 0, err
	}
	return filter(dst, src, prepare[T](pred), vf.CompressStoreScan[T]), nil
}

func filter[T vf.Lanes](dst, src []T, pred Predicate[T],
	store func(v vf.Vec[T], m vf.Mask[T], dst []T) int,
) int {
	lanes := vf.MaxLanes[T]()
	count := 0
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		v := vf.Load(src[i:])
		count += store(v, pred.Apply(v), dst[count:])
	}
	for ; i < len(src); i++ {
		if pred.Test(src[i]) {
			dst[count] = src[i]
			count++
		}
	}
	return count
}

// FilterGT keeps the elements greater than t.
func FilterGT[T vf.Lanes](dst, src []T, t T) (int, error) {
	return Filter(dst, src, GreaterThan[T]{Threshold: t})
}

// FilterGTScan is FilterGT through the bit-scan path.
func FilterGTScan[T vf.Lanes](dst, src []T, t T) (int, error) {
	return FilterScan(dst, src, GreaterThan[T]{Threshold: t})
}

// FilterLT keeps the elements less than t.
func FilterLT[T vf.Lanes](dst, src []T, t T) (int, error) {
	return Filter(dst, src, LessThan[T]{Threshold: t})
}

// FilterGE keeps the elements greater than or equal to t.
func FilterGE[T vf.Lanes](dst, src []T, t T) (int, error) {
	return Filter(dst, src, GreaterEqual[T]{Threshold: t})
}

// FilterLE keeps the elements less than or equal to t.
func FilterLE[T vf.Lanes](dst, src []T, t T) (int, error) {
	return Filter(dst, src, LessEqual[T]{Threshold: t})
}

// FilterEQ keeps the elements equal to t.
func FilterEQ[T vf.Lanes](dst, src []T, t T) (int, error) {
	return Filter(dst, src, Equal[T]{Value: t})
}

// CountIf returns the number of elements that satisfy pred without
// storing them.
func CountIf[T vf.Lanes, P Predicate[T]](src []T, pred P) int {
	p := prepare[T](pred)
	lanes := vf.MaxLanes[T]()
	count := 0
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		count += vf.CountTrue(p.Apply(vf.Load(src[i:])))
	}
	for ; i < len(src); i++ {
		if p.Test(src[i]) {
			count++
		}
	}
	return count
}

// MaskIf sets mask[i] to whether src[i] satisfies pred and returns the
// number of set entries. mask must be at least as long as src.
func MaskIf[T vf.Lanes, P Predicate[T]](mask []bool, src []T, pred P) (int, error) {
	if err := vf.CheckDst("compact.MaskIf", "mask", len(mask), len(src)); err != nil {
		return 0, err
	}
	p := prepare[T](pred)
	lanes := vf.MaxLanes[T]()
	count := 0
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		m := p.Apply(vf.Load(src[i:]))
		count += vf.CountTrue(m)
		for j := range lanes {
			mask[i+j] = m.GetBit(j)
		}
	}
	for ; i < len(src); i++ {
		mask[i] = p.Test(src[i])
		if mask[i] {
			count++
		}
	}
	return count, nil
}

// CountGT returns the number of elements greater than t.
func CountGT[T vf.Lanes](src []T, t T) int {
	return CountIf(src, GreaterThan[T]{Threshold: t})
}

// Partition splits src in one pass: elements satisfying pred go to pass,
// the others to fail, both in input order. Each output must be at least
// as long as src.
func Partition[T vf.Lanes, P Predicate[T]](pass, fail, src []T, pred P) (nPass, nFail int, err error) {
	if err := vf.CheckDst("compact.Partition", "pass", len(pass), len(src)); err != nil {
		return 0, 0, err
	}
	if err := vf.CheckDst("compact.Partition", "fail", len(fail), len(src)); err != nil {
		return 0, 0, err
	}
	p := prepare[T](pred)
	lanes := vf.MaxLanes[T]()
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		v := vf.Load(src[i:])
		m := p.Apply(v)
		nPass += vf.CompressStore(v, m, pass[nPass:])
		nFail += vf.CompressStore(v, vf.MaskNot(m), fail[nFail:])
	}
	for ; i < len(src); i++ {
		if p.Test(src[i]) {
			pass[nPass] = src[i]
			nPass++
		} else {
			fail[nFail] = src[i]
			nFail++
		}
	}
	return nPass, nFail, nil
}

// PartitionGT splits src into the elements greater than t and the rest.
func PartitionGT[T vf.Lanes](pass, fail, src []T, t T) (nPass, nFail int, err error) {
	return Partition(pass, fail, src, GreaterThan[T]{Threshold: t})
}

// FindFirstIf returns the index of the first element satisfying pred, or
// -1 if there is none.
func FindFirstIf[T vf.Lanes, P Predicate[T]](src []T, pred P) int {
	p := prepare[T](pred)
	lanes := vf.MaxLanes[T]()
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		if idx := vf.FindFirstTrue(p.Apply(vf.Load(src[i:]))); idx >= 0 {
			return i + idx
		}
	}
	for ; i < len(src); i++ {
		if p.Test(src[i]) {
			return i
		}
	}
	return -1
}

// FindFirstGT returns the index of the first element greater than t, or -1.
func FindFirstGT[T vf.Lanes](src []T, t T) int {
	return FindFirstIf(src, GreaterThan[T]{Threshold: t})
}

// TakeWhile copies the longest prefix of src whose elements satisfy pred
// and returns its length. It stops at the first failing element.
func TakeWhile[T any](dst, src []T, pred func(T) bool) (int, error) {
	n := 0
	for n < len(src) && pred(src[n]) {
		n++
	}
	if err := vf.CheckDst("compact.TakeWhile", "dst", len(dst), n); err != nil {
		return 0, err
	}
	return copy(dst, src[:n]), nil
}

// DropWhile skips the longest prefix of src whose elements satisfy pred
// and copies the remainder to dst, returning its length.
func DropWhile[T any](dst, src []T, pred func(T) bool) (int, error) {
	i := 0
	for i < len(src) && pred(src[i]) {
		i++
	}
	if err := vf.CheckDst("compact.DropWhile", "dst", len(dst), len(src)-i); err != nil {
		return 0, err
	}
	return copy(dst, src[i:]), nil
}
