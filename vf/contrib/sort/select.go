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

package sort

import "github.com/ajroetker/go-vfunc/vf"

// IsSorted reports whether data is in ascending order. Adjacent pairs are
// compared a vector at a time.
func IsSorted[T vf.Lanes](data []T) bool {
	n := len(data)
	if n <= 1 {
		return true
	}
	lanes := vf.MaxLanes[T]()
	i := 0
	for ; i+1+lanes <= n; i += lanes {
		prev := vf.Load(data[i:])
		next := vf.Load(data[i+1:])
		if !vf.AllFalse(vf.LessThan(next, prev)) {
			return false
		}
	}
	for ; i+1 < n; i++ {
		if data[i+1] < data[i] {
			return false
		}
	}
	return true
}

// Sorted copies src into dst and sorts dst, leaving src untouched.
func Sorted[T vf.Lanes](dst, src []T) error {
	if err := vf.CheckDst("sort.Sorted", "dst", len(dst), len(src)); err != nil {
		return err
	}
	dst = dst[:len(src)]
	copy(dst, src)
	Sort(dst)
	return nil
}

// NthElement partially sorts data so that data[k] holds the element that
// would be there after a full sort, with everything before it <= data[k]
// and everything after it >= data[k].
func NthElement[T vf.Lanes](data []T, k int) error {
	n := len(data)
	if k < 0 || k >= n {
		return vf.InvalidArgument("sort.NthElement", "k", "%d out of range [0, %d)", k, n)
	}

	lo, hi := 0, n
	depth := maxDepth(n)
	for hi-lo > insertionThreshold {
		if depth == 0 {
			heapSort(data[lo:hi])
			return nil
		}
		depth--

		p := lo + partition(data[lo:hi])
		switch {
		case k < p:
			hi = p
		case k > p:
			lo = p + 1
		default:
			return nil
		}
	}
	InsertionSort(data[lo:hi])
	return nil
}
