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

package fn

import (
	"math/bits"

	"github.com/ajroetker/go-vfunc/vf"
)

// sequence is an indexable collection that the sorts reorder.
type sequence interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

type typedSeq[T any] struct {
	data []T
	cmp  func(a, b T) int
}

func (s typedSeq[T]) Len() int           { return len(s.data) }
func (s typedSeq[T]) Less(i, j int) bool { return s.cmp(s.data[i], s.data[j]) < 0 }
func (s typedSeq[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }

type packedSeq struct {
	data []byte
	size int
	cmp  func(a, b []byte) int
}

func (s packedSeq) Len() int { return len(s.data) / s.size }

func (s packedSeq) elem(i int) []byte { return s.data[i*s.size : (i+1)*s.size] }

func (s packedSeq) Less(i, j int) bool { return s.cmp(s.elem(i), s.elem(j)) < 0 }

func (s packedSeq) Swap(i, j int) {
	a, b := s.elem(i), s.elem(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// Quicksort sorts data in place by cmp, which returns a negative number
// when a sorts before b, zero when they are equal and a positive number
// otherwise (the cmp.Compare convention). The sort is not stable.
func Quicksort[T any](data []T, cmp func(a, b T) int) {
	quicksort(typedSeq[T]{data: data, cmp: cmp})
}

// QuicksortBytes sorts the size-byte elements of data in place by cmp.
func QuicksortBytes(data []byte, size int, cmp func(a, b []byte) int) error {
	if _, err := elems("fn.QuicksortBytes", "data", data, size); err != nil {
		return err
	}
	quicksort(packedSeq{data: data, size: size, cmp: cmp})
	return nil
}

const insertionThreshold = 16

type span struct{ lo, hi, depth int }

// quicksort mirrors sort.Sort for an arbitrary ordering: median-of-3 pivot
// parked at the end, <= on the low side, insertion sort for small ranges,
// an explicit stack holding the smaller side and heapsort past the depth
// limit.
func quicksort[S sequence](s S) {
	n := s.Len()
	if n <= 1 {
		return
	}
	var stack [128]span
	top := 0
	cur := span{0, n, 2 * (bits.Len(uint(n)) - 1)}
	for {
		for cur.hi-cur.lo > insertionThreshold {
			if cur.depth == 0 {
				heapSort(s, cur.lo, cur.hi)
				cur.hi = cur.lo
				break
			}
			cur.depth--
			p := partition(s, cur.lo, cur.hi)
			left := span{cur.lo, p, cur.depth}
			right := span{p + 1, cur.hi, cur.depth}
			if left.hi-left.lo < right.hi-right.lo {
				stack[top], cur = left, right
			} else {
				stack[top], cur = right, left
			}
			top++
		}
		insertionSort(s, cur.lo, cur.hi)
		if top == 0 {
			return
		}
		top--
		cur = stack[top]
	}
}

func partition[S sequence](s S, lo, hi int) int {
	last := hi - 1
	mid := lo + (last-lo)/2
	if s.Less(mid, lo) {
		s.Swap(lo, mid)
	}
	if s.Less(last, mid) {
		s.Swap(mid, last)
	}
	if s.Less(mid, lo) {
		s.Swap(lo, mid)
	}
	s.Swap(mid, last)

	left, right := lo, last
	for left < right {
		if !s.Less(last, left) {
			left++
		} else {
			right--
			s.Swap(left, right)
		}
	}
	s.Swap(left, last)
	return left
}

// insertionSort is stable: equal elements are never swapped.
func insertionSort[S sequence](s S, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && s.Less(j, j-1); j-- {
			s.Swap(j, j-1)
		}
	}
}

func heapSort[S sequence](s S, lo, hi int) {
	n := hi - lo
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, lo, i, n)
	}
	for i := n - 1; i > 0; i-- {
		s.Swap(lo, lo+i)
		siftDown(s, lo, 0, i)
	}
}

func siftDown[S sequence](s S, lo, i, n int) {
	for {
		largest := i
		if l := 2*i + 1; l < n && s.Less(lo+largest, lo+l) {
			largest = l
		}
		if r := 2*i + 2; r < n && s.Less(lo+largest, lo+r) {
			largest = r
		}
		if largest == i {
			return
		}
		s.Swap(lo+i, lo+largest)
		i = largest
	}
}

// mergeRun is the length of the runs insertion-sorted before merging.
const mergeRun = 16

// Mergesort sorts data by cmp and keeps equal elements in their original
// order. scratch must hold len(data) elements; its contents are
// overwritten.
func Mergesort[T any](data, scratch []T, cmp func(a, b T) int) error {
	n := len(data)
	if err := vf.CheckDst("fn.Mergesort", "scratch", len(scratch), n); err != nil {
		return err
	}
	for lo := 0; lo < n; lo += mergeRun {
		insertionSort(typedSeq[T]{data: data, cmp: cmp}, lo, min(lo+mergeRun, n))
	}

	src, dst := data, scratch[:n]
	inData := true
	for width := mergeRun; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid, hi := min(lo+width, n), min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		}
		src, dst = dst, src
		inData = !inData
	}
	if !inData {
		copy(data, src)
	}
	return nil
}

// merge writes the ordered merge of a and b to dst, preferring a on ties.
func merge[T any](dst, a, b []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// MergesortBytes is Mergesort for packed size-byte elements.
func MergesortBytes(data, scratch []byte, size int, cmp func(a, b []byte) int) error {
	n, err := elems("fn.MergesortBytes", "data", data, size)
	if err != nil {
		return err
	}
	if err := vf.CheckDst("fn.MergesortBytes", "scratch", len(scratch), len(data)); err != nil {
		return err
	}
	seq := packedSeq{data: data, size: size, cmp: cmp}
	for lo := 0; lo < n; lo += mergeRun {
		insertionSort(seq, lo, min(lo+mergeRun, n))
	}

	src, dst := data, scratch[:len(data)]
	inData := true
	for width := mergeRun; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid, hi := min(lo+width, n), min(lo+2*width, n)
			mergeBytes(dst[lo*size:hi*size], src[lo*size:mid*size], src[mid*size:hi*size], size, cmp)
		}
		src, dst = dst, src
		inData = !inData
	}
	if !inData {
		copy(data, src)
	}
	return nil
}

func mergeBytes(dst, a, b []byte, size int, cmp func(a, b []byte) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j:j+size], a[i:i+size]) < 0 {
			copy(dst[k:], b[j:j+size])
			j += size
		} else {
			copy(dst[k:], a[i:i+size])
			i += size
		}
		k += size
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
