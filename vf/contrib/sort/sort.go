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

import (
	"math/bits"

	"github.com/ajroetker/go-vfunc/vf"
)

// insertionThreshold is the largest range finished by insertion sort.
const insertionThreshold = 16

// maxStack covers 2·⌊log₂ n⌋ levels for any n that fits in an int.
const maxStack = 2 * 64

type span struct {
	lo, hi int // half-open
	depth  int // partition levels left before heapsort
}

// Sort sorts data in ascending order.
//
// Example:
//
//	data := []float64{3.1, 1.2, 2.5}
//	sort.Sort(data) // [1.2 2.5 3.1]
func Sort[T vf.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	var stack [maxStack]span
	top := 0
	cur := span{lo: 0, hi: n, depth: maxDepth(n)}

	for {
		for cur.hi-cur.lo > insertionThreshold {
			if cur.depth == 0 {
				heapSort(data[cur.lo:cur.hi])
				cur.hi = cur.lo
				break
			}
			cur.depth--

			p := cur.lo + partition(data[cur.lo:cur.hi])
			left := span{lo: cur.lo, hi: p, depth: cur.depth}
			right := span{lo: p + 1, hi: cur.hi, depth: cur.depth}
			if left.hi-left.lo < right.hi-right.lo {
				stack[top], cur = left, right
			} else {
				stack[top], cur = right, left
			}
			top++
		}
		InsertionSort(data[cur.lo:cur.hi])

		if top == 0 {
			return
		}
		top--
		cur = stack[top]
	}
}

// maxDepth returns 2·⌊log₂ n⌋.
func maxDepth(n int) int {
	return 2 * (bits.Len(uint(n)) - 1)
}

// partition orders data around a median-of-3 pivot and returns the
// pivot's final index: data[:p] <= pivot and data[p+1:] > pivot.
// len(data) must be at least 3.
func partition[T vf.Lanes](data []T) int {
	last := len(data) - 1
	mid := last / 2
	medianOf3(data, 0, mid, last)
	data[mid], data[last] = data[last], data[mid]
	pivot := data[last]

	p := Partition(data[:last], pivot)
	data[p], data[last] = data[last], data[p]
	return p
}

// medianOf3 orders data[a] <= data[b] <= data[c] with three compare-swaps.
func medianOf3[T vf.Lanes](data []T, a, b, c int) {
	if data[b] < data[a] {
		data[a], data[b] = data[b], data[a]
	}
	if data[c] < data[b] {
		data[b], data[c] = data[c], data[b]
	}
	if data[b] < data[a] {
		data[a], data[b] = data[b], data[a]
	}
}

// Partition reorders data so that every element <= pivot precedes every
// element > pivot, and returns the number of elements <= pivot.
//
// Whole vectors at the left edge whose lanes are all <= pivot are skipped,
// and vectors whose lanes are all > pivot are swapped with the right edge
// in one step. Mixed vectors are handled element by element.
func Partition[T vf.Lanes](data []T, pivot T) int {
	n := len(data)
	lanes := vf.MaxLanes[T]()
	if n < lanes*4 {
		return scalarPartition(data, pivot)
	}

	pivotVec := vf.Set(pivot)
	left, right := 0, n

	for left+lanes <= right {
		if right-lanes < left+lanes {
			break
		}

		v := vf.Load(data[left:])
		mask := vf.LessEqual(v, pivotVec)

		if vf.AllTrue(mask) {
			left += lanes
			continue
		}

		if vf.AllFalse(mask) {
			right -= lanes
			vRight := vf.Load(data[right:])
			v.Store(data[right:])
			vRight.Store(data[left:])
			continue
		}

		end := min(left+lanes, right)
		for left < end {
			if data[left] <= pivot {
				left++
			} else {
				right--
				data[left], data[right] = data[right], data[left]
				if right < end {
					end = right
				}
			}
		}
	}

	for left < right {
		if data[left] <= pivot {
			left++
		} else {
			right--
			data[left], data[right] = data[right], data[left]
		}
	}
	return left
}

func scalarPartition[T vf.Lanes](data []T, pivot T) int {
	left, right := 0, len(data)
	for left < right {
		if data[left] <= pivot {
			left++
		} else {
			right--
			data[left], data[right] = data[right], data[left]
		}
	}
	return left
}

// InsertionSort sorts data in place. It is the fastest choice for a
// handful of elements and is what Sort uses below its cutover.
func InsertionSort[T vf.Lanes](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// heapSort is the O(n log n) fallback once a range runs out of depth.
func heapSort[T vf.Lanes](data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T vf.Lanes](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
