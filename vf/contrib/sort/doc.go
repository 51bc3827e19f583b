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

// Package sort provides an in-place quicksort for numeric slices.
//
// Pivots are the median of the first, middle and last element, ordered
// by a three-element compare-swap network and parked at the end of the
// range. The partition keeps elements <= pivot on the low side and skips
// whole vectors whose lanes already belong where they are. Ranges of 16
// elements or fewer are finished with insertion sort.
//
// Recursion is replaced by an explicit work stack. After each partition
// the smaller side is pushed and the loop continues on the larger side.
// An introsort depth limit of 2·⌊log₂ n⌋ partition levels hands a range to
// heapsort, which both caps the running time at O(n log n) (all-equal
// input included) and bounds the stack to one entry per level.
//
// The sort is not stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-vfunc/vf/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data) // in-place ascending sort
//	}
package sort
