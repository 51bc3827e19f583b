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

// Package set implements set operations over slices already sorted in
// ascending order. Every operation is a single merge-style pass that
// writes its result to a caller-supplied buffer in sorted order.
package set

import "github.com/ajroetker/go-vfunc/vf"

// Unique copies src to dst dropping every element equal to its
// predecessor and returns the number written. dst may alias src.
func Unique[T vf.Lanes](dst, src []T) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if err := vf.CheckDst("set.Unique", "dst", len(dst), len(src)); err != nil {
		return 0, err
	}
	dst[0] = src[0]
	n := 1
	for i := 1; i < len(src); i++ {
		if src[i] != src[i-1] {
			dst[n] = src[i]
			n++
		}
	}
	return n, nil
}

// Union merges a and b into dst. Keys present in both are written once.
// dst must hold len(a)+len(b) elements.
func Union[T vf.Lanes](dst, a, b []T) (int, error) {
	if err := vf.CheckDst("set.Union", "dst", len(dst), len(a)+len(b)); err != nil {
		return 0, err
	}
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst[n] = a[i]
			i++
		case b[j] < a[i]:
			dst[n] = b[j]
			j++
		default:
			dst[n] = a[i]
			i++
			j++
		}
		n++
	}
	n += copy(dst[n:], a[i:])
	n += copy(dst[n:], b[j:])
	return n, nil
}

// Intersect writes the keys present in both a and b to dst. dst must hold
// min(len(a), len(b)) elements.
func Intersect[T vf.Lanes](dst, a, b []T) (int, error) {
	if err := vf.CheckDst("set.Intersect", "dst", len(dst), min(len(a), len(b))); err != nil {
		return 0, err
	}
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			dst[n] = a[i]
			n++
			i++
			j++
		}
	}
	return n, nil
}

// Difference writes the keys of a that are not in b to dst. dst must hold
// len(a) elements.
func Difference[T vf.Lanes](dst, a, b []T) (int, error) {
	if err := vf.CheckDst("set.Difference", "dst", len(dst), len(a)); err != nil {
		return 0, err
	}
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst[n] = a[i]
			n++
			i++
		case b[j] < a[i]:
			j++
		default:
			i++
			j++
		}
	}
	n += copy(dst[n:], a[i:])
	return n, nil
}

// Contains reports whether x occurs in sorted.
func Contains[T vf.Lanes](sorted []T, x T) bool {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if sorted[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(sorted) && sorted[lo] == x
}
