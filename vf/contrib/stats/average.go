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
	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
)

// EMA writes the exponential moving average of x to dst:
//
//	dst[0] = x[0]
//	dst[i] = alpha*x[i] + (1-alpha)*dst[i-1]
//
// alpha must be in (0, 1]. The recurrence carries state across the whole
// series, so it is computed directly rather than per window.
func EMA[T vf.Floats](dst, x []T, alpha T) error {
	if !(alpha > 0 && alpha <= 1) {
		return vf.InvalidArgument("stats.EMA", "alpha", "smoothing factor %v outside (0, 1]", alpha)
	}
	if err := vf.CheckDst("stats.EMA", "dst", len(dst), len(x)); err != nil {
		return err
	}
	if len(x) == 0 {
		return nil
	}
	prev := x[0]
	dst[0] = prev
	for i := 1; i < len(x); i++ {
		prev = alpha*x[i] + (1-alpha)*prev
		dst[i] = prev
	}
	return nil
}

// WMA writes the linearly weighted moving average of every window: the
// oldest element has weight 1 and the newest weight window. Each window is
// a kernel.Dot against the weight ramp.
func WMA[T vf.Floats](dst, x []T, window int) error {
	out, err := windows("stats.WMA", len(dst), len(x), window)
	if err != nil {
		return err
	}
	ramp := make([]T, window)
	for i := range ramp {
		ramp[i] = T(i + 1)
	}
	norm := T(window*(window+1)) / 2
	for i := range out {
		d, _ := kernel.Dot(x[i:i+window], ramp)
		dst[i] = d / norm
	}
	return nil
}
