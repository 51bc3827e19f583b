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

// Package kernel is the typed kernel library: element-wise maps, two-input
// zips, reductions and fused map+reduce folds over flat numeric slices.
//
// Every operation has a portable Base form written against the vf lane
// primitives. The bulk of a slice is processed a full vector at a time,
// reductions keep four independent accumulators, fold them together with a
// tree, reduce across lanes with vf.ReduceSum and friends, and finish the
// remainder of the slice with the same scalar operator. Integer results are
// therefore exact for every length and every lane width.
//
// The unprefixed entry points check their buffers and route float32 and
// float64 to an accelerated backend (github.com/viterin/vek and
// github.com/cwbudde/algo-vecmath) when one exists for the operation. Set
// VF_NO_ACCEL=1 to force the Base path.
//
// Callers own every buffer: kernels never allocate and never keep a
// reference to their arguments.
//
// Example:
//
//	x := []float32{1, 2, 3, 4, 5}
//	sum := kernel.Sum(x)           // 15
//	dot, _ := kernel.Dot(x, x)     // 55
//	_ = kernel.Scale(x, x, 2)      // x = [2 4 6 8 10]
package kernel
