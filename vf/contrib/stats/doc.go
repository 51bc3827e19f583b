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

// Package stats builds descriptive statistics out of the kernel, sort and
// compact primitives. Nothing here re-derives a sum: moments come from a
// single kernel.PowerSums pass, correlation and regression from kernel.Dot,
// percentiles from a sorted copy, and outlier masks from compact.MaskIf.
//
// Undefined statistics (the mean of an empty slice, the correlation of a
// constant series) are NaN. Contract violations such as a short output
// buffer or a window larger than the input return an error wrapping one
// of the vf sentinels.
package stats
