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
	"github.com/ajroetker/go-vfunc/vf/contrib/compact"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
)

// ZScores writes (x[i]-mean)/stddev to dst. With zero or undefined
// standard deviation every score is NaN.
func ZScores[T vf.Floats](dst, x []T) error {
	if err := vf.CheckDst("stats.ZScores", "dst", len(dst), len(x)); err != nil {
		return err
	}
	d := Describe(x)
	if !(d.StdDev > 0) {
		for i := range x {
			dst[i] = nan[T]()
		}
		return nil
	}
	if err := kernel.Offset(dst, x, -d.Mean); err != nil {
		return err
	}
	return kernel.Scale(dst[:len(x)], dst[:len(x)], 1/d.StdDev)
}

// ZScoreOutliers sets mask[i] when |x[i]-mean| > threshold*stddev and
// returns the number of outliers. A constant series has none.
func ZScoreOutliers[T vf.Floats](mask []bool, x []T, threshold T) (int, error) {
	if err := vf.CheckDst("stats.ZScoreOutliers", "mask", len(mask), len(x)); err != nil {
		return 0, err
	}
	if threshold < 0 {
		return 0, vf.InvalidArgument("stats.ZScoreOutliers", "threshold", "negative threshold %v", threshold)
	}
	d := Describe(x)
	if !(d.StdDev > 0) {
		clear(mask[:len(x)])
		return 0, nil
	}
	r := threshold * d.StdDev
	return compact.MaskIf(mask, x, compact.Outside[T]{Lo: d.Mean - r, Hi: d.Mean + r})
}

// IQROutliers sets mask[i] when x[i] lies outside [Q1-k*IQR, Q3+k*IQR]
// (Tukey's fences; k is usually 1.5) and returns the number of outliers.
func IQROutliers[T vf.Floats](mask []bool, x []T, k T) (int, error) {
	if err := vf.CheckDst("stats.IQROutliers", "mask", len(mask), len(x)); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, vf.InvalidArgument("stats.IQROutliers", "k", "negative fence multiplier %v", k)
	}
	if len(x) == 0 {
		return 0, nil
	}
	q := QuartilesOf(x)
	return compact.MaskIf(mask, x, compact.Outside[T]{Lo: q.Q1 - k*q.IQR, Hi: q.Q3 + k*q.IQR})
}
