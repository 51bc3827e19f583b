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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
)

const tol = 1e-9

func TestDescribe(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	d := Describe(x)
	assert.Equal(t, 8, d.N)
	assert.InDelta(t, 5.0, d.Mean, tol)
	assert.InDelta(t, 4.0, d.Variance, tol)
	assert.InDelta(t, 2.0, d.StdDev, tol)
	assert.Equal(t, 2.0, d.Min)
	assert.Equal(t, 9.0, d.Max)

	// Central moments of x: m3 = 5.25, m4 = 44.5.
	assert.InDelta(t, 5.25/8, d.Skewness, tol)
	assert.InDelta(t, 44.5/16-3, d.Kurtosis, tol)

	assert.InDelta(t, 32.0/7, SampleVariance(x), tol)
	assert.InDelta(t, 2.0, StdDev(x), tol)
	assert.InDelta(t, 5.0, Mean(x), tol)
}

func TestDescribeDegenerate(t *testing.T) {
	d := Describe([]float32{})
	assert.Zero(t, d.N)
	assert.True(t, math.IsNaN(float64(d.Mean)))
	assert.True(t, math.IsNaN(float64(d.StdDev)))

	c := Describe([]float64{3, 3, 3})
	assert.Equal(t, 3.0, c.Mean)
	assert.Equal(t, 0.0, c.Variance)
	assert.True(t, math.IsNaN(c.Skewness))
	assert.True(t, math.IsNaN(c.Kurtosis))

	assert.True(t, math.IsNaN(SampleVariance([]float64{1})))
	assert.True(t, math.IsNaN(Moments([]float64{}).Mean()))
}

func TestConstantSeries(t *testing.T) {
	ramp := func(n int) []float64 {
		y := make([]float64, n)
		for i := range y {
			y[i] = float64(i + 1)
		}
		return y
	}
	fill := func(v float64, n int) []float64 {
		x := make([]float64, n)
		for i := range x {
			x[i] = v
		}
		return x
	}
	// None of these constants is exactly representable, so n*Σx² and
	// (Σx)² disagree in the last bits.
	for _, tc := range []struct {
		value float64
		n     int
	}{
		{0.1, 10}, {0.1, 7}, {0.3, 10}, {1.1, 10}, {7.7, 10}, {7.7, 33},
	} {
		x := fill(tc.value, tc.n)

		d := Describe(x)
		assert.Equal(t, tc.value, d.Mean, "value=%v n=%d", tc.value, tc.n)
		assert.Equal(t, 0.0, d.Variance, "value=%v n=%d", tc.value, tc.n)
		assert.Equal(t, 0.0, d.StdDev, "value=%v n=%d", tc.value, tc.n)
		assert.True(t, math.IsNaN(d.Skewness), "value=%v n=%d", tc.value, tc.n)
		assert.True(t, math.IsNaN(d.Kurtosis), "value=%v n=%d", tc.value, tc.n)
		assert.Equal(t, 0.0, Variance(x))

		mask := make([]bool, tc.n)
		count, err := ZScoreOutliers(mask, x, 0)
		require.NoError(t, err)
		assert.Zero(t, count, "value=%v n=%d", tc.value, tc.n)

		z := make([]float64, tc.n)
		require.NoError(t, ZScores(z, x))
		assert.True(t, math.IsNaN(z[0]))

		r, err := Correlation(x, ramp(tc.n))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(r), "value=%v n=%d: got %v", tc.value, tc.n, r)
		r, err = Correlation(ramp(tc.n), x)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(r), "value=%v n=%d: got %v", tc.value, tc.n, r)

		cov, err := Covariance(x, ramp(tc.n))
		require.NoError(t, err)
		assert.Equal(t, 0.0, cov)

		fit, err := Regress(x, ramp(tc.n))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(fit.Slope), "value=%v n=%d: got %v", tc.value, tc.n, fit.Slope)
		assert.True(t, math.IsNaN(fit.Intercept))
		assert.True(t, math.IsNaN(fit.RSquared))
		assert.True(t, math.IsNaN(fit.StdError))

		fit, err = Regress(ramp(tc.n), x)
		require.NoError(t, err)
		assert.Equal(t, LinearRegression[float64]{Slope: 0, Intercept: tc.value, RSquared: 1, StdError: 0}, fit)
	}

	d := Describe([]float32{0.1, 0.1, 0.1, 0.1, 0.1})
	assert.Equal(t, float32(0), d.Variance)
	assert.True(t, math.IsNaN(float64(d.Skewness)))
}

func TestMomentsMatchKernel(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	x := make([]float64, 1001)
	for i := range x {
		x[i] = r.NormFloat64()
	}
	m := Moments(x)
	assert.Equal(t, len(x), m.N)
	assert.InDelta(t, kernel.Sum(x), m.S1, 1e-9)
	assert.InDelta(t, kernel.SumSquares(x), m.S2, 1e-9)
}

func TestMergeMoments(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	merged := Moments(x[:3]).Merge(Moments(x[3:]))
	assert.Equal(t, Moments(x), merged)
	d := DescribeMoments(merged, 2, 9)
	assert.Equal(t, Describe(x), d)
}

func TestCovarianceCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	cov, err := Covariance(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cov, tol)

	r, err := Correlation(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, tol)

	neg := []float64{5, 4, 3, 2, 1}
	r, err = Correlation(x, neg)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, tol)

	r, err = Correlation(x, []float64{7, 7, 7, 7, 7})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r), "constant series has no correlation")

	_, err = Correlation(x, y[:3])
	assert.ErrorIs(t, err, vf.ErrLengthMismatch)
	_, err = Covariance(x, y[:3])
	assert.ErrorIs(t, err, vf.ErrLengthMismatch)
}

func TestRegress(t *testing.T) {
	fit, err := Regress([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, tol)
	assert.InDelta(t, 0.0, fit.Intercept, tol)
	assert.InDelta(t, 1.0, fit.RSquared, tol)
	assert.InDelta(t, 0.0, fit.StdError, tol)
	assert.InDelta(t, 20.0, fit.Predict(10), tol)

	// Scattered points: SSE 3.2 over 2 degrees of freedom.
	fit, err = Regress([]float64{0, 1, 2, 3}, []float64{1, 0, 3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, fit.Slope, tol)
	assert.InDelta(t, 0.6, fit.Intercept, tol)
	assert.InDelta(t, 0.36, fit.RSquared, tol)
	assert.InDelta(t, math.Sqrt(3.2/2), fit.StdError, tol)

	two, err := Regress([]float32{1, 3}, []float32{1, 5})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, two.Slope, 1e-6)
	assert.Equal(t, float32(1), two.RSquared)
	assert.Equal(t, float32(0), two.StdError)

	flat, err := Regress([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(flat.Slope))
	assert.True(t, math.IsNaN(flat.RSquared))

	_, err = Regress([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vf.ErrLengthMismatch)
}

func TestPercentile(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}
	p, err := Percentile(x, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, x, "Percentile must not modify its input")

	sorted := []float64{1, 2, 3, 4, 5}
	for _, tc := range []struct {
		p, want float64
	}{
		{0, 1}, {1, 5}, {0.25, 2}, {0.1, 1.4}, {0.9, 4.6},
	} {
		got, err := PercentileSorted(sorted, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, tol, "p=%v", tc.p)
	}

	_, err = PercentileSorted(sorted, 1.5)
	assert.ErrorIs(t, err, vf.ErrInvalidArgument)
	_, err = Percentile(sorted, math.NaN())
	assert.ErrorIs(t, err, vf.ErrInvalidArgument)

	empty, err := Percentile([]float32{}, 0.3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(empty)))

	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 3.0, MedianSorted(sorted))
}

func TestQuartiles(t *testing.T) {
	q := QuartilesOf([]float64{9, 1, 8, 2, 7, 3, 6, 4, 5})
	assert.Equal(t, Quartiles[float64]{Q1: 3, Median: 5, Q3: 7, IQR: 4}, q)
	assert.Equal(t, q, QuartilesSorted([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}))
}

func TestRollingMean(t *testing.T) {
	dst := make([]float64, 3)
	require.NoError(t, RollingMean(dst, []float64{1, 2, 3, 4, 5}, 3))
	assert.Equal(t, []float64{2, 3, 4}, dst)

	r := rand.New(rand.NewPCG(2, 2))
	a := make([]float64, 37)
	for i := range a {
		a[i] = r.Float64()
	}
	same := make([]float64, len(a))
	require.NoError(t, RollingMean(same, a, 1))
	assert.Equal(t, a, same)

	all := make([]float64, 1)
	require.NoError(t, SMA(all, a, len(a)))
	assert.InDelta(t, Mean(a), all[0], tol)

	// Running sum against a recomputed one.
	for _, w := range []int{2, 5, 36} {
		got := make([]float64, len(a)-w+1)
		want := make([]float64, len(a)-w+1)
		require.NoError(t, RollingSum(got, a, w))
		require.NoError(t, RollingReduce(want, a, w, kernel.Sum[float64]))
		assert.InDeltaSlice(t, want, got, 1e-9, "window=%d", w)
	}
}

func TestRollingSumRecovers(t *testing.T) {
	inf := math.Inf(1)
	for _, tc := range []struct {
		name   string
		src    []float64
		window int
		want   []float64
	}{
		{"inf leaves", []float64{1, inf, 2, 3, 4}, 2, []float64{inf, inf, 5, 7}},
		{"-inf leaves", []float64{-inf, 1, 2, 3}, 2, []float64{-inf, 3, 5}},
		{"nan leaves", []float64{math.NaN(), 1, 2, 3, 4}, 3, []float64{math.NaN(), 6, 9}},
		{"large leaves", []float64{1e17, 1, 1, 1}, 2, []float64{1e17, 2, 2}},
		{"large in the middle", []float64{1, 1e17, 1, 1, 1}, 2, []float64{1e17, 1e17, 2, 2}},
	} {
		got := make([]float64, len(tc.want))
		require.NoError(t, RollingSum(got, tc.src, tc.window), tc.name)
		require.Len(t, got, len(tc.want))
		for i := range tc.want {
			if math.IsNaN(tc.want[i]) {
				assert.True(t, math.IsNaN(got[i]), "%s: dst[%d]=%v", tc.name, i, got[i])
				continue
			}
			assert.Equal(t, tc.want[i], got[i], "%s: dst[%d]", tc.name, i)
		}
	}

	mean := make([]float64, 3)
	require.NoError(t, RollingMean(mean, []float64{1e17, 1, 1, 1}, 2))
	assert.Equal(t, []float64{5e16, 1, 1}, mean)

	// Integer sums never drift, so the running update is exact.
	ints := make([]int32, 4)
	require.NoError(t, RollingSum(ints, []int32{5, -5, 5, -5, 5}, 2))
	assert.Equal(t, []int32{0, 0, 0, 0}, ints)
}

func TestRollingPreconditions(t *testing.T) {
	src := []float64{1, 2, 3}
	for _, w := range []int{0, -1, 4} {
		err := RollingMean(make([]float64, 3), src, w)
		assert.ErrorIs(t, err, vf.ErrInvalidArgument, "window=%d", w)
	}
	assert.ErrorIs(t, RollingSum(make([]float64, 1), src, 2), vf.ErrShortBuffer)
	assert.ErrorIs(t, RollingMax(make([]int32, 0), []int32{1}, 1), vf.ErrShortBuffer)
}

func TestRollingMinMaxVariance(t *testing.T) {
	src := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	mins := make([]int32, 6)
	maxs := make([]int32, 6)
	require.NoError(t, RollingMin(mins, src, 3))
	require.NoError(t, RollingMax(maxs, src, 3))
	assert.Equal(t, []int32{1, 1, 1, 1, 2, 2}, mins)
	assert.Equal(t, []int32{4, 4, 5, 9, 9, 9}, maxs)

	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	v := make([]float64, 1)
	s := make([]float64, 1)
	require.NoError(t, RollingVariance(v, x, len(x)))
	require.NoError(t, RollingStd(s, x, len(x)))
	assert.InDelta(t, 4.0, v[0], tol)
	assert.InDelta(t, 2.0, s[0], tol)

	v = make([]float64, 2)
	require.NoError(t, RollingVariance(v, []float64{1, 1, 3}, 2))
	assert.InDeltaSlice(t, []float64{0, 1}, v, tol)
}

func TestMovingAverages(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	ema := make([]float64, len(x))
	require.NoError(t, EMA(ema, x, 0.5))
	assert.InDeltaSlice(t, []float64{1, 1.5, 2.25, 3.125}, ema, tol)

	same := make([]float64, len(x))
	require.NoError(t, EMA(same, x, 1))
	assert.Equal(t, x, same)

	assert.ErrorIs(t, EMA(ema, x, 0), vf.ErrInvalidArgument)
	assert.ErrorIs(t, EMA(ema, x, 1.5), vf.ErrInvalidArgument)
	assert.ErrorIs(t, EMA(ema[:2], x, 0.5), vf.ErrShortBuffer)
	require.NoError(t, EMA([]float64{}, []float64{}, 0.5))

	// (1*1 + 2*2 + 3*3)/6 and (1*2 + 2*3 + 3*4)/6.
	wma := make([]float64, 2)
	require.NoError(t, WMA(wma, x, 3))
	assert.InDeltaSlice(t, []float64{14.0 / 6, 20.0 / 6}, wma, tol)
	assert.ErrorIs(t, WMA(wma, x, 5), vf.ErrInvalidArgument)
}

func TestOutliers(t *testing.T) {
	x := []float64{10, 11, 9, 10, 12, 10, 9, 11, 10, 60}
	mask := make([]bool, len(x))

	n, err := ZScoreOutliers(mask, x, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, mask[9])
	assert.False(t, mask[4])

	n, err = IQROutliers(mask, x, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, mask[9])

	flat := []float64{4, 4, 4}
	mask = []bool{true, true, true}
	n, err = ZScoreOutliers(mask, flat, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []bool{false, false, false}, mask)

	_, err = IQROutliers(make([]bool, 2), x, 1.5)
	assert.ErrorIs(t, err, vf.ErrShortBuffer)
	_, err = ZScoreOutliers(make([]bool, len(x)), x, -1)
	assert.ErrorIs(t, err, vf.ErrInvalidArgument)
}

func TestZScores(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	z := make([]float64, len(x))
	require.NoError(t, ZScores(z, x))
	assert.InDeltaSlice(t, []float64{-1.5, -0.5, -0.5, -0.5, 0, 0, 1, 2}, z, tol)
	assert.InDelta(t, 0.0, kernel.Sum(z), tol)

	require.NoError(t, ZScores(z[:2], []float64{1, 1}))
	assert.True(t, math.IsNaN(z[0]))
	assert.ErrorIs(t, ZScores(z[:1], x), vf.ErrShortBuffer)
}
