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

package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vfunc/vf"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got Vec3, msgAndArgs ...any) {
	t.Helper()
	for l := range 4 {
		assert.InDelta(t, want[l], got[l], eps, msgAndArgs...)
	}
}

func TestScalarHelpers(t *testing.T) {
	x, y := V3(1, 0, 0), V3(0, 1, 0)
	assertVec3(t, V3(0, 0, 1), Cross(x, y))
	assert.Equal(t, float32(0), Dot(x, y))
	assert.InDelta(t, 5, Length(V3(3, 4, 0)), eps)
	assertVec3(t, V3(0.6, 0.8, 0), Normalize(V3(3, 4, 0)))
	assert.Equal(t, Vec3{}, Normalize(Vec3{}))
	assert.Equal(t, float32(2), V3(1, 2, 3).Y())
}

func TestTransformPoints(t *testing.T) {
	src := []Vec3{V3(1, 2, 3), V3(-1, 0, 4)}
	src[0][3] = 7 // garbage in the pad lane must not leak
	dst := make([]Vec3, len(src))

	m := Translation(10, 20, 30).Mul(ScaleMat(2, 2, 2))
	require.NoError(t, TransformPoints(dst, src, m))
	assertVec3(t, V3(12, 24, 36), dst[0])
	assertVec3(t, V3(8, 20, 38), dst[1])

	require.NoError(t, TransformDirs(dst, src, m))
	assertVec3(t, V3(2, 4, 6), dst[0])

	// In place.
	require.NoError(t, TransformPoints(src, src, Identity()))
	assertVec3(t, V3(1, 2, 3), src[0])

	err := TransformPoints(dst[:1], src, m)
	assert.True(t, errors.Is(err, vf.ErrShortBuffer))
}

func TestRotate(t *testing.T) {
	q := QuatFromAxisAngle(V3(0, 0, 2), math.Pi/2)
	src := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(1, 2, 3), V3(-4, 0.5, 2)}
	direct := make([]Vec3, len(src))
	viaMat := make([]Vec3, len(src))
	require.NoError(t, RotateVecs(direct, src, q))
	require.NoError(t, RotateVecsMatrix(viaMat, src, q))

	assertVec3(t, V3(0, 1, 0), direct[0])
	assertVec3(t, V3(-1, 0, 0), direct[1])
	for i := range src {
		assertVec3(t, direct[i], viaMat[i], "vector %d", i)
		assert.InDelta(t, Length(src[i]), Length(direct[i]), eps)
	}
}

func TestQuatCompose(t *testing.T) {
	a := QuatFromAxisAngle(V3(1, 0, 0), 0.3)
	b := QuatFromAxisAngle(V3(0, 1, 0), -1.1)
	ab := a.Mul(b).Normalize()

	src := []Vec3{V3(0.5, -2, 1)}
	step := make([]Vec3, 1)
	once := make([]Vec3, 1)
	require.NoError(t, RotateVecs(step, src, b))
	require.NoError(t, RotateVecs(step, step, a))
	require.NoError(t, RotateVecs(once, src, ab))
	assertVec3(t, step[0], once[0])
}

func TestBatchArithmetic(t *testing.T) {
	a := []Vec3{V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9)}
	b := []Vec3{V3(1, 1, 1), V3(2, 2, 2), V3(3, 3, 3)}
	dst := make([]Vec3, 3)
	require.NoError(t, AddVecs(dst, a, b))
	assertVec3(t, V3(10, 11, 12), dst[2])
	require.NoError(t, ScaleVecs(dst, a, 0.5))
	assertVec3(t, V3(2, 2.5, 3), dst[1])

	dots := make([]float32, 3)
	require.NoError(t, DotVecs(dots, a, b))
	assert.Equal(t, []float32{6, 30, 72}, dots)

	assert.True(t, errors.Is(AddVecs(dst, a, b[:2]), vf.ErrLengthMismatch))
}

func TestSumVecs(t *testing.T) {
	for _, w := range []int{8, 16, 32, 64} {
		restore := vf.SetWidth(w)
		for n := range 40 {
			v := make([]Vec3, n)
			var want Vec3
			for i := range v {
				v[i] = V3(float32(i), float32(2*i), -float32(i%5))
				for l := range 3 {
					want[l] += v[i][l]
				}
			}
			assertVec3(t, want, SumVecs(v), "width %d n %d", w, n)
		}
		restore()
	}

	c := Centroid([]Vec3{V3(0, 0, 0), V3(2, 4, 6)})
	assertVec3(t, V3(1, 2, 3), c)
	assert.True(t, math.IsNaN(float64(Centroid(nil)[0])))
}
