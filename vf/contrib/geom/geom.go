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

// Package geom holds the 3D kernels a scene layer calls into: batch
// transforms, quaternion rotations and vector sums over Vec3 slices.
//
// A Vec3 is four float32 lanes (x, y, z, pad) so that one vector fills a
// 128-bit register and slices of them can be handed to the kernel package
// as flat []float32. Matrices are column-major.
package geom

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-vector padded to four lanes. Lane 3 is padding.
type Vec3 [4]float32

// Quat is a rotation quaternion (x, y, z, w) with w the scalar part.
type Quat [4]float32

// Mat4 is a 4x4 matrix in column-major order: element (row r, column c)
// is m[c*4+r].
type Mat4 [16]float32

// V3 returns the Vec3 (x, y, z).
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z, 0}
}

// X returns the x component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v[2] }

// Dot returns a·b. The pad lane is ignored.
func Dot(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Length returns |v|.
func Length(v Vec3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	inv := 1 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv, 0}
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// ScaleMat returns a matrix scaling each axis independently.
func ScaleMat(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m*b, which applies b first when transforming a point.
func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		for row := range 4 {
			var s float32
			for k := range 4 {
				s += m[k*4+row] * b[c*4+k]
			}
			r[c*4+row] = s
		}
	}
	return r
}

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis need not be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	a := Normalize(axis)
	s, c := math32.Sin(angle/2), math32.Cos(angle/2)
	return Quat{a[0] * s, a[1] * s, a[2] * s, c}
}

// Mul returns the Hamilton product q*r, the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

// Normalize returns q scaled to unit norm.
func (q Quat) Normalize() Quat {
	n := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if n == 0 {
		return q
	}
	inv := 1 / n
	return Quat{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Mat4 expands a unit quaternion into a rotation matrix.
func (q Quat) Mat4() Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// flat reinterprets a Vec3 slice as its float32 lanes.
func flat(v []Vec3) []float32 {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&v[0])), 4*len(v))
}
