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
	"github.com/ajroetker/go-vfunc/vf"
	"github.com/ajroetker/go-vfunc/vf/contrib/kernel"
)

// TransformPoints computes dst[i] = m * (src[i], 1). The pad lane of every
// result is zero. dst may alias src.
func TransformPoints(dst, src []Vec3, m Mat4) error {
	return transform("geom.TransformPoints", dst, src, m, 1)
}

// TransformDirs computes dst[i] = m * (src[i], 0), which ignores the
// translation column.
func TransformDirs(dst, src []Vec3, m Mat4) error {
	return transform("geom.TransformDirs", dst, src, m, 0)
}

func transform(op string, dst, src []Vec3, m Mat4, w float32) error {
	if err := vf.CheckDst(op, "dst", len(dst), len(src)); err != nil {
		return err
	}
	var c0, c1, c2, c3 Vec3
	copy(c0[:], m[0:4])
	copy(c1[:], m[4:8])
	copy(c2[:], m[8:12])
	copy(c3[:], m[12:16])
	for i, p := range src {
		var r Vec3
		for l := range 3 {
			r[l] = c0[l]*p[0] + c1[l]*p[1] + c2[l]*p[2] + c3[l]*w
		}
		dst[i] = r
	}
	return nil
}

// RotateVecs rotates every vector by the unit quaternion q using
//
//	v' = 2(u·v)u + (s² - u·u)v + 2s(u×v)
//
// where u is the vector part of q and s its scalar part.
func RotateVecs(dst, src []Vec3, q Quat) error {
	if err := vf.CheckDst("geom.RotateVecs", "dst", len(dst), len(src)); err != nil {
		return err
	}
	u := Vec3{q[0], q[1], q[2], 0}
	s := q[3]
	k := s*s - Dot(u, u)
	for i, v := range src {
		d := 2 * Dot(u, v)
		c := Cross(u, v)
		dst[i] = Vec3{
			d*u[0] + k*v[0] + 2*s*c[0],
			d*u[1] + k*v[1] + 2*s*c[1],
			d*u[2] + k*v[2] + 2*s*c[2],
			0,
		}
	}
	return nil
}

// RotateVecsMatrix rotates every vector by q through its matrix form. It
// is cheaper than RotateVecs for large batches and agrees with it to
// float32 rounding.
func RotateVecsMatrix(dst, src []Vec3, q Quat) error {
	return transform("geom.RotateVecsMatrix", dst, src, q.Mat4(), 0)
}

// AddVecs computes dst[i] = a[i] + b[i], pad lanes included.
func AddVecs(dst, a, b []Vec3) error {
	if err := vf.CheckSameLen("geom.AddVecs", "b", len(a), len(b)); err != nil {
		return err
	}
	if err := vf.CheckDst("geom.AddVecs", "dst", len(dst), len(a)); err != nil {
		return err
	}
	return kernel.Add(flat(dst[:len(a)]), flat(a), flat(b))
}

// ScaleVecs computes dst[i] = src[i] * s.
func ScaleVecs(dst, src []Vec3, s float32) error {
	if err := vf.CheckDst("geom.ScaleVecs", "dst", len(dst), len(src)); err != nil {
		return err
	}
	return kernel.Scale(flat(dst[:len(src)]), flat(src), s)
}

// DotVecs computes dst[i] = a[i]·b[i].
func DotVecs(dst []float32, a, b []Vec3) error {
	if err := vf.CheckSameLen("geom.DotVecs", "b", len(a), len(b)); err != nil {
		return err
	}
	if err := vf.CheckDst("geom.DotVecs", "dst", len(dst), len(a)); err != nil {
		return err
	}
	for i := range a {
		dst[i] = Dot(a[i], b[i])
	}
	return nil
}

// SumVecs returns the component-wise sum of v.
//
// The vectors are summed as flat lanes with four accumulators. Vector
// widths are a multiple of four lanes, so lane j of every accumulator
// holds component j%4.
func SumVecs(v []Vec3) Vec3 {
	x := flat(v)
	lanes := vf.MaxLanes[float32]()
	var s Vec3
	i := 0
	if lanes%4 == 0 {
		acc0 := vf.Zero[float32]()
		acc1, acc2, acc3 := acc0, acc0, acc0
		for ; i+4*lanes <= len(x); i += 4 * lanes {
			v0, v1, v2, v3 := vf.Load4(x[i:])
			acc0 = vf.Add(acc0, v0)
			acc1 = vf.Add(acc1, v1)
			acc2 = vf.Add(acc2, v2)
			acc3 = vf.Add(acc3, v3)
		}
		for ; i+lanes <= len(x); i += lanes {
			acc0 = vf.Add(acc0, vf.Load(x[i:]))
		}
		var buf [vf.MaxVecLanes]float32
		vf.Add(vf.Add(acc0, acc1), vf.Add(acc2, acc3)).Store(buf[:])
		for j := range lanes {
			s[j%4] += buf[j]
		}
	}
	for ; i < len(x); i++ {
		s[i%4] += x[i]
	}
	s[3] = 0
	return s
}

// Centroid returns the mean of v. Every component is NaN if v is empty.
func Centroid(v []Vec3) Vec3 {
	sum := SumVecs(v)
	n := float32(len(v))
	return Vec3{sum[0] / n, sum[1] / n, sum[2] / n, 0}
}
