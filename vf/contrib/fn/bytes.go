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

package fn

import "github.com/ajroetker/go-vfunc/vf"

// elems checks that buf holds whole elements of size bytes and returns
// how many.
func elems(op, arg string, buf []byte, size int) (int, error) {
	if size <= 0 {
		return 0, vf.InvalidArgument(op, "size", "element size %d must be positive", size)
	}
	if len(buf)%size != 0 {
		return 0, vf.InvalidArgument(op, arg, "length %d is not a multiple of element size %d", len(buf), size)
	}
	return len(buf) / size, nil
}

// FoldlBytes folds the size-byte elements of in into acc, which f updates
// in place.
func FoldlBytes(in []byte, size int, acc []byte, f func(ctx any, acc, x []byte), ctx any) error {
	n, err := elems("fn.FoldlBytes", "in", in, size)
	if err != nil {
		return err
	}
	for i := range n {
		f(ctx, acc, in[i*size:(i+1)*size])
	}
	return nil
}

// MapBytes calls f with each inSize-byte element of in and the matching
// outSize-byte element of dst.
func MapBytes(dst []byte, outSize int, in []byte, inSize int, f func(ctx any, out, x []byte), ctx any) error {
	n, err := elems("fn.MapBytes", "in", in, inSize)
	if err != nil {
		return err
	}
	if outSize <= 0 {
		return vf.InvalidArgument("fn.MapBytes", "outSize", "element size %d must be positive", outSize)
	}
	if err := vf.CheckDst("fn.MapBytes", "dst", len(dst), n*outSize); err != nil {
		return err
	}
	for i := range n {
		f(ctx, dst[i*outSize:(i+1)*outSize], in[i*inSize:(i+1)*inSize])
	}
	return nil
}

// FilterBytes copies the size-byte elements of in for which pred returns
// true into dst and returns the number of elements written.
func FilterBytes(dst, in []byte, size int, pred func(ctx any, x []byte) bool, ctx any) (int, error) {
	n, err := elems("fn.FilterBytes", "in", in, size)
	if err != nil {
		return 0, err
	}
	if err := vf.CheckDst("fn.FilterBytes", "dst", len(dst), len(in)); err != nil {
		return 0, err
	}
	kept := 0
	for i := range n {
		x := in[i*size : (i+1)*size]
		if pred(ctx, x) {
			copy(dst[kept*size:], x)
			kept++
		}
	}
	return kept, nil
}

// ZipWithBytes calls f with the i-th elements of a, b and dst, each of its
// own size. a and b must hold the same number of elements.
func ZipWithBytes(dst []byte, outSize int, a []byte, aSize int, b []byte, bSize int,
	f func(ctx any, out, x, y []byte), ctx any,
) error {
	na, err := elems("fn.ZipWithBytes", "a", a, aSize)
	if err != nil {
		return err
	}
	nb, err := elems("fn.ZipWithBytes", "b", b, bSize)
	if err != nil {
		return err
	}
	if err := vf.CheckSameLen("fn.ZipWithBytes", "b", na, nb); err != nil {
		return err
	}
	if outSize <= 0 {
		return vf.InvalidArgument("fn.ZipWithBytes", "outSize", "element size %d must be positive", outSize)
	}
	if err := vf.CheckDst("fn.ZipWithBytes", "dst", len(dst), na*outSize); err != nil {
		return err
	}
	for i := range na {
		f(ctx, dst[i*outSize:(i+1)*outSize], a[i*aSize:(i+1)*aSize], b[i*bSize:(i+1)*bSize])
	}
	return nil
}
