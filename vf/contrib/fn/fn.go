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

// Package fn is the generic dispatch layer: higher-order functions that
// apply caller logic to every element of a slice.
//
// Every callback receives an explicit context value next to its element
// arguments, so callers can thread state through without closures. The
// package contains no lane code; each element costs an indirect call,
// which typically makes it 20-30% slower than the fixed-function kernels
// in the kernel package. Use it for logic those kernels cannot express.
//
// The *Bytes variants operate on packed elements of a caller-given size
// and hand callbacks the subslice holding each element.
package fn

import "github.com/ajroetker/go-vfunc/vf"

// Foldl reduces in from the left: acc = f(ctx, acc, in[i]) for i in order.
//
// Example:
//
//	longest := fn.Foldl(words, 0, func(_ any, acc int, w string) int {
//	    return max(acc, len(w))
//	}, nil)
func Foldl[T, A any](in []T, init A, f func(ctx any, acc A, x T) A, ctx any) A {
	acc := init
	for _, x := range in {
		acc = f(ctx, acc, x)
	}
	return acc
}

// Map writes dst[i] = f(ctx, in[i]).
func Map[T, U any](dst []U, in []T, f func(ctx any, x T) U, ctx any) error {
	if err := vf.CheckDst("fn.Map", "dst", len(dst), len(in)); err != nil {
		return err
	}
	for i, x := range in {
		dst[i] = f(ctx, x)
	}
	return nil
}

// Filter copies the elements for which pred returns true into dst and
// returns how many were written. dst may alias in.
func Filter[T any](dst, in []T, pred func(ctx any, x T) bool, ctx any) (int, error) {
	if err := vf.CheckDst("fn.Filter", "dst", len(dst), len(in)); err != nil {
		return 0, err
	}
	n := 0
	for _, x := range in {
		if pred(ctx, x) {
			dst[n] = x
			n++
		}
	}
	return n, nil
}

// ZipWith writes dst[i] = f(ctx, a[i], b[i]).
func ZipWith[T, U, V any](dst []V, a []T, b []U, f func(ctx any, x T, y U) V, ctx any) error {
	if err := vf.CheckSameLen("fn.ZipWith", "b", len(a), len(b)); err != nil {
		return err
	}
	if err := vf.CheckDst("fn.ZipWith", "dst", len(dst), len(a)); err != nil {
		return err
	}
	for i := range a {
		dst[i] = f(ctx, a[i], b[i])
	}
	return nil
}

// Compose maps in through g into scratch, then scratch through f into dst.
// Callers supply both buffers; in is never written.
func Compose[A, B, C any](dst []C, scratch []B, in []A,
	g func(ctx any, x A) B, gctx any,
	f func(ctx any, x B) C, fctx any,
) error {
	if err := vf.CheckDst("fn.Compose", "scratch", len(scratch), len(in)); err != nil {
		return err
	}
	if err := vf.CheckDst("fn.Compose", "dst", len(dst), len(in)); err != nil {
		return err
	}
	scratch = scratch[:len(in)]
	if err := Map(scratch, in, g, gctx); err != nil {
		return err
	}
	return Map(dst, scratch, f, fctx)
}

// Then returns the callback x -> f(ctx, g(ctx, x)). Both stages see the
// same context.
func Then[A, B, C any](g func(ctx any, x A) B, f func(ctx any, x B) C) func(ctx any, x A) C {
	return func(ctx any, x A) C {
		return f(ctx, g(ctx, x))
	}
}
