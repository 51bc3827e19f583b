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

package compact

import "github.com/ajroetker/go-vfunc/vf"

// Predicate tests individual values or whole vectors. Compaction kernels
// use Apply on full vectors and Test on the scalar tail, so both must agree.
type Predicate[T vf.Lanes] interface {
	// Test reports whether the scalar value satisfies the predicate.
	Test(value T) bool

	// Apply returns a mask of the lanes that satisfy the predicate.
	Apply(v vf.Vec[T]) vf.Mask[T]
}

// Preparable is implemented by predicates that can broadcast their
// comparison operand once before a loop.
type Preparable[T vf.Lanes] interface {
	Predicate[T]
	Prepare() Predicate[T]
}

func prepare[T vf.Lanes, P Predicate[T]](pred P) Predicate[T] {
	if p, ok := any(pred).(Preparable[T]); ok {
		return p.Prepare()
	}
	return pred
}

// GreaterThan is satisfied by values > Threshold.
type GreaterThan[T vf.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

func (p GreaterThan[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.GreaterThan(v, vf.Set(p.Threshold))
}

func (p GreaterThan[T]) Prepare() Predicate[T] {
	return compareTo[T]{threshold: p.Threshold, tv: vf.Set(p.Threshold), test: gt[T], apply: vf.GreaterThan[T]}
}

// LessThan is satisfied by values < Threshold.
type LessThan[T vf.Lanes] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool {
	return value < p.Threshold
}

func (p LessThan[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.LessThan(v, vf.Set(p.Threshold))
}

func (p LessThan[T]) Prepare() Predicate[T] {
	return compareTo[T]{threshold: p.Threshold, tv: vf.Set(p.Threshold), test: lt[T], apply: vf.LessThan[T]}
}

// GreaterEqual is satisfied by values >= Threshold.
type GreaterEqual[T vf.Lanes] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool {
	return value >= p.Threshold
}

func (p GreaterEqual[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.GreaterEqual(v, vf.Set(p.Threshold))
}

func (p GreaterEqual[T]) Prepare() Predicate[T] {
	return compareTo[T]{threshold: p.Threshold, tv: vf.Set(p.Threshold), test: ge[T], apply: vf.GreaterEqual[T]}
}

// LessEqual is satisfied by values <= Threshold.
type LessEqual[T vf.Lanes] struct {
	Threshold T
}

func (p LessEqual[T]) Test(value T) bool {
	return value <= p.Threshold
}

func (p LessEqual[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.LessEqual(v, vf.Set(p.Threshold))
}

func (p LessEqual[T]) Prepare() Predicate[T] {
	return compareTo[T]{threshold: p.Threshold, tv: vf.Set(p.Threshold), test: le[T], apply: vf.LessEqual[T]}
}

// Equal is satisfied by values == Value.
type Equal[T vf.Lanes] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

func (p Equal[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.Equal(v, vf.Set(p.Value))
}

func (p Equal[T]) Prepare() Predicate[T] {
	return compareTo[T]{threshold: p.Value, tv: vf.Set(p.Value), test: eq[T], apply: vf.Equal[T]}
}

// Outside is satisfied by values below Lo or above Hi. NaN is never
// outside.
type Outside[T vf.Lanes] struct {
	Lo, Hi T
}

func (p Outside[T]) Test(value T) bool {
	return value < p.Lo || value > p.Hi
}

func (p Outside[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return vf.MaskOr(vf.LessThan(v, vf.Set(p.Lo)), vf.GreaterThan(v, vf.Set(p.Hi)))
}

// compareTo is a comparison predicate with its operand already broadcast.
type compareTo[T vf.Lanes] struct {
	threshold T
	tv        vf.Vec[T]
	test      func(a, b T) bool
	apply     func(a, b vf.Vec[T]) vf.Mask[T]
}

func (p compareTo[T]) Test(value T) bool {
	return p.test(value, p.threshold)
}

func (p compareTo[T]) Apply(v vf.Vec[T]) vf.Mask[T] {
	return p.apply(v, p.tv)
}

func gt[T vf.Lanes](a, b T) bool { return a > b }
func lt[T vf.Lanes](a, b T) bool { return a < b }
func ge[T vf.Lanes](a, b T) bool { return a >= b }
func le[T vf.Lanes](a, b T) bool { return a <= b }
func eq[T vf.Lanes](a, b T) bool { return a == b }
