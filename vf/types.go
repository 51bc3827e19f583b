// Package vf provides the portable lane primitives the go-vfunc kernels are
// written against.
//
// A Vec holds MaxLanes[T]() elements of T, where the lane count follows the
// widest vector register detected at startup (16, 32 or 64 bytes). Kernels
// load full vectors from a slice, combine them lane by lane, fold the lanes
// together with a tree-shaped horizontal reduction and finish the remainder
// of the slice with scalar code:
//
//	acc := vf.Zero[float32]()
//	lanes := acc.NumLanes()
//	i := 0
//	for ; i+lanes <= len(x); i += lanes {
//	    acc = vf.Add(acc, vf.Load(x[i:]))
//	}
//	sum := vf.ReduceSum(acc)
//	for ; i < len(x); i++ {
//	    sum += x[i]
//	}
//
// Operations the hardware does not provide for every element width (8-bit
// multiply, unsigned 32/64-bit compare, integer absolute value) are emulated
// with the same bit tricks a vector backend would use, so results are
// bit-identical to the scalar definition.
package vf

import (
	"math"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// MaxVecLanes is the lane capacity of a Vec. A 512-bit register holds 64
// bytes, so no element type needs more.
const MaxVecLanes = 64

// Vec is a fixed-capacity vector register. It is a plain value: creating or
// combining vectors never touches the heap.
//
// Vec instances should not be created directly; use Load, Set or Zero.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst. This is the method form of Store.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask is the result of a lane comparison: bit i is set when lane i is
// active.
type Mask[T Lanes] struct {
	bits uint64
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// Bits returns the mask as an integer, lane i in bit i.
func (m Mask[T]) Bits() uint64 {
	return m.bits
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneKind classifies an element type without a type switch so that
// named types (~float64 and friends) are handled like their underlying type.
type laneKind uint8

const (
	kindFloat laneKind = iota
	kindSigned
	kindUnsigned
)

func kindOf[T Lanes]() laneKind {
	var one T = 1
	if one/(one+one) != 0 {
		return kindFloat
	}
	var zero T
	if zero-one < zero {
		return kindSigned
	}
	return kindUnsigned
}

// sizeOf returns the element size of T in bytes.
func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// HighestValue returns the largest value of T: +Inf for floats and the
// type maximum for integers. It is the identity of a Min reduction.
func HighestValue[T Lanes]() T {
	bits := 8 * sizeOf[T]()
	switch kindOf[T]() {
	case kindFloat:
		return T(math.Inf(1))
	case kindSigned:
		return T(int64(1)<<(bits-1) - 1)
	default:
		return T(^uint64(0) >> (64 - bits))
	}
}

// LowestValue returns the smallest value of T: -Inf for floats and the
// type minimum for integers. It is the identity of a Max reduction.
func LowestValue[T Lanes]() T {
	bits := 8 * sizeOf[T]()
	switch kindOf[T]() {
	case kindFloat:
		return T(math.Inf(-1))
	case kindSigned:
		return T(-(int64(1) << (bits - 1)))
	default:
		return 0
	}
}
