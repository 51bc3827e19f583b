package vf

import (
	"fmt"
	"math/bits"
	"os"
	"strconv"
)

// DispatchLevel represents the vector instruction set the lane width was
// derived from.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD; lanes are still 16 bytes wide so
	// that the accumulator layout matches a 128-bit target.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE. The vector length is not queryable
	// without assembly, so SVE uses the NEON width.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected vector instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether VF_NO_SIMD is set. When it is, the scalar
// level and a 16-byte width are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	return envBool("VF_NO_SIMD")
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	// Any other non-empty value counts as set.
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}

// MaxLanes returns the number of lanes of type T in one vector register.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int8:    32/1 = 32 lanes
func MaxLanes[T Lanes]() int {
	n := currentWidth / sizeOf[T]()
	if n < 1 {
		return 1
	}
	if n > MaxVecLanes {
		return MaxVecLanes
	}
	return n
}

// SetWidth overrides the register width, in bytes, and returns a function
// restoring the previous setting. It exists so tests can sweep the bulk/tail
// split across every width a target might have. It is not safe to call
// while kernels run on other goroutines.
//
// The width must be a power of two between 8 and 64.
func SetWidth(width int) (restore func()) {
	if width < 8 || width > 64 || bits.OnesCount(uint(width)) != 1 {
		panic(fmt.Sprintf("vf: SetWidth(%d): width must be a power of two in [8, 64]", width))
	}
	prevLevel, prevWidth := currentLevel, currentWidth
	currentWidth = width
	return func() {
		currentLevel, currentWidth = prevLevel, prevWidth
	}
}
