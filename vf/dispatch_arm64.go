//go:build arm64

package vf

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; the check keeps the
	// detection symmetric with amd64.
	switch {
	case cpu.ARM64.HasSVE && os.Getenv("VF_NO_SVE") == "":
		currentLevel = DispatchSVE
		currentWidth = 16
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16
	default:
		setScalarMode()
	}
}

// HasFMA reports whether fused multiply-add is available.
// Every ARMv8 core with ASIMD has FMLA.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}
