//go:build !amd64 && !arm64

package vf

func init() {
	// Other architectures run the lane code without hardware detection.
	setScalarMode()
}

// HasFMA reports whether fused multiply-add is available.
func HasFMA() bool {
	return false
}
