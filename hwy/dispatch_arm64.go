//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	hostLevel = detectHostLevel(NoSimdEnv())
}

func detectHostLevel(noSimd bool) DispatchLevel {
	// ASIMD is part of the ARMv8-A base architecture, so NEON is the floor.
	switch {
	case noSimd:
		return DispatchScalar
	case cpu.ARM64.HasSVE:
		return DispatchSVE
	case cpu.ARM64.HasASIMD:
		return DispatchNEON
	default:
		return DispatchScalar
	}
}
