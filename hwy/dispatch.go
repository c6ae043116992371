package hwy

import (
	"log/slog"
	"os"
	"strconv"
)

// DispatchLevel identifies a native SIMD instruction set.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD instruction set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
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

// Width returns the register width in bytes of the level.
// SVE reports its 128-bit minimum.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// hostLevel is the widest native instruction set detected on this CPU.
// Set by init() in dispatch_*.go files.
var hostLevel DispatchLevel

// HostLevel returns the widest native SIMD instruction set of this CPU.
//
// The packet operations in this package never use it: they are the
// portable generic backend. Consumers that also link a native backend can
// use it to choose between the two.
func HostLevel() DispatchLevel {
	return hostLevel
}

// HostWidth returns the register width in bytes of HostLevel.
func HostWidth() int {
	return hostLevel.Width()
}

// BackendInfo describes the packet backend compiled into this build.
type BackendInfo struct {
	// Name is always "generic" for this package.
	Name string

	// VectorBytes is the packet width of this build.
	VectorBytes int

	// Debug reports whether contract assertions are enabled.
	Debug bool

	// Host is the native instruction set detected at init.
	Host DispatchLevel
}

// LogValue implements slog.LogValuer.
func (b BackendInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", b.Name),
		slog.Int("vector_bytes", b.VectorBytes),
		slog.Bool("debug", b.Debug),
		slog.String("host", b.Host.String()),
	)
}

// Backend returns a description of the packet backend.
func Backend() BackendInfo {
	return BackendInfo{
		Name:        "generic",
		VectorBytes: VectorBytes,
		Debug:       debugChecks,
		Host:        hostLevel,
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the host is reported as scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
