package hwy

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchSVE, "sve", 16},
		{DispatchLevel(99), "unknown", 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.width, tt.level.Width(), tt.name)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "HWY_NO_SIMD=%q", tt.val)
	}
}

func TestDetectHostLevelNoSimd(t *testing.T) {
	assert.Equal(t, DispatchScalar, detectHostLevel(true))
}

func TestBackend(t *testing.T) {
	b := Backend()

	assert.Equal(t, "generic", b.Name)
	assert.Equal(t, VectorBytes, b.VectorBytes)
	assert.Equal(t, DebugChecks(), b.Debug)
	assert.Equal(t, HostLevel(), b.Host)
	assert.Equal(t, HostLevel().Width(), HostWidth())

	v := b.LogValue()
	assert.Equal(t, slog.KindGroup, v.Kind())
	assert.Len(t, v.Group(), 4)
}
