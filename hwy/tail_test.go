package hwy

import (
	"math"
	"testing"
)

func TestProcessWithTail(t *testing.T) {
	size := NumLanes[float32]()*3 + 5
	data := make([]float32, size)
	for i := range data {
		data[i] = float32(i)
	}
	output := make([]float32, size)

	fullVectors, tails := 0, 0
	ProcessWithTail[float32](size,
		func(offset int) {
			fullVectors++
			v := Ploadu(data[offset:])
			Pstoreu(output[offset:], Padd(v, v))
		},
		func(offset, count int) {
			tails++
			v := PloadPartial(data[offset : offset+count])
			PstorePartial(output[offset:offset+count], Padd(v, v))
		},
	)

	if fullVectors != 3 || tails != 1 {
		t.Errorf("ProcessWithTail: got %d full and %d tail calls, want 3 and 1", fullVectors, tails)
	}
	for i, val := range output {
		expected := float32(i) * 2
		if math.Abs(float64(val-expected)) > 0.001 {
			t.Errorf("ProcessWithTail: output[%d]: got %v, want %v", i, val, expected)
		}
	}
}

func TestProcessWithTailExact(t *testing.T) {
	calls := 0
	ProcessWithTail[int64](NumLanes[int64]()*2,
		func(int) { calls++ },
		func(int, int) { t.Error("ProcessWithTail: unexpected tail call") },
	)
	if calls != 2 {
		t.Errorf("ProcessWithTail: got %d full calls, want 2", calls)
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := NumLanes[float32]()

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, lanes},
		{lanes, lanes},
		{lanes + 1, lanes * 2},
		{lanes * 2, lanes * 2},
	}

	for _, tt := range tests {
		result := AlignedSize[float32](tt.input)
		if result != tt.expected {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.input, result, tt.expected)
		}
	}
}
