package embedder

import (
	"math"
	"testing"
)

func TestMeanPoolIgnoresPadding(t *testing.T) {
	// One sample, seqLen=3, dim=2. Third position is padding.
	hidden := []float32{
		1, 2,
		3, 4,
		100, 100,
	}
	mask := []int64{1, 1, 0}

	out := meanPool(hidden, mask, 1, 3, 2)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d", len(out))
	}
	if out[0] != 2 || out[1] != 3 {
		t.Errorf("pooled = %v, want [2 3]", out)
	}
}

func TestMeanPoolBatch(t *testing.T) {
	// Two samples, seqLen=2, dim=1.
	hidden := []float32{
		2, 4, // sample 0: mean 3
		6, 8, // sample 1: mean 7
	}
	mask := []int64{1, 1, 1, 1}

	out := meanPool(hidden, mask, 2, 2, 1)
	if math.Abs(float64(out[0])-3) > 1e-6 || math.Abs(float64(out[1])-7) > 1e-6 {
		t.Errorf("pooled = %v, want [3 7]", out)
	}
}

func TestMeanPoolAllPadding(t *testing.T) {
	hidden := []float32{1, 2, 3, 4}
	mask := []int64{0, 0}

	out := meanPool(hidden, mask, 1, 2, 2)
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("pooled = %v, want zeros", out)
	}
}
