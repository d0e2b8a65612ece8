package similarity

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-6

func TestDotSelfSimilarityIsOne(t *testing.T) {
	vecs := [][]float32{
		{1, 0, 0},
		{0.6, 0.8, 0},
		{0.5, 0.5, 0.5, 0.5},
	}
	for _, v := range vecs {
		n := Normalize(v)
		got, err := Dot(n, n)
		if err != nil {
			t.Fatalf("Dot returned error: %v", err)
		}
		if math.Abs(got-1) > tolerance {
			t.Errorf("Dot(v, v) = %v, want 1", got)
		}
	}
}

func TestDotSymmetric(t *testing.T) {
	a := Normalize([]float32{1, 2, 3})
	b := Normalize([]float32{-3, 0, 1})

	ab, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot(a, b): %v", err)
	}
	ba, err := Dot(b, a)
	if err != nil {
		t.Fatalf("Dot(b, a): %v", err)
	}
	if math.Abs(ab-ba) > tolerance {
		t.Errorf("Dot not symmetric: %v vs %v", ab, ba)
	}
}

func TestDotOrthogonal(t *testing.T) {
	got, err := Dot([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if math.Abs(got) > tolerance {
		t.Errorf("Dot(orthogonal) = %v, want 0", got)
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	_, err := Dot([]float32{1, 0}, []float32{1, 0, 0})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	n := Normalize(v)

	if v[0] != 3 || v[1] != 4 {
		t.Fatal("Normalize mutated its input")
	}
	var sum float64
	for _, x := range n {
		sum += float64(x) * float64(x)
	}
	if math.Abs(sum-1) > tolerance {
		t.Errorf("norm^2 = %v, want 1", sum)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Normalize([]float32{0, 0, 0})
	for i, x := range n {
		if x != 0 {
			t.Errorf("n[%d] = %v, want 0", i, x)
		}
	}
}
