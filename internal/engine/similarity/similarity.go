// Package similarity implements cosine similarity over unit-normalized
// embedding vectors.
package similarity

import (
	"errors"
	"math"
)

// ErrDimensionMismatch indicates two vectors of different lengths were
// compared. This is a wiring bug, not a data condition.
var ErrDimensionMismatch = errors.New("similarity: dimension mismatch")

// Dot returns the dot product of two vectors as a similarity in [-1, 1].
// Both inputs must already be unit-normalized; Dot does not renormalize,
// so a caller that skips normalization corrupts every downstream
// confidence value.
func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot, nil
}

// Normalize returns a copy of v scaled to unit L2 norm.
// A zero vector is returned unchanged (as a copy).
func Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	n := math.Sqrt(sum)
	if n == 0 {
		copy(out, v)
		return out
	}
	inv := float32(1.0 / n)
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}
