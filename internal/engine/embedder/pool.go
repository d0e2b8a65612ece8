package embedder

// meanPool computes attention-mask-weighted mean pooling over the sequence
// dimension of transformer hidden states.
//
// hidden: flat [batchSize * seqLen * dim] per-token hidden states
// mask:   flat [batchSize * seqLen], 1 for real tokens, 0 for padding
//
// Returns flat [batchSize * dim], one pooled vector per sample.
func meanPool(hidden []float32, mask []int64, batchSize, seqLen, dim int64) []float32 {
	out := make([]float32, batchSize*dim)

	for b := int64(0); b < batchSize; b++ {
		outOff := b * dim

		var count float32
		for s := int64(0); s < seqLen; s++ {
			if mask[b*seqLen+s] != 1 {
				continue
			}
			count++
			tokOff := (b*seqLen + s) * dim
			for d := int64(0); d < dim; d++ {
				out[outOff+d] += hidden[tokOff+d]
			}
		}
		if count == 0 {
			continue
		}

		inv := 1.0 / count
		for d := int64(0); d < dim; d++ {
			out[outOff+d] *= inv
		}
	}

	return out
}
