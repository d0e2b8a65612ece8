// Package embedder produces unit-normalized sentence embeddings from text
// using a local MiniLM-class ONNX model.
package embedder

import (
	"fmt"

	"github.com/crimson-sun/modelscout/internal/engine/similarity"
)

// EmbedDim is the embedding dimensionality this module is built around.
// Reference embeddings and query embeddings must both come from an encoder
// with this output size.
const EmbedDim = 384

// Embedder produces vector embeddings from text. All returned vectors are
// unit-normalized; downstream similarity code relies on that.
type Embedder interface {
	Embed(text string) ([]float32, error)
	EmbedBatch(texts []string) ([][]float32, error)
	Dim() int
	Close() error
}

// ONNXEmbedder wraps the ONNX runtime and WordPiece tokenizer for local
// embedding inference. The pipeline is:
// tokenize → ONNX inference → mean pool → L2 normalize → 384-dim unit vector.
type ONNXEmbedder struct {
	session *onnxSession
	tok     *tokenizer
}

// New creates an ONNXEmbedder by loading the ONNX model and vocabulary.
func New(modelPath, vocabPath string) (*ONNXEmbedder, error) {
	sess, err := newONNXSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	if sess.embedDim != EmbedDim {
		sess.close()
		return nil, fmt.Errorf("embedder: model output dim %d, want %d", sess.embedDim, EmbedDim)
	}

	tok, err := newTokenizer(vocabPath)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("embedder: %w", err)
	}

	return &ONNXEmbedder{session: sess, tok: tok}, nil
}

// Dim returns the embedding dimensionality.
func (e *ONNXEmbedder) Dim() int {
	return int(e.session.embedDim)
}

// Embed produces a single unit-normalized embedding for the given text.
func (e *ONNXEmbedder) Embed(text string) ([]float32, error) {
	vecs, err := e.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch produces unit-normalized embeddings for multiple texts in a
// single inference call.
func (e *ONNXEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := e.tok.tokenizeBatch(texts)

	hidden, err := e.session.infer(
		batch.inputIDs, batch.attentionMask, batch.tokenTypeIDs,
		batch.batchSize, batch.seqLen,
	)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	dim := e.session.embedDim
	pooled := meanPool(hidden, batch.attentionMask, batch.batchSize, batch.seqLen, dim)

	results := make([][]float32, batch.batchSize)
	for i := int64(0); i < batch.batchSize; i++ {
		results[i] = similarity.Normalize(pooled[i*dim : (i+1)*dim])
	}
	return results, nil
}

// Close releases ONNX Runtime resources.
func (e *ONNXEmbedder) Close() error {
	if e.session != nil {
		return e.session.close()
	}
	return nil
}
