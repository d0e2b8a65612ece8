package modelscout

import (
	"path/filepath"
	"time"

	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/engine/embedder"
)

type options struct {
	taxonomyPath string
	modelsPath   string

	modelDir  string
	modelPath string
	vocabPath string
	modelURL  string
	vocabURL  string

	confidenceThreshold float64
	topK                int
	readyTimeout        time.Duration

	fallbackOnly bool
	newEmbedder  func() (embedder.Embedder, error)
}

// Option configures a Scout instance.
type Option func(*options)

// WithCatalogPaths loads the taxonomy and model catalog from YAML files
// instead of the built-in catalog.
func WithCatalogPaths(taxonomy, models string) Option {
	return func(o *options) {
		o.taxonomyPath = taxonomy
		o.modelsPath = models
	}
}

// WithModelDir sets the directory containing encoder files.
// Expects: encoder.onnx and vocab.txt.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithModelPaths sets explicit paths for the encoder files. Use this when
// they aren't in the default directory layout.
func WithModelPaths(model, vocab string) Option {
	return func(o *options) {
		o.modelPath = model
		o.vocabPath = vocab
	}
}

// WithDownloadURLs sets where to fetch encoder files that are missing on
// disk. Without URLs, missing files fail encoder initialization and the
// Scout runs on the keyword classifier.
func WithDownloadURLs(model, vocab string) Option {
	return func(o *options) {
		o.modelURL = model
		o.vocabURL = vocab
	}
}

// WithConfidenceThreshold sets the minimum confidence to accept a
// classification without asking for clarification. Default: 0.70.
func WithConfidenceThreshold(t float64) Option {
	return func(o *options) {
		o.confidenceThreshold = t
	}
}

// WithTopK sets how many nearest reference examples vote on the label.
// Default: 5.
func WithTopK(k int) Option {
	return func(o *options) {
		o.topK = k
	}
}

// WithReadyTimeout bounds how long a classification call waits for encoder
// initialization before degrading to the keyword classifier. Default: 30s.
func WithReadyTimeout(d time.Duration) Option {
	return func(o *options) {
		o.readyTimeout = d
	}
}

// WithoutEncoder skips encoder initialization entirely and runs every
// classification through the keyword classifier. Useful when the ONNX
// runtime is not available.
func WithoutEncoder() Option {
	return func(o *options) {
		o.fallbackOnly = true
	}
}

// withEmbedderFactory substitutes the encoder constructor. Test hook.
func withEmbedderFactory(f func() (embedder.Embedder, error)) Option {
	return func(o *options) {
		o.newEmbedder = f
	}
}

func defaultOptions() options {
	return options{
		confidenceThreshold: engine.DefaultConfidenceThreshold,
		topK:                0, // classifier.New treats 0 as its default
		readyTimeout:        engine.DefaultReadyTimeout,
	}
}

// resolvePaths determines the encoder file paths from the configured
// options. Explicit paths take precedence over modelDir.
func resolvePaths(o options) (model, vocab string) {
	if o.modelPath != "" {
		return o.modelPath, o.vocabPath
	}
	dir := o.modelDir
	if dir == "" {
		dir = "models"
	}
	return filepath.Join(dir, "encoder.onnx"), filepath.Join(dir, "vocab.txt")
}
