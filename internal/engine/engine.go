// Package engine orchestrates classification: it prefers the embedding
// classifier when the reference store is ready, arbitrates on confidence and
// vote agreement, and falls back to the keyword classifier when the
// embedding path is unavailable.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/crimson-sun/modelscout/internal/engine/classifier"
	"github.com/crimson-sun/modelscout/internal/engine/fallback"
	"github.com/crimson-sun/modelscout/internal/engine/refstore"
	"github.com/crimson-sun/modelscout/internal/model"
)

const (
	// DefaultConfidenceThreshold is the minimum confidence to accept a
	// classification without asking the user to clarify.
	DefaultConfidenceThreshold = 0.70
	// DefaultMinAgreement is how many of the top-K votes must agree with
	// the winning label.
	DefaultMinAgreement = 3
	// DefaultReadyTimeout bounds how long a classification call waits for
	// the reference store to finish initializing.
	DefaultReadyTimeout = 30 * time.Second
	// maxCandidates caps the clarification candidate list.
	maxCandidates = 3
)

// State describes which classification paths are currently available.
type State int

const (
	StateUninitialized    State = iota // reference store still initializing
	StateReadyEmbedding                // embedding classifier available
	StateReadyFallbackOnly             // embedding init failed; fallback for the session
)

// Status is the outcome kind of a classification call.
type Status int

const (
	StatusConfident Status = iota
	StatusNeedsClarification
)

// Source identifies which classifier produced a result.
type Source string

const (
	SourceEmbedding Source = "embedding"
	SourceFallback  Source = "fallback"
	SourceBypass    Source = "bypass"
)

// Outcome is the orchestrator's answer for one query.
type Outcome struct {
	Status     Status
	Result     model.Result
	Source     Source
	Candidates []model.Label // ranked candidates when clarification is needed
}

// Engine arbitrates between the embedding and fallback classifiers.
// Classification calls on the same Engine are serialized: a second call
// queues behind the first rather than interleaving.
type Engine struct {
	// ConfidenceThreshold and MinAgreement tune the clarification policy.
	ConfidenceThreshold float64
	MinAgreement        int
	// ReadyTimeout bounds the wait for reference-store initialization.
	ReadyTimeout time.Duration

	store *refstore.Store
	cls   *classifier.Classifier
	fb    *fallback.Classifier

	mu           sync.Mutex
	fallbackOnly bool // sticky once the encoder is known dead
}

// New creates an Engine. store may be nil, in which case every call routes
// to the fallback classifier.
func New(store *refstore.Store, cls *classifier.Classifier, fb *fallback.Classifier) *Engine {
	return &Engine{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		MinAgreement:        DefaultMinAgreement,
		ReadyTimeout:        DefaultReadyTimeout,
		store:               store,
		cls:                 cls,
		fb:                  fb,
	}
}

// State reports which classification path the next call will take.
func (e *Engine) State() State {
	e.mu.Lock()
	fallbackOnly := e.fallbackOnly
	e.mu.Unlock()

	if fallbackOnly || e.store == nil {
		return StateReadyFallbackOnly
	}
	switch e.store.State() {
	case refstore.StateReady:
		return StateReadyEmbedding
	case refstore.StateError:
		return StateReadyFallbackOnly
	default:
		return StateUninitialized
	}
}

// Classify labels a free-text task description. It never returns an error to
// the caller except context cancellation: embedding failures degrade to the
// fallback classifier, and low confidence becomes StatusNeedsClarification.
func (e *Engine) Classify(ctx context.Context, text string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	if e.fallbackOnly || e.store == nil {
		return e.classifyFallback(text), nil
	}

	awaitCtx, cancel := context.WithTimeout(ctx, e.ReadyTimeout)
	defer cancel()
	if err := e.store.Await(awaitCtx); err != nil {
		if errors.Is(err, refstore.ErrEncoderUnavailable) {
			// Initialization failed for good; stop consulting the store.
			e.fallbackOnly = true
			slog.Warn("encoder unavailable, using fallback classifier for the session", "error", err)
		} else if ctx.Err() != nil {
			return Outcome{}, ctx.Err()
		} else {
			slog.Warn("reference store not ready, using fallback classifier", "error", err)
		}
		return e.classifyFallback(text), nil
	}

	res, err := e.classifyEmbedding(text)
	if err != nil {
		slog.Warn("embedding classification failed, using fallback classifier", "error", err)
		return e.classifyFallback(text), nil
	}

	if res.Confidence >= e.ConfidenceThreshold && e.agreement(res) {
		return Outcome{Status: StatusConfident, Result: res, Source: SourceEmbedding}, nil
	}
	return Outcome{
		Status:     StatusNeedsClarification,
		Result:     res,
		Source:     SourceEmbedding,
		Candidates: candidates(res.Breakdown),
	}, nil
}

// Confirm re-enters classification with a user-confirmed label, bypassing
// re-scoring. Also used when the caller supplies the label up front.
func (e *Engine) Confirm(label model.Label) Outcome {
	return Outcome{
		Status: StatusConfident,
		Result: model.Result{Label: label, Confidence: 1},
		Source: SourceBypass,
	}
}

func (e *Engine) classifyEmbedding(text string) (model.Result, error) {
	emb, err := e.store.Embedder()
	if err != nil {
		return model.Result{}, err
	}
	entries, err := e.store.Entries()
	if err != nil {
		return model.Result{}, err
	}
	vec, err := emb.Embed(text)
	if err != nil {
		return model.Result{}, err
	}
	return e.cls.Classify(vec, entries)
}

func (e *Engine) classifyFallback(text string) Outcome {
	res := e.fb.Classify(text)
	if res.Confidence >= e.ConfidenceThreshold {
		return Outcome{Status: StatusConfident, Result: res, Source: SourceFallback}
	}
	return Outcome{
		Status:     StatusNeedsClarification,
		Result:     res,
		Source:     SourceFallback,
		Candidates: candidates(res.Breakdown),
	}
}

// agreement checks that enough of the top-K votes picked the winning label.
// With fewer votes than MinAgreement, all of them must agree.
func (e *Engine) agreement(res model.Result) bool {
	required := e.MinAgreement
	if len(res.Votes) < required {
		required = len(res.Votes)
	}
	agreeing := 0
	for _, v := range res.Votes {
		if v.Label == res.Label {
			agreeing++
		}
	}
	return agreeing >= required
}

// candidates picks the top distinct labels from a vote breakdown for the
// clarification prompt.
func candidates(breakdown []model.LabelWeight) []model.Label {
	var out []model.Label
	for _, lw := range breakdown {
		out = append(out, lw.Label)
		if len(out) == maxCandidates {
			break
		}
	}
	return out
}
