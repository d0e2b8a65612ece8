// Package refstore builds and holds the reference embeddings the embedding
// classifier compares queries against. The store is built once per process
// from catalog task examples and is read-only after initialization.
package refstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/crimson-sun/modelscout/internal/engine/embedder"
	"github.com/crimson-sun/modelscout/internal/model"
)

// State is the initialization progress of the store.
type State int

const (
	StateDownloading State = iota // fetching encoder artifacts
	StateLoading                  // creating the encoder session
	StateComputing                // embedding the reference examples
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateDownloading:
		return "downloading"
	case StateLoading:
		return "loading"
	case StateComputing:
		return "computing"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNotReady is returned when the store is consulted before initialization
// completes. Callers should Await readiness or use the fallback classifier.
var ErrNotReady = errors.New("refstore: not ready")

// ErrEncoderUnavailable wraps any initialization failure. Once returned,
// the embedding classifier is unavailable for the rest of the session.
var ErrEncoderUnavailable = errors.New("refstore: encoder unavailable")

// Entry is one precomputed reference embedding with its label.
type Entry struct {
	Label  model.Label
	Vector []float32
}

// Config wires the store's collaborators. The encoder is injected as a
// factory so tests can substitute deterministic fakes.
type Config struct {
	// NewEmbedder creates the encoder during the loading phase.
	NewEmbedder func() (embedder.Embedder, error)
	// Download, if non-nil, fetches encoder artifacts before loading.
	Download func(ctx context.Context) error
	// OnProgress, if non-nil, observes every state transition.
	OnProgress func(State)
}

// Store holds the reference embeddings and the encoder that produced them.
// Entries are immutable once StateReady is reached; concurrent readers need
// no locking after that point.
type Store struct {
	cfg     Config
	readyCh chan struct{}

	mu      sync.Mutex
	state   State
	err     error
	entries []Entry
	emb     embedder.Embedder
}

// Open starts initialization in the background and returns immediately.
// Use Await to block until the store is usable.
func Open(ctx context.Context, cfg Config, examples []model.TaskExample) *Store {
	s := &Store{cfg: cfg, readyCh: make(chan struct{})}
	if cfg.Download != nil {
		s.setState(StateDownloading)
	} else {
		s.setState(StateLoading)
	}
	go s.init(ctx, examples)
	return s
}

func (s *Store) init(ctx context.Context, examples []model.TaskExample) {
	if s.cfg.Download != nil {
		if err := s.cfg.Download(ctx); err != nil {
			s.fail(fmt.Errorf("%w: download: %v", ErrEncoderUnavailable, err))
			return
		}
		s.setState(StateLoading)
	}

	emb, err := s.cfg.NewEmbedder()
	if err != nil {
		s.fail(fmt.Errorf("%w: %v", ErrEncoderUnavailable, err))
		return
	}

	s.setState(StateComputing)
	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	vecs, err := emb.EmbedBatch(texts)
	if err != nil {
		emb.Close()
		s.fail(fmt.Errorf("%w: %v", ErrEncoderUnavailable, err))
		return
	}

	entries := make([]Entry, len(examples))
	for i, ex := range examples {
		entries[i] = Entry{
			Label:  model.Label{Category: ex.Category, Subcategory: ex.Subcategory},
			Vector: vecs[i],
		}
	}

	s.mu.Lock()
	s.entries = entries
	s.emb = emb
	s.state = StateReady
	s.mu.Unlock()
	s.notify(StateReady)
	close(s.readyCh)
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.err = err
	s.mu.Unlock()
	s.notify(StateError)
	close(s.readyCh)
}

func (s *Store) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.notify(st)
}

func (s *Store) notify(st State) {
	if s.cfg.OnProgress != nil {
		s.cfg.OnProgress(st)
	}
}

// Await blocks until initialization finishes or ctx expires. It returns nil
// once the store is ready, the initialization error if it failed, or the
// context error on timeout. Bound the wait with a context deadline; a failed
// init resolves immediately rather than hanging.
func (s *Store) Await(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.readyCh:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateError {
		return s.err
	}
	return nil
}

// State returns the current initialization state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Entries returns the reference embeddings, or ErrNotReady /
// the initialization error when the store is unusable.
func (s *Store) Entries() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateReady:
		return s.entries, nil
	case StateError:
		return nil, s.err
	default:
		return nil, ErrNotReady
	}
}

// Embedder returns the encoder used to build the reference embeddings.
// Queries must be encoded with this same encoder.
func (s *Store) Embedder() (embedder.Embedder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateReady:
		return s.emb, nil
	case StateError:
		return nil, s.err
	default:
		return nil, ErrNotReady
	}
}

// Close releases the encoder. Safe to call before initialization completes;
// resources created later are released by the init goroutine's error path.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emb != nil {
		err := s.emb.Close()
		s.emb = nil
		return err
	}
	return nil
}
