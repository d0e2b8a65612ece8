package modelscout

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/modelscout/internal/catalog"
	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/engine/classifier"
	"github.com/crimson-sun/modelscout/internal/engine/embedder"
	"github.com/crimson-sun/modelscout/internal/engine/fallback"
	"github.com/crimson-sun/modelscout/internal/engine/refstore"
	"github.com/crimson-sun/modelscout/internal/fetch"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/selector"
)

// Scout classifies task descriptions and recommends models for them.
// Safe for concurrent use; classification calls are serialized internally.
type Scout struct {
	cat   *catalog.Catalog
	store *refstore.Store
	eng   *engine.Engine
	sel   *selector.Selector
}

// New creates a Scout. The catalog is loaded and validated synchronously;
// encoder initialization (download, session creation, reference embedding)
// runs in the background and the first classification call waits for it.
func New(opts ...Option) (*Scout, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var cat *catalog.Catalog
	var err error
	if o.taxonomyPath != "" || o.modelsPath != "" {
		cat, err = catalog.Load(o.taxonomyPath, o.modelsPath)
		if err != nil {
			return nil, fmt.Errorf("modelscout: %w", err)
		}
	} else {
		cat = catalog.Default()
	}

	fb := fallback.New(cat)
	cls := classifier.New(o.topK)

	var store *refstore.Store
	if !o.fallbackOnly {
		store = refstore.Open(context.Background(), storeConfig(o), cat.Examples())
	}

	eng := engine.New(store, cls, fb)
	eng.ConfidenceThreshold = o.confidenceThreshold
	eng.ReadyTimeout = o.readyTimeout

	return &Scout{
		cat:   cat,
		store: store,
		eng:   eng,
		sel:   selector.New(cat.Models),
	}, nil
}

func storeConfig(o options) refstore.Config {
	modelPath, vocabPath := resolvePaths(o)

	newEmbedder := o.newEmbedder
	if newEmbedder == nil {
		newEmbedder = func() (embedder.Embedder, error) {
			return embedder.New(modelPath, vocabPath)
		}
	}

	var download func(ctx context.Context) error
	if o.modelURL != "" || o.vocabURL != "" {
		targets := map[string]string{
			modelPath: o.modelURL,
			vocabPath: o.vocabURL,
		}
		download = func(ctx context.Context) error {
			client := fetch.New()
			for path, url := range targets {
				if url == "" {
					continue
				}
				if _, err := os.Stat(path); err == nil {
					continue
				}
				if err := client.Download(ctx, url, path); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return refstore.Config{NewEmbedder: newEmbedder, Download: download}
}

// Classify labels a free-text task description. Low confidence is not an
// error: check NeedsClarification and offer Candidates to the user, then
// re-enter with Confirm.
func (s *Scout) Classify(ctx context.Context, text string) (Classification, error) {
	out, err := s.eng.Classify(ctx, text)
	if err != nil {
		return Classification{}, err
	}
	return classificationFrom(out), nil
}

// Recommend classifies the query's task description (or accepts its explicit
// label) and returns matching models grouped by resource tier. When the
// classification needs clarification, the recommendation carries candidates
// and no model tiers.
func (s *Scout) Recommend(ctx context.Context, q Query) (Recommendation, error) {
	var out engine.Outcome
	if q.Category != "" && q.Subcategory != "" {
		label := model.Label{Category: q.Category, Subcategory: q.Subcategory}
		if !s.cat.HasLabel(label) {
			return Recommendation{}, fmt.Errorf("modelscout: unknown label %s", label)
		}
		out = s.eng.Confirm(label)
	} else {
		var err error
		out, err = s.eng.Classify(ctx, q.Task)
		if err != nil {
			return Recommendation{}, err
		}
	}

	rec := Recommendation{Classification: classificationFrom(out)}
	if out.Status != engine.StatusConfident {
		return rec, nil
	}

	g := s.sel.GroupedByTier(out.Result.Label.Category, out.Result.Label.Subcategory,
		q.MinAccuracy, model.Deployment(q.Deployment))
	rec.Tiers = tiersFrom(g)
	rec.TotalShown = g.TotalShown
	rec.TotalHidden = g.TotalHidden
	return rec, nil
}

// Confirm resolves a clarification: the user picked a label, so recommend
// for it directly without re-scoring.
func (s *Scout) Confirm(label Label, q Query) (Recommendation, error) {
	q.Category = label.Category
	q.Subcategory = label.Subcategory
	return s.Recommend(context.Background(), q)
}

// Labels returns every task label in the catalog, in priority order.
func (s *Scout) Labels() []Label {
	var out []Label
	for _, l := range s.cat.Labels() {
		out = append(out, Label{l.Category, l.Subcategory})
	}
	return out
}

// Close releases encoder resources. Safe to call while initialization is
// still in flight.
func (s *Scout) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
