package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/modelscout/internal/catalog"
	"github.com/crimson-sun/modelscout/internal/config"
	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/engine/classifier"
	"github.com/crimson-sun/modelscout/internal/engine/embedder"
	"github.com/crimson-sun/modelscout/internal/engine/fallback"
	"github.com/crimson-sun/modelscout/internal/engine/refstore"
	"github.com/crimson-sun/modelscout/internal/fetch"
	"github.com/crimson-sun/modelscout/internal/logging"
)

// loadCatalog loads the configured catalog files, or the built-in catalog
// when no paths are set.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.TaxonomyPath != "" || cfg.Catalog.ModelsPath != "" {
		return catalog.Load(cfg.Catalog.TaxonomyPath, cfg.Catalog.ModelsPath)
	}
	return catalog.Default(), nil
}

// buildEngine assembles the classification engine. Encoder initialization
// runs in the background; the returned close func releases it.
func buildEngine(ctx context.Context, cfg config.Config, cat *catalog.Catalog) (*engine.Engine, func() error) {
	fb := fallback.New(cat)
	cls := classifier.New(cfg.Engine.TopK)

	log := logging.Component("refstore")
	store := refstore.Open(ctx, refstore.Config{
		NewEmbedder: func() (embedder.Embedder, error) {
			return embedder.New(cfg.Engine.ModelPath, cfg.Engine.VocabPath)
		},
		Download: downloadFunc(cfg),
		OnProgress: func(st refstore.State) {
			log.Debug("encoder initialization", "state", st)
		},
	}, cat.Examples())

	eng := engine.New(store, cls, fb)
	eng.ConfidenceThreshold = cfg.Engine.ConfidenceThreshold
	eng.ReadyTimeout = cfg.Engine.ReadyTimeout
	return eng, store.Close
}

// buildEngineless assembles an engine with no encoder, for calls that never
// classify free text (explicit labels, catalog inspection).
func buildEngineless(cfg config.Config, cat *catalog.Catalog) (*engine.Engine, func() error) {
	eng := engine.New(nil, classifier.New(cfg.Engine.TopK), fallback.New(cat))
	eng.ConfidenceThreshold = cfg.Engine.ConfidenceThreshold
	return eng, func() error { return nil }
}

// downloadFunc fetches encoder files that are configured with a URL but
// missing on disk. Returns nil when no URLs are configured.
func downloadFunc(cfg config.Config) func(ctx context.Context) error {
	if cfg.Engine.ModelURL == "" && cfg.Engine.VocabURL == "" {
		return nil
	}
	targets := map[string]string{
		cfg.Engine.ModelPath: cfg.Engine.ModelURL,
		cfg.Engine.VocabPath: cfg.Engine.VocabURL,
	}
	return func(ctx context.Context) error {
		client := fetch.New()
		for path, url := range targets {
			if url == "" {
				continue
			}
			if _, err := os.Stat(path); err == nil {
				continue
			}
			logging.Component("fetch").Info("downloading encoder file", "url", url, "path", path)
			if err := client.Download(ctx, url, path); err != nil {
				return fmt.Errorf("download %s: %w", url, err)
			}
		}
		return nil
	}
}
