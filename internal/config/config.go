package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all modelscout configuration.
type Config struct {
	Catalog CatalogConfig
	Engine  EngineConfig
	Output  OutputConfig
}

// CatalogConfig points at the static catalog files. Empty paths select the
// built-in catalog.
type CatalogConfig struct {
	TaxonomyPath string
	ModelsPath   string
}

// EngineConfig holds classifier settings.
type EngineConfig struct {
	ModelPath           string
	VocabPath           string
	ModelURL            string // optional download source when ModelPath is absent
	VocabURL            string
	ConfidenceThreshold float64
	TopK                int
	ReadyTimeout        time.Duration
}

// OutputConfig holds output rendering settings.
type OutputConfig struct {
	Format   string // "text" or "ndjson"
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Catalog: CatalogConfig{
			TaxonomyPath: os.Getenv("MODELSCOUT_TAXONOMY_PATH"),
			ModelsPath:   os.Getenv("MODELSCOUT_MODELS_PATH"),
		},
		Engine: EngineConfig{
			ModelPath:           getenv("MODELSCOUT_MODEL_PATH", "models/encoder.onnx"),
			VocabPath:           getenv("MODELSCOUT_VOCAB_PATH", "models/vocab.txt"),
			ModelURL:            os.Getenv("MODELSCOUT_MODEL_URL"),
			VocabURL:            os.Getenv("MODELSCOUT_VOCAB_URL"),
			ConfidenceThreshold: getenvFloat("MODELSCOUT_CONFIDENCE_THRESHOLD", 0.70),
			TopK:                getenvInt("MODELSCOUT_TOP_K", 5),
			ReadyTimeout:        getenvDuration("MODELSCOUT_READY_TIMEOUT", 30*time.Second),
		},
		Output: OutputConfig{
			Format:   getenv("MODELSCOUT_OUTPUT", "text"),
			LogLevel: getenv("MODELSCOUT_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
