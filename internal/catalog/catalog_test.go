package catalog

import (
	"strings"
	"testing"

	"github.com/crimson-sun/modelscout/internal/model"
)

const testTaxonomy = `
categories:
  - name: computer_vision
    subcategories:
      - name: image_classification
        keywords: ["classify images", "image classification"]
        examples:
          - classify product images into categories
  - name: audio
    subcategories:
      - name: speech_recognition
        keywords: ["speech to text"]
        examples:
          - transcribe recorded calls
`

const testModels = `
models:
  - id: tiny-net
    category: computer_vision
    subcategory: image_classification
    size_mb: 12
    tier: lightweight
    accuracy: 0.7
    deployment: [browser, mobile]
  - id: big-net
    category: computer_vision
    subcategory: image_classification
    size_mb: 1500
    accuracy: 0.9
    deployment: [cloud, server]
`

func TestParseValid(t *testing.T) {
	c, err := Parse([]byte(testTaxonomy), []byte(testModels))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(c.Categories))
	}
	if len(c.Models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(c.Models))
	}
	if c.Models[0].Tier != model.TierLightweight {
		t.Errorf("tiny-net tier = %v, want lightweight", c.Models[0].Tier)
	}
	// big-net omits tier; it must be derived from size.
	if c.Models[1].Tier != model.TierStandard {
		t.Errorf("big-net tier = %v, want standard (derived from 1500MB)", c.Models[1].Tier)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		models  string
		wantErr string
	}{
		{
			name: "tier disagrees with size",
			models: `
models:
  - id: liar
    category: computer_vision
    subcategory: image_classification
    size_mb: 9000
    tier: lightweight
    deployment: [cloud]
`,
			wantErr: "disagrees",
		},
		{
			name: "unknown tier string",
			models: `
models:
  - id: weird
    category: computer_vision
    subcategory: image_classification
    size_mb: 10
    tier: colossal
    deployment: [cloud]
`,
			wantErr: "unknown tier",
		},
		{
			name: "non-positive size",
			models: `
models:
  - id: zero
    category: computer_vision
    subcategory: image_classification
    size_mb: 0
    deployment: [cloud]
`,
			wantErr: "size_mb",
		},
		{
			name: "accuracy out of range",
			models: `
models:
  - id: overfit
    category: computer_vision
    subcategory: image_classification
    size_mb: 10
    accuracy: 1.2
    deployment: [cloud]
`,
			wantErr: "accuracy",
		},
		{
			name: "unknown deployment option",
			models: `
models:
  - id: moonbase
    category: computer_vision
    subcategory: image_classification
    size_mb: 10
    deployment: [orbit]
`,
			wantErr: "deployment",
		},
		{
			name: "unknown label",
			models: `
models:
  - id: orphan
    category: robotics
    subcategory: grasping
    size_mb: 10
    deployment: [cloud]
`,
			wantErr: "unknown label",
		},
		{
			name: "duplicate id",
			models: `
models:
  - id: twin
    category: computer_vision
    subcategory: image_classification
    size_mb: 10
    deployment: [cloud]
  - id: twin
    category: computer_vision
    subcategory: image_classification
    size_mb: 20
    deployment: [cloud]
`,
			wantErr: "duplicate id",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(testTaxonomy), []byte(tc.models))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsEmptyTaxonomy(t *testing.T) {
	_, err := Parse([]byte("categories: []"), []byte("models: []"))
	if err == nil {
		t.Fatal("expected error for empty taxonomy")
	}
}

func TestExamplesAndLabelsInCatalogOrder(t *testing.T) {
	c, err := Parse([]byte(testTaxonomy), []byte(testModels))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ex := c.Examples()
	if len(ex) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(ex))
	}
	if ex[0].Category != "computer_vision" || ex[1].Category != "audio" {
		t.Errorf("examples out of catalog order: %v", ex)
	}

	labels := c.Labels()
	want := []model.Label{
		{Category: "computer_vision", Subcategory: "image_classification"},
		{Category: "audio", Subcategory: "speech_recognition"},
	}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %v, want %v", i, labels[i], want[i])
		}
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if len(c.Categories) == 0 || len(c.Models) == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, m := range c.Models {
		if m.SizeMB <= 0 {
			t.Errorf("model %s: non-positive size", m.ID)
		}
		if m.Tier != model.TierForSize(m.SizeMB) {
			t.Errorf("model %s: tier %v disagrees with size %vMB", m.ID, m.Tier, m.SizeMB)
		}
		if !c.HasLabel(model.Label{Category: m.Category, Subcategory: m.Subcategory}) {
			t.Errorf("model %s: label %s/%s not in taxonomy", m.ID, m.Category, m.Subcategory)
		}
		if m.Accuracy < 0 || m.Accuracy > 1 {
			t.Errorf("model %s: accuracy %v outside [0,1]", m.ID, m.Accuracy)
		}
	}
	for _, sub := range c.Categories {
		for _, s := range sub.Subcategories {
			if len(s.Examples) == 0 {
				t.Errorf("%s/%s has no examples", sub.Name, s.Name)
			}
		}
	}
}
