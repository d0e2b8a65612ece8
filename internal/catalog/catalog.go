// Package catalog loads and validates the static task taxonomy and model
// catalog. Both are read-only after loading; malformed entries are rejected
// at startup rather than surfacing lazily mid-request.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/modelscout/internal/model"
)

// Catalog is the validated, in-memory form of both static data sources.
type Catalog struct {
	Categories []Category
	Models     []model.Model
}

// Category is one task category with its subcategories, in catalog order.
// Catalog order is load-bearing: it defines the fallback priority order and
// breaks classification ties.
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Subcategory holds the keywords and example texts for one task type.
type Subcategory struct {
	Name     string
	Keywords []string
	Examples []string
}

type taxonomyFile struct {
	Categories []struct {
		Name          string `yaml:"name"`
		Subcategories []struct {
			Name     string   `yaml:"name"`
			Keywords []string `yaml:"keywords"`
			Examples []string `yaml:"examples"`
		} `yaml:"subcategories"`
	} `yaml:"categories"`
}

type modelsFile struct {
	Models []struct {
		ID          string   `yaml:"id"`
		Category    string   `yaml:"category"`
		Subcategory string   `yaml:"subcategory"`
		SizeMB      float64  `yaml:"size_mb"`
		Tier        string   `yaml:"tier"`
		Accuracy    float64  `yaml:"accuracy"`
		Deployment  []string `yaml:"deployment"`
	} `yaml:"models"`
}

// Load reads and validates both catalog files.
func Load(taxonomyPath, modelsPath string) (*Catalog, error) {
	taxData, err := os.ReadFile(taxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	modelData, err := os.ReadFile(modelsPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(taxData, modelData)
}

// Parse validates raw YAML catalog data and builds a Catalog.
func Parse(taxonomyYAML, modelsYAML []byte) (*Catalog, error) {
	var tf taxonomyFile
	if err := yaml.Unmarshal(taxonomyYAML, &tf); err != nil {
		return nil, fmt.Errorf("catalog: taxonomy: %w", err)
	}
	var mf modelsFile
	if err := yaml.Unmarshal(modelsYAML, &mf); err != nil {
		return nil, fmt.Errorf("catalog: models: %w", err)
	}

	c := &Catalog{}

	seenCat := make(map[string]bool)
	for _, cat := range tf.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog: taxonomy: category with empty name")
		}
		if seenCat[cat.Name] {
			return nil, fmt.Errorf("catalog: taxonomy: duplicate category %q", cat.Name)
		}
		seenCat[cat.Name] = true

		out := Category{Name: cat.Name}
		seenSub := make(map[string]bool)
		for _, sub := range cat.Subcategories {
			if sub.Name == "" {
				return nil, fmt.Errorf("catalog: taxonomy: category %q: subcategory with empty name", cat.Name)
			}
			if seenSub[sub.Name] {
				return nil, fmt.Errorf("catalog: taxonomy: category %q: duplicate subcategory %q", cat.Name, sub.Name)
			}
			seenSub[sub.Name] = true
			if len(sub.Examples) == 0 {
				return nil, fmt.Errorf("catalog: taxonomy: %s/%s has no example texts", cat.Name, sub.Name)
			}
			out.Subcategories = append(out.Subcategories, Subcategory{
				Name:     sub.Name,
				Keywords: sub.Keywords,
				Examples: sub.Examples,
			})
		}
		if len(out.Subcategories) == 0 {
			return nil, fmt.Errorf("catalog: taxonomy: category %q has no subcategories", cat.Name)
		}
		c.Categories = append(c.Categories, out)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog: taxonomy has no categories")
	}

	seenID := make(map[string]bool)
	for _, m := range mf.Models {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: models: entry with empty id")
		}
		if seenID[m.ID] {
			return nil, fmt.Errorf("catalog: models: duplicate id %q", m.ID)
		}
		seenID[m.ID] = true

		if m.SizeMB <= 0 {
			return nil, fmt.Errorf("catalog: model %q: size_mb must be > 0, got %v", m.ID, m.SizeMB)
		}
		if m.Accuracy < 0 || m.Accuracy > 1 {
			return nil, fmt.Errorf("catalog: model %q: accuracy %v outside [0, 1]", m.ID, m.Accuracy)
		}
		if !c.HasLabel(model.Label{Category: m.Category, Subcategory: m.Subcategory}) {
			return nil, fmt.Errorf("catalog: model %q: unknown label %s/%s", m.ID, m.Category, m.Subcategory)
		}

		derived := model.TierForSize(m.SizeMB)
		if m.Tier != "" {
			declared, err := model.ParseTier(m.Tier)
			if err != nil {
				return nil, fmt.Errorf("catalog: model %q: %w", m.ID, err)
			}
			if declared != derived {
				return nil, fmt.Errorf("catalog: model %q: declared tier %s disagrees with size %vMB (derives %s)",
					m.ID, declared, m.SizeMB, derived)
			}
		}

		var deps []model.Deployment
		for _, d := range m.Deployment {
			dep := model.Deployment(d)
			if !knownDeployment(dep) {
				return nil, fmt.Errorf("catalog: model %q: unknown deployment option %q", m.ID, d)
			}
			deps = append(deps, dep)
		}

		c.Models = append(c.Models, model.Model{
			ID:          m.ID,
			SizeMB:      m.SizeMB,
			Tier:        derived,
			Accuracy:    m.Accuracy,
			Deployment:  deps,
			Category:    m.Category,
			Subcategory: m.Subcategory,
		})
	}

	return c, nil
}

func knownDeployment(d model.Deployment) bool {
	for _, k := range model.KnownDeployments() {
		if d == k {
			return true
		}
	}
	return false
}

// HasLabel reports whether the taxonomy contains the given label.
func (c *Catalog) HasLabel(l model.Label) bool {
	for _, cat := range c.Categories {
		if cat.Name != l.Category {
			continue
		}
		for _, sub := range cat.Subcategories {
			if sub.Name == l.Subcategory {
				return true
			}
		}
	}
	return false
}

// Examples flattens every subcategory's example texts into labeled
// TaskExamples, in catalog order.
func (c *Catalog) Examples() []model.TaskExample {
	var out []model.TaskExample
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			for _, text := range sub.Examples {
				out = append(out, model.TaskExample{
					Category:    cat.Name,
					Subcategory: sub.Name,
					Text:        text,
				})
			}
		}
	}
	return out
}

// Labels returns every (category, subcategory) pair in catalog order.
// This order is the deterministic priority used by the fallback classifier.
func (c *Catalog) Labels() []model.Label {
	var out []model.Label
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			out = append(out, model.Label{Category: cat.Name, Subcategory: sub.Name})
		}
	}
	return out
}
