// Package selector filters and ranks catalog models for a confirmed task
// label. Pure functions over the static catalog; smaller models rank first.
// Missing data never raises an error: empty segments come back as well-formed
// empty results with counts.
package selector

import (
	"sort"

	"github.com/crimson-sun/modelscout/internal/model"
)

// deploymentAllowSets expands a deployment target into the set of options a
// model may list to qualify. The relationship is a capability superset:
// anything that runs in a browser also runs wherever cloud infra exists.
var deploymentAllowSets = map[model.Deployment][]model.Deployment{
	model.DeployBrowser: {model.DeployBrowser},
	model.DeployEdge:    {model.DeployBrowser, model.DeployEdge, model.DeployMobile},
	model.DeployCloud:   {model.DeployBrowser, model.DeployEdge, model.DeployMobile, model.DeployCloud, model.DeployServer},
}

// Targets lists the deployment targets a caller may filter by.
func Targets() []model.Deployment {
	return []model.Deployment{model.DeployBrowser, model.DeployEdge, model.DeployCloud}
}

// Selector answers model queries against a loaded catalog.
type Selector struct {
	models []model.Model
}

// New creates a Selector over the catalog's models.
func New(models []model.Model) *Selector {
	return &Selector{models: models}
}

// ModelsFor returns every model under the given label, in catalog order.
func (s *Selector) ModelsFor(category, subcategory string) []model.Model {
	var out []model.Model
	for _, m := range s.models {
		if m.Category == category && m.Subcategory == subcategory {
			out = append(out, m)
		}
	}
	return out
}

// FilterByAccuracy keeps models whose accuracy meets thresholdPercent/100.
// A threshold of 0 means no filtering at all: every model passes, including
// those with no reported accuracy. Any non-zero threshold excludes models
// with missing accuracy (recorded as 0).
func FilterByAccuracy(models []model.Model, thresholdPercent float64) []model.Model {
	if thresholdPercent == 0 {
		return models
	}
	min := thresholdPercent / 100
	var out []model.Model
	for _, m := range models {
		if m.Accuracy >= min {
			out = append(out, m)
		}
	}
	return out
}

// FilterByDeployment keeps models whose deployment options intersect the
// target's allow set. An empty target means no filtering.
func FilterByDeployment(models []model.Model, target model.Deployment) []model.Model {
	if target == "" {
		return models
	}
	allowed, ok := deploymentAllowSets[target]
	if !ok {
		return models
	}
	var out []model.Model
	for _, m := range models {
		for _, d := range allowed {
			if m.RunsOn(d) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Rank sorts a copy of models by tier ascending (lightweight first), then by
// sizeMB ascending within tier. Tier dominates size; no other field
// participates. The sort is stable, so ranking an already-ranked list leaves
// it unchanged.
func Rank(models []model.Model) []model.Model {
	out := make([]model.Model, len(models))
	copy(out, models)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].SizeMB < out[j].SizeMB
	})
	return out
}

// TierGroup is one tier's slice of a grouped result.
type TierGroup struct {
	Tier      model.Tier    `json:"tier"`
	Footprint string        `json:"footprint"`
	Models    []model.Model `json:"models"`
	Hidden    int           `json:"hidden"` // excluded by accuracy + deployment filters
}

// Grouped is the tier-grouped answer for one label. Every tier is always
// present, even when empty.
type Grouped struct {
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Tiers       []TierGroup `json:"tiers"`
	TotalShown  int         `json:"total_shown"`
	TotalHidden int         `json:"total_hidden"`
}

// GroupedByTier applies the accuracy filter, then the deployment filter,
// then ranks, independently per tier. A label with no catalog entries yields
// an empty-but-well-formed structure, never an error.
func (s *Selector) GroupedByTier(category, subcategory string, accuracyThreshold float64, target model.Deployment) Grouped {
	all := s.ModelsFor(category, subcategory)

	g := Grouped{Category: category, Subcategory: subcategory}
	for _, tier := range model.AllTiers() {
		var inTier []model.Model
		for _, m := range all {
			if m.Tier == tier {
				inTier = append(inTier, m)
			}
		}

		kept := FilterByDeployment(FilterByAccuracy(inTier, accuracyThreshold), target)
		kept = Rank(kept)

		group := TierGroup{
			Tier:      tier,
			Footprint: tier.Footprint(),
			Models:    kept,
			Hidden:    len(inTier) - len(kept),
		}
		g.Tiers = append(g.Tiers, group)
		g.TotalShown += len(kept)
		g.TotalHidden += group.Hidden
	}
	return g
}
