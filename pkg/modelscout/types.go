package modelscout

import (
	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/selector"
)

// Label is a (category, subcategory) task label.
type Label struct {
	Category    string
	Subcategory string
}

// Classification is the result of labeling a task description.
type Classification struct {
	Category    string
	Subcategory string
	// Confidence is the classifier's share-of-vote for the winning label,
	// in [0, 1]. Exactly 1 for a unanimous embedding vote or a confirmed
	// label.
	Confidence float64
	// Source is "embedding", "fallback" (keyword classifier), or "bypass"
	// (caller-supplied label).
	Source string
	// NeedsClarification is set when confidence or vote agreement is too
	// low to act on the label without asking the user.
	NeedsClarification bool
	// Candidates are the top alternative labels to offer when
	// clarification is needed, best first.
	Candidates []Label
}

// ModelInfo describes one recommended model.
type ModelInfo struct {
	ID     string
	SizeMB float64
	// Accuracy is the reported benchmark accuracy in [0, 1]; 0 means the
	// catalog has no figure for this model.
	Accuracy   float64
	Deployment []string
}

// TierGroup is one resource tier of a recommendation. Tiers are always
// present in ascending resource order, even when empty.
type TierGroup struct {
	Tier      string
	Footprint string
	Models    []ModelInfo // ranked smallest-first
	Hidden    int         // models in this tier excluded by filters
}

// Recommendation is the full answer for one query: the classification plus
// the matching models grouped by tier. Tiers is empty when the
// classification needs clarification.
type Recommendation struct {
	Classification Classification
	Tiers          []TierGroup
	TotalShown     int
	TotalHidden    int
}

// Query describes what to recommend models for.
type Query struct {
	// Task is the free-text task description to classify.
	Task string
	// Category and Subcategory, when both set, bypass classification and
	// recommend for that label directly.
	Category    string
	Subcategory string
	// MinAccuracy excludes models below this reported accuracy, as a
	// percentage (e.g. 85 for 85%). Zero disables the filter; a non-zero
	// value also excludes models with no reported accuracy.
	MinAccuracy float64
	// Deployment restricts models to a target environment: "browser",
	// "edge", or "cloud". Empty or unrecognized means no restriction.
	Deployment string
}

func classificationFrom(o engine.Outcome) Classification {
	c := Classification{
		Category:           o.Result.Label.Category,
		Subcategory:        o.Result.Label.Subcategory,
		Confidence:         o.Result.Confidence,
		Source:             string(o.Source),
		NeedsClarification: o.Status == engine.StatusNeedsClarification,
	}
	for _, cand := range o.Candidates {
		c.Candidates = append(c.Candidates, Label{cand.Category, cand.Subcategory})
	}
	return c
}

func modelInfoFrom(m model.Model) ModelInfo {
	info := ModelInfo{
		ID:       m.ID,
		SizeMB:   m.SizeMB,
		Accuracy: m.Accuracy,
	}
	for _, d := range m.Deployment {
		info.Deployment = append(info.Deployment, string(d))
	}
	return info
}

func tiersFrom(g selector.Grouped) []TierGroup {
	out := make([]TierGroup, 0, len(g.Tiers))
	for _, tier := range g.Tiers {
		tg := TierGroup{
			Tier:      tier.Tier.String(),
			Footprint: tier.Footprint,
			Hidden:    tier.Hidden,
		}
		for _, m := range tier.Models {
			tg.Models = append(tg.Models, modelInfoFrom(m))
		}
		out = append(out, tg)
	}
	return out
}
