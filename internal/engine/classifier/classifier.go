// Package classifier implements the embedding classifier: a query embedding
// is scored against every reference entry and the top-K matches vote for a
// label, each vote weighted by its similarity.
package classifier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/crimson-sun/modelscout/internal/engine/refstore"
	"github.com/crimson-sun/modelscout/internal/engine/similarity"
	"github.com/crimson-sun/modelscout/internal/model"
)

// DefaultTopK is how many nearest reference entries vote on the label.
const DefaultTopK = 5

// ErrNoReferences indicates the reference store holds no entries. This is an
// error, not a low-confidence guess: confidence values must stay
// distinguishable from classifier failure.
var ErrNoReferences = errors.New("classifier: no reference entries")

// Classifier votes over the K nearest reference embeddings.
type Classifier struct {
	TopK int
}

// New creates a Classifier. A non-positive topK selects DefaultTopK.
func New(topK int) *Classifier {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Classifier{TopK: topK}
}

// Classify scores the query embedding against every reference entry and
// aggregates the top-K similarity-weighted votes into a labeled result.
// Confidence is the winning label's share of the total vote weight; it is 1
// exactly when all K votes agree. Any failure (dimension mismatch, empty
// reference set) surfaces as an error rather than a low-confidence result.
func (c *Classifier) Classify(query []float32, entries []refstore.Entry) (model.Result, error) {
	if len(entries) == 0 {
		return model.Result{}, ErrNoReferences
	}

	votes := make([]model.Vote, len(entries))
	for i, e := range entries {
		sim, err := similarity.Dot(query, e.Vector)
		if err != nil {
			return model.Result{}, fmt.Errorf("classifier: %w", err)
		}
		votes[i] = model.Vote{Label: e.Label, Similarity: sim}
	}

	// Stable sort: ties keep catalog order.
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Similarity > votes[j].Similarity
	})

	k := c.TopK
	if k > len(votes) {
		k = len(votes)
	}
	top := votes[:k]

	// Aggregate per-label weight, tracking first-seen order for tiebreaks.
	weights := make(map[model.Label]float64, k)
	var order []model.Label
	var total float64
	for _, v := range top {
		if _, seen := weights[v.Label]; !seen {
			order = append(order, v.Label)
		}
		weights[v.Label] += v.Similarity
		total += v.Similarity
	}

	winner := order[0]
	for _, l := range order[1:] {
		if weights[l] > weights[winner] {
			winner = l
		}
	}

	confidence := 0.0
	if total > 0 {
		confidence = weights[winner] / total
		if confidence > 1 {
			confidence = 1
		} else if confidence < 0 {
			confidence = 0
		}
	}

	breakdown := make([]model.LabelWeight, len(order))
	for i, l := range order {
		breakdown[i] = model.LabelWeight{Label: l, Weight: weights[l]}
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Weight > breakdown[j].Weight
	})

	return model.Result{
		Label:      winner,
		Confidence: confidence,
		Votes:      top,
		Breakdown:  breakdown,
	}, nil
}
