// Package fallback implements the keyword classifier used when the embedding
// classifier is unavailable or underconfident. It is built once from the same
// task examples, shares nothing with the embedding path, never blocks, and
// never fails: worst case it returns the fixed priority-order default.
package fallback

import (
	"sort"
	"strings"

	"github.com/crimson-sun/modelscout/internal/catalog"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/textnorm"
)

const (
	// JaccardThreshold is the minimum word-overlap score for the Jaccard
	// stage to claim a match.
	JaccardThreshold = 0.5
	// ContainmentBoost is added when one normalized text contains the other.
	ContainmentBoost = 0.3
	// ExactKeywordMultiplier boosts full-phrase keyword matches over
	// single-token partial matches.
	ExactKeywordMultiplier = 1.5
	// partialTokenWeight scores a lone token of a multi-word keyword.
	partialTokenWeight = 0.5
	// PriorityConfidence is reported when neither matching stage fires and
	// the classifier falls back to the fixed priority order.
	PriorityConfidence = 0.1
	// maxNGram bounds query n-gram generation (unigrams through trigrams).
	maxNGram = 3
)

type example struct {
	label  model.Label
	norm   string
	tokens map[string]struct{}
}

type keywordEntry struct {
	label  model.Label
	weight float64
	exact  bool // full keyword phrase, not a partial token
}

// Classifier matches queries against example texts and a keyword index.
type Classifier struct {
	examples []example
	keywords map[string][]keywordEntry
	priority []model.Label          // catalog order
	rank     map[model.Label]int    // label → priority position
}

// New builds the classifier from the catalog's taxonomy.
func New(cat *catalog.Catalog) *Classifier {
	c := &Classifier{
		keywords: make(map[string][]keywordEntry),
		priority: cat.Labels(),
		rank:     make(map[model.Label]int),
	}
	for i, l := range c.priority {
		c.rank[l] = i
	}

	for _, ex := range cat.Examples() {
		c.examples = append(c.examples, example{
			label:  model.Label{Category: ex.Category, Subcategory: ex.Subcategory},
			norm:   textnorm.Normalize(ex.Text),
			tokens: textnorm.TokenSet(ex.Text),
		})
	}

	for _, category := range cat.Categories {
		for _, sub := range category.Subcategories {
			label := model.Label{Category: category.Name, Subcategory: sub.Name}
			for _, kw := range sub.Keywords {
				c.indexKeyword(label, kw)
			}
		}
	}
	c.applyRarity()
	return c
}

// indexKeyword adds the full phrase (exact) and, for multi-word keywords,
// each token (partial evidence) to the index.
func (c *Classifier) indexKeyword(label model.Label, keyword string) {
	tokens := textnorm.Tokens(keyword)
	if len(tokens) == 0 {
		return
	}
	phrase := strings.Join(tokens, " ")
	c.addEntry(phrase, keywordEntry{label: label, weight: float64(len(tokens)), exact: true})
	if len(tokens) > 1 {
		for _, tok := range tokens {
			c.addEntry(tok, keywordEntry{label: label, weight: partialTokenWeight})
		}
	}
}

func (c *Classifier) addEntry(key string, e keywordEntry) {
	for _, existing := range c.keywords[key] {
		if existing.label == e.label && existing.exact == e.exact {
			return
		}
	}
	c.keywords[key] = append(c.keywords[key], e)
}

// applyRarity scales each entry's weight down by the number of labels
// sharing the key, so generic keywords count less than specific ones.
func (c *Classifier) applyRarity() {
	for key, entries := range c.keywords {
		labels := make(map[model.Label]struct{}, len(entries))
		for _, e := range entries {
			labels[e.label] = struct{}{}
		}
		if len(labels) > 1 {
			inv := 1.0 / float64(len(labels))
			for i := range entries {
				entries[i].weight *= inv
			}
			c.keywords[key] = entries
		}
	}
}

// Classify labels the query text. It always returns a result; the Breakdown
// carries the ranked candidate labels for clarification prompts.
func (c *Classifier) Classify(text string) model.Result {
	if res, ok := c.jaccardStage(text); ok {
		return res
	}
	if res, ok := c.ngramStage(text); ok {
		return res
	}
	return c.priorityStage()
}

// jaccardStage scores word-set overlap between the query and every example,
// boosted by substring containment. Fires when the best score reaches
// JaccardThreshold.
func (c *Classifier) jaccardStage(text string) (model.Result, bool) {
	qNorm := textnorm.Normalize(text)
	qTokens := textnorm.TokenSet(text)
	if len(qTokens) == 0 {
		return model.Result{}, false
	}

	scores := make(map[model.Label]float64)
	for _, ex := range c.examples {
		s := jaccard(qTokens, ex.tokens)
		if ex.norm != "" && (strings.Contains(qNorm, ex.norm) || strings.Contains(ex.norm, qNorm)) {
			s += ContainmentBoost
		}
		if s > 1 {
			s = 1
		}
		if s > scores[ex.label] {
			scores[ex.label] = s
		}
	}

	ranked := c.rankScores(scores)
	if len(ranked) == 0 || ranked[0].Weight < JaccardThreshold {
		return model.Result{}, false
	}
	return model.Result{
		Label:      ranked[0].Label,
		Confidence: ranked[0].Weight,
		Breakdown:  ranked,
	}, true
}

// ngramStage matches query unigrams through trigrams against the keyword
// index. Exact full-keyword hits weigh ExactKeywordMultiplier more than
// partial token hits. Confidence is the winner's share of all matched weight.
func (c *Classifier) ngramStage(text string) (model.Result, bool) {
	grams := textnorm.NGrams(textnorm.Tokens(text), maxNGram)
	if len(grams) == 0 {
		return model.Result{}, false
	}

	scores := make(map[model.Label]float64)
	seen := make(map[string]struct{}, len(grams))
	for _, g := range grams {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		for _, e := range c.keywords[g] {
			w := e.weight
			if e.exact {
				w *= ExactKeywordMultiplier
			}
			scores[e.label] += w
		}
	}
	if len(scores) == 0 {
		return model.Result{}, false
	}

	ranked := c.rankScores(scores)
	var total float64
	for _, lw := range ranked {
		total += lw.Weight
	}
	return model.Result{
		Label:      ranked[0].Label,
		Confidence: ranked[0].Weight / total,
		Breakdown:  ranked,
	}, true
}

// priorityStage returns the fixed default ordering so the system always
// yields some answer. Deterministic, never random.
func (c *Classifier) priorityStage() model.Result {
	breakdown := make([]model.LabelWeight, 0, len(c.priority))
	for _, l := range c.priority {
		breakdown = append(breakdown, model.LabelWeight{Label: l})
	}
	return model.Result{
		Label:      c.priority[0],
		Confidence: PriorityConfidence,
		Breakdown:  breakdown,
	}
}

// rankScores orders labels by score descending, ties broken by the fixed
// category priority order.
func (c *Classifier) rankScores(scores map[model.Label]float64) []model.LabelWeight {
	ranked := make([]model.LabelWeight, 0, len(scores))
	for l, s := range scores {
		if s > 0 {
			ranked = append(ranked, model.LabelWeight{Label: l, Weight: s})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return c.rank[ranked[i].Label] < c.rank[ranked[j].Label]
	})
	return ranked
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
