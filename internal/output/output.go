// Package output renders classification outcomes and tier-grouped model
// recommendations as human-readable text or NDJSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/selector"
)

// Format selects the output encoding.
type Format int

const (
	FormatText Format = iota
	FormatNDJSON
)

// ParseFormat converts a format string ("text", "ndjson") to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "ndjson":
		return FormatNDJSON, nil
	default:
		return 0, fmt.Errorf("output: unknown format %q", s)
	}
}

// modelRecord is the NDJSON line emitted per recommended model.
type modelRecord struct {
	ID          string             `json:"id"`
	SizeMB      float64            `json:"size_mb"`
	Tier        string             `json:"tier"`
	Footprint   string             `json:"footprint"`
	Accuracy    float64            `json:"accuracy,omitempty"`
	Deployment  []model.Deployment `json:"deployment"`
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory"`
}

// WriteGrouped renders a tier-grouped recommendation.
func WriteGrouped(w io.Writer, f Format, g selector.Grouped) error {
	if f == FormatNDJSON {
		enc := json.NewEncoder(w)
		for _, tier := range g.Tiers {
			for _, m := range tier.Models {
				rec := modelRecord{
					ID:          m.ID,
					SizeMB:      m.SizeMB,
					Tier:        tier.Tier.String(),
					Footprint:   tier.Footprint,
					Accuracy:    m.Accuracy,
					Deployment:  m.Deployment,
					Category:    m.Category,
					Subcategory: m.Subcategory,
				}
				if err := enc.Encode(rec); err != nil {
					return fmt.Errorf("output: %w", err)
				}
			}
		}
		return nil
	}

	fmt.Fprintf(w, "%s/%s\n", g.Category, g.Subcategory)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, tier := range g.Tiers {
		if len(tier.Models) == 0 && tier.Hidden == 0 {
			continue
		}
		fmt.Fprintf(tw, "  %s\t(%s footprint)\t\t\n", tier.Tier, tier.Footprint)
		for _, m := range tier.Models {
			acc := "-"
			if m.Accuracy > 0 {
				acc = fmt.Sprintf("%.0f%%", m.Accuracy*100)
			}
			fmt.Fprintf(tw, "    %s\t%.0f MB\tacc %s\t%s\n",
				m.ID, m.SizeMB, acc, joinDeployments(m.Deployment))
		}
		if tier.Hidden > 0 {
			fmt.Fprintf(tw, "    (%d hidden by filters)\t\t\t\n", tier.Hidden)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	fmt.Fprintf(w, "shown %d, hidden %d\n", g.TotalShown, g.TotalHidden)
	return nil
}

// outcomeRecord is the NDJSON form of a classification outcome.
type outcomeRecord struct {
	Status      string          `json:"status"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Confidence  float64         `json:"confidence"`
	Source      string          `json:"source"`
	Candidates  []candidateJSON `json:"candidates,omitempty"`
}

type candidateJSON struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// WriteOutcome renders a classification outcome.
func WriteOutcome(w io.Writer, f Format, o engine.Outcome) error {
	if f == FormatNDJSON {
		rec := outcomeRecord{
			Status:      statusString(o.Status),
			Category:    o.Result.Label.Category,
			Subcategory: o.Result.Label.Subcategory,
			Confidence:  o.Result.Confidence,
			Source:      string(o.Source),
		}
		for _, c := range o.Candidates {
			rec.Candidates = append(rec.Candidates, candidateJSON{c.Category, c.Subcategory})
		}
		if err := json.NewEncoder(w).Encode(rec); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		return nil
	}

	switch o.Status {
	case engine.StatusConfident:
		fmt.Fprintf(w, "%s (confidence %.2f, %s)\n", o.Result.Label, o.Result.Confidence, o.Source)
	case engine.StatusNeedsClarification:
		fmt.Fprintf(w, "unclear (best guess %s, confidence %.2f, %s)\n",
			o.Result.Label, o.Result.Confidence, o.Source)
		if len(o.Candidates) > 0 {
			names := make([]string, len(o.Candidates))
			for i, c := range o.Candidates {
				names[i] = c.String()
			}
			fmt.Fprintf(w, "did you mean: %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}

func statusString(s engine.Status) string {
	if s == engine.StatusConfident {
		return "confident"
	}
	return "needs-clarification"
}

func joinDeployments(deps []model.Deployment) string {
	if len(deps) == 0 {
		return "-"
	}
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
