package model

import "fmt"

// Tier buckets a model by download size. Tiers drive both ranking priority
// and the environmental-footprint label shown to users.
type Tier int

const (
	TierLightweight Tier = iota
	TierStandard
	TierAdvanced
	TierXLarge
)

// Size thresholds (MB) that derive a model's tier. Tier is a pure function
// of SizeMB; the two must never disagree.
const (
	LightweightMaxMB = 500
	StandardMaxMB    = 4000
	AdvancedMaxMB    = 20000
)

// TierForSize derives the tier from a model's download size in MB.
func TierForSize(sizeMB float64) Tier {
	switch {
	case sizeMB <= LightweightMaxMB:
		return TierLightweight
	case sizeMB <= StandardMaxMB:
		return TierStandard
	case sizeMB <= AdvancedMaxMB:
		return TierAdvanced
	default:
		return TierXLarge
	}
}

// AllTiers lists every tier in ranking order (lightweight first).
func AllTiers() []Tier {
	return []Tier{TierLightweight, TierStandard, TierAdvanced, TierXLarge}
}

func (t Tier) String() string {
	switch t {
	case TierLightweight:
		return "lightweight"
	case TierStandard:
		return "standard"
	case TierAdvanced:
		return "advanced"
	case TierXLarge:
		return "xlarge"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Footprint returns the qualitative environmental-impact label for the tier.
func (t Tier) Footprint() string {
	switch t {
	case TierLightweight:
		return "minimal"
	case TierStandard:
		return "moderate"
	case TierAdvanced:
		return "high"
	default:
		return "very high"
	}
}

// ParseTier converts a catalog tier string to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "lightweight":
		return TierLightweight, nil
	case "standard":
		return TierStandard, nil
	case "advanced":
		return TierAdvanced, nil
	case "xlarge":
		return TierXLarge, nil
	default:
		return 0, fmt.Errorf("unknown tier %q", s)
	}
}

// Deployment is a runtime environment a model can run in.
type Deployment string

const (
	DeployBrowser Deployment = "browser"
	DeployMobile  Deployment = "mobile"
	DeployEdge    Deployment = "edge"
	DeployCloud   Deployment = "cloud"
	DeployServer  Deployment = "server"
)

// KnownDeployments lists every valid deployment option.
func KnownDeployments() []Deployment {
	return []Deployment{DeployBrowser, DeployMobile, DeployEdge, DeployCloud, DeployServer}
}

// Model is one catalog entry. Read-only at runtime.
// Accuracy is 0 when the catalog does not report one.
type Model struct {
	ID          string       `json:"id"`
	SizeMB      float64      `json:"size_mb"`
	Tier        Tier         `json:"-"`
	Accuracy    float64      `json:"accuracy,omitempty"`
	Deployment  []Deployment `json:"deployment"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory"`
}

// RunsOn reports whether the model lists the given deployment option.
func (m Model) RunsOn(d Deployment) bool {
	for _, opt := range m.Deployment {
		if opt == d {
			return true
		}
	}
	return false
}
