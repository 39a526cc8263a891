package score

import (
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// Tiering thresholds.
const (
	BudgetFitRatio     = 0.90
	StretchBudgetRatio = 0.75
	ShareWidelyROI     = 0.40
)

// Fit holds the intermediate factors behind a tier decision.
type Fit struct {
	BudgetFit     bool             `json:"budget_fit"`
	StretchBudget bool             `json:"stretch_budget"`
	IndustryFit   bool             `json:"industry_fit"`
	ROI           float64          `json:"roi"`
	Tier          domain.MatchTier `json:"tier"`
}

// Tier buckets a listing/lead pair into a match tier.
func Tier(listing *domain.Listing, lead *domain.Lead) domain.MatchTier {
	return EvaluateFit(listing, lead).Tier
}

// EvaluateFit computes the fit factors and applies the tier rules in order.
// The first matching rule wins: a high-ROI listing is ShareWidely even when
// the lead would also qualify as a Stretch.
func EvaluateFit(listing *domain.Listing, lead *domain.Lead) Fit {
	f := Fit{
		BudgetFit:     lead.MaxBudget >= listing.AskingPrice*BudgetFitRatio,
		StretchBudget: lead.MaxBudget >= listing.AskingPrice*StretchBudgetRatio,
		IndustryFit:   lead.Prefers(listing.Industry),
		ROI:           listing.ROI(),
	}

	switch {
	case f.BudgetFit && f.IndustryFit:
		f.Tier = domain.TierIdeal
	case f.BudgetFit:
		f.Tier = domain.TierGoodFit
	case f.ROI > ShareWidelyROI:
		f.Tier = domain.TierShareWidely
	case f.StretchBudget && f.IndustryFit:
		f.Tier = domain.TierStretch
	default:
		f.Tier = domain.TierNone
	}

	return f
}
