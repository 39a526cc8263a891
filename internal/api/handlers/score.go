package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/deal-desk/internal/engine"
	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// ScoreHandler exposes the pure scoring and tiering functions.
type ScoreHandler struct {
	engine *engine.Engine
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(eng *engine.Engine) *ScoreHandler {
	return &ScoreHandler{engine: eng}
}

// ScoreInput is an unsaved entity to score.
type ScoreInput struct {
	Body struct {
		Kind            domain.EntityKind `json:"kind"                        enum:"lead,listing"                                  doc:"Entity kind"`
		LastContactDate *time.Time        `json:"last_contact_date,omitempty" doc:"Omit for never contacted"`
		Value           float64           `json:"value"                       minimum:"0"                                          doc:"Asking price for listings, max budget for leads"`
		Stage           domain.DealStage  `json:"stage,omitempty"             enum:"New,Contacted,NDA Signed,Offer,Closing,Sold" doc:"Listing stage"`
	}
}

// ScoreOutput is the priority score with its per-factor breakdown.
type ScoreOutput struct {
	Body score.Breakdown
}

// TierInput is a listing/lead pair to tier.
type TierInput struct {
	Body struct {
		Listing struct {
			AskingPrice float64         `json:"asking_price" minimum:"0"`
			Cashflow    float64         `json:"cashflow"`
			Industry    domain.Industry `json:"industry"     enum:"Technology,Manufacturing,Service,Retail,Healthcare,Construction,Hospitality,F&B"`
		} `json:"listing"`
		Lead struct {
			MaxBudget           float64           `json:"max_budget"           minimum:"0"`
			PreferredIndustries []domain.Industry `json:"preferred_industries"`
		} `json:"lead"`
	}
}

// TierOutput is the tier with the factors that produced it.
type TierOutput struct {
	Body score.Fit
}

// Score computes the priority score of the posted entity as of now.
func (h *ScoreHandler) Score(_ context.Context, input *ScoreInput) (*ScoreOutput, error) {
	data := score.EntityData{
		Kind:          input.Body.Kind,
		LastContactAt: input.Body.LastContactDate,
		Value:         input.Body.Value,
		Stage:         input.Body.Stage,
	}
	return &ScoreOutput{Body: h.engine.Score(data)}, nil
}

// Tier buckets the posted listing/lead pair.
func (*ScoreHandler) Tier(_ context.Context, input *TierInput) (*TierOutput, error) {
	listing := &domain.Listing{
		AskingPrice: input.Body.Listing.AskingPrice,
		Cashflow:    input.Body.Listing.Cashflow,
		Industry:    input.Body.Listing.Industry,
	}
	lead := &domain.Lead{
		MaxBudget:           input.Body.Lead.MaxBudget,
		PreferredIndustries: input.Body.Lead.PreferredIndustries,
	}
	return &TierOutput{Body: score.EvaluateFit(listing, lead)}, nil
}

// RegisterScoreRoutes registers the stateless scoring endpoints with the
// Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "score",
		Method:      http.MethodPost,
		Path:        "/api/v1/score",
		Summary:     "Score an entity",
		Description: "Computes the 0-100 priority score for an unsaved lead or listing without storing anything.",
		Tags:        []string{"scoring"},
	}, h.Score)

	huma.Register(api, huma.Operation{
		OperationID: "tier",
		Method:      http.MethodPost,
		Path:        "/api/v1/tier",
		Summary:     "Tier a listing/lead pair",
		Description: "Returns the match tier for a listing and lead along with the budget, industry, and ROI factors.",
		Tags:        []string{"scoring"},
	}, h.Tier)
}
