package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/pkg/focus"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// MatchesHandler pairs leads with listings by tier.
type MatchesHandler struct {
	engine *engine.Engine
}

// NewMatchesHandler creates a new MatchesHandler.
func NewMatchesHandler(eng *engine.Engine) *MatchesHandler {
	return &MatchesHandler{engine: eng}
}

// MatchesInput identifies the entity to match and an optional tier filter.
type MatchesInput struct {
	ID   string `path:"id"    doc:"Lead or listing UUID"`
	Tier string `query:"tier" doc:"Only return this tier" enum:"Ideal,Good Fit,Stretch,Share Widely,"`
}

// MatchesOutput is the response for a match query.
type MatchesOutput struct {
	Body struct {
		Matches []domain.Match `json:"matches"`
		ByTier  map[string]int `json:"by_tier"`
	}
}

// ForLead returns the listings worth pitching to a lead, best tier first.
func (h *MatchesHandler) ForLead(ctx context.Context, input *MatchesInput) (*MatchesOutput, error) {
	matches, err := h.engine.MatchesForLead(ctx, input.ID)
	if err != nil {
		return nil, matchError(err, "lead not found")
	}
	return matchesOutput(matches, input.Tier), nil
}

// ForListing returns the leads a listing should be shared with, best tier
// first.
func (h *MatchesHandler) ForListing(ctx context.Context, input *MatchesInput) (*MatchesOutput, error) {
	matches, err := h.engine.MatchesForListing(ctx, input.ID)
	if err != nil {
		return nil, matchError(err, "listing not found")
	}
	return matchesOutput(matches, input.Tier), nil
}

func matchError(err error, notFound string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return huma.Error404NotFound(notFound)
	}
	return huma.Error500InternalServerError("matching failed: " + err.Error())
}

func matchesOutput(matches []domain.Match, tier string) *MatchesOutput {
	grouped := focus.GroupByTier(matches)

	resp := &MatchesOutput{}
	resp.Body.ByTier = make(map[string]int, len(grouped))
	for t, ms := range grouped {
		resp.Body.ByTier[string(t)] = len(ms)
	}

	resp.Body.Matches = matches
	if tier != "" {
		resp.Body.Matches = grouped[domain.MatchTier(tier)]
	}
	if resp.Body.Matches == nil {
		resp.Body.Matches = []domain.Match{}
	}
	return resp
}

// RegisterMatchRoutes registers the match endpoints with the Huma API.
func RegisterMatchRoutes(api huma.API, h *MatchesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "lead-matches",
		Method:      http.MethodGet,
		Path:        "/api/v1/leads/{id}/matches",
		Summary:     "Listings for a lead",
		Description: "Returns every listing that tiers above None for the lead, best tier first.",
		Tags:        []string{"matches"},
		Errors:      []int{http.StatusNotFound},
	}, h.ForLead)

	huma.Register(api, huma.Operation{
		OperationID: "listing-matches",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}/matches",
		Summary:     "Leads for a listing",
		Description: "Returns every lead the listing tiers above None for, best tier first.",
		Tags:        []string{"matches"},
		Errors:      []int{http.StatusNotFound},
	}, h.ForListing)
}
