package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// FocusList is the response of the daily focus and aging views.
type FocusList struct {
	Items []domain.FocusItem `json:"items"`
	Total int                `json:"total"`
}

// HotDealsResponse is the response of the hot deals view.
type HotDealsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// OnboardingResponse is the onboarding queue with its count of late leads.
type OnboardingResponse struct {
	Items []domain.OnboardingItem `json:"items"`
	Late  int                     `json:"late"`
}

// MatchesResponse lists matches with a per-tier count.
type MatchesResponse struct {
	Matches []domain.Match `json:"matches"`
	ByTier  map[string]int `json:"by_tier"`
}

// DailyFocus returns today's focus list.
func (c *Client) DailyFocus(ctx context.Context) (*FocusList, error) {
	var resp FocusList
	if err := c.get(ctx, "/api/v1/focus/daily", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HotDeals returns listings in a late stage.
func (c *Client) HotDeals(ctx context.Context) (*HotDealsResponse, error) {
	var resp HotDealsResponse
	if err := c.get(ctx, "/api/v1/focus/hot", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Aging returns leads and listings without recent contact.
func (c *Client) Aging(ctx context.Context) (*FocusList, error) {
	var resp FocusList
	if err := c.get(ctx, "/api/v1/focus/aging", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Onboarding returns leads waiting on intake.
func (c *Client) Onboarding(ctx context.Context) (*OnboardingResponse, error) {
	var resp OnboardingResponse
	if err := c.get(ctx, "/api/v1/onboarding", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Summary returns pipeline counts.
func (c *Client) Summary(ctx context.Context) (*domain.PipelineSummary, error) {
	var resp domain.PipelineSummary
	if err := c.get(ctx, "/api/v1/summary", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MatchesForLead returns listings that fit a lead. An empty tier returns
// every surfaced tier.
func (c *Client) MatchesForLead(ctx context.Context, id, tier string) (*MatchesResponse, error) {
	return c.matches(ctx, pathID("/api/v1/leads", id)+"/matches", tier)
}

// MatchesForListing returns leads a listing fits.
func (c *Client) MatchesForListing(ctx context.Context, id, tier string) (*MatchesResponse, error) {
	return c.matches(ctx, pathID("/api/v1/listings", id)+"/matches", tier)
}

func (c *Client) matches(ctx context.Context, path, tier string) (*MatchesResponse, error) {
	q := url.Values{}
	setIf(q, "tier", tier)

	var resp MatchesResponse
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
