package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/deal-desk/internal/engine"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// FocusHandler serves the derived outreach views.
type FocusHandler struct {
	engine *engine.Engine
}

// NewFocusHandler creates a new FocusHandler.
func NewFocusHandler(eng *engine.Engine) *FocusHandler {
	return &FocusHandler{engine: eng}
}

// --- Input/Output types ---

// FocusListOutput is the response for the daily focus and aging lists.
type FocusListOutput struct {
	Body struct {
		Items []domain.FocusItem `json:"items"`
		Total int                `json:"total"`
	}
}

// HotDealsOutput is the response for the hot deals list.
type HotDealsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
	}
}

// OnboardingOutput is the response for the onboarding queue.
type OnboardingOutput struct {
	Body struct {
		Items []domain.OnboardingItem `json:"items"`
		Late  int                     `json:"late"`
	}
}

// SummaryOutput is the response for the pipeline summary.
type SummaryOutput struct {
	Body *domain.PipelineSummary
}

// --- Handlers ---

// DailyFocus returns today's outreach list: uncapped leads and listings by
// priority score.
func (h *FocusHandler) DailyFocus(ctx context.Context, _ *struct{}) (*FocusListOutput, error) {
	items, err := h.engine.DailyFocus(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("building daily focus: " + err.Error())
	}
	return focusList(items), nil
}

// HotDeals returns listings in the Offer or Closing stage by asking price.
func (h *FocusHandler) HotDeals(ctx context.Context, _ *struct{}) (*HotDealsOutput, error) {
	listings, err := h.engine.HotDeals(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("building hot deals: " + err.Error())
	}

	resp := &HotDealsOutput{}
	resp.Body.Listings = nonNil(listings)
	resp.Body.Total = len(listings)
	return resp, nil
}

// Aging returns entities that have gone without contact, oldest first.
func (h *FocusHandler) Aging(ctx context.Context, _ *struct{}) (*FocusListOutput, error) {
	items, err := h.engine.Aging(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("building aging list: " + err.Error())
	}
	return focusList(items), nil
}

// Onboarding returns leads waiting on their intake form.
func (h *FocusHandler) Onboarding(ctx context.Context, _ *struct{}) (*OnboardingOutput, error) {
	items, err := h.engine.Onboarding(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("building onboarding queue: " + err.Error())
	}

	resp := &OnboardingOutput{}
	resp.Body.Items = nonNil(items)
	for _, it := range items {
		if it.Late {
			resp.Body.Late++
		}
	}
	return resp, nil
}

// Summary returns pipeline counts.
func (h *FocusHandler) Summary(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	s, err := h.engine.Summary(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading summary: " + err.Error())
	}
	return &SummaryOutput{Body: s}, nil
}

func focusList(items []domain.FocusItem) *FocusListOutput {
	resp := &FocusListOutput{}
	resp.Body.Items = nonNil(items)
	resp.Body.Total = len(items)
	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RegisterFocusRoutes registers the focus view endpoints with the Huma API.
func RegisterFocusRoutes(api huma.API, h *FocusHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "daily-focus",
		Method:      http.MethodGet,
		Path:        "/api/v1/focus/daily",
		Summary:     "Daily focus list",
		Description: "Returns leads and listings under their weekly touch cap, highest priority first.",
		Tags:        []string{"focus"},
	}, h.DailyFocus)

	huma.Register(api, huma.Operation{
		OperationID: "hot-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/focus/hot",
		Summary:     "Hot deals",
		Description: "Returns listings in the Offer or Closing stage, largest asking price first.",
		Tags:        []string{"focus"},
	}, h.HotDeals)

	huma.Register(api, huma.Operation{
		OperationID: "aging",
		Method:      http.MethodGet,
		Path:        "/api/v1/focus/aging",
		Summary:     "Aging items",
		Description: "Returns leads and listings past the aging threshold, longest without contact first.",
		Tags:        []string{"focus"},
	}, h.Aging)

	huma.Register(api, huma.Operation{
		OperationID: "onboarding-queue",
		Method:      http.MethodGet,
		Path:        "/api/v1/onboarding",
		Summary:     "Onboarding queue",
		Description: "Returns leads with a pending intake form, longest waiting first.",
		Tags:        []string{"focus"},
	}, h.Onboarding)

	huma.Register(api, huma.Operation{
		OperationID: "pipeline-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/summary",
		Summary:     "Pipeline summary",
		Description: "Returns aggregate lead, listing, feedback, and task counts.",
		Tags:        []string{"focus"},
	}, h.Summary)
}
