package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/internal/api/handlers"
	storeMocks "github.com/donaldgifford/deal-desk/internal/store/mocks"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func TestMatchesHandler_ForLead(t *testing.T) {
	t.Parallel()

	lead := &domain.Lead{
		ID:                  "l1",
		Name:                "Omar",
		MaxBudget:           1_000_000,
		PreferredIndustries: []domain.Industry{domain.IndustryFnB},
	}
	listings := []domain.Listing{
		{ID: "ideal", Industry: domain.IndustryFnB, AskingPrice: 1_000_000},
		{ID: "goodfit", Industry: domain.IndustryRetail, AskingPrice: 1_100_000},
		{ID: "stretch", Industry: domain.IndustryFnB, AskingPrice: 1_300_000},
		{ID: "none", Industry: domain.IndustryRetail, AskingPrice: 5_000_000},
	}

	tests := []struct {
		name       string
		query      string
		wantBody   []string
		wantAbsent []string
	}{
		{
			name: "all surfaced tiers",
			wantBody: []string{
				`"id":"ideal"`, `"id":"goodfit"`, `"id":"stretch"`,
				`"Ideal":1`, `"Good Fit":1`, `"Stretch":1`,
			},
			wantAbsent: []string{`"id":"none"`},
		},
		{
			name:       "filter to an empty tier returns no matches",
			query:      "?tier=" + url.QueryEscape("Share Widely"),
			wantBody:   []string{`"matches":[]`, `"Share Widely":0`, `"Ideal":1`},
			wantAbsent: []string{`"id":"ideal"`, `"id":"goodfit"`, `"id":"stretch"`},
		},
		{
			name:       "filtered to one tier keeps the counts",
			query:      "?tier=" + url.QueryEscape("Good Fit"),
			wantBody:   []string{`"id":"goodfit"`, `"Ideal":1`},
			wantAbsent: []string{`"id":"ideal"`, `"id":"stretch"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().GetLead(mock.Anything, "l1").Return(lead, nil).Once()
			ms.EXPECT().AllListings(mock.Anything).Return(listings, nil).Once()

			_, api := humatest.New(t)
			handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(newTestEngine(t, ms)))

			resp := api.Get("/api/v1/leads/l1/matches" + tt.query)
			require.Equal(t, http.StatusOK, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, resp.Body.String(), absent)
			}
		})
	}
}

func TestMatchesHandler_ForListing(t *testing.T) {
	t.Parallel()

	listing := &domain.Listing{
		ID:          "s1",
		Industry:    domain.IndustryRetail,
		AskingPrice: 1_000_000,
		Cashflow:    500_000,
	}
	leads := []domain.Lead{
		{ID: "poor", MaxBudget: 100_000},
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetListing(mock.Anything, "s1").Return(listing, nil).Once()
	ms.EXPECT().AllLeads(mock.Anything).Return(leads, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(newTestEngine(t, ms)))

	resp := api.Get("/api/v1/listings/s1/matches")
	require.Equal(t, http.StatusOK, resp.Code)
	// 50% ROI is shared with everyone regardless of budget.
	assert.Contains(t, resp.Body.String(), `"Share Widely":1`)
	assert.Contains(t, resp.Body.String(), `"Ideal":0`, "every surfaced tier is counted")
	assert.Contains(t, resp.Body.String(), `"id":"poor"`)
}

func TestMatchesHandler_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing lead returns 404", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetLead(mock.Anything, "ghost").Return(nil, pgx.ErrNoRows).Once()

		_, api := humatest.New(t)
		handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(newTestEngine(t, ms)))

		resp := api.Get("/api/v1/leads/ghost/matches")
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "lead not found")
	})

	t.Run("store error returns 500", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetListing(mock.Anything, "s1").Return(&domain.Listing{ID: "s1"}, nil).Once()
		ms.EXPECT().AllLeads(mock.Anything).Return(nil, assert.AnError).Once()

		_, api := humatest.New(t)
		handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(newTestEngine(t, ms)))

		resp := api.Get("/api/v1/listings/s1/matches")
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})

	t.Run("unknown tier filter returns 422", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)

		_, api := humatest.New(t)
		handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(newTestEngine(t, ms)))

		resp := api.Get("/api/v1/leads/l1/matches?tier=Perfect")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
