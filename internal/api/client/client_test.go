package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1")
	_, err := c.DailyFocus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantMsg      string
		wantNotFound bool
	}{
		{
			name:         "echo error body",
			status:       http.StatusNotFound,
			body:         `{"error":"lead not found"}`,
			wantMsg:      "API error (HTTP 404): lead not found",
			wantNotFound: true,
		},
		{
			name:    "huma problem details",
			status:  http.StatusUnprocessableEntity,
			body:    `{"title":"Unprocessable Entity","detail":"validation failed","errors":[{"message":"expected value to be one of","location":"query.tier"}]}`,
			wantMsg: "validation failed; query.tier: expected value to be one of",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream down\n",
			wantMsg: "API error (HTTP 502): upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.GetLead(context.Background(), "l1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
		})
	}
}

func TestClient_ListLeads(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/leads", r.URL.Path)
		assert.Equal(t, "Active", r.URL.Query().Get("status"))
		assert.Equal(t, "F&B", r.URL.Query().Get("industry"))
		assert.Equal(t, "1500000", r.URL.Query().Get("min_spend"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("offset"))

		writeJSON(w, http.StatusOK, LeadsResponse{
			Leads: []domain.Lead{{ID: "l1", Name: "Omar"}},
			Total: 1,
			Limit: 20,
		})
	})

	resp, err := c.ListLeads(context.Background(), &ListLeadsParams{
		Status:   "Active",
		Industry: "F&B",
		MinSpend: 1_500_000,
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Omar", resp.Leads[0].Name)
}

func TestClient_ListListings_RepeatsStage(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"Offer", "NDA Signed"}, r.URL.Query()["stage"])
		assert.Equal(t, "Sale", r.URL.Query().Get("type"))
		writeJSON(w, http.StatusOK, ListingsResponse{Listings: []domain.Listing{{ID: "s1"}}, Total: 1})
	})

	resp, err := c.ListListings(context.Background(), &ListListingsParams{
		Stages: []string{"Offer", "NDA Signed"},
		Type:   "Sale",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.Listings[0].ID)
}

func TestClient_CreateLead(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var l domain.Lead
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&l))
		l.ID = "l-created"
		l.PriorityScore = 70
		writeJSON(w, http.StatusCreated, l)
	})

	created, err := c.CreateLead(context.Background(), &domain.Lead{Name: "Sara", MaxBudget: 800_000})
	require.NoError(t, err)
	assert.Equal(t, "l-created", created.ID)
	assert.Equal(t, "Sara", created.Name)
	assert.Equal(t, 70, created.PriorityScore)
}

func TestClient_DeleteListing(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/listings/s1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteListing(context.Background(), "s1"))
}

func TestClient_MatchesForLead(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/leads/l1/matches", r.URL.Path)
		assert.Equal(t, "Good Fit", r.URL.Query().Get("tier"))
		writeJSON(w, http.StatusOK, MatchesResponse{
			Matches: []domain.Match{{Tier: domain.TierGoodFit, Listing: &domain.Listing{ID: "s2"}}},
			ByTier:  map[string]int{"Good Fit": 1, "Ideal": 2},
		})
	})

	resp, err := c.MatchesForLead(context.Background(), "l1", "Good Fit")
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "s2", resp.Matches[0].Listing.ID)
	assert.Equal(t, 2, resp.ByTier["Ideal"])
}

func TestClient_LogInteraction(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in domain.Interaction
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, domain.KindListing, in.EntityKind)
		in.ID = "i1"
		writeJSON(w, http.StatusCreated, LogResponse{Interaction: in, PriorityScore: 40})
	})

	resp, err := c.LogInteraction(context.Background(), &domain.Interaction{
		EntityID:   "s1",
		EntityKind: domain.KindListing,
		Type:       domain.InteractionCall,
	})
	require.NoError(t, err)
	assert.Equal(t, "i1", resp.Interaction.ID)
	assert.Equal(t, 40, resp.PriorityScore)
}

func TestClient_Feedback(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var f domain.MatchFeedback
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&f))
			writeJSON(w, http.StatusOK, domain.FeedbackView{MatchFeedback: f, Effective: f.Status})
		case http.MethodGet:
			assert.Equal(t, "true", r.URL.Query().Get("ignored"))
			writeJSON(w, http.StatusOK, []domain.FeedbackView{{Effective: domain.FeedbackIgnored}})
		}
	})

	view, err := c.SetFeedback(context.Background(), &domain.MatchFeedback{
		LeadID: "l1", ListingID: "s1", Status: domain.FeedbackPositive,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackPositive, view.Effective)

	views, err := c.ListFeedback(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.FeedbackIgnored, views[0].Effective)
}

func TestClient_Tasks(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/tasks":
			assert.Equal(t, "true", r.URL.Query().Get("all"))
			writeJSON(w, http.StatusOK, []domain.Task{{ID: "t1", Title: "Call seller"}})
		case "/api/v1/tasks/t1/complete":
			assert.Equal(t, http.MethodPost, r.Method)
			writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	tasks, err := c.ListTasks(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, c.CompleteTask(context.Background(), tasks[0].ID))
}

func TestClient_Brokers(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/brokers", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var b domain.Broker
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&b))
			b.ID = "b1"
			writeJSON(w, http.StatusCreated, b)
		case http.MethodGet:
			writeJSON(w, http.StatusOK, []domain.Broker{{ID: "b1", Name: "Karim", DealsClosed: 12}})
		}
	})

	created, err := c.CreateBroker(context.Background(), &domain.Broker{Name: "Karim", ReferralFee: 2})
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.InDelta(t, 2, created.ReferralFee, 0.001)

	brokers, err := c.ListBrokers(context.Background())
	require.NoError(t, err)
	require.Len(t, brokers, 1)
	assert.Equal(t, 12, brokers[0].DealsClosed)
}

func TestClient_Operations(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/api/v1/rescore":
			writeJSON(w, http.StatusOK, map[string]int{"rescored": 12})
		case "/api/v1/touches/reset":
			writeJSON(w, http.StatusOK, map[string]int{"reset": 4})
		case "/api/v1/digest":
			writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
		}
	})

	n, err := c.Rescore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	reset, err := c.ResetTouches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), reset)

	sent, err := c.SendDigest(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
}
