package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/donaldgifford/deal-desk/internal/notify"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func newTestServer(t *testing.T, throttleEvery int) (*httptest.Server, *inbox) {
	t.Helper()
	box := &inbox{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/webhooks/{id}/{token}", webhookHandler(testLogger(), box, throttleEvery))
	mux.HandleFunc("GET /messages", listHandler(box))
	mux.HandleFunc("DELETE /messages", clearHandler(testLogger(), box))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, box
}

func TestWebhook_AcceptsDigestFromNotifier(t *testing.T) {
	srv, box := newTestServer(t, 0)

	n := notify.NewDiscordNotifier(srv.URL+"/api/webhooks/1/mock",
		notify.WithUsername("Deal Desk"),
		notify.WithRateLimit(0),
		notify.WithHTTPClient(srv.Client()),
	)
	digest := &notify.Digest{
		Date:     time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		Summary:  domain.PipelineSummary{LeadsTotal: 4, ListingsHot: 1},
		HotDeals: []domain.Listing{{Title: "Marina Cafe", Stage: domain.StageClosing, AskingPrice: 900_000}},
	}
	if err := n.SendDigest(context.Background(), digest); err != nil {
		t.Fatalf("SendDigest: %v", err)
	}

	if len(box.messages) != 1 {
		t.Fatalf("messages=%d, want 1", len(box.messages))
	}
	got := box.messages[0]
	if got.Username != "Deal Desk" {
		t.Errorf("username=%q, want Deal Desk", got.Username)
	}
	if !strings.HasPrefix(got.Content, "Daily focus for Mon 2 Mar 2026") {
		t.Errorf("content=%q", got.Content)
	}
	if len(got.Embeds) != 2 {
		t.Errorf("embeds=%d, want 2 (pipeline, hot deals)", len(got.Embeds))
	}
}

func TestWebhook_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "not json",
			body:    "digest",
			wantMsg: "Cannot send an empty message",
		},
		{
			name:    "empty message",
			body:    `{"username":"Deal Desk","embeds":[]}`,
			wantMsg: "Cannot send an empty message",
		},
		{
			name:    "field value too long",
			body:    `{"embeds":[{"title":"Focus","fields":[{"name":"Lead","value":"` + strings.Repeat("x", maxFieldValue+1) + `"}]}]}`,
			wantMsg: "embeds.0.fields.0.value",
		},
		{
			name:    "field name too long",
			body:    `{"embeds":[{"title":"Hot deals","fields":[{"name":"` + strings.Repeat("x", maxFieldName+1) + `","value":"Offer"}]}]}`,
			wantMsg: "embeds.0.fields.0.name",
		},
		{
			name: "embeds over the total size",
			body: `{"embeds":[` +
				`{"title":"No response","description":"` + strings.Repeat("x", 4000) + `"},` +
				`{"title":"Onboarding overdue","description":"` + strings.Repeat("y", 4000) + `"}]}`,
			wantMsg: "embeds: total size must be 6000 or fewer",
		},
		{
			name:    "too many embeds",
			body:    `{"embeds":[` + strings.TrimSuffix(strings.Repeat(`{"title":"x"},`, maxEmbeds+1), ",") + `]}`,
			wantMsg: "embeds: must be 10 or fewer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := webhookHandler(testLogger(), &inbox{}, 0)
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/1/mock", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
			}
			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if msg, _ := resp["message"].(string); !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("message=%q, want it to contain %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestWebhook_AcceptsLargeDigestFromNotifier(t *testing.T) {
	srv, box := newTestServer(t, 0)

	n := notify.NewDiscordNotifier(srv.URL+"/api/webhooks/1/mock",
		notify.WithRateLimit(0),
		notify.WithHTTPClient(srv.Client()),
	)

	digest := &notify.Digest{
		Date:     time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		HotDeals: []domain.Listing{{Title: strings.Repeat("Business Bay Fit-Out ", 16), Stage: domain.StageOffer}},
		Names:    map[string]string{},
	}
	for i := range 80 {
		leadID, listingID := fmt.Sprintf("lead-%d", i), fmt.Sprintf("listing-%d", i)
		digest.Names[leadID] = fmt.Sprintf("Lead %d", i)
		digest.Names[listingID] = fmt.Sprintf("Listing %d", i)
		digest.Ignored = append(digest.Ignored, domain.FeedbackView{
			MatchFeedback: domain.MatchFeedback{LeadID: leadID, ListingID: listingID},
			Effective:     domain.FeedbackIgnored,
		})
	}
	for i := range 120 {
		digest.Onboarding = append(digest.Onboarding, domain.OnboardingItem{
			Lead:        domain.Lead{Name: fmt.Sprintf("Waiting Lead %d", i)},
			DaysWaiting: 5,
			Late:        true,
		})
	}

	if err := n.SendDigest(context.Background(), digest); err != nil {
		t.Fatalf("SendDigest: %v", err)
	}
	if len(box.messages) != 1 {
		t.Fatalf("messages=%d, want 1", len(box.messages))
	}
}

func TestWebhook_Throttle(t *testing.T) {
	handler := webhookHandler(testLogger(), &inbox{}, 2)
	body := `{"content":"hello"}`

	codes := make([]int, 0, 4)
	for range 4 {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/1/mock", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
			t.Error("429 without Retry-After header")
		}
	}

	want := []int{http.StatusNoContent, http.StatusTooManyRequests, http.StatusNoContent, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("post %d: status=%d, want %d", i+1, codes[i], want[i])
		}
	}
}

func TestMessages_ListAndClear(t *testing.T) {
	srv, _ := newTestServer(t, 0)
	client := srv.Client()

	for _, content := range []string{"one", "two"} {
		resp, err := client.Post(srv.URL+"/api/webhooks/1/mock", "application/json",
			strings.NewReader(`{"content":"`+content+`"}`))
		if err != nil {
			t.Fatalf("posting: %v", err)
		}
		resp.Body.Close()
	}

	var listed struct {
		Messages []webhookPayload `json:"messages"`
		Total    int              `json:"total"`
	}
	getMessages := func() {
		t.Helper()
		resp, err := client.Get(srv.URL + "/messages")
		if err != nil {
			t.Fatalf("listing: %v", err)
		}
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
			t.Fatalf("decoding: %v", err)
		}
	}

	getMessages()
	if listed.Total != 2 || listed.Messages[1].Content != "two" {
		t.Fatalf("listed=%+v, want two messages in order", listed)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/messages", http.NoBody)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("clearing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d, want %d", resp.StatusCode, http.StatusNoContent)
	}

	getMessages()
	if listed.Total != 0 {
		t.Errorf("total=%d after clear, want 0", listed.Total)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
