package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/internal/config"
	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/internal/notify"
	notifyMocks "github.com/donaldgifford/deal-desk/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/deal-desk/internal/store/mocks"
	"github.com/donaldgifford/deal-desk/pkg/logger"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func TestNewRouter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(ms *storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "liveness",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   `"ok"`,
		},
		{
			name:   "echo crud route",
			method: http.MethodGet,
			path:   "/api/v1/leads/ghost",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetLead(mock.Anything, "ghost").Return(nil, pgx.ErrNoRows).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "lead not found",
		},
		{
			name:   "huma route beside an echo route with the same prefix",
			method: http.MethodGet,
			path:   "/api/v1/leads/l1/matches",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetLead(mock.Anything, "l1").Return(&domain.Lead{ID: "l1"}, nil).Once()
				ms.EXPECT().AllListings(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"matches":[]`,
		},
		{
			name:   "focus view",
			method: http.MethodGet,
			path:   "/api/v1/focus/hot",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().AllLeads(mock.Anything).Return(nil, nil).Once()
				ms.EXPECT().AllListings(mock.Anything).Return([]domain.Listing{
					{ID: "s1", Title: "Marina Cafe", Stage: domain.StageOffer},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"s1"`,
		},
		{
			name:       "openapi document lists typed routes",
			method:     http.MethodGet,
			path:       "/openapi.json",
			wantStatus: http.StatusOK,
			wantBody:   "/api/v1/focus/daily",
		},
		{
			name:       "swagger ui",
			method:     http.MethodGet,
			path:       "/docs",
			wantStatus: http.StatusOK,
			wantBody:   "swagger-ui",
		},
		{
			name:       "metrics",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
			wantBody:   "dealdesk_",
		},
		{
			name:   "brokers route",
			method: http.MethodGet,
			path:   "/api/v1/brokers",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListBrokers(mock.Anything).Return([]domain.Broker{{ID: "b1", Name: "Karim"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Karim"`,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v1/referrals",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.setup != nil {
				tt.setup(ms)
			}
			eng := engine.NewEngine(ms, notifyMocks.NewMockNotifier(t),
				engine.WithLogger(logger.Discard()),
				engine.WithClock(func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }),
			)

			e := newRouter(ms, eng, logger.Discard())

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewNotifier(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	assert.IsType(t, &notify.NoOpNotifier{}, newNotifier(cfg, logger.Discard()))

	cfg.Notifications.Discord = config.DiscordConfig{Enabled: true, WebhookURL: "https://discord.example/hook"}
	assert.IsType(t, &notify.DiscordNotifier{}, newNotifier(cfg, logger.Discard()))
}

func TestNewScheduler(t *testing.T) {
	t.Parallel()

	eng := engine.NewEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	cfg := &config.Config{Schedule: config.ScheduleConfig{
		TouchResetCron: "0 0 * * 1",
		DigestCron:     "0 8 * * *",
		Timezone:       "Asia/Dubai",
	}}
	sched, err := newScheduler(eng, cfg, logger.Discard())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 2)

	cfg.Schedule.Timezone = "Mars/Olympus"
	_, err = newScheduler(eng, cfg, logger.Discard())
	require.Error(t, err)
}
