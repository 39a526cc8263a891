package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/internal/api/handlers"
	storeMocks "github.com/donaldgifford/deal-desk/internal/store/mocks"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func TestBrokerHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		brokers    []domain.Broker
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns brokers",
			brokers:    []domain.Broker{{ID: "b1", Name: "Karim", Firm: "Gulf Business Brokers", DealsClosed: 12}},
			wantStatus: http.StatusOK,
			wantBody:   `"deals_closed":12`,
		},
		{
			name:       "empty list",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "store error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing brokers`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListBrokers(mock.Anything).Return(tt.brokers, tt.err).Once()
			h := handlers.NewBrokerHandler(ms, handlers.NewValidator())

			c, rec := newContext(http.MethodGet, "/api/v1/brokers", "")
			require.NoError(t, h.List(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestBrokerHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "found", id: "b1", wantStatus: http.StatusOK, wantBody: `"name":"Karim"`},
		{name: "not found", id: "missing", err: pgx.ErrNoRows, wantStatus: http.StatusNotFound, wantBody: `broker not found`},
		{
			name:       "malformed uuid is not found",
			id:         "not-a-uuid",
			err:        fmt.Errorf("getting broker: %w", &pgconn.PgError{Code: "22P02"}),
			wantStatus: http.StatusNotFound,
			wantBody:   `broker not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.err != nil {
				ms.EXPECT().GetBroker(mock.Anything, tt.id).Return(nil, tt.err).Once()
			} else {
				ms.EXPECT().GetBroker(mock.Anything, tt.id).Return(&domain.Broker{ID: tt.id, Name: "Karim"}, nil).Once()
			}
			h := handlers.NewBrokerHandler(ms, handlers.NewValidator())

			c, rec := newContext(http.MethodGet, "/api/v1/brokers/"+tt.id, "", "id", tt.id)
			require.NoError(t, h.Get(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestBrokerHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "normalizes and creates",
			body: `{"id":"ignored","name":"  Karim ","firm":" Gulf Business Brokers ",
				"email":"Karim@Example.COM","deals_closed":12,"referral_fee":2}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateBroker(mock.Anything, mock.MatchedBy(func(b *domain.Broker) bool {
						return b.ID == "" &&
							b.Name == "Karim" &&
							b.Firm == "Gulf Business Brokers" &&
							b.Email == "karim@example.com"
					})).
					Run(func(_ context.Context, b *domain.Broker) { b.ID = "new-broker" }).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"id":"new-broker"`, `"referral_fee":2`},
		},
		{
			name:       "missing name",
			body:       `{"firm":"Gulf Business Brokers"}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"name is required"},
		},
		{
			name:       "negative deals and fee over 100",
			body:       `{"name":"Karim","deals_closed":-1,"referral_fee":120}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"deals_closed must be >= 0", "referral_fee must be <= 100"},
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"invalid request body"},
		},
		{
			name: "store error",
			body: `{"name":"Karim"}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateBroker(mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"creating broker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewBrokerHandler(ms, handlers.NewValidator())

			c, rec := newContext(http.MethodPost, "/api/v1/brokers", strings.TrimSpace(tt.body))
			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
