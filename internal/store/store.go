// Package store defines the datastore abstraction for deal-desk.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// LeadQuery defines optional filters for lead queries.
type LeadQuery struct {
	Status   *domain.LeadStatus
	Industry *domain.Industry // matches leads that list the industry as a preference
	MinSpend *float64         // max_budget >= MinSpend
	Search   *string          // case-insensitive name/email/notes match
	Limit    int              // default 50
	Offset   int
	OrderBy  string // "priority", "budget", "date_added", "name"
}

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Stages   []domain.DealStage
	Industry *domain.Industry
	Type     *domain.ListingType
	MinPrice *float64
	MaxPrice *float64
	Search   *string // case-insensitive title/location/seller match
	Limit    int     // default 50
	Offset   int
	OrderBy  string // "priority", "price", "date_added", "roi"
}

// Store defines all data access operations for deal-desk.
type Store interface {
	// Leads
	CreateLead(ctx context.Context, l *domain.Lead) error
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	ListLeads(ctx context.Context, opts *LeadQuery) ([]domain.Lead, int, error)
	AllLeads(ctx context.Context) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, l *domain.Lead) error
	DeleteLead(ctx context.Context, id string) error

	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	AllListings(ctx context.Context) ([]domain.Listing, error)
	UpdateListing(ctx context.Context, l *domain.Listing) error
	DeleteListing(ctx context.Context, id string) error

	// Outreach
	RecordInteraction(ctx context.Context, in *domain.Interaction, priorityScore int) error
	ListInteractions(ctx context.Context, entityID string, limit int) ([]domain.Interaction, error)
	UpdatePriorityScores(ctx context.Context, kind domain.EntityKind, scores map[string]int) (int, error)
	ResetWeeklyTouches(ctx context.Context) (int64, error)

	// Feedback
	UpsertFeedback(ctx context.Context, f *domain.MatchFeedback) error
	ListFeedback(ctx context.Context, leadID string) ([]domain.MatchFeedback, error)

	// Brokers
	CreateBroker(ctx context.Context, b *domain.Broker) error
	GetBroker(ctx context.Context, id string) (*domain.Broker, error)
	ListBrokers(ctx context.Context) ([]domain.Broker, error)

	// Tasks
	CreateTask(ctx context.Context, t *domain.Task) error
	ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id string) error

	// Summary
	GetPipelineSummary(ctx context.Context) (*domain.PipelineSummary, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
