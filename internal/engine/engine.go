package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	"github.com/donaldgifford/deal-desk/internal/notify"
	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/internal/tracing"
	"github.com/donaldgifford/deal-desk/pkg/feedback"
	"github.com/donaldgifford/deal-desk/pkg/focus"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// Engine loads snapshots from the store, runs the pure scoring and focus
// core over them, and writes outreach back.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	policy             focus.Policy
	ignoredAfter       time.Duration
	onboardingLateDays int
	now                func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, n notify.Notifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:              s,
		notifier:           n,
		log:                slog.Default(),
		policy:             focus.DefaultPolicy(),
		ignoredAfter:       feedback.DefaultIgnoredAfter,
		onboardingLateDays: focus.DefaultOnboardingLateDays,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPolicy sets the touch caps and list limits.
func WithPolicy(p focus.Policy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithIgnoredAfter sets how long feedback may stay pending before it is
// reported as ignored.
func WithIgnoredAfter(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.ignoredAfter = d
		}
	}
}

// WithOnboardingLateDays sets when a pending intake form is flagged late.
func WithOnboardingLateDays(days int) EngineOption {
	return func(e *Engine) {
		e.onboardingLateDays = days
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Policy returns the active outreach policy.
func (eng *Engine) Policy() focus.Policy {
	return eng.policy
}

// Snapshot is every lead and listing with priority scores recomputed as of At.
type Snapshot struct {
	At       time.Time
	Leads    []domain.Lead
	Listings []domain.Listing
}

// Snapshot loads all leads and listings and refreshes their priority scores.
// The stored score column is only an ordering cache, so every derived view
// starts here.
func (eng *Engine) Snapshot(ctx context.Context) (snap *Snapshot, err error) {
	ctx, span := tracing.Start(ctx, "engine.Snapshot")
	defer func() { tracing.End(span, err) }()

	leads, err := eng.store.AllLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}
	listings, err := eng.store.AllListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading listings: %w", err)
	}

	now := eng.now()
	leads, listings = focus.Refresh(leads, listings, now)

	span.SetAttributes(
		attribute.Int("leads", len(leads)),
		attribute.Int("listings", len(listings)),
	)

	return &Snapshot{At: now, Leads: leads, Listings: listings}, nil
}

// DailyFocus returns today's capped outreach list.
func (eng *Engine) DailyFocus(ctx context.Context) ([]domain.FocusItem, error) {
	snap, err := eng.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := focus.DailyFocusList(snap.Leads, snap.Listings, eng.policy)
	metrics.FocusListSize.WithLabelValues("daily").Set(float64(len(items)))
	return items, nil
}

// HotDeals returns the most valuable listings in late pipeline stages.
func (eng *Engine) HotDeals(ctx context.Context) ([]domain.Listing, error) {
	snap, err := eng.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	hot := focus.HotDeals(snap.Listings, eng.policy)
	metrics.FocusListSize.WithLabelValues("hot").Set(float64(len(hot)))
	return hot, nil
}

// Aging returns relationships with no recent contact.
func (eng *Engine) Aging(ctx context.Context) ([]domain.FocusItem, error) {
	snap, err := eng.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := focus.AgingItems(snap.Leads, snap.Listings, snap.At, eng.policy)
	metrics.FocusListSize.WithLabelValues("aging").Set(float64(len(items)))
	return items, nil
}

// Onboarding returns leads waiting on their intake form.
func (eng *Engine) Onboarding(ctx context.Context) ([]domain.OnboardingItem, error) {
	leads, err := eng.store.AllLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}
	queue := focus.OnboardingQueue(leads, eng.now(), eng.onboardingLateDays)
	metrics.FocusListSize.WithLabelValues("onboarding").Set(float64(len(queue)))
	return queue, nil
}

// MatchesForLead returns the listings worth pitching to a lead, best tier
// first. A missing lead yields an error wrapping pgx.ErrNoRows.
func (eng *Engine) MatchesForLead(ctx context.Context, leadID string) (matches []domain.Match, err error) {
	ctx, span := tracing.Start(ctx, "engine.MatchesForLead", attribute.String("lead_id", leadID))
	defer func() { tracing.End(span, err) }()

	lead, err := eng.store.GetLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("getting lead %s: %w", leadID, err)
	}
	listings, err := eng.store.AllListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading listings: %w", err)
	}

	matches = focus.MatchesForLead(lead, listings)
	countTiers(matches)
	return matches, nil
}

// MatchesForListing returns the leads a listing should be shared with.
func (eng *Engine) MatchesForListing(ctx context.Context, listingID string) (matches []domain.Match, err error) {
	ctx, span := tracing.Start(ctx, "engine.MatchesForListing", attribute.String("listing_id", listingID))
	defer func() { tracing.End(span, err) }()

	listing, err := eng.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("getting listing %s: %w", listingID, err)
	}
	leads, err := eng.store.AllLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}

	matches = focus.MatchesForListing(listing, leads)
	countTiers(matches)
	return matches, nil
}

func countTiers(matches []domain.Match) {
	for _, m := range matches {
		metrics.MatchTiersTotal.WithLabelValues(string(m.Tier)).Inc()
	}
}

// Summary returns pipeline counts.
func (eng *Engine) Summary(ctx context.Context) (*domain.PipelineSummary, error) {
	s, err := eng.store.GetPipelineSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline summary: %w", err)
	}
	return s, nil
}
