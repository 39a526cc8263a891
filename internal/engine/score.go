// Package engine implements the deal desk service logic: snapshot loading,
// interaction logging with score recomputation, feedback tracking, score
// cache maintenance, and the daily digest.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	"github.com/donaldgifford/deal-desk/internal/tracing"
	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// ErrUnknownKind is returned for an interaction whose entity kind is neither
// lead nor listing.
var ErrUnknownKind = errors.New("unknown entity kind")

// LogInteraction appends an interaction and updates the entity's outreach
// state in one step: the contact date moves forward, the weekly touch count
// increments, and the priority score is recomputed from the updated fields.
// A zero Date is stamped with the current time. It returns the new score.
func (eng *Engine) LogInteraction(ctx context.Context, in *domain.Interaction) (newScore int, err error) {
	ctx, span := tracing.Start(ctx, "engine.LogInteraction",
		attribute.String("entity_id", in.EntityID),
		attribute.String("entity_kind", string(in.EntityKind)),
	)
	defer func() { tracing.End(span, err) }()

	now := eng.now()
	if in.Date.IsZero() {
		in.Date = now
	}

	var data score.EntityData
	switch in.EntityKind {
	case domain.KindLead:
		lead, err := eng.store.GetLead(ctx, in.EntityID)
		if err != nil {
			return 0, fmt.Errorf("getting lead %s: %w", in.EntityID, err)
		}
		data = score.FromLead(lead)
	case domain.KindListing:
		listing, err := eng.store.GetListing(ctx, in.EntityID)
		if err != nil {
			return 0, fmt.Errorf("getting listing %s: %w", in.EntityID, err)
		}
		data = score.FromListing(listing)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, in.EntityKind)
	}

	data.LastContactAt = laterOf(data.LastContactAt, in.Date)
	newScore = score.PriorityScore(data, now)

	if err := eng.store.RecordInteraction(ctx, in, newScore); err != nil {
		return 0, fmt.Errorf("recording interaction: %w", err)
	}

	metrics.InteractionsTotal.WithLabelValues(string(in.EntityKind), string(in.Type)).Inc()
	metrics.ScoreDistribution.WithLabelValues(string(in.EntityKind)).Observe(float64(newScore))

	eng.log.Info("interaction logged",
		"entity_id", in.EntityID,
		"kind", in.EntityKind,
		"type", in.Type,
		"priority_score", newScore,
	)

	return newScore, nil
}

// laterOf returns the later of an optional contact time and t.
func laterOf(last *time.Time, t time.Time) *time.Time {
	if last != nil && last.After(t) {
		return last
	}
	return &t
}

// RescoreAll recomputes every priority score from current fields and
// rewrites the stored cache where it drifted. Scores decay with time since
// contact, so the cache goes stale without interactions.
func (eng *Engine) RescoreAll(ctx context.Context) (updated int, err error) {
	ctx, span := tracing.Start(ctx, "engine.RescoreAll")
	defer func() { tracing.End(span, err) }()

	snap, err := eng.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	leadScores := make(map[string]int, len(snap.Leads))
	for i := range snap.Leads {
		leadScores[snap.Leads[i].ID] = snap.Leads[i].PriorityScore
		metrics.ScoreDistribution.WithLabelValues(string(domain.KindLead)).
			Observe(float64(snap.Leads[i].PriorityScore))
	}
	listingScores := make(map[string]int, len(snap.Listings))
	for i := range snap.Listings {
		listingScores[snap.Listings[i].ID] = snap.Listings[i].PriorityScore
		metrics.ScoreDistribution.WithLabelValues(string(domain.KindListing)).
			Observe(float64(snap.Listings[i].PriorityScore))
	}

	var errs []error
	n, err := eng.store.UpdatePriorityScores(ctx, domain.KindLead, leadScores)
	if err != nil {
		errs = append(errs, fmt.Errorf("rescoring leads: %w", err))
	}
	updated += n

	n, err = eng.store.UpdatePriorityScores(ctx, domain.KindListing, listingScores)
	if err != nil {
		errs = append(errs, fmt.Errorf("rescoring listings: %w", err))
	}
	updated += n

	metrics.RescoredTotal.Add(float64(updated))
	span.SetAttributes(attribute.Int("updated", updated))

	return updated, errors.Join(errs...)
}

// ResetWeeklyTouches zeroes every weekly touch counter, reopening capped
// entities for the focus list.
func (eng *Engine) ResetWeeklyTouches(ctx context.Context) (int64, error) {
	n, err := eng.store.ResetWeeklyTouches(ctx)
	if err != nil {
		return 0, fmt.Errorf("resetting weekly touches: %w", err)
	}
	metrics.TouchResetsTotal.Inc()
	eng.log.Info("weekly touches reset", "rows", n)
	return n, nil
}

// Now returns the engine clock's current time.
func (eng *Engine) Now() time.Time {
	return eng.now()
}

// Score computes a priority score breakdown as of the engine clock.
func (eng *Engine) Score(data score.EntityData) score.Breakdown {
	return score.Score(data, eng.now())
}
