package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	"github.com/donaldgifford/deal-desk/internal/notify"
	"github.com/donaldgifford/deal-desk/internal/tracing"
	"github.com/donaldgifford/deal-desk/pkg/feedback"
	"github.com/donaldgifford/deal-desk/pkg/focus"
)

// BuildDigest assembles the daily digest from a single snapshot so every
// section agrees on scores and contact dates.
func (eng *Engine) BuildDigest(ctx context.Context) (d *notify.Digest, err error) {
	ctx, span := tracing.Start(ctx, "engine.BuildDigest")
	defer func() { tracing.End(span, err) }()

	snap, err := eng.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := eng.Summary(ctx)
	if err != nil {
		return nil, err
	}

	records, err := eng.store.ListFeedback(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	names := make(map[string]string, len(snap.Leads)+len(snap.Listings))
	for i := range snap.Leads {
		names[snap.Leads[i].ID] = snap.Leads[i].Name
	}
	for i := range snap.Listings {
		names[snap.Listings[i].ID] = snap.Listings[i].Title
	}

	return &notify.Digest{
		Date:       snap.At,
		Summary:    *summary,
		Focus:      focus.DailyFocusList(snap.Leads, snap.Listings, eng.policy),
		HotDeals:   focus.HotDeals(snap.Listings, eng.policy),
		Aging:      focus.AgingItems(snap.Leads, snap.Listings, snap.At, eng.policy),
		Ignored:    feedback.Load(records, eng.ignoredAfter).Ignored(snap.At),
		Onboarding: focus.OnboardingQueue(snap.Leads, snap.At, eng.onboardingLateDays),
		Names:      names,
	}, nil
}

// RunDigest builds the daily digest and sends it through the notifier. An
// empty digest is not sent. It reports whether a digest was delivered.
func (eng *Engine) RunDigest(ctx context.Context) (bool, error) {
	d, err := eng.BuildDigest(ctx)
	if err != nil {
		return false, fmt.Errorf("building digest: %w", err)
	}

	if d.Empty() {
		eng.log.Info("digest skipped, nothing to act on")
		return false, nil
	}

	if err := eng.notifier.SendDigest(ctx, d); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return false, fmt.Errorf("sending digest: %w", err)
	}

	metrics.DigestsSentTotal.Inc()
	eng.log.Info("digest sent",
		"focus", len(d.Focus),
		"hot_deals", len(d.HotDeals),
		"aging", len(d.Aging),
		"ignored", len(d.Ignored),
		"onboarding", len(d.Onboarding),
	)
	return true, nil
}
