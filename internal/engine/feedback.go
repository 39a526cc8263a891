package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	"github.com/donaldgifford/deal-desk/pkg/feedback"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// RecordFeedback stores a lead's current response to a listing, replacing
// any earlier response for the same pair. A zero Timestamp is stamped with
// the current time.
func (eng *Engine) RecordFeedback(ctx context.Context, f *domain.MatchFeedback) (domain.FeedbackView, error) {
	now := eng.now()
	if f.Timestamp.IsZero() {
		f.Timestamp = now
	}

	if err := eng.store.UpsertFeedback(ctx, f); err != nil {
		return domain.FeedbackView{}, fmt.Errorf("recording feedback: %w", err)
	}
	metrics.FeedbackUpsertsTotal.WithLabelValues(string(f.Status)).Inc()

	return feedback.View(f, now, eng.ignoredAfter), nil
}

// ListFeedback returns feedback with its effective status, newest first.
// An empty leadID lists every lead. With ignoredOnly set, only pending
// responses older than the ignored threshold are returned.
func (eng *Engine) ListFeedback(
	ctx context.Context,
	leadID string,
	ignoredOnly bool,
) ([]domain.FeedbackView, error) {
	records, err := eng.store.ListFeedback(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	book := feedback.Load(records, eng.ignoredAfter)
	if ignoredOnly {
		return book.Ignored(eng.now()), nil
	}
	return book.List(eng.now()), nil
}
