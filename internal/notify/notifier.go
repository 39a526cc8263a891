// Package notify defines the notification interface and implementations
// for delivering the broker's daily digest.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// Digest is the daily summary of what needs the broker's attention.
type Digest struct {
	Date       time.Time
	Summary    domain.PipelineSummary
	Focus      []domain.FocusItem
	HotDeals   []domain.Listing
	Aging      []domain.FocusItem
	Ignored    []domain.FeedbackView
	Onboarding []domain.OnboardingItem

	// Names maps lead and listing ids to the name or title shown for them.
	Names map[string]string
}

// Label returns the display name for a lead or listing id, or the id itself
// when the digest does not know it.
func (d *Digest) Label(id string) string {
	if name, ok := d.Names[id]; ok && name != "" {
		return name
	}
	return id
}

// Empty reports whether the digest has nothing to act on.
func (d *Digest) Empty() bool {
	return len(d.Focus) == 0 &&
		len(d.HotDeals) == 0 &&
		len(d.Aging) == 0 &&
		len(d.Ignored) == 0 &&
		len(d.Onboarding) == 0
}

// Notifier defines the interface for delivering digests.
type Notifier interface {
	SendDigest(ctx context.Context, digest *Digest) error
}
