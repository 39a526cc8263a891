// Package feedback tracks how leads respond to listings shared with them.
// Records are keyed by (lead, listing) so a new status replaces the old one,
// and the Ignored status is derived from age rather than stored.
package feedback

import (
	"cmp"
	"slices"
	"time"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// DefaultIgnoredAfter is how long a Pending response may sit before it is
// reported as Ignored.
const DefaultIgnoredAfter = 48 * time.Hour

// Key identifies one lead/listing pair.
type Key struct {
	LeadID    string
	ListingID string
}

// KeyOf returns the pair key of a feedback record.
func KeyOf(f *domain.MatchFeedback) Key {
	return Key{LeadID: f.LeadID, ListingID: f.ListingID}
}

// Effective returns the status a broker should see: Pending records older
// than ignoredAfter read as Ignored. A non-positive ignoredAfter uses
// DefaultIgnoredAfter.
func Effective(f *domain.MatchFeedback, now time.Time, ignoredAfter time.Duration) domain.FeedbackStatus {
	if ignoredAfter <= 0 {
		ignoredAfter = DefaultIgnoredAfter
	}
	if f.Status == domain.FeedbackPending && now.Sub(f.Timestamp) > ignoredAfter {
		return domain.FeedbackIgnored
	}
	return f.Status
}

// View wraps a record with its effective status.
func View(f *domain.MatchFeedback, now time.Time, ignoredAfter time.Duration) domain.FeedbackView {
	return domain.FeedbackView{
		MatchFeedback: *f,
		Effective:     Effective(f, now, ignoredAfter),
	}
}

// Book holds at most one current record per lead/listing pair. The zero
// value is not usable; create one with NewBook or Load.
//
// A Book is a read view over stored records. Writes go through the store,
// whose ON CONFLICT (lead_id, listing_id) upsert keeps one row per pair; the
// unexported upsert here mirrors that rule for in-memory use.
type Book struct {
	ignoredAfter time.Duration
	records      map[Key]domain.MatchFeedback
}

// NewBook returns an empty book. A non-positive ignoredAfter uses
// DefaultIgnoredAfter.
func NewBook(ignoredAfter time.Duration) *Book {
	if ignoredAfter <= 0 {
		ignoredAfter = DefaultIgnoredAfter
	}
	return &Book{
		ignoredAfter: ignoredAfter,
		records:      make(map[Key]domain.MatchFeedback),
	}
}

// Load builds a book from stored records. Later records for the same pair
// win when their timestamp is not older than the one already held.
func Load(records []domain.MatchFeedback, ignoredAfter time.Duration) *Book {
	b := NewBook(ignoredAfter)
	for i := range records {
		k := KeyOf(&records[i])
		if prev, ok := b.records[k]; ok && records[i].Timestamp.Before(prev.Timestamp) {
			continue
		}
		b.records[k] = records[i]
	}
	return b
}

// upsert stores f, replacing any previous record for the same pair. It
// reports whether an existing record was replaced.
func (b *Book) upsert(f domain.MatchFeedback) bool {
	k := KeyOf(&f)
	_, replaced := b.records[k]
	b.records[k] = f
	return replaced
}

// get returns the current record for a pair.
func (b *Book) get(leadID, listingID string) (domain.MatchFeedback, bool) {
	f, ok := b.records[Key{LeadID: leadID, ListingID: listingID}]
	return f, ok
}

// size returns the number of pairs held.
func (b *Book) size() int {
	return len(b.records)
}

// List returns every record with its effective status, newest first.
func (b *Book) List(now time.Time) []domain.FeedbackView {
	out := make([]domain.FeedbackView, 0, len(b.records))
	for k := range b.records {
		f := b.records[k]
		out = append(out, View(&f, now, b.ignoredAfter))
	}
	sortViews(out)
	return out
}

// Ignored returns the records whose effective status is Ignored, newest
// first.
func (b *Book) Ignored(now time.Time) []domain.FeedbackView {
	out := make([]domain.FeedbackView, 0)
	for _, v := range b.List(now) {
		if v.Effective == domain.FeedbackIgnored {
			out = append(out, v)
		}
	}
	return out
}

// forLead returns the lead's records with effective status, newest first.
func (b *Book) forLead(leadID string, now time.Time) []domain.FeedbackView {
	out := make([]domain.FeedbackView, 0)
	for _, v := range b.List(now) {
		if v.LeadID == leadID {
			out = append(out, v)
		}
	}
	return out
}

func sortViews(v []domain.FeedbackView) {
	slices.SortFunc(v, func(a, b domain.FeedbackView) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		if c := cmp.Compare(a.LeadID, b.LeadID); c != 0 {
			return c
		}
		return cmp.Compare(a.ListingID, b.ListingID)
	})
}
