// Package focus derives the broker's daily work views from lead and listing
// snapshots: the capped focus list, hot deals, aging relationships, match
// lists, and the onboarding queue. Every function is pure and returns freshly
// allocated results.
package focus

import (
	"cmp"
	"slices"
	"time"

	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// Policy holds the outreach limits applied by the aggregator.
type Policy struct {
	BuyerWeeklyCap  int
	SellerWeeklyCap int
	DailyLimit      int
	HotDealLimit    int
	AgingDays       int
	AgingLimit      int
}

// DefaultPolicy returns the standard outreach protocol: buyers tolerate more
// contact per week than sellers.
func DefaultPolicy() Policy {
	return Policy{
		BuyerWeeklyCap:  3,
		SellerWeeklyCap: 2,
		DailyLimit:      10,
		HotDealLimit:    3,
		AgingDays:       30,
		AgingLimit:      5,
	}
}

// CapFor returns the weekly touch cap for an entity kind.
func (p Policy) CapFor(kind domain.EntityKind) int {
	if kind == domain.KindLead {
		return p.BuyerWeeklyCap
	}
	return p.SellerWeeklyCap
}

var hotStages = []domain.DealStage{
	domain.StageOffer,
	domain.StageClosing,
	domain.StageNDASigned,
}

// DailyFocusList returns the highest-priority leads and listings still under
// their weekly touch cap. Items are sorted by priority score descending with
// ties kept in input order (leads before listings).
func DailyFocusList(leads []domain.Lead, listings []domain.Listing, p Policy) []domain.FocusItem {
	items := make([]domain.FocusItem, 0, len(leads)+len(listings))

	for i := range leads {
		it := tagLead(&leads[i], p)
		if it.TouchCountWeek() < it.Cap {
			items = append(items, it)
		}
	}
	for i := range listings {
		it := tagListing(&listings[i], p)
		if it.TouchCountWeek() < it.Cap {
			items = append(items, it)
		}
	}

	slices.SortStableFunc(items, func(a, b domain.FocusItem) int {
		return cmp.Compare(b.PriorityScore(), a.PriorityScore())
	})

	return truncate(items, p.DailyLimit)
}

// HotDeals returns the most expensive listings in the late pipeline stages.
func HotDeals(listings []domain.Listing, p Policy) []domain.Listing {
	hot := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if IsHot(&listings[i]) {
			hot = append(hot, listings[i])
		}
	}

	slices.SortStableFunc(hot, func(a, b domain.Listing) int {
		return cmp.Compare(b.AskingPrice, a.AskingPrice)
	})

	return truncate(hot, p.HotDealLimit)
}

// IsHot reports whether a listing's stage qualifies it as a hot deal.
func IsHot(l *domain.Listing) bool {
	return slices.Contains(hotStages, l.Stage)
}

// AgingItems returns leads then listings with no contact in more than
// p.AgingDays days. Entities never contacted count as aged.
func AgingItems(
	leads []domain.Lead,
	listings []domain.Listing,
	now time.Time,
	p Policy,
) []domain.FocusItem {
	items := make([]domain.FocusItem, 0)

	for i := range leads {
		if score.DaysSince(leads[i].LastContactAt, now) > p.AgingDays {
			l := leads[i]
			items = append(items, domain.FocusItem{
				Kind: domain.KindLead,
				Type: domain.ContactBuyer,
				Lead: &l,
			})
		}
	}
	for i := range listings {
		if score.DaysSince(listings[i].LastContactAt, now) > p.AgingDays {
			l := listings[i]
			items = append(items, domain.FocusItem{
				Kind:    domain.KindListing,
				Type:    domain.ContactSeller,
				Listing: &l,
			})
		}
	}

	return truncate(items, p.AgingLimit)
}

// Refresh returns copies of leads and listings with priority scores
// recomputed from their current fields.
func Refresh(
	leads []domain.Lead,
	listings []domain.Listing,
	now time.Time,
) ([]domain.Lead, []domain.Listing) {
	outLeads := slices.Clone(leads)
	for i := range outLeads {
		outLeads[i].PriorityScore = score.PriorityScore(score.FromLead(&outLeads[i]), now)
	}

	outListings := slices.Clone(listings)
	for i := range outListings {
		outListings[i].PriorityScore = score.PriorityScore(score.FromListing(&outListings[i]), now)
	}

	return outLeads, outListings
}

func tagLead(l *domain.Lead, p Policy) domain.FocusItem {
	c := *l
	return domain.FocusItem{
		Kind: domain.KindLead,
		Type: domain.ContactBuyer,
		Cap:  p.BuyerWeeklyCap,
		Lead: &c,
	}
}

func tagListing(l *domain.Listing, p Policy) domain.FocusItem {
	c := *l
	return domain.FocusItem{
		Kind:    domain.KindListing,
		Type:    domain.ContactSeller,
		Cap:     p.SellerWeeklyCap,
		Listing: &c,
	}
}

// truncate caps s at n items. A non-positive n means no limit.
func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
