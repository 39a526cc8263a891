package focus

import (
	"slices"
	"time"

	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// DefaultOnboardingLateDays is how long an intake form may stay pending
// before the lead is flagged late.
const DefaultOnboardingLateDays = 3

// MatchesForLead returns every listing worth pitching to the lead, ordered
// by tier (Ideal first) and then input order. TierNone pairs are dropped.
func MatchesForLead(lead *domain.Lead, listings []domain.Listing) []domain.Match {
	matches := make([]domain.Match, 0)
	for i := range listings {
		tier := score.Tier(&listings[i], lead)
		if tier == domain.TierNone {
			continue
		}
		l := listings[i]
		matches = append(matches, domain.Match{Tier: tier, Listing: &l})
	}
	sortByTier(matches)
	return matches
}

// MatchesForListing returns every lead the listing should be shared with,
// ordered by tier and then input order.
func MatchesForListing(listing *domain.Listing, leads []domain.Lead) []domain.Match {
	matches := make([]domain.Match, 0)
	for i := range leads {
		tier := score.Tier(listing, &leads[i])
		if tier == domain.TierNone {
			continue
		}
		l := leads[i]
		matches = append(matches, domain.Match{Tier: tier, Lead: &l})
	}
	sortByTier(matches)
	return matches
}

// GroupByTier buckets matches by tier. Every surfaced tier has an entry,
// possibly empty.
func GroupByTier(matches []domain.Match) map[domain.MatchTier][]domain.Match {
	grouped := make(map[domain.MatchTier][]domain.Match, len(domain.SurfacedTiers))
	for _, t := range domain.SurfacedTiers {
		grouped[t] = []domain.Match{}
	}
	for _, m := range matches {
		grouped[m.Tier] = append(grouped[m.Tier], m)
	}
	return grouped
}

func sortByTier(matches []domain.Match) {
	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		return tierRank(a.Tier) - tierRank(b.Tier)
	})
}

func tierRank(t domain.MatchTier) int {
	if i := slices.Index(domain.SurfacedTiers, t); i >= 0 {
		return i
	}
	return len(domain.SurfacedTiers)
}

// OnboardingQueue returns leads whose intake form is still pending, with
// the days waiting since they were added. Leads waiting more than lateDays
// are flagged late.
func OnboardingQueue(leads []domain.Lead, now time.Time, lateDays int) []domain.OnboardingItem {
	queue := make([]domain.OnboardingItem, 0)
	for i := range leads {
		s := leads[i].OnboardingStatus
		if s == nil || *s != domain.OnboardingPending {
			continue
		}
		added := leads[i].DateAdded
		days := score.DaysSince(&added, now)
		queue = append(queue, domain.OnboardingItem{
			Lead:        leads[i],
			DaysWaiting: days,
			Late:        days > lateDays,
		})
	}
	return queue
}

// SortTasks returns tasks with open items first. Relative order within each
// group is preserved.
func SortTasks(tasks []domain.Task) []domain.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		switch {
		case a.Completed == b.Completed:
			return 0
		case a.Completed:
			return 1
		default:
			return -1
		}
	})
	return out
}
