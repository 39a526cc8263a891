package score

import (
	"time"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// Scoring constants.
const (
	BaseScore = 50

	// NeverContactedDays is the age assumed for an entity with no contact.
	NeverContactedDays = 999

	staleAfterDays  = 14
	staleBonus      = 20
	freshBeforeDays = 3
	freshPenalty    = -10

	highValueThreshold  = 2_000_000
	highValueBonus      = 15
	majorValueThreshold = 5_000_000
	majorValueBonus     = 10

	closingStageBonus = 30
	newStageBonus     = 10
)

// EntityData holds the fields needed for priority scoring (decoupled from
// the stored records). Kind selects whether Stage participates.
type EntityData struct {
	Kind          domain.EntityKind
	LastContactAt *time.Time
	Value         float64 // asking price for listings, max budget for leads
	Stage         domain.DealStage
}

// FromLead builds scoring input for a lead.
func FromLead(l *domain.Lead) EntityData {
	return EntityData{
		Kind:          domain.KindLead,
		LastContactAt: l.LastContactAt,
		Value:         l.MaxBudget,
	}
}

// FromListing builds scoring input for a listing.
func FromListing(l *domain.Listing) EntityData {
	return EntityData{
		Kind:          domain.KindListing,
		LastContactAt: l.LastContactAt,
		Value:         l.AskingPrice,
		Stage:         l.Stage,
	}
}

// Breakdown shows per-factor adjustments.
type Breakdown struct {
	Base    int `json:"base"`
	Recency int `json:"recency"`
	Value   int `json:"value"`
	Stage   int `json:"stage"`
	Days    int `json:"days_since_contact"`
	Total   int `json:"total"`
}

// PriorityScore computes the 0-100 urgency score for an entity at now.
func PriorityScore(data EntityData, now time.Time) int {
	return Score(data, now).Total
}

// Score computes the priority score with its per-factor breakdown.
func Score(data EntityData, now time.Time) Breakdown {
	b := Breakdown{Base: BaseScore}

	b.Days = DaysSince(data.LastContactAt, now)
	b.Recency = recencyAdjustment(b.Days)
	b.Value = valueAdjustment(data.Value)

	if data.Kind == domain.KindListing {
		b.Stage = stageAdjustment(data.Stage)
	}

	b.Total = clamp(b.Base + b.Recency + b.Value + b.Stage)
	return b
}

// DaysSince returns whole days elapsed between t and now, or
// NeverContactedDays when t is nil.
func DaysSince(t *time.Time, now time.Time) int {
	if t == nil {
		return NeverContactedDays
	}
	return int(now.Sub(*t) / (24 * time.Hour))
}

// recencyAdjustment pushes stale relationships up and freshly touched ones
// down. Days in [3,14] get nothing.
func recencyAdjustment(days int) int {
	switch {
	case days > staleAfterDays:
		return staleBonus
	case days < freshBeforeDays:
		return freshPenalty
	default:
		return 0
	}
}

// valueAdjustment stacks: a value above 5M earns both bonuses.
func valueAdjustment(value float64) int {
	adj := 0
	if value > highValueThreshold {
		adj += highValueBonus
	}
	if value > majorValueThreshold {
		adj += majorValueBonus
	}
	return adj
}

func stageAdjustment(stage domain.DealStage) int {
	switch stage {
	case domain.StageOffer, domain.StageClosing:
		return closingStageBonus
	case domain.StageNew:
		return newStageBonus
	default:
		return 0
	}
}

func clamp(v int) int {
	return min(max(v, 0), 100)
}
