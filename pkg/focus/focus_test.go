package focus

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

var refNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func daysAgo(d int) *time.Time {
	t := refNow.Add(-time.Duration(d) * 24 * time.Hour)
	return &t
}

func TestDefaultPolicy(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	assert.Equal(t, 3, p.BuyerWeeklyCap)
	assert.Equal(t, 2, p.SellerWeeklyCap)
	assert.Equal(t, 10, p.DailyLimit)
	assert.Equal(t, 3, p.HotDealLimit)
	assert.Equal(t, 30, p.AgingDays)
	assert.Equal(t, 5, p.AgingLimit)
	assert.Equal(t, 3, p.CapFor(domain.KindLead))
	assert.Equal(t, 2, p.CapFor(domain.KindListing))
}

func TestDailyFocusList_TenLeadsSortedDescending(t *testing.T) {
	t.Parallel()

	leads := make([]domain.Lead, 0, 10)
	for i := 1; i <= 10; i++ {
		leads = append(leads, domain.Lead{
			ID:            fmt.Sprintf("lead-%d", i),
			PriorityScore: i * 10,
		})
	}

	got := DailyFocusList(leads, nil, DefaultPolicy())
	require.Len(t, got, 10)

	for i, item := range got {
		assert.Equal(t, 100-i*10, item.PriorityScore())
		assert.Equal(t, domain.ContactBuyer, item.Type)
		assert.Equal(t, 3, item.Cap)
	}
}

func TestDailyFocusList_EnforcesCaps(t *testing.T) {
	t.Parallel()

	leads := []domain.Lead{
		{ID: "under", TouchCountWeek: 2, PriorityScore: 50},
		{ID: "at-cap", TouchCountWeek: 3, PriorityScore: 90},
	}
	listings := []domain.Listing{
		{ID: "seller-under", TouchCountWeek: 1, PriorityScore: 60},
		{ID: "seller-at-cap", TouchCountWeek: 2, PriorityScore: 95},
	}

	got := DailyFocusList(leads, listings, DefaultPolicy())
	require.Len(t, got, 2)
	assert.Equal(t, "seller-under", got[0].ID())
	assert.Equal(t, domain.ContactSeller, got[0].Type)
	assert.Equal(t, "under", got[1].ID())

	for _, item := range got {
		assert.Less(t, item.TouchCountWeek(), item.Cap)
	}
}

func TestDailyFocusList_StableTies(t *testing.T) {
	t.Parallel()

	leads := []domain.Lead{
		{ID: "a", PriorityScore: 70},
		{ID: "b", PriorityScore: 70},
	}
	listings := []domain.Listing{
		{ID: "c", PriorityScore: 70},
	}

	got := DailyFocusList(leads, listings, DefaultPolicy())
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID())
	assert.Equal(t, "b", got[1].ID())
	assert.Equal(t, "c", got[2].ID())
}

func TestDailyFocusList_Limit(t *testing.T) {
	t.Parallel()

	leads := make([]domain.Lead, 15)
	listings := make([]domain.Listing, 15)
	for i := range 15 {
		leads[i] = domain.Lead{ID: fmt.Sprintf("l%d", i), PriorityScore: i}
		listings[i] = domain.Listing{ID: fmt.Sprintf("s%d", i), PriorityScore: i + 50}
	}

	got := DailyFocusList(leads, listings, DefaultPolicy())
	assert.Len(t, got, 10)

	p := DefaultPolicy()
	p.DailyLimit = 4
	assert.Len(t, DailyFocusList(leads, listings, p), 4)
}

func TestDailyFocusList_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	leads := []domain.Lead{{ID: "a", PriorityScore: 10}}
	got := DailyFocusList(leads, nil, DefaultPolicy())
	require.Len(t, got, 1)

	got[0].Lead.PriorityScore = 99
	assert.Equal(t, 10, leads[0].PriorityScore)
}

func TestHotDeals(t *testing.T) {
	t.Parallel()

	listings := []domain.Listing{
		{ID: "new", Stage: domain.StageNew, AskingPrice: 9_000_000},
		{ID: "nda", Stage: domain.StageNDASigned, AskingPrice: 400_000},
		{ID: "offer", Stage: domain.StageOffer, AskingPrice: 550_000},
		{ID: "closing", Stage: domain.StageClosing, AskingPrice: 1_200_000},
		{ID: "sold", Stage: domain.StageSold, AskingPrice: 5_000_000},
		{ID: "nda-small", Stage: domain.StageNDASigned, AskingPrice: 100_000},
	}

	got := HotDeals(listings, DefaultPolicy())
	require.Len(t, got, 3)
	assert.Equal(t, "closing", got[0].ID)
	assert.Equal(t, "offer", got[1].ID)
	assert.Equal(t, "nda", got[2].ID)

	for i := range got {
		assert.True(t, IsHot(&got[i]))
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].AskingPrice, got[i].AskingPrice)
		}
	}
}

func TestHotDeals_Empty(t *testing.T) {
	t.Parallel()

	got := HotDeals([]domain.Listing{{Stage: domain.StageNew}}, DefaultPolicy())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAgingItems(t *testing.T) {
	t.Parallel()

	leads := []domain.Lead{
		{ID: "never"},
		{ID: "recent", LastContactAt: daysAgo(2)},
		{ID: "exactly-30", LastContactAt: daysAgo(30)},
		{ID: "old", LastContactAt: daysAgo(45)},
	}
	listings := []domain.Listing{
		{ID: "old-listing", LastContactAt: daysAgo(31)},
		{ID: "fresh-listing", LastContactAt: daysAgo(1)},
	}

	got := AgingItems(leads, listings, refNow, DefaultPolicy())
	require.Len(t, got, 3)
	assert.Equal(t, "never", got[0].ID())
	assert.Equal(t, domain.ContactBuyer, got[0].Type)
	assert.Equal(t, "old", got[1].ID())
	assert.Equal(t, "old-listing", got[2].ID())
	assert.Equal(t, domain.ContactSeller, got[2].Type)
}

func TestAgingItems_LeadsFirstThenTruncated(t *testing.T) {
	t.Parallel()

	leads := make([]domain.Lead, 4)
	for i := range leads {
		leads[i] = domain.Lead{ID: fmt.Sprintf("lead-%d", i)}
	}
	listings := make([]domain.Listing, 4)
	for i := range listings {
		listings[i] = domain.Listing{ID: fmt.Sprintf("listing-%d", i)}
	}

	got := AgingItems(leads, listings, refNow, DefaultPolicy())
	require.Len(t, got, 5)
	for i := range 4 {
		assert.Equal(t, domain.KindLead, got[i].Kind)
	}
	assert.Equal(t, "listing-0", got[4].ID())

	for _, item := range got {
		last := item.LastContactAt()
		if last != nil {
			assert.Greater(t, refNow.Sub(*last), 30*24*time.Hour)
		}
	}
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	leads := []domain.Lead{{ID: "a", MaxBudget: 800_000, LastContactAt: daysAgo(1), PriorityScore: 7}}
	listings := []domain.Listing{{ID: "b", AskingPrice: 550_000, Stage: domain.StageOffer, LastContactAt: daysAgo(20)}}

	gotLeads, gotListings := Refresh(leads, listings, refNow)
	assert.Equal(t, 40, gotLeads[0].PriorityScore)
	assert.Equal(t, 100, gotListings[0].PriorityScore)

	assert.Equal(t, 7, leads[0].PriorityScore, "input must not be mutated")
	assert.Zero(t, listings[0].PriorityScore)
}
