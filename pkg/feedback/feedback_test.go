package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

var refNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestEffective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status domain.FeedbackStatus
		age    time.Duration
		after  time.Duration
		want   domain.FeedbackStatus
	}{
		{
			name:   "fresh pending stays pending",
			status: domain.FeedbackPending,
			age:    time.Hour,
			want:   domain.FeedbackPending,
		},
		{
			name:   "pending at exactly the threshold is not ignored",
			status: domain.FeedbackPending,
			age:    DefaultIgnoredAfter,
			want:   domain.FeedbackPending,
		},
		{
			name:   "pending past the threshold is ignored",
			status: domain.FeedbackPending,
			age:    DefaultIgnoredAfter + time.Minute,
			want:   domain.FeedbackIgnored,
		},
		{
			name:   "old positive is never ignored",
			status: domain.FeedbackPositive,
			age:    30 * 24 * time.Hour,
			want:   domain.FeedbackPositive,
		},
		{
			name:   "old negative is never ignored",
			status: domain.FeedbackNegative,
			age:    30 * 24 * time.Hour,
			want:   domain.FeedbackNegative,
		},
		{
			name:   "custom 72 hour threshold",
			status: domain.FeedbackPending,
			age:    60 * time.Hour,
			after:  72 * time.Hour,
			want:   domain.FeedbackPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := &domain.MatchFeedback{
				LeadID:    "lead",
				ListingID: "listing",
				Status:    tt.status,
				Timestamp: refNow.Add(-tt.age),
			}
			assert.Equal(t, tt.want, Effective(f, refNow, tt.after))
		})
	}
}

func TestBook_UpsertReplaces(t *testing.T) {
	t.Parallel()

	b := NewBook(0)
	assert.Equal(t, DefaultIgnoredAfter, b.ignoredAfter)

	replaced := b.upsert(domain.MatchFeedback{
		LeadID:    "a",
		ListingID: "x",
		Status:    domain.FeedbackPending,
		Timestamp: refNow.Add(-time.Hour),
	})
	assert.False(t, replaced)

	replaced = b.upsert(domain.MatchFeedback{
		LeadID:    "a",
		ListingID: "x",
		Status:    domain.FeedbackPositive,
		Timestamp: refNow,
	})
	assert.True(t, replaced)
	assert.Equal(t, 1, b.size())

	got, ok := b.get("a", "x")
	require.True(t, ok)
	assert.Equal(t, domain.FeedbackPositive, got.Status)

	_, ok = b.get("a", "y")
	assert.False(t, ok)
}

func TestLoad_KeepsNewestPerPair(t *testing.T) {
	t.Parallel()

	b := Load([]domain.MatchFeedback{
		{LeadID: "a", ListingID: "x", Status: domain.FeedbackPositive, Timestamp: refNow},
		{LeadID: "a", ListingID: "x", Status: domain.FeedbackPending, Timestamp: refNow.Add(-time.Hour)},
		{LeadID: "b", ListingID: "x", Status: domain.FeedbackNegative, Timestamp: refNow},
	}, DefaultIgnoredAfter)

	assert.Equal(t, 2, b.size())
	got, ok := b.get("a", "x")
	require.True(t, ok)
	assert.Equal(t, domain.FeedbackPositive, got.Status)
}

func TestBook_IgnoredAndList(t *testing.T) {
	t.Parallel()

	b := NewBook(DefaultIgnoredAfter)
	b.upsert(domain.MatchFeedback{LeadID: "a", ListingID: "x", Status: domain.FeedbackPending, Timestamp: refNow.Add(-72 * time.Hour)})
	b.upsert(domain.MatchFeedback{LeadID: "a", ListingID: "y", Status: domain.FeedbackPending, Timestamp: refNow.Add(-time.Hour)})
	b.upsert(domain.MatchFeedback{LeadID: "b", ListingID: "x", Status: domain.FeedbackNegative, Timestamp: refNow.Add(-96 * time.Hour)})

	all := b.List(refNow)
	require.Len(t, all, 3)
	assert.Equal(t, "y", all[0].ListingID)
	assert.Equal(t, domain.FeedbackPending, all[0].Effective)
	assert.Equal(t, domain.FeedbackIgnored, all[1].Effective)
	assert.Equal(t, domain.FeedbackNegative, all[2].Effective)

	ignored := b.Ignored(refNow)
	require.Len(t, ignored, 1)
	assert.Equal(t, "a", ignored[0].LeadID)
	assert.Equal(t, "x", ignored[0].ListingID)
	assert.Equal(t, domain.FeedbackPending, ignored[0].Status)

	assert.Len(t, b.forLead("a", refNow), 2)
	assert.Empty(t, b.forLead("nobody", refNow))
}
