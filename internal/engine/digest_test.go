package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	"github.com/donaldgifford/deal-desk/internal/notify"
	notifyMocks "github.com/donaldgifford/deal-desk/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/deal-desk/internal/store/mocks"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func TestRecordFeedback(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	f := &domain.MatchFeedback{LeadID: "l1", ListingID: "s1", Status: domain.FeedbackPending}
	ms.EXPECT().UpsertFeedback(mock.Anything, f).Return(nil).Once()

	view, err := eng.RecordFeedback(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, refNow, f.Timestamp)
	assert.Equal(t, domain.FeedbackPending, view.Effective)

	ms.EXPECT().UpsertFeedback(mock.Anything, mock.Anything).Return(errors.New("fk violation")).Once()
	_, err = eng.RecordFeedback(context.Background(), &domain.MatchFeedback{LeadID: "l1", ListingID: "gone"})
	require.Error(t, err)
}

func TestListFeedback(t *testing.T) {
	t.Parallel()

	records := []domain.MatchFeedback{
		{LeadID: "l1", ListingID: "s1", Status: domain.FeedbackPending, Timestamp: refNow.Add(-49 * time.Hour)},
		{LeadID: "l1", ListingID: "s2", Status: domain.FeedbackPending, Timestamp: refNow.Add(-2 * time.Hour)},
		{LeadID: "l2", ListingID: "s1", Status: domain.FeedbackNegative, Timestamp: refNow.Add(-100 * time.Hour)},
	}

	tests := []struct {
		name         string
		ignoredAfter time.Duration
		ignoredOnly  bool
		want         []string
	}{
		{
			name: "all with derived status",
			want: []string{"s2:Pending", "s1:Ignored", "s1:Negative"},
		},
		{
			name:        "ignored only",
			ignoredOnly: true,
			want:        []string{"s1:Ignored"},
		},
		{
			name:         "longer threshold",
			ignoredAfter: 72 * time.Hour,
			ignoredOnly:  true,
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t), WithIgnoredAfter(tt.ignoredAfter))
			ms.EXPECT().ListFeedback(mock.Anything, "").Return(records, nil).Once()

			views, err := eng.ListFeedback(context.Background(), "", tt.ignoredOnly)
			require.NoError(t, err)

			got := make([]string, 0, len(views))
			for _, v := range views {
				got = append(got, v.ListingID+":"+string(v.Effective))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// expectDigestSnapshot wires the store reads BuildDigest performs.
func expectDigestSnapshot(ms *storeMocks.MockStore, leads []domain.Lead, listings []domain.Listing) {
	ms.EXPECT().AllLeads(mock.Anything).Return(leads, nil).Once()
	ms.EXPECT().AllListings(mock.Anything).Return(listings, nil).Once()
	ms.EXPECT().GetPipelineSummary(mock.Anything).
		Return(&domain.PipelineSummary{LeadsTotal: len(leads), ListingsTotal: len(listings)}, nil).Once()
	ms.EXPECT().ListFeedback(mock.Anything, "").Return([]domain.MatchFeedback{
		{LeadID: "l1", ListingID: "s1", Status: domain.FeedbackPending, Timestamp: refNow.Add(-72 * time.Hour)},
	}, nil).Once()
}

func TestBuildDigest(t *testing.T) {
	t.Parallel()

	pending := domain.OnboardingPending
	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	expectDigestSnapshot(ms,
		[]domain.Lead{
			{ID: "l1", Name: "Omar", OnboardingStatus: &pending, DateAdded: *daysAgo(4)},
		},
		[]domain.Listing{
			{ID: "s1", Title: "Cafe", Stage: domain.StageOffer, AskingPrice: 800_000, LastContactAt: daysAgo(3)},
		},
	)

	d, err := eng.BuildDigest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, refNow, d.Date)
	assert.Equal(t, 1, d.Summary.LeadsTotal)
	assert.Len(t, d.Focus, 2)
	require.Len(t, d.HotDeals, 1)
	assert.Equal(t, "s1", d.HotDeals[0].ID)
	require.Len(t, d.Aging, 1, "the never-contacted lead is aged")
	assert.Equal(t, "l1", d.Aging[0].ID())
	require.Len(t, d.Ignored, 1)
	assert.Equal(t, "Omar", d.Label(d.Ignored[0].LeadID))
	assert.Equal(t, "Cafe", d.Label(d.Ignored[0].ListingID))
	require.Len(t, d.Onboarding, 1)
	assert.True(t, d.Onboarding[0].Late)
}

func TestRunDigest_Sends(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	expectDigestSnapshot(ms, []domain.Lead{{ID: "l1", Name: "Omar"}}, nil)

	var sent *notify.Digest
	mn.EXPECT().SendDigest(mock.Anything, mock.Anything).
		Run(func(_ context.Context, d *notify.Digest) { sent = d }).
		Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.DigestsSentTotal)

	ok, err := eng.RunDigest(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, sent)
	assert.Len(t, sent.Focus, 1)

	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.DigestsSentTotal)-before, 0)
}

func TestRunDigest_SkipsEmpty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	ms.EXPECT().AllLeads(mock.Anything).Return([]domain.Lead{}, nil).Once()
	ms.EXPECT().AllListings(mock.Anything).Return([]domain.Listing{}, nil).Once()
	ms.EXPECT().GetPipelineSummary(mock.Anything).Return(&domain.PipelineSummary{}, nil).Once()
	ms.EXPECT().ListFeedback(mock.Anything, "").Return([]domain.MatchFeedback{}, nil).Once()

	ok, err := eng.RunDigest(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunDigest_NotifierError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	expectDigestSnapshot(ms, []domain.Lead{{ID: "l1"}}, nil)
	mn.EXPECT().SendDigest(mock.Anything, mock.Anything).Return(errors.New("discord returned 500")).Once()

	before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	ok, err := eng.RunDigest(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "sending digest")
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.NotificationFailuresTotal)-before, float64(1))
}
