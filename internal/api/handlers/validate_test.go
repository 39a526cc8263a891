package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/internal/api/handlers"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := handlers.NewValidator()

	tests := []struct {
		name    string
		in      any
		wantErr []string
	}{
		{
			name: "valid lead",
			in: &domain.Lead{
				Name:                "Omar",
				Email:               "omar@example.com",
				PreferredIndustries: []domain.Industry{domain.IndustryFnB},
				Status:              domain.LeadCold,
			},
		},
		{
			name: "every lead error is reported",
			in: &domain.Lead{
				Email:               "not-an-email",
				MinBudget:           -1,
				PreferredIndustries: []domain.Industry{domain.IndustryRetail, "Mining"},
			},
			wantErr: []string{
				"name is required",
				"email must be a valid email address",
				"min_budget must be >= 0",
				`preferred_industries[1] "Mining" is not a known industry`,
			},
		},
		{
			name: "listing stage with a space",
			in: &domain.Listing{
				Title:    "Marina Cafe",
				Industry: domain.IndustryFnB,
				Stage:    domain.StageNDASigned,
			},
		},
		{
			name: "negative premises figures",
			in: &domain.Listing{
				Title:      "Marina Cafe",
				Industry:   domain.IndustryFnB,
				Sqft:       -10,
				StaffCount: -1,
			},
			wantErr: []string{"sqft must be >= 0", "staff_count must be >= 0"},
		},
		{
			name: "valid broker",
			in:   &domain.Broker{Name: "Karim", Email: "karim@example.com", DealsClosed: 4, ReferralFee: 2.5},
		},
		{
			name:    "broker fee over 100 percent",
			in:      &domain.Broker{Name: "Karim", ReferralFee: 150},
			wantErr: []string{"referral_fee must be <= 100"},
		},
		{
			name:    "listing type outside the enum",
			in:      &domain.Listing{Title: "Marina Cafe", Industry: domain.IndustryFnB, Type: "Lease"},
			wantErr: []string{"listing_type must be one of [Sale Rent Vending]"},
		},
		{
			name:    "negative touch count",
			in:      &domain.Lead{Name: "Omar", TouchCountWeek: -1},
			wantErr: []string{"touch_count_week must be >= 0"},
		},
		{
			name:    "non-struct input",
			in:      "lead",
			wantErr: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tt.in)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
