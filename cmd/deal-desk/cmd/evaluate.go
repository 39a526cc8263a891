package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/deal-desk/pkg/focus"
	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

var (
	evalFile string
	evalJSON bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run scoring, matching, and focus views over a YAML snapshot",
	Long: "Evaluate a snapshot of leads and listings without a database. Field\n" +
		"names follow the JSON API. Entities without an id are given one.",
	Example: `  deal-desk evaluate --file snapshot.yaml

  # snapshot.yaml
  now: 2026-03-10T09:00:00Z
  policy:
    daily_limit: 5
  leads:
    - name: Omar
      max_budget: 1200000
      preferred_industries: [F&B]
  listings:
    - title: Marina Cafe
      industry: F&B
      asking_price: 1000000
      stage: Offer`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evalFile, "file", "f", "snapshot.yaml", "snapshot file")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(evaluateCmd)
}

type snapshot struct {
	Now      *time.Time       `json:"now"`
	Policy   policyOverrides  `json:"policy"`
	Leads    []domain.Lead    `json:"leads"`
	Listings []domain.Listing `json:"listings"`

	OnboardingLateDays int `json:"onboarding_late_days"`
}

// policyOverrides replaces the default policy field by field; zero keeps
// the default.
type policyOverrides struct {
	BuyerWeeklyCap  int `json:"buyer_weekly_cap"`
	SellerWeeklyCap int `json:"seller_weekly_cap"`
	DailyLimit      int `json:"daily_limit"`
	HotDealLimit    int `json:"hot_deal_limit"`
	AgingDays       int `json:"aging_days"`
	AgingLimit      int `json:"aging_limit"`
}

func (o policyOverrides) apply(p focus.Policy) focus.Policy {
	override := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	override(&p.BuyerWeeklyCap, o.BuyerWeeklyCap)
	override(&p.SellerWeeklyCap, o.SellerWeeklyCap)
	override(&p.DailyLimit, o.DailyLimit)
	override(&p.HotDealLimit, o.HotDealLimit)
	override(&p.AgingDays, o.AgingDays)
	override(&p.AgingLimit, o.AgingLimit)
	return p
}

type scoredEntity struct {
	Kind      domain.EntityKind `json:"kind"`
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Breakdown score.Breakdown   `json:"breakdown"`
}

type report struct {
	Now        time.Time                 `json:"now"`
	Scores     []scoredEntity            `json:"scores"`
	DailyFocus []domain.FocusItem        `json:"daily_focus"`
	HotDeals   []domain.Listing          `json:"hot_deals"`
	Aging      []domain.FocusItem        `json:"aging"`
	Matches    map[string][]domain.Match `json:"matches"`
	Onboarding []domain.OnboardingItem   `json:"onboarding"`
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(evalFile) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	snap, err := parseSnapshot(data)
	if err != nil {
		return err
	}

	now := time.Now()
	if snap.Now != nil {
		now = *snap.Now
	}

	r := evaluate(snap, now)
	if evalJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return printReport(cmd.OutOrStdout(), r)
}

// parseSnapshot decodes YAML through JSON so the domain types' json tags
// name the fields.
func parseSnapshot(data []byte) (*snapshot, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(js, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	for i := range snap.Leads {
		if snap.Leads[i].ID == "" {
			snap.Leads[i].ID = uuid.NewString()
		}
	}
	for i := range snap.Listings {
		if snap.Listings[i].ID == "" {
			snap.Listings[i].ID = uuid.NewString()
		}
		if snap.Listings[i].Stage == "" {
			snap.Listings[i].Stage = domain.StageNew
		}
	}
	return &snap, nil
}

func evaluate(snap *snapshot, now time.Time) *report {
	p := snap.Policy.apply(focus.DefaultPolicy())
	lateDays := snap.OnboardingLateDays
	if lateDays <= 0 {
		lateDays = focus.DefaultOnboardingLateDays
	}

	leads, listings := focus.Refresh(snap.Leads, snap.Listings, now)

	r := &report{
		Now:        now,
		DailyFocus: focus.DailyFocusList(leads, listings, p),
		HotDeals:   focus.HotDeals(listings, p),
		Aging:      focus.AgingItems(leads, listings, now, p),
		Matches:    make(map[string][]domain.Match, len(leads)),
		Onboarding: focus.OnboardingQueue(leads, now, lateDays),
	}

	for i := range leads {
		r.Scores = append(r.Scores, scoredEntity{
			Kind:      domain.KindLead,
			ID:        leads[i].ID,
			Name:      leads[i].Name,
			Breakdown: score.Score(score.FromLead(&leads[i]), now),
		})
		if m := focus.MatchesForLead(&leads[i], listings); len(m) > 0 {
			r.Matches[leads[i].ID] = m
		}
	}
	for i := range listings {
		r.Scores = append(r.Scores, scoredEntity{
			Kind:      domain.KindListing,
			ID:        listings[i].ID,
			Name:      listings[i].Title,
			Breakdown: score.Score(score.FromListing(&listings[i]), now),
		})
	}

	return r
}

func printReport(w io.Writer, r *report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Evaluated at %s\n\n", r.Now.Format(time.RFC3339))

	fmt.Fprintln(tw, "SCORES")
	fmt.Fprintln(tw, "KIND\tNAME\tDAYS\tRECENCY\tVALUE\tSTAGE\tTOTAL")
	for _, s := range r.Scores {
		b := s.Breakdown
		fmt.Fprintf(tw, "%s\t%s\t%d\t%+d\t%+d\t%+d\t%d\n", s.Kind, s.Name, b.Days, b.Recency, b.Value, b.Stage, b.Total)
	}

	fmt.Fprintln(tw, "\nDAILY FOCUS")
	for i := range r.DailyFocus {
		it := &r.DailyFocus[i]
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%d\n", i+1, it.Type, it.Name(), it.PriorityScore())
	}

	fmt.Fprintln(tw, "\nHOT DEALS")
	for i := range r.HotDeals {
		fmt.Fprintf(tw, "-\t%s\t%s\t%d\n", r.HotDeals[i].Title, r.HotDeals[i].Stage, r.HotDeals[i].PriorityScore)
	}

	fmt.Fprintln(tw, "\nAGING")
	for i := range r.Aging {
		it := &r.Aging[i]
		fmt.Fprintf(tw, "-\t%s\t%s\t%d days\n", it.Type, it.Name(), score.DaysSince(it.LastContactAt(), r.Now))
	}

	fmt.Fprintln(tw, "\nMATCHES")
	for _, s := range r.Scores {
		for _, m := range r.Matches[s.ID] {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, m.Listing.Title, m.Tier)
		}
	}

	if len(r.Onboarding) > 0 {
		fmt.Fprintln(tw, "\nONBOARDING")
		for _, o := range r.Onboarding {
			late := ""
			if o.Late {
				late = "late"
			}
			fmt.Fprintf(tw, "-\t%s\t%d days\t%s\n", o.Lead.Name, o.DaysWaiting, late)
		}
	}

	return tw.Flush()
}
