package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/deal-desk/internal/api/client"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func matchesCmd() *cobra.Command {
	matchesRoot := &cobra.Command{
		Use:   "matches",
		Short: "Match buyers and listings",
		Long: "Show tiered matches. Ideal and Good Fit are within budget, Stretch\n" +
			"needs 75% of the asking price, and Share Widely listings return\n" +
			"more than 40% cash on cash.",
	}

	var tier string
	matchesRoot.PersistentFlags().StringVar(&tier, "tier", "", "only this tier (Ideal, Good Fit, Stretch, Share Widely)")

	matchesRoot.AddCommand(
		matchesSubCmd("lead <id>", "Listings that fit a lead", &tier,
			func(ctx context.Context, c *apiclient.Client, id, t string) (*apiclient.MatchesResponse, error) {
				return c.MatchesForLead(ctx, id, t)
			}),
		matchesSubCmd("listing <id>", "Leads a listing fits", &tier,
			func(ctx context.Context, c *apiclient.Client, id, t string) (*apiclient.MatchesResponse, error) {
				return c.MatchesForListing(ctx, id, t)
			}),
	)

	return matchesRoot
}

type matchFunc func(ctx context.Context, c *apiclient.Client, id, tier string) (*apiclient.MatchesResponse, error)

func matchesSubCmd(use, short string, tier *string, fetch matchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := fetch(cmd.Context(), newClient(), args[0], *tier)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Matches) == 0 {
				fmt.Fprintln(out, "No matches.")
				return nil
			}
			fmt.Fprintln(out, tierCounts(resp.ByTier))
			fmt.Fprintln(out)
			return printMatchesTable(out, resp)
		},
	}
}

func tierCounts(by map[string]int) string {
	parts := make([]string, 0, len(domain.SurfacedTiers))
	for _, t := range domain.SurfacedTiers {
		if n := by[string(t)]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", t, n))
		}
	}
	return strings.Join(parts, "  ")
}
