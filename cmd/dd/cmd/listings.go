package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/deal-desk/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query business listings",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var params apiclient.ListListingsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  dd listings list
  dd listings list --stage Offer --stage Closing
  dd listings list --industry Retail --max-price 2000000 --order-by roi`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListListings(cmd.Context(), &params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Listings) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(out, resp.Listings)
		},
	}
	cmd.Flags().StringArrayVar(&params.Stages, "stage", nil, "deal stage filter (repeatable)")
	cmd.Flags().StringVar(&params.Industry, "industry", "", "industry filter")
	cmd.Flags().StringVar(&params.Type, "type", "", "listing type (Sale, Rent, Vending)")
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "minimum asking price")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "maximum asking price")
	cmd.Flags().StringVarP(&params.Search, "query", "q", "", "title search")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort order (priority, price, date_added, roi)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  dd listings get 9b1e...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}
