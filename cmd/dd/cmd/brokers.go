package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func brokersCmd() *cobra.Command {
	brokersRoot := &cobra.Command{
		Use:   "brokers",
		Short: "Manage co-brokers",
	}

	brokersRoot.AddCommand(brokersListCmd(), brokersCreateCmd())
	return brokersRoot
}

func brokersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List co-brokers by deals closed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			brokers, err := newClient().ListBrokers(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, brokers)
			}
			if len(brokers) == 0 {
				fmt.Fprintln(out, "No brokers found.")
				return nil
			}
			return printBrokersTable(out, brokers)
		},
	}
}

func brokersCreateCmd() *cobra.Command {
	var b domain.Broker

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Add a co-broker",
		Example: `  dd brokers create --name "Karim Saleh" --firm "Gulf Realty" --fee 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := newClient().CreateBroker(cmd.Context(), &b)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created broker %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&b.Name, "name", "", "broker name")
	cmd.Flags().StringVar(&b.Firm, "firm", "", "brokerage firm")
	cmd.Flags().StringVar(&b.Email, "email", "", "email address")
	cmd.Flags().IntVar(&b.DealsClosed, "deals", 0, "deals closed together")
	cmd.Flags().Float64Var(&b.ReferralFee, "fee", 0, "referral fee percent")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}
