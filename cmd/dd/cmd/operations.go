package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rescore",
		Short:   "Recompute stored priority scores",
		Long:    "Recomputes the cached priority score of every lead and listing as of now.",
		Example: `  dd rescore`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().Rescore(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rescored %d leads and listings.\n", n)
			return nil
		},
	}
}

func touchesCmd() *cobra.Command {
	touchesRoot := &cobra.Command{
		Use:   "touches",
		Short: "Weekly touch counters",
	}

	touchesRoot.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Zero every weekly touch count now",
		Long: "Zero weekly touch counts outside the scheduled weekly reset, for\n" +
			"example after a holiday week.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().ResetTouches(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset touch counts on %d records.\n", n)
			return nil
		},
	})

	return touchesRoot
}

func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "digest",
		Short:   "Send the daily digest now",
		Example: `  dd digest`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sent, err := newClient().SendDigest(cmd.Context())
			if err != nil {
				return err
			}
			if !sent {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to send.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Digest sent.")
			return nil
		},
	}
}
