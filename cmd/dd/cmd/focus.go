package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func focusCmd() *cobra.Command {
	focusRoot := &cobra.Command{
		Use:   "focus",
		Short: "Show today's work lists",
		Long: "Show the broker's derived work lists: who to contact today,\n" +
			"which deals are close to done, and which relationships have gone quiet.",
	}

	focusRoot.AddCommand(
		focusDailyCmd(),
		focusHotCmd(),
		focusAgingCmd(),
		focusOnboardingCmd(),
		focusSummaryCmd(),
	)

	return focusRoot
}

func focusDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Highest-priority contacts still under their weekly touch cap",
		Example: `  dd focus daily
  dd focus daily --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().DailyFocus(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if resp.Total == 0 {
				fmt.Fprintln(out, "Nothing to do today.")
				return nil
			}
			return printFocusTable(out, resp.Items)
		},
	}
}

func focusHotCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hot",
		Short:   "Listings at NDA, offer, or closing",
		Example: `  dd focus hot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().HotDeals(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if resp.Total == 0 {
				fmt.Fprintln(out, "No hot deals.")
				return nil
			}
			return printListingsTable(out, resp.Listings)
		},
	}
}

func focusAgingCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "aging",
		Short:   "Leads and listings with no recent contact",
		Example: `  dd focus aging`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Aging(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if resp.Total == 0 {
				fmt.Fprintln(out, "No aging relationships.")
				return nil
			}
			return printFocusTable(out, resp.Items)
		},
	}
}

func focusOnboardingCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "onboarding",
		Short:   "Leads waiting on their intake form",
		Example: `  dd focus onboarding`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Onboarding(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(out, "Onboarding queue is empty.")
				return nil
			}

			tw := newTabWriter(out)
			tw.writef("ID\tNAME\tWAITING\tLATE\n")
			for _, it := range resp.Items {
				late := ""
				if it.Late {
					late = "yes"
				}
				tw.writef("%s\t%s\t%d days\t%s\n", it.Lead.ID, it.Lead.Name, it.DaysWaiting, late)
			}
			return tw.finish()
		},
	}
}

func focusSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Short:   "Pipeline counts",
		Example: `  dd focus summary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newClient().Summary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, s)
			}

			tw := newTabWriter(out)
			tw.writef("Leads:\t%d (%d active)\n", s.LeadsTotal, s.LeadsActive)
			tw.writef("Listings:\t%d (%d hot)\n", s.ListingsTotal, s.ListingsHot)
			tw.writef("Feedback pending:\t%d\n", s.FeedbackPending)
			tw.writef("Open tasks:\t%d\n", s.TasksOpen)
			tw.writef("Onboarding:\t%d\n", s.OnboardingQueue)
			return tw.finish()
		},
	}
}
