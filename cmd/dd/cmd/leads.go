package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/deal-desk/internal/api/client"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func leadsCmd() *cobra.Command {
	leadsRoot := &cobra.Command{
		Use:   "leads",
		Short: "Manage buyer leads",
	}

	leadsRoot.AddCommand(
		leadsListCmd(),
		leadsGetCmd(),
		leadsCreateCmd(),
		leadsDeleteCmd(),
	)

	return leadsRoot
}

func leadsListCmd() *cobra.Command {
	var params apiclient.ListLeadsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads with optional filters",
		Example: `  dd leads list
  dd leads list --status Active --industry "F&B" --min-spend 1000000
  dd leads list --order-by budget --limit 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListLeads(cmd.Context(), &params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Leads) == 0 {
				fmt.Fprintln(out, "No leads found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d of %d leads\n\n", len(resp.Leads), resp.Total)
			return printLeadsTable(out, resp.Leads)
		},
	}
	cmd.Flags().StringVar(&params.Status, "status", "", "status filter (Active, Cold, Dead, Paused)")
	cmd.Flags().StringVar(&params.Industry, "industry", "", "preferred industry filter")
	cmd.Flags().Float64Var(&params.MinSpend, "min-spend", 0, "minimum max-budget")
	cmd.Flags().StringVarP(&params.Search, "query", "q", "", "name search")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort order (priority, budget, date_added, name)")

	return cmd
}

func leadsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show lead details",
		Example: `  dd leads get 5f0c2d7e-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetLead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printLeadDetail(cmd.OutOrStdout(), l)
		},
	}
}

func leadsCreateCmd() *cobra.Command {
	var (
		l          domain.Lead
		industries []string
		onboarding bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a buyer lead",
		Example: `  dd leads create --name "Omar Haddad" --email omar@example.com \
    --phone "050 123 4567" --max-budget 1500000 --industry "F&B" --industry Retail`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range industries {
				l.PreferredIndustries = append(l.PreferredIndustries, domain.Industry(s))
			}
			if onboarding {
				pending := domain.OnboardingPending
				l.OnboardingStatus = &pending
			}

			created, err := newClient().CreateLead(cmd.Context(), &l)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created lead %s (score %d)\n", created.ID, created.PriorityScore)
			return nil
		},
	}
	cmd.Flags().StringVar(&l.Name, "name", "", "lead name")
	cmd.Flags().StringVar(&l.Role, "role", "", "role or title")
	cmd.Flags().StringVar(&l.Email, "email", "", "email address")
	cmd.Flags().StringVar(&l.Phone, "phone", "", "phone number")
	cmd.Flags().Float64Var(&l.MinBudget, "min-budget", 0, "minimum budget")
	cmd.Flags().Float64Var(&l.MaxBudget, "max-budget", 0, "maximum budget")
	cmd.Flags().StringArrayVar(&industries, "industry", nil, "preferred industry (repeatable)")
	cmd.Flags().StringVar((*string)(&l.Status), "status", string(domain.LeadActive), "lead status")
	cmd.Flags().StringVar(&l.Notes, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&onboarding, "onboarding", false, "mark the intake form as pending")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}

func leadsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteLead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted lead %s\n", args[0])
			return nil
		},
	}
}
