package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

func logCmd() *cobra.Command {
	var (
		kind      string
		typ       string
		notes     string
		sentiment string
	)

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Log an interaction with a lead or listing",
		Long: "Log a call, email, meeting, note, or WhatsApp message. The entity's\n" +
			"last contact date and weekly touch count advance and its score is\n" +
			"recomputed.",
		Example: `  dd log 5f0c2d7e-... --type Call --notes "wants F&B under 1.5M" --sentiment Positive
  dd log 9b1e... --kind listing --type Meeting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().LogInteraction(cmd.Context(), &domain.Interaction{
				EntityID:   args[0],
				EntityKind: domain.EntityKind(kind),
				Type:       domain.InteractionType(typ),
				Notes:      notes,
				Sentiment:  domain.Sentiment(sentiment),
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s with %s %s; priority score now %d\n",
				strings.ToLower(string(resp.Interaction.Type)), kind, args[0], resp.PriorityScore)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindLead), "entity kind (lead, listing)")
	cmd.Flags().StringVar(&typ, "type", string(domain.InteractionCall), "interaction type (Call, Email, Meeting, Note, WhatsApp)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&sentiment, "sentiment", "", "sentiment (Positive, Neutral, Negative)")

	return cmd
}

func feedbackCmd() *cobra.Command {
	feedbackRoot := &cobra.Command{
		Use:   "feedback",
		Short: "Track lead responses to shared listings",
	}

	feedbackRoot.AddCommand(feedbackSetCmd(), feedbackListCmd())
	return feedbackRoot
}

func feedbackSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <lead-id> <listing-id> <status>",
		Short: "Record Positive, Negative, or Pending feedback",
		Long: "Record a lead's response to a listing. A new status replaces the\n" +
			"previous one for the same pair.",
		Example: `  dd feedback set 5f0c... 9b1e... Pending`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := newClient().SetFeedback(cmd.Context(), &domain.MatchFeedback{
				LeadID:    args[0],
				ListingID: args[1],
				Status:    domain.FeedbackStatus(args[2]),
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), view)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Feedback for %s on %s is %s\n", view.LeadID, view.ListingID, view.Effective)
			return nil
		},
	}
}

func feedbackListCmd() *cobra.Command {
	var (
		leadID  string
		ignored bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback with effective statuses",
		Example: `  dd feedback list
  dd feedback list --ignored`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := newClient().ListFeedback(cmd.Context(), leadID, ignored)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, views)
			}
			if len(views) == 0 {
				fmt.Fprintln(out, "No feedback recorded.")
				return nil
			}
			return printFeedbackTable(out, views)
		},
	}
	cmd.Flags().StringVar(&leadID, "lead", "", "only this lead")
	cmd.Flags().BoolVar(&ignored, "ignored", false, "only pending feedback past the ignored threshold")

	return cmd
}

func interactionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history [id]",
		Short:   "Show recent interactions",
		Example: `  dd history
  dd history 5f0c2d7e-... --limit 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entityID string
			if len(args) == 1 {
				entityID = args[0]
			}
			interactions, err := newClient().ListInteractions(cmd.Context(), entityID, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, interactions)
			}
			if len(interactions) == 0 {
				fmt.Fprintln(out, "No interactions.")
				return nil
			}
			return printInteractionsTable(out, interactions)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of results")

	return cmd
}

func tasksCmd() *cobra.Command {
	tasksRoot := &cobra.Command{
		Use:   "tasks",
		Short: "Manage broker to-dos",
	}

	tasksRoot.AddCommand(tasksListCmd(), tasksAddCmd(), tasksDoneCmd())
	return tasksRoot
}

func tasksListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := newClient().ListTasks(cmd.Context(), all)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, tasks)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}
			return printTasksTable(out, tasks)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include completed tasks")

	return cmd
}

func tasksAddCmd() *cobra.Command {
	var (
		due      string
		priority string
		related  string
	)

	cmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Add a task",
		Example: `  dd tasks add "Send NDA to Marina Cafe seller" --due 2026-03-12 --priority High --related 9b1e...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Title:           args[0],
				Priority:        domain.TaskPriority(priority),
				RelatedEntityID: related,
			}
			if due != "" {
				d, err := time.ParseInLocation(dateFormat, due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --due %q: want YYYY-MM-DD", due)
				}
				t.DueDate = d
			}

			created, err := newClient().CreateTask(cmd.Context(), t)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s due %s\n", created.ID, created.DueDate.Format(dateFormat))
			return nil
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.TaskNormal), "priority (High, Normal)")
	cmd.Flags().StringVar(&related, "related", "", "related lead or listing id")

	return cmd
}

func tasksDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().CompleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", args[0])
			return nil
		},
	}
}
