package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	apiclient "github.com/donaldgifford/deal-desk/internal/api/client"
	"github.com/donaldgifford/deal-desk/pkg/contact"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

const dateFormat = "2006-01-02"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printFocusTable(w io.Writer, items []domain.FocusItem) error {
	tw := newTabWriter(w)
	tw.writef("#\tTYPE\tNAME\tSCORE\tTOUCHES\tLAST CONTACT\tID\n")
	for i := range items {
		it := &items[i]
		tw.writef("%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			i+1,
			it.Type,
			truncate(it.Name(), 40),
			it.PriorityScore(),
			touches(it.TouchCountWeek(), it.Cap),
			formatDate(it.LastContactAt()),
			it.ID(),
		)
	}
	return tw.finish()
}

func printLeadsTable(w io.Writer, leads []domain.Lead) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBUDGET\tINDUSTRIES\tSTATUS\tSCORE\tLAST CONTACT\n")
	for i := range leads {
		l := &leads[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			l.ID,
			truncate(l.Name, 30),
			budget(l.MinBudget, l.MaxBudget),
			joinIndustries(l.PreferredIndustries),
			l.Status,
			l.PriorityScore,
			formatDate(l.LastContactAt),
		)
	}
	return tw.finish()
}

func printLeadDetail(w io.Writer, l *domain.Lead) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Name:\t%s\n", l.Name)
	if l.Role != "" {
		tw.writef("Role:\t%s\n", l.Role)
	}
	if l.Email != "" {
		tw.writef("Email:\t%s\n", l.Email)
	}
	if l.Phone != "" {
		tw.writef("Phone:\t%s\n", l.Phone)
		if link := contact.WhatsAppLink(l.Phone); link != "" {
			tw.writef("WhatsApp:\t%s\n", link)
		}
	}
	tw.writef("Budget:\t%s\n", budget(l.MinBudget, l.MaxBudget))
	tw.writef("Industries:\t%s\n", joinIndustries(l.PreferredIndustries))
	tw.writef("Status:\t%s\n", l.Status)
	if l.OnboardingStatus != nil {
		tw.writef("Onboarding:\t%s\n", *l.OnboardingStatus)
	}
	tw.writef("Added:\t%s\n", l.DateAdded.Format(dateFormat))
	tw.writef("Last Contact:\t%s\n", formatDate(l.LastContactAt))
	tw.writef("Touches:\t%d this week\n", l.TouchCountWeek)
	tw.writef("Score:\t%d/100\n", l.PriorityScore)
	if l.Notes != "" {
		tw.writef("Notes:\t%s\n", l.Notes)
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tINDUSTRY\tPRICE\tROI\tSTAGE\tSCORE\tLAST CONTACT\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%.0f%%\t%s\t%d\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.Industry,
			money(l.AskingPrice),
			l.ROI()*100,
			l.Stage,
			l.PriorityScore,
			formatDate(l.LastContactAt),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	if l.Type != "" {
		tw.writef("Type:\t%s\n", l.Type)
	}
	tw.writef("Industry:\t%s\n", l.Industry)
	if l.Location != "" {
		tw.writef("Location:\t%s\n", l.Location)
	}
	tw.writef("Asking:\t%s\n", money(l.AskingPrice))
	tw.writef("Revenue:\t%s\n", money(l.Revenue))
	tw.writef("EBITDA:\t%s\n", money(l.EBITDA))
	tw.writef("Cashflow:\t%s (ROI %.1f%%)\n", money(l.Cashflow), l.ROI()*100)
	tw.writef("Stage:\t%s\n", l.Stage)
	if l.SellerName != "" {
		tw.writef("Seller:\t%s %s\n", l.SellerName, l.SellerContact)
	}
	tw.writef("Last Contact:\t%s\n", formatDate(l.LastContactAt))
	tw.writef("Touches:\t%d this week\n", l.TouchCountWeek)
	tw.writef("Score:\t%d/100\n", l.PriorityScore)
	return tw.finish()
}

func printMatchesTable(w io.Writer, resp *apiclient.MatchesResponse) error {
	tw := newTabWriter(w)
	tw.writef("TIER\tNAME\tDETAIL\tID\n")
	for i := range resp.Matches {
		m := &resp.Matches[i]
		switch {
		case m.Listing != nil:
			tw.writef("%s\t%s\t%s %s\t%s\n",
				m.Tier, truncate(m.Listing.Title, 40), m.Listing.Industry, money(m.Listing.AskingPrice), m.Listing.ID)
		case m.Lead != nil:
			tw.writef("%s\t%s\tbudget %s\t%s\n",
				m.Tier, truncate(m.Lead.Name, 40), money(m.Lead.MaxBudget), m.Lead.ID)
		}
	}
	return tw.finish()
}

func printInteractionsTable(w io.Writer, interactions []domain.Interaction) error {
	tw := newTabWriter(w)
	tw.writef("DATE\tKIND\tENTITY\tTYPE\tSENTIMENT\tNOTES\n")
	for i := range interactions {
		in := &interactions[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			in.Date.Format("2006-01-02 15:04"),
			in.EntityKind,
			in.EntityID,
			in.Type,
			dash(string(in.Sentiment)),
			truncate(in.Notes, 50),
		)
	}
	return tw.finish()
}

func printFeedbackTable(w io.Writer, views []domain.FeedbackView) error {
	tw := newTabWriter(w)
	tw.writef("LEAD\tLISTING\tSTATUS\tSINCE\n")
	for i := range views {
		v := &views[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			v.LeadID, v.ListingID, v.Effective, v.Timestamp.Format(dateFormat))
	}
	return tw.finish()
}

func printBrokersTable(w io.Writer, brokers []domain.Broker) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tFIRM\tDEALS\tFEE\tEMAIL\n")
	for i := range brokers {
		b := &brokers[i]
		tw.writef("%s\t%s\t%s\t%d\t%.1f%%\t%s\n",
			b.ID, truncate(b.Name, 30), dash(truncate(b.Firm, 30)), b.DealsClosed, b.ReferralFee, dash(b.Email))
	}
	return tw.finish()
}

func printTasksTable(w io.Writer, tasks []domain.Task) error {
	tw := newTabWriter(w)
	tw.writef("ID\tDONE\tDUE\tPRIORITY\tTITLE\tRELATED\n")
	for i := range tasks {
		t := &tasks[i]
		done := " "
		if t.Completed {
			done = "x"
		}
		tw.writef("%s\t[%s]\t%s\t%s\t%s\t%s\n",
			t.ID, done, t.DueDate.Format(dateFormat), t.Priority, truncate(t.Title, 50), dash(t.RelatedEntityID))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to maxLen characters without splitting a multi-byte
// character.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(dateFormat)
}

func touches(n, limit int) string {
	if limit == 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d/%d", n, limit)
}

func money(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.2fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.0fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func budget(lo, hi float64) string {
	if lo > 0 {
		return money(lo) + "-" + money(hi)
	}
	return "up to " + money(hi)
}

func joinIndustries(in []domain.Industry) string {
	if len(in) == 0 {
		return "-"
	}
	s := make([]string, len(in))
	for i, v := range in {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
