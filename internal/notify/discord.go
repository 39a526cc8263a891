package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/deal-desk/internal/metrics"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

const (
	colorBlue   = 0x3498DB // summary
	colorGreen  = 0x2ECC71 // focus
	colorOrange = 0xE67E22 // hot deals
	colorRed    = 0xE74C3C // aging, ignored, late onboarding

	// Discord limits, counted in characters.
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFields      = 25
	maxDescription = 4096
	maxEmbedChars  = 6000 // all embeds of one message together

	// room kept for the "+N more" line when a section is cut
	moreReserve = 16
)

type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
	limiter    *rate.Limiter
	printer    *message.Printer
}

// NewDiscordNotifier creates a new DiscordNotifier. Posts are spaced at
// least two seconds apart unless WithRateLimit says otherwise.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		printer:    message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithUsername overrides the webhook's display name.
func WithUsername(name string) DiscordOption {
	return func(d *DiscordNotifier) {
		d.username = name
	}
}

// WithRateLimit sets the minimum spacing between webhook posts. A
// non-positive interval disables throttling.
func WithRateLimit(every time.Duration) DiscordOption {
	return func(d *DiscordNotifier) {
		if every <= 0 {
			d.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		d.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Content  string         `json:"content,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendDigest posts the digest as one message with an embed per section.
// Empty sections are left out.
func (d *DiscordNotifier) SendDigest(ctx context.Context, digest *Digest) error {
	payload := discordWebhookPayload{
		Username: d.username,
		Content:  "Daily focus for " + digest.Date.Format("Mon 2 Jan 2006"),
		Embeds:   d.buildEmbeds(digest),
	}
	return d.post(ctx, payload)
}

// section is one embed before it is fitted into the message budget. A
// section carries either fields or description lines.
type section struct {
	title  string
	color  int
	fields []discordEmbedField
	lines  []string
}

func (d *DiscordNotifier) buildEmbeds(digest *Digest) []discordEmbed {
	sections := d.sections(digest)
	budgets := allocate(sections, maxEmbedChars)

	embeds := make([]discordEmbed, len(sections))
	for i := range sections {
		embeds[i] = sections[i].render(budgets[i])
	}
	return embeds
}

func (d *DiscordNotifier) sections(digest *Digest) []section {
	s := digest.Summary
	out := []section{{
		title: "Pipeline",
		color: colorBlue,
		fields: []discordEmbedField{
			{Name: "Active leads", Value: fmt.Sprintf("%d / %d", s.LeadsActive, s.LeadsTotal), Inline: true},
			{Name: "Hot listings", Value: fmt.Sprintf("%d / %d", s.ListingsHot, s.ListingsTotal), Inline: true},
			{Name: "Open tasks", Value: fmt.Sprintf("%d", s.TasksOpen), Inline: true},
			{Name: "Awaiting feedback", Value: fmt.Sprintf("%d", s.FeedbackPending), Inline: true},
			{Name: "Onboarding queue", Value: fmt.Sprintf("%d", s.OnboardingQueue), Inline: true},
		},
	}}

	if len(digest.Focus) > 0 {
		fields := make([]discordEmbedField, 0, len(digest.Focus))
		for i := range digest.Focus {
			it := &digest.Focus[i]
			fields = append(fields, field(
				fmt.Sprintf("%s: %s", it.Type, it.Name()),
				fmt.Sprintf("Priority %d, touches %d/%d", it.PriorityScore(), it.TouchCountWeek(), it.Cap),
				false,
			))
		}
		out = append(out, section{title: "Today's focus", color: colorGreen, fields: fields})
	}

	if len(digest.HotDeals) > 0 {
		fields := make([]discordEmbedField, 0, len(digest.HotDeals))
		for i := range digest.HotDeals {
			l := &digest.HotDeals[i]
			fields = append(fields, field(l.Title, fmt.Sprintf("%s, %s", l.Stage, d.money(l.AskingPrice)), true))
		}
		out = append(out, section{title: "Hot deals", color: colorOrange, fields: fields})
	}

	if len(digest.Aging) > 0 {
		lines := make([]string, 0, len(digest.Aging))
		for i := range digest.Aging {
			it := &digest.Aging[i]
			lines = append(lines, line(fmt.Sprintf("%s %s, last contact %s",
				it.Type, it.Name(), lastContact(it.LastContactAt()))))
		}
		out = append(out, section{title: "Going cold", color: colorRed, lines: lines})
	}

	if len(digest.Ignored) > 0 {
		lines := make([]string, 0, len(digest.Ignored))
		for i := range digest.Ignored {
			f := &digest.Ignored[i]
			lines = append(lines, line(fmt.Sprintf("%s has not answered on %s since %s",
				digest.Label(f.LeadID), digest.Label(f.ListingID), f.Timestamp.Format("2 Jan 15:04"))))
		}
		out = append(out, section{title: "No response", color: colorRed, lines: lines})
	}

	if late := lateOnboarding(digest.Onboarding); len(late) > 0 {
		lines := make([]string, 0, len(late))
		for _, o := range late {
			lines = append(lines, line(fmt.Sprintf("%s, waiting %d days", o.Lead.Name, o.DaysWaiting)))
		}
		out = append(out, section{title: "Onboarding overdue", color: colorRed, lines: lines})
	}

	return out
}

func field(name, value string, inline bool) discordEmbedField {
	return discordEmbedField{
		Name:   truncate(name, maxFieldName),
		Value:  truncate(value, maxFieldValue),
		Inline: inline,
	}
}

// line caps a single description line so one long name cannot eat a
// whole section.
func line(s string) string {
	return truncate(s, maxFieldName)
}

// size is the section's character count with nothing cut.
func (s *section) size() int {
	n := chars(s.title)
	for _, f := range s.fields {
		n += chars(f.Name) + chars(f.Value)
	}
	return n + s.linesSize()
}

func (s *section) linesSize() int {
	n := 0
	for i, l := range s.lines {
		if i > 0 {
			n++
		}
		n += chars(l)
	}
	return n
}

func (s *section) fits(budget int) bool {
	return s.size() <= budget && len(s.fields) <= maxFields && s.linesSize() <= maxDescription
}

// render builds the embed within budget characters. Fields and lines that
// do not fit are dropped from the tail and counted in a "+N more" line.
func (s *section) render(budget int) discordEmbed {
	e := discordEmbed{Title: s.title, Color: s.color}
	if s.fits(budget) {
		e.Fields = s.fields
		e.Description = strings.Join(s.lines, "\n")
		return e
	}

	left := budget - chars(s.title) - moreReserve
	dropped := 0

	for i, f := range s.fields {
		n := chars(f.Name) + chars(f.Value)
		if len(e.Fields) == maxFields || n > left {
			dropped += len(s.fields) - i
			break
		}
		e.Fields = append(e.Fields, f)
		left -= n
	}

	left = min(left, maxDescription-moreReserve)
	kept := make([]string, 0, len(s.lines))
	for i, l := range s.lines {
		n := chars(l)
		if len(kept) > 0 {
			n++
		}
		if n > left {
			dropped += len(s.lines) - i
			break
		}
		kept = append(kept, l)
		left -= n
	}
	if dropped > 0 {
		kept = append(kept, fmt.Sprintf("+%d more", dropped))
	}
	e.Description = strings.Join(kept, "\n")
	return e
}

// allocate splits total characters across sections. Smaller sections are
// served first and whatever they leave is shared by the larger ones.
func allocate(sections []section, total int) []int {
	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return sections[a].size() - sections[b].size()
	})

	budgets := make([]int, len(sections))
	left := total
	for i, idx := range order {
		share := left / (len(order) - i)
		budgets[idx] = min(sections[idx].size(), share)
		left -= budgets[idx]
	}
	return budgets
}

func (d *DiscordNotifier) money(v float64) string {
	return d.printer.Sprintf("AED %.0f", v)
}

func lateOnboarding(items []domain.OnboardingItem) []domain.OnboardingItem {
	late := make([]domain.OnboardingItem, 0, len(items))
	for _, o := range items {
		if o.Late {
			late = append(late, o)
		}
	}
	return late
}

func lastContact(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format("2 Jan 2006")
}

func chars(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate shortens s to at most n characters, marking the cut with "...".
// It never splits a multi-byte character.
func truncate(s string, n int) string {
	if chars(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for discord rate limiter: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
