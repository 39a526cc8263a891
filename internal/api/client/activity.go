package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// LogResponse is the logged interaction and the entity's new score.
type LogResponse struct {
	Interaction   domain.Interaction `json:"interaction"`
	PriorityScore int                `json:"priority_score"`
}

// LogInteraction records a touchpoint against a lead or listing.
func (c *Client) LogInteraction(ctx context.Context, in *domain.Interaction) (*LogResponse, error) {
	var resp LogResponse
	if err := c.post(ctx, "/api/v1/interactions", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListInteractions returns recent interactions, optionally for one entity.
func (c *Client) ListInteractions(ctx context.Context, entityID string, limit int) ([]domain.Interaction, error) {
	q := url.Values{}
	setIf(q, "entity_id", entityID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp []domain.Interaction
	if err := c.get(ctx, "/api/v1/interactions", q, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetFeedback records a lead's response to a listing.
func (c *Client) SetFeedback(ctx context.Context, f *domain.MatchFeedback) (*domain.FeedbackView, error) {
	var view domain.FeedbackView
	if err := c.put(ctx, "/api/v1/feedback", f, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ListFeedback returns feedback with effective statuses.
func (c *Client) ListFeedback(ctx context.Context, leadID string, ignoredOnly bool) ([]domain.FeedbackView, error) {
	q := url.Values{}
	setIf(q, "lead_id", leadID)
	if ignoredOnly {
		q.Set("ignored", "true")
	}

	var resp []domain.FeedbackView
	if err := c.get(ctx, "/api/v1/feedback", q, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListTasks returns open tasks, or every task when all is set.
func (c *Client) ListTasks(ctx context.Context, all bool) ([]domain.Task, error) {
	q := url.Values{}
	if all {
		q.Set("all", "true")
	}

	var resp []domain.Task
	if err := c.get(ctx, "/api/v1/tasks", q, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateTask adds a task.
func (c *Client) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	var created domain.Task
	if err := c.post(ctx, "/api/v1/tasks", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CompleteTask marks a task done.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	return c.post(ctx, pathID("/api/v1/tasks", id)+"/complete", nil, nil)
}
