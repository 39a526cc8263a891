package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// LeadsResponse wraps a paginated leads response.
type LeadsResponse struct {
	Leads  []domain.Lead `json:"leads"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListLeadsParams defines query parameters for lead queries.
type ListLeadsParams struct {
	Status   string
	Industry string
	MinSpend float64
	Search   string
	Limit    int
	Offset   int
	OrderBy  string
}

func (p *ListLeadsParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	setIf(q, "status", p.Status)
	setIf(q, "industry", p.Industry)
	setIf(q, "q", p.Search)
	setIf(q, "order_by", p.OrderBy)
	if p.MinSpend > 0 {
		q.Set("min_spend", strconv.FormatFloat(p.MinSpend, 'f', -1, 64))
	}
	setPage(q, p.Limit, p.Offset)
	return q
}

// ListLeads returns leads matching the given parameters.
func (c *Client) ListLeads(ctx context.Context, params *ListLeadsParams) (*LeadsResponse, error) {
	var resp LeadsResponse
	if err := c.get(ctx, "/api/v1/leads", params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLead returns a single lead by ID.
func (c *Client) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	var l domain.Lead
	if err := c.get(ctx, pathID("/api/v1/leads", id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLead creates a lead and returns it with its ID and score.
func (c *Client) CreateLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	var created domain.Lead
	if err := c.post(ctx, "/api/v1/leads", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLead replaces a lead's editable fields.
func (c *Client) UpdateLead(ctx context.Context, id string, l *domain.Lead) (*domain.Lead, error) {
	var updated domain.Lead
	if err := c.put(ctx, pathID("/api/v1/leads", id), l, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.del(ctx, pathID("/api/v1/leads", id))
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setPage(q url.Values, limit, offset int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
}
