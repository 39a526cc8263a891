package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Stages   []string
	Industry string
	Type     string
	MinPrice float64
	MaxPrice float64
	Search   string
	Limit    int
	Offset   int
	OrderBy  string
}

func (p *ListListingsParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	for _, s := range p.Stages {
		q.Add("stage", s)
	}
	setIf(q, "industry", p.Industry)
	setIf(q, "type", p.Type)
	setIf(q, "q", p.Search)
	setIf(q, "order_by", p.OrderBy)
	if p.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	setPage(q, p.Limit, p.Offset)
	return q
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(ctx context.Context, params *ListListingsParams) (*ListingsResponse, error) {
	var resp ListingsResponse
	if err := c.get(ctx, "/api/v1/listings", params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, pathID("/api/v1/listings", id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateListing creates a listing and returns it with its ID and score.
func (c *Client) CreateListing(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	var created domain.Listing
	if err := c.post(ctx, "/api/v1/listings", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateListing replaces a listing's editable fields.
func (c *Client) UpdateListing(ctx context.Context, id string, l *domain.Listing) (*domain.Listing, error) {
	var updated domain.Listing
	if err := c.put(ctx, pathID("/api/v1/listings", id), l, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.del(ctx, pathID("/api/v1/listings", id))
}
