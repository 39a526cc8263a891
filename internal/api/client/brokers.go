package client

import (
	"context"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// ListBrokers returns every partner broker, most deals closed first.
func (c *Client) ListBrokers(ctx context.Context) ([]domain.Broker, error) {
	var resp []domain.Broker
	if err := c.get(ctx, "/api/v1/brokers", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateBroker adds a partner broker.
func (c *Client) CreateBroker(ctx context.Context, b *domain.Broker) (*domain.Broker, error) {
	var created domain.Broker
	if err := c.post(ctx, "/api/v1/brokers", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
