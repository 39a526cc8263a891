package client

import "context"

// Rescore recomputes every stored priority score and returns the count.
func (c *Client) Rescore(ctx context.Context) (int, error) {
	var resp struct {
		Rescored int `json:"rescored"`
	}
	if err := c.post(ctx, "/api/v1/rescore", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Rescored, nil
}

// ResetTouches zeroes weekly touch counts and returns how many rows changed.
func (c *Client) ResetTouches(ctx context.Context) (int64, error) {
	var resp struct {
		Reset int64 `json:"reset"`
	}
	if err := c.post(ctx, "/api/v1/touches/reset", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Reset, nil
}

// SendDigest sends the daily digest now. It reports false when there was
// nothing to send.
func (c *Client) SendDigest(ctx context.Context) (bool, error) {
	var resp struct {
		Sent bool `json:"sent"`
	}
	if err := c.post(ctx, "/api/v1/digest", nil, &resp); err != nil {
		return false, err
	}
	return resp.Sent, nil
}
