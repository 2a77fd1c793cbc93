package apiclient

import (
	"context"
	"net/http"

	"github.com/kraviona/seller-console/internal/models"
)

type messagesResponse struct {
	envelope
	Messages []models.Message `json:"messages"`
}

// ListMessages fetches the inbound contact messages. The endpoint is
// anonymous on the remote side.
func (c *Client) ListMessages(ctx context.Context) ([]models.Message, error) {
	var resp messagesResponse
	if err := c.do(ctx, http.MethodGet, "/messages", nil, false, &resp); err != nil {
		return nil, err
	}
	if err := resp.ok(); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}
