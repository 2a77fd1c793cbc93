package apiclient

import (
	"context"
	"net/http"

	"github.com/kraviona/seller-console/internal/models"
)

type CategoryPayload struct {
	CategoryName string `json:"categoryName"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	IsPublished  bool   `json:"isPublished"`
}

type categoriesResponse struct {
	envelope
	Categories []models.Category `json:"categories"`
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/seller/categories", nil, true, &resp); err != nil {
		return nil, err
	}
	if err := resp.ok(); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, p CategoryPayload) (string, error) {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/category", p, true, &resp); err != nil {
		return GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return resp.Message, err
	}
	return resp.Message, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (string, error) {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/category/"+id, nil, true, &resp); err != nil {
		return GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return resp.Message, err
	}
	return resp.Message, nil
}
