package apiclient

import (
	"context"
	"net/http"

	"github.com/kraviona/seller-console/internal/models"
)

// ProductPayload is the create/update body. The category travels as a
// category name, not an id; that is what the remote API takes.
type ProductPayload struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Thumbnail   string                `json:"thumbnail"`
	Images      []models.ProductImage `json:"images"`
	Price       float64               `json:"price"`
	Discount    float64               `json:"discount"`
	Stock       int                   `json:"stock"`
	Status      string                `json:"status"`
	Category    string                `json:"category"`
	IsPublished bool                  `json:"isPublished"`
}

type productsResponse struct {
	envelope
	Products []models.Product `json:"products"`
}

type productResponse struct {
	envelope
	Product models.Product `json:"product"`
}

func (c *Client) ListSellerProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/seller/products", nil, true, &resp); err != nil {
		return nil, err
	}
	if err := resp.ok(); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) ListPublicProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, false, &resp); err != nil {
		return nil, err
	}
	if err := resp.ok(); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) ProductByID(ctx context.Context, id string) (models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodGet, "/product-id/"+id, nil, true, &resp); err != nil {
		return models.Product{}, err
	}
	if err := resp.ok(); err != nil {
		return models.Product{}, err
	}
	return resp.Product, nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodGet, "/product/"+slug, nil, false, &resp); err != nil {
		return models.Product{}, err
	}
	if err := resp.ok(); err != nil {
		return models.Product{}, err
	}
	return resp.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, p ProductPayload) (string, error) {
	var resp envelope
	if err := c.do(ctx, http.MethodPost, "/product", p, true, &resp); err != nil {
		return GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return resp.Message, err
	}
	return resp.Message, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p ProductPayload) (string, error) {
	var resp envelope
	if err := c.do(ctx, http.MethodPut, "/product/"+id, p, true, &resp); err != nil {
		return GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return resp.Message, err
	}
	return resp.Message, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (string, error) {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/product/"+id, nil, true, &resp); err != nil {
		return GenericFailure, err
	}
	if err := resp.ok(); err != nil {
		return resp.Message, err
	}
	return resp.Message, nil
}
