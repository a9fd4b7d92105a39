// ABOUTME: Product CRUD endpoints
// ABOUTME: Listing with search and pagination, create/update/delete, low-stock query

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const productsPath = "/products"

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	BrandID    string  `json:"brandId"`
	CategoryID string  `json:"categoryId"`
}

// UpdateProductRequest is the payload for updating a product. Nil fields are
// omitted so the backend only touches what the caller set.
type UpdateProductRequest struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Stock      *int     `json:"stock,omitempty"`
	BrandID    *string  `json:"brandId,omitempty"`
	CategoryID *string  `json:"categoryId,omitempty"`
}

// Products lists products matching the given search and pagination params.
func (c *Client) Products(ctx context.Context, params ListParams) ([]models.Product, *models.Metadata, error) {
	return doEnvelope[[]models.Product](ctx, c, http.MethodGet, productsPath+params.query(), nil)
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	product, _, err := doEnvelope[models.Product](ctx, c, http.MethodPost, productsPath, req)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	product, _, err := doEnvelope[models.Product](ctx, c, http.MethodPut, productsPath+"/"+id, req)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, _, err := doEnvelope[struct{}](ctx, c, http.MethodDelete, productsPath+"/"+id, nil)
	return err
}

// LowStockProducts lists products at or below the given stock threshold.
func (c *Client) LowStockProducts(ctx context.Context, threshold int) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/low-stock?threshold=%d", productsPath, threshold)
	products, _, err := doEnvelope[[]models.Product](ctx, c, http.MethodGet, endpoint, nil)
	return products, err
}
