// ABOUTME: Brand CRUD endpoints
// ABOUTME: Listing with search and pagination plus create/update/delete

package api

import (
	"context"
	"net/http"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const brandsPath = "/brands"

// Brands lists brands matching the given search and pagination params.
func (c *Client) Brands(ctx context.Context, params ListParams) ([]models.Brand, *models.Metadata, error) {
	return doEnvelope[[]models.Brand](ctx, c, http.MethodGet, brandsPath+params.query(), nil)
}

// CreateBrand creates a brand with the given name.
func (c *Client) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	brand, _, err := doEnvelope[models.Brand](ctx, c, http.MethodPost, brandsPath, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// UpdateBrand renames a brand.
func (c *Client) UpdateBrand(ctx context.Context, id, name string) (*models.Brand, error) {
	brand, _, err := doEnvelope[models.Brand](ctx, c, http.MethodPut, brandsPath+"/"+id, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// DeleteBrand removes a brand.
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	_, _, err := doEnvelope[struct{}](ctx, c, http.MethodDelete, brandsPath+"/"+id, nil)
	return err
}
