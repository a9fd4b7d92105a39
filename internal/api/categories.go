// ABOUTME: Category CRUD endpoints
// ABOUTME: Listing with search and pagination plus create/update/delete

package api

import (
	"context"
	"net/http"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const categoriesPath = "/categories"

// Categories lists categories matching the given search and pagination params.
func (c *Client) Categories(ctx context.Context, params ListParams) ([]models.Category, *models.Metadata, error) {
	return doEnvelope[[]models.Category](ctx, c, http.MethodGet, categoriesPath+params.query(), nil)
}

// CreateCategory creates a category with the given name.
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category, _, err := doEnvelope[models.Category](ctx, c, http.MethodPost, categoriesPath, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	category, _, err := doEnvelope[models.Category](ctx, c, http.MethodPut, categoriesPath+"/"+id, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, _, err := doEnvelope[struct{}](ctx, c, http.MethodDelete, categoriesPath+"/"+id, nil)
	return err
}
