// ABOUTME: User administration endpoints
// ABOUTME: Account listing and create/update/delete for the admin panel

package api

import (
	"context"
	"net/http"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const usersPath = "/users"

// CreateUserRequest is the payload for creating an account. TenantID is
// required for admin accounts; super_admin accounts span tenants.
type CreateUserRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber"`
	Role            string `json:"role"`
	TenantID        string `json:"tenantID,omitempty"`
}

// UpdateUserRequest is the payload for updating an account. Nil fields are
// omitted; password is only rotated when set.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Role        *string `json:"role,omitempty"`
	Password    *string `json:"password,omitempty"`
	TenantID    *string `json:"tenantID,omitempty"`
}

// Users lists accounts matching the given search and pagination params.
func (c *Client) Users(ctx context.Context, params ListParams) ([]models.User, *models.Metadata, error) {
	return doEnvelope[[]models.User](ctx, c, http.MethodGet, usersPath+params.query(), nil)
}

// CreateUser creates an account and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user, _, err := doEnvelope[models.User](ctx, c, http.MethodPost, usersPath, req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to an account.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	user, _, err := doEnvelope[models.User](ctx, c, http.MethodPut, usersPath+"/"+id, req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, _, err := doEnvelope[struct{}](ctx, c, http.MethodDelete, usersPath+"/"+id, nil)
	return err
}
