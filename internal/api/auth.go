// ABOUTME: Authentication and profile endpoints
// ABOUTME: Login, refresh, logout, profile fetch/update and password rotation

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const (
	loginPath          = "/auth/login"
	refreshPath        = "/auth/refresh"
	logoutPath         = "/auth/logout"
	mePath             = "/auth/me"
	changePasswordPath = "/auth/me/change-password"
)

// Login exchanges credentials for an access token. The server additionally
// sets the HTTP-only refresh token cookie, captured by the client's jar.
// Invalid credentials surface as *APIError (see IsInvalidCredentials);
// persisting the token is the session layer's job.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	data, _, err := doEnvelope[struct {
		AccessToken string `json:"accessToken"`
	}](ctx, c, http.MethodPost, loginPath, payload)
	if err != nil {
		return "", err
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return data.AccessToken, nil
}

// Logout invalidates the server-side session. While the call is in flight
// no 401 retry may fire, so local cleanup is never raced by a refresh.
func (c *Client) Logout(ctx context.Context) error {
	c.loggingOut.Store(true)
	defer c.loggingOut.Store(false)

	if err := c.do(ctx, http.MethodPost, logoutPath, nil, nil); err != nil {
		slog.Debug("Server logout failed", "error", err)
		return err
	}
	return nil
}

// Me fetches the authoritative profile for the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	user, _, err := doEnvelope[models.User](ctx, c, http.MethodGet, mePath, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateProfile updates the current user's profile and returns the new record.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	user, _, err := doEnvelope[models.User](ctx, c, http.MethodPut, mePath, req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) error {
	payload := map[string]string{
		"oldPassword":     oldPassword,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}
	_, _, err := doEnvelope[struct{}](ctx, c, http.MethodPatch, changePasswordPath, payload)
	return err
}
