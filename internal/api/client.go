// ABOUTME: HTTP request executor for the pet-shop backend API
// ABOUTME: Attaches tenant and bearer headers, refreshes the token and retries once on 401

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jagatix-comp/petshop-pos/internal/config"
	"github.com/jagatix-comp/petshop-pos/internal/credentials"
	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const statusSuccess = "success"

// refreshKey is the single singleflight key: one refresh in flight, ever.
const refreshKey = "refresh"

// Client talks to the pet-shop backend. Every request carries the tenant
// header and, when the credential store holds a token, a bearer token.
// A 401 on a protected endpoint triggers one refresh-and-retry cycle.
type Client struct {
	baseURL    string
	tenant     string
	store      credentials.Store
	httpClient *http.Client

	refreshGroup singleflight.Group
	loggingOut   atomic.Bool

	// onSessionExpired is invoked after a terminal auth failure has cleared
	// the credential store. Set once before issuing requests.
	onSessionExpired func()
}

// New creates a client for the configured backend. The cookie jar holds the
// HTTP-only refresh token cookie the server sets on login.
func New(cfg *config.Config, store credentials.Store) *Client {
	jar, _ := cookiejar.New(nil) // cookiejar.New(nil) cannot fail
	return &Client{
		baseURL: cfg.APIBaseURL,
		tenant:  cfg.TenantName,
		store:   store,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Jar:     jar,
		},
	}
}

// OnSessionExpired registers the callback fired when the session terminates
// due to an unrecoverable 401. This is the single place session termination
// is signalled to the UI layer.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// do executes one API call and decodes the JSON body into out (when non-nil).
// Protected endpoints get exactly one refresh-and-retry on 401; everything
// else fails straight through as *APIError.
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.retryable(endpoint) {
		resp.Body.Close()

		if _, err := c.RefreshAccessToken(ctx); err != nil {
			c.expireSession()
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}

		slog.Debug("Retrying request with refreshed token", "endpoint", endpoint)
		resp, err = c.send(ctx, method, endpoint, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			// The fresh token was rejected too. No third attempt.
			apiErr := c.errorFromResponse(resp)
			resp.Body.Close()
			c.expireSession()
			return fmt.Errorf("%w: %v", ErrSessionExpired, apiErr)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// send builds headers from current state and issues a single HTTP call.
// Headers are rebuilt per attempt so a retry picks up the refreshed token.
func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-tenant-name", c.tenant)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if creds, err := c.store.Load(); err == nil && creds != nil {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	return resp, nil
}

// retryable reports whether a 401 on this endpoint may trigger the
// refresh-and-retry cycle. Login and refresh never retry, and a logout in
// progress suppresses retries so local cleanup is not raced.
func (c *Client) retryable(endpoint string) bool {
	path := endpoint
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == loginPath || path == refreshPath {
		return false
	}
	return !c.loggingOut.Load()
}

// RefreshAccessToken rotates the access token via /auth/refresh. Concurrent
// callers share a single in-flight network call; all observe the same new
// token or the same failure. On failure the stored credentials are cleared
// and the error is terminal.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	v, err, shared := c.refreshGroup.Do(refreshKey, func() (any, error) {
		newToken, err := c.requestRefresh(ctx)
		if err != nil {
			slog.Warn("Token refresh failed", "error", err)
			if clearErr := c.store.Clear(); clearErr != nil {
				slog.Error("Failed to clear credentials after refresh failure", "error", clearErr)
			}
			return "", err
		}

		// Replace the token wholesale, keeping the cached profile.
		creds, loadErr := c.store.Load()
		if loadErr == nil && creds != nil {
			if saveErr := c.store.Save(newToken, creds.User); saveErr != nil {
				slog.Error("Failed to persist refreshed token", "error", saveErr)
			}
		}

		slog.Debug("Access token refreshed")
		return newToken, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		slog.Debug("Refresh result shared with concurrent caller")
	}
	return v.(string), nil
}

// requestRefresh performs the raw refresh call. It bypasses do so a 401 here
// can never recurse into another refresh.
func (c *Client) requestRefresh(ctx context.Context) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, refreshPath, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.errorFromResponse(resp)
	}

	var env envelope[struct {
		AccessToken string `json:"accessToken"`
	}]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("invalid refresh response: %w", err)
	}
	if env.Status != statusSuccess || env.Data.AccessToken == "" {
		return "", fmt.Errorf("refresh rejected: %s", env.Message)
	}
	return env.Data.AccessToken, nil
}

// expireSession clears local credentials and signals the UI layer.
func (c *Client) expireSession() {
	if err := c.store.Clear(); err != nil {
		slog.Error("Failed to clear credentials on session expiry", "error", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot reach backend at %s: %w", c.baseURL, err)
}

// errorFromResponse turns a non-2xx response into an *APIError, carrying the
// backend's message when the body is parseable.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Request.Header.Get("X-Request-ID"),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var env envelope[json.RawMessage]
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil {
			apiErr.Status = env.Status
			apiErr.Message = env.Message
		}
	}
	return apiErr
}

// envelope is the backend's uniform response wrapper.
type envelope[T any] struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Data     T                `json:"data"`
	Metadata *models.Metadata `json:"metadata"`
}

// doEnvelope issues a request and unwraps the standard response envelope.
func doEnvelope[T any](ctx context.Context, c *Client, method, endpoint string, payload any) (T, *models.Metadata, error) {
	var zero T
	var env envelope[T]
	if err := c.do(ctx, method, endpoint, payload, &env); err != nil {
		return zero, nil, err
	}
	if env.Status != statusSuccess {
		return zero, nil, fmt.Errorf("backend reported status %q: %s", env.Status, env.Message)
	}
	return env.Data, env.Metadata, nil
}

// Timeout exposes the configured per-request timeout, used by the UI layer
// to size its own deadlines.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}
