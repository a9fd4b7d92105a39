// ABOUTME: Session state container for the POS client
// ABOUTME: Login/logout/initialize lifecycle plus the background token refresh loop

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/config"
	"github.com/jagatix-comp/petshop-pos/internal/credentials"
	"github.com/jagatix-comp/petshop-pos/internal/models"
	"github.com/jagatix-comp/petshop-pos/internal/token"
)

// Manager holds the in-process authentication state, synchronized with the
// credential store. Dependencies are injected so every test can build its
// own manager against a store double.
type Manager struct {
	cfg   *config.Config
	api   *api.Client
	store credentials.Store

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	stopRefresh   context.CancelFunc
	initialized   bool
}

// NewManager wires a session manager to its API client and credential store.
// The manager registers itself for the client's session-expired signal.
func NewManager(cfg *config.Config, client *api.Client, store credentials.Store) *Manager {
	m := &Manager{
		cfg:   cfg,
		api:   client,
		store: store,
	}
	client.OnSessionExpired(m.resetLocal)
	return m
}

// Initialize restores the session from the credential store. Idempotent and
// safe to call once at startup. A stored but expired token is discarded.
// When a valid record exists the manager becomes authenticated immediately
// and refreshes the cached profile in the background; failures there are
// swallowed, a stale profile being an accepted degraded state.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return nil
	}
	m.initialized = true
	m.mu.Unlock()

	creds, err := m.store.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		return nil
	}

	if token.IsExpired(creds.AccessToken) {
		slog.Debug("Stored token expired, starting anonymous")
		if err := m.store.Clear(); err != nil {
			slog.Error("Failed to clear expired credentials", "error", err)
		}
		return nil
	}

	loopCtx := m.setAuthenticated(creds.User)
	go m.refreshProfile(loopCtx)
	return nil
}

// Login authenticates against the backend. Invalid credentials return
// (false, nil): a business negative, not a transport error. Login while
// already authenticated is an implicit full reset. On success the token is
// persisted first with a minimal synthesized profile, then replaced with the
// authoritative one; a failed profile fetch does not block the login.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, error) {
	if m.IsAuthenticated() {
		m.Logout(ctx)
	}

	accessToken, err := m.api.Login(ctx, username, password)
	if err != nil {
		if api.IsInvalidCredentials(err) {
			return false, nil
		}
		return false, err
	}

	// The profile fetch below needs the token in the store already.
	user := synthesizeUser(username)
	if err := m.store.Save(accessToken, user); err != nil {
		return false, err
	}

	if profile, err := m.api.Me(ctx); err != nil {
		slog.Warn("Profile fetch after login failed, using minimal profile", "error", err)
	} else {
		user = profile
		if err := m.store.Save(accessToken, user); err != nil {
			slog.Error("Failed to persist profile", "error", err)
		}
	}

	m.setAuthenticated(user)
	return true, nil
}

// Logout tears the session down. The server call is best effort: local
// cleanup proceeds whether or not the backend is reachable. Idempotent.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		slog.Debug("Server-side logout failed, continuing local cleanup", "error", err)
	}
	if err := m.store.Clear(); err != nil {
		slog.Error("Failed to clear credentials on logout", "error", err)
	}
	m.resetLocal()
}

// RefreshSession forces a token refresh through the single-flight
// coordinator. Never returns an error; a terminal failure resets the
// session and reports false so the caller can react.
func (m *Manager) RefreshSession(ctx context.Context) bool {
	if _, err := m.api.RefreshAccessToken(ctx); err != nil {
		slog.Warn("Session refresh failed", "error", err)
		m.resetLocal()
		return false
	}
	return true
}

// CurrentUser returns the cached profile, nil when anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a session is active. True implies
// CurrentUser is non-nil.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Shutdown stops the background refresh loop without touching credentials.
// Used on process exit; the persisted session survives for the next run.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopRefresh != nil {
		m.stopRefresh()
		m.stopRefresh = nil
	}
}

// setAuthenticated flips state to authenticated and starts the refresh loop.
// Returns the loop's context for background work tied to this session.
func (m *Manager) setAuthenticated(user *models.User) context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
	m.authenticated = true

	if m.stopRefresh != nil {
		m.stopRefresh()
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	m.stopRefresh = cancel
	go m.refreshLoop(loopCtx)
	return loopCtx
}

// resetLocal drops in-memory state and stops the refresh loop. It does not
// touch the store or the server; callers handle those.
func (m *Manager) resetLocal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.authenticated = false
	if m.stopRefresh != nil {
		m.stopRefresh()
		m.stopRefresh = nil
	}
}

// refreshLoop proactively rotates the token before it expires, decoupled
// from request-driven refresh. It routes through the same single-flight
// coordinator, so a tick racing an explicit refresh still yields one
// network call. The loop dies with its context: no post-logout refreshes.
func (m *Manager) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			creds, err := m.store.Load()
			if err != nil || creds == nil {
				continue
			}
			if !token.IsRefreshDue(creds.AccessToken) && !token.IsExpired(creds.AccessToken) {
				continue
			}

			slog.Debug("Background refresh triggered")
			refreshCtx, cancel := context.WithTimeout(ctx, m.api.Timeout())
			ok := m.RefreshSession(refreshCtx)
			cancel()
			if !ok {
				return
			}
		}
	}
}

// refreshProfile replaces the cached profile with the authoritative one.
// Best effort: any failure leaves the stale cached profile in place.
func (m *Manager) refreshProfile(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, m.api.Timeout())
	defer cancel()

	profile, err := m.api.Me(fetchCtx)
	if err != nil {
		slog.Debug("Background profile refresh failed", "error", err)
		return
	}

	m.mu.Lock()
	if m.authenticated {
		m.user = profile
	}
	m.mu.Unlock()

	if creds, err := m.store.Load(); err == nil && creds != nil {
		if err := m.store.Save(creds.AccessToken, profile); err != nil {
			slog.Error("Failed to persist refreshed profile", "error", err)
		}
	}
}

// synthesizeUser builds the minimal fallback profile used when the
// authoritative fetch fails right after login.
func synthesizeUser(username string) *models.User {
	return &models.User{
		ID:       "local-" + username,
		Name:     username,
		Username: username,
		Role:     models.RoleAdmin,
	}
}
