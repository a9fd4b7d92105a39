// ABOUTME: Tests for the session lifecycle
// ABOUTME: Login/logout/initialize flows against a fake backend

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/config"
	"github.com/jagatix-comp/petshop-pos/internal/credentials"
	"github.com/jagatix-comp/petshop-pos/internal/models"
)

func mintToken(t *testing.T, expIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(expIn).Unix()}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// backend is a scriptable stand-in for the pet-shop API.
type backend struct {
	t *testing.T

	loginStatus   int // zero means 200
	meStatus      int
	refreshStatus int

	accessToken string
	profile     models.User

	loginHits, meHits, refreshHits, logoutHits int32
}

func newBackend(t *testing.T, accessToken string) *backend {
	return &backend{
		t:           t,
		accessToken: accessToken,
		profile: models.User{
			ID:       "user-1",
			Name:     "Budi Santoso",
			Username: "budi",
			Role:     models.RoleAdmin,
			Tenant:   models.Tenant{ID: "tenant-1", Name: "Petshop Central"},
		},
	}
}

func (b *backend) writeEnvelope(w http.ResponseWriter, statusCode int, data any) {
	status := "success"
	if statusCode < 200 || statusCode > 299 {
		status = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": http.StatusText(statusCode),
		"data":    data,
	})
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	statusOr := func(override int) int {
		if override != 0 {
			return override
		}
		return http.StatusOK
	}

	switch r.URL.Path {
	case "/auth/login":
		atomic.AddInt32(&b.loginHits, 1)
		if s := statusOr(b.loginStatus); s != http.StatusOK {
			b.writeEnvelope(w, s, nil)
			return
		}
		b.writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": b.accessToken})
	case "/auth/me":
		atomic.AddInt32(&b.meHits, 1)
		if s := statusOr(b.meStatus); s != http.StatusOK {
			b.writeEnvelope(w, s, nil)
			return
		}
		b.writeEnvelope(w, http.StatusOK, b.profile)
	case "/auth/refresh":
		atomic.AddInt32(&b.refreshHits, 1)
		if s := statusOr(b.refreshStatus); s != http.StatusOK {
			b.writeEnvelope(w, s, nil)
			return
		}
		b.writeEnvelope(w, http.StatusOK, map[string]string{"accessToken": b.accessToken})
	case "/auth/logout":
		atomic.AddInt32(&b.logoutHits, 1)
		b.writeEnvelope(w, http.StatusOK, nil)
	default:
		b.t.Errorf("unexpected path %s", r.URL.Path)
		http.NotFound(w, r)
	}
}

func newTestManager(t *testing.T, b *backend) (*Manager, *credentials.MemStore) {
	t.Helper()
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:      server.URL,
		TenantName:      "petshop-central",
		RequestTimeout:  5 * time.Second,
		RefreshInterval: time.Hour, // keep the background loop quiet in tests
	}
	store := credentials.NewMemStore()
	client := api.New(cfg, store)
	m := NewManager(cfg, client, store)
	t.Cleanup(m.Shutdown)
	return m, store
}

func TestLoginSuccess(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, m.IsAuthenticated())
	user := m.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "Budi Santoso", user.Name)

	creds, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, b.accessToken, creds.AccessToken)
	require.Equal(t, "user-1", creds.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	b.loginStatus = http.StatusUnauthorized
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "wrong")
	require.NoError(t, err, "rejected credentials are a business negative, not an error")
	require.False(t, ok)

	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestLoginSurvivesProfileFetchFailure(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	b.meStatus = http.StatusInternalServerError
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, m.IsAuthenticated())
	user := m.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "local-budi", user.ID, "should fall back to the minimal profile")
	require.Equal(t, "budi", user.Username)

	creds, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, creds, "token must be persisted even without the profile")
}

func TestLogoutIsIdempotent(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	m.Logout(context.Background())
	m.Logout(context.Background())

	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestInitializeRestoresStoredSession(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	stored := &models.User{ID: "user-1", Name: "Cached Name", Username: "budi", Role: models.RoleAdmin}
	require.NoError(t, store.Save(b.accessToken, stored))

	require.NoError(t, m.Initialize(context.Background()))

	require.True(t, m.IsAuthenticated())
	require.NotNil(t, m.CurrentUser())
}

func TestInitializeDiscardsExpiredToken(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	stored := &models.User{ID: "user-1", Name: "Cached Name", Username: "budi", Role: models.RoleAdmin}
	require.NoError(t, store.Save(mintToken(t, -time.Minute), stored))

	require.NoError(t, m.Initialize(context.Background()))

	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds, "expired credentials should be cleared")
}

func TestInitializeWithEmptyStore(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, _ := newTestManager(t, b)

	require.NoError(t, m.Initialize(context.Background()))
	require.False(t, m.IsAuthenticated())
}

func TestInitializeIsIdempotent(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	stored := &models.User{ID: "user-1", Name: "Cached Name", Username: "budi", Role: models.RoleAdmin}
	require.NoError(t, store.Save(b.accessToken, stored))

	require.NoError(t, m.Initialize(context.Background()))
	require.NoError(t, m.Initialize(context.Background()))
	require.True(t, m.IsAuthenticated())
}

func TestRefreshSessionSuccess(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, m.RefreshSession(context.Background()))
	require.True(t, m.IsAuthenticated())

	creds, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, int32(1), atomic.LoadInt32(&b.refreshHits))
}

func TestRefreshSessionFailureResetsState(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, store := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	b.refreshStatus = http.StatusUnauthorized

	require.False(t, m.RefreshSession(context.Background()))
	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestLoginWhileAuthenticatedResetsFirst(t *testing.T) {
	b := newBackend(t, mintToken(t, time.Hour))
	m, _ := newTestManager(t, b)

	ok, err := m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Login(context.Background(), "budi", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, m.IsAuthenticated())
	require.GreaterOrEqual(t, atomic.LoadInt32(&b.logoutHits), int32(1),
		"second login should tear the first session down")
}
