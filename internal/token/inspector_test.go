// ABOUTME: Tests for token expiry classification
// ABOUTME: Covers the refresh window boundaries and undecodable-token handling

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signedToken builds a real JWT with the given exp offset. The signing key is
// irrelevant; inspection never verifies signatures.
func signedToken(t *testing.T, expIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(expIn).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// tokenWithoutExp builds a JWT carrying no exp claim at all.
func tokenWithoutExp(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired one second ago", signedToken(t, -time.Second), true},
		{"expires in an hour", signedToken(t, time.Hour), false},
		{"expires just inside the refresh window", signedToken(t, 100*time.Second), false},
		{"garbage token", "not-a-jwt", true},
		{"empty token", "", true},
		{"no exp claim", tokenWithoutExp(t), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsExpired(tt.token))
		})
	}
}

func TestIsRefreshDue(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"well before the window", signedToken(t, time.Hour), false},
		{"just outside the window", signedToken(t, refreshWindow+10*time.Second), false},
		{"inside the window", signedToken(t, 100*time.Second), true},
		{"seconds from expiry", signedToken(t, 2*time.Second), true},
		{"already expired is not refresh-due", signedToken(t, -time.Minute), false},
		{"garbage token fails closed", "not-a-jwt", true},
		{"no exp claim fails closed", tokenWithoutExp(t), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRefreshDue(tt.token))
		})
	}
}
