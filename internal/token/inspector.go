// ABOUTME: Access token expiry inspection without signature verification
// ABOUTME: Decodes the exp claim to classify tokens as expired or refresh-due

package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshWindow is how long before expiry a token counts as refresh-due.
const refreshWindow = 5 * time.Minute

// expiry extracts the exp claim from a bearer token without verifying the
// signature. The client never holds the signing key; validity is the server's
// call. Returns false when the token cannot be decoded or carries no exp.
func expiry(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token's exp claim is in the past.
// Undecodable tokens are treated as expired (fail closed).
func IsExpired(tokenString string) bool {
	exp, ok := expiry(tokenString)
	if !ok {
		return true
	}
	return time.Now().After(exp)
}

// IsRefreshDue reports whether the token expires within the refresh window.
// An already-expired token is not refresh-due; it is expired. Undecodable
// tokens are treated as refresh-due (fail closed).
func IsRefreshDue(tokenString string) bool {
	exp, ok := expiry(tokenString)
	if !ok {
		return true
	}
	until := time.Until(exp)
	return until >= 0 && until < refreshWindow
}
