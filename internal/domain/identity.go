package domain

import "time"

// Identity is the authenticated caller as asserted by the identity provider.
// UserID is the provider's stable user id; Email and DisplayName come from
// the token claims and seed a lazily created Profile.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, displayName string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
