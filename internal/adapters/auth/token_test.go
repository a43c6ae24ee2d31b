package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProvider_IssueAndVerify(t *testing.T) {
	provider := NewJWTProvider("test-secret")

	token, err := provider.Issue("user-123", "u@example.com", "Alice", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "u@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.DisplayName)
}

func TestJWTProvider_Verify_WrongSecret(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	other := NewJWTProvider("other-secret")

	token, err := other.Issue("user-123", "u@example.com", "Alice", time.Hour)
	require.NoError(t, err)

	_, err = provider.Verify(token)
	require.Error(t, err)
}

func TestJWTProvider_Verify_Garbage(t *testing.T) {
	provider := NewJWTProvider("test-secret")

	_, err := provider.Verify("not-a-token")
	require.Error(t, err)
}

func TestJWTProvider_Verify_Expired(t *testing.T) {
	provider := NewJWTProvider("test-secret")

	token, err := provider.Issue("user-123", "u@example.com", "Alice", -time.Minute)
	require.NoError(t, err)

	_, err = provider.Verify(token)
	require.Error(t, err)
}

func TestJWTProvider_Verify_RejectsUnsignedToken(t *testing.T) {
	provider := NewJWTProvider("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-123"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = provider.Verify(token)
	require.Error(t, err)
}
