package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"conferencecentral/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type jwtProvider struct {
	secret []byte
}

// NewJWTProvider returns a token issuer/verifier signing and checking HS256
// JWTs with the given secret. The subject claim carries the identity
// provider's user id; email and display_name seed lazily created profiles.
func NewJWTProvider(secret string) interface {
	domain.TokenIssuer
	domain.TokenVerifier
} {
	return &jwtProvider{secret: []byte(secret)}
}

func (p *jwtProvider) Issue(userID, email, displayName string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email:       email,
		DisplayName: displayName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (p *jwtProvider) Verify(token string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("token has no subject")
	}
	return domain.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}
