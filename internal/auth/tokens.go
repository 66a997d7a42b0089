// Package auth issues and verifies the session tokens that carry a login's
// identity between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

// ErrInvalidToken covers every way a presented token can be unusable:
// malformed, expired, bad signature or revoked.
var ErrInvalidToken = errors.New("auth: invalid token")

type sessionClaims struct {
	Username string `json:"username"`
	CohortID int    `json:"cohort_id"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HMAC session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the identity and returns it with its token id,
// which Logout later revokes.
func (i *TokenIssuer) Issue(identity models.SessionIdentity) (string, string, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := sessionClaims{
		Username: identity.Username,
		CohortID: identity.CohortID,
		IsAdmin:  identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, tokenID, nil
}

// Parse verifies a token and returns the identity plus the token id.
func (i *TokenIssuer) Parse(tokenString string) (models.SessionIdentity, string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return models.SessionIdentity{}, "", ErrInvalidToken
	}

	identity := models.SessionIdentity{
		Username: claims.Username,
		CohortID: claims.CohortID,
		IsAdmin:  claims.IsAdmin,
	}
	return identity, claims.ID, nil
}
