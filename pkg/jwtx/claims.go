package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 15 * time.Minute

// Claims are the access-token claims used across the service. Changes must
// stay additive to keep older tokens parseable.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the session id minted at login.
	SID string `json:"sid,omitempty"`

	// Scopes granted by the user's role, e.g. "profile:read market:sell".
	Scopes []string `json:"scopes,omitempty"`

	// Role is the stable role name at the time of issue. Informational;
	// authorization decisions go through Scopes.
	Role string `json:"role,omitempty"`

	// Name is the user's display name.
	Name string `json:"name,omitempty"`
}

// NewAccessClaims builds minimally-correct access-token claims.
func NewAccessClaims(
	subject, sid string,
	scopes []string,
	role, name string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:    sid,
		Scopes: scopes,
		Role:   role,
		Name:   name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
