package marketsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Session is an authenticated view of the market service for one account.
// Sessions are created by SDKClient.Login and are safe for concurrent use;
// the token is immutable once set.
type Session struct {
	client      *SDKClient
	accessToken string
	expiresAt   time.Time
	scopes      []string
}

func newSession(c *SDKClient, tok *TokenResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)

	return &Session{
		client:      c,
		accessToken: tok.AccessToken,
		expiresAt:   expiresAt,
		scopes:      parseScopes(tok.Scope),
	}
}

// AccessToken returns the raw bearer token, e.g. for storage.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt reports when the access token lapses.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Scopes returns the scopes granted at login.
func (s *Session) Scopes() []string { return s.scopes }

// HasScope reports whether the session was granted the scope.
func (s *Session) HasScope(scope string) bool {
	for _, have := range s.scopes {
		if have == scope {
			return true
		}
	}
	return false
}

// Me fetches the caller's account, including role, seller profile and
// location.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLocation replaces the caller's stored location.
func (s *Session) UpdateLocation(ctx context.Context, req UpdateLocationRequest) (*LocationResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/v1/me/location", req)
	if err != nil {
		return nil, err
	}

	var out LocationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpgradeToSeller promotes the caller to the seller role and creates a
// storefront. Calling it again once upgraded returns Upgraded=false.
func (s *Session) UpgradeToSeller(ctx context.Context, req UpgradeRequest) (*UpgradeResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/me/upgrade-to-seller", req)
	if err != nil {
		return nil, err
	}

	var out UpgradeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Appointments lists the caller's bookings with sellers.
func (s *Session) Appointments(ctx context.Context) (*AppointmentsResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/me/appointments", nil)
	if err != nil {
		return nil, err
	}

	var out AppointmentsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// parseScopes splits a space-delimited scope string.
func parseScopes(scope string) []string {
	return strings.Fields(scope)
}
