package marketsdk

import (
	"context"
	"net/http"
)

// Register creates a new buyer account. The returned verification token
// must be confirmed via VerifyEmail before the email counts as verified.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, nil)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail confirms an email address using the token from registration.
func (c *SDKClient) VerifyEmail(ctx context.Context, token string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/verify-email", VerifyEmailRequest{Token: token}, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Token exchanges credentials for a raw token response. Most callers want
// Login, which wraps this in a Session.
func (c *SDKClient) Token(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Roles lists the role registry.
func (c *SDKClient) Roles(ctx context.Context) (*RolesResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/roles", nil, nil)
	if err != nil {
		return nil, err
	}

	var out RolesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap seeds the role registry and the initial admin account. The
// token must match the service's configured bootstrap token.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, map[string]string{
		"X-Bootstrap-Token": token,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez reports whether the service process is up.
func (c *SDKClient) Livez(ctx context.Context) error {
	return c.health(ctx, "/livez")
}

// Readyz reports whether the service can reach its dependencies.
func (c *SDKClient) Readyz(ctx context.Context) error {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) error {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, nil)
	}
	return nil
}
