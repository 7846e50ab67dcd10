package marketsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the OpenLocal market service. It provides the
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new market service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges credentials for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	tokenResp, err := c.Token(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// NewSessionFromToken creates a Session from an existing access token, e.g.
// one stored from an earlier login. The session does not refresh itself; it
// fails with 401s once the token expires.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
