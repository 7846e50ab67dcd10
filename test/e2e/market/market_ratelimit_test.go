package market_test

import (
	"context"
	"testing"

	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that /v1/auth/login is rate limited.
// The endpoint has strict limits (5 req/min) to slow brute force attacks.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupMarketContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := marketsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	bootstrapService(t, client)

	// Make 6 rapid requests; the strict limit allows a burst of 5, so the
	// 6th should come back 429 rather than 401.
	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "nobody@example.com", "wrongpass")
		if i < 5 {
			require.Error(t, err, "Invalid credentials should fail")
			require.NotContains(t, err.Error(), "429", "Should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	require.Contains(t, lastErr.Error(), "429", "Should be rate limited after 5 requests")
	t.Logf("Successfully rate limited after 5 requests to /v1/auth/login")
}

// TestRateLimitBootstrapEndpoint verifies that /v1/bootstrap is rate limited.
func TestRateLimitBootstrapEndpoint(t *testing.T) {
	baseURL, cleanup := setupMarketContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := marketsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	req := marketsdk.BootstrapRequest{
		AdminName:     adminName,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}

	// Wrong-token requests fail auth, not rate limiting, until the strict
	// burst of 5 is exhausted.
	var lastErr error
	for i := range 6 {
		_, err := client.Bootstrap(ctx, "wrong-token", req)
		require.Error(t, err)
		if i < 5 {
			require.NotContains(t, err.Error(), "429", "Should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	require.Contains(t, lastErr.Error(), "429", "Should be rate limited after 5 requests")
}
