package market_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/openlocal/market/pkg/marketsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for market service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "openlocal-market-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminName      = "Administrator"
	adminEmail     = "admin@example.com"
	adminPassword  = "Admin123!"

	buyerName     = "Alex Buyer"
	buyerPassword = "Buyer123!"
)

// defaultCountries returns the location registry seeded in tests.
func defaultCountries() []marketsdk.CountryDefinition {
	return []marketsdk.CountryDefinition{
		{
			Name: "Australia",
			States: []marketsdk.StateDefinition{
				{Name: "Queensland", Cities: []string{"Brisbane", "Cairns"}},
				{Name: "New South Wales", Cities: []string{"Sydney"}},
			},
		},
	}
}

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Market Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Market Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/market/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupMarketContainer starts the market service in a container and returns
// the base URL. Rate limits are raised well above the defaults so rapid test
// requests do not trip them.
func setupMarketContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"MARKET_DATABASE_FILE": "/tmp/market.db",
			"MARKET_PEPPER_FILE":   "/tmp/pepper",
			"MARKET_ISSUER":        "openlocal-market",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupMarketContainerWithDefaultRateLimits starts the market service with
// DEFAULT rate limits. This is specifically for testing that rate limiting
// actually works; everything else should use setupMarketContainer().
func setupMarketContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"MARKET_DATABASE_FILE": "/tmp/market.db",
			"MARKET_PEPPER_FILE":   "/tmp/pepper",
			"MARKET_ISSUER":        "openlocal-market",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapService seeds roles, locations and the admin account.
func bootstrapService(t *testing.T, client *marketsdk.SDKClient) *marketsdk.BootstrapResponse {
	t.Helper()

	resp, err := client.Bootstrap(context.Background(), bootstrapToken, marketsdk.BootstrapRequest{
		AdminName:     adminName,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
		Countries:     defaultCountries(),
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotZero(t, resp.AdminUserID, "Admin user ID should be set")
	require.Contains(t, resp.Roles, "buyer")

	return resp
}

// registerBuyer creates and verifies a buyer account, returning its email.
func registerBuyer(t *testing.T, client *marketsdk.SDKClient, email string) {
	t.Helper()
	ctx := context.Background()

	reg, err := client.Register(ctx, marketsdk.RegisterRequest{
		Name:     buyerName,
		Email:    email,
		Password: buyerPassword,
	})
	require.NoError(t, err, "Register should succeed")
	require.NotZero(t, reg.ID)
	require.NotEmpty(t, reg.VerificationToken)

	require.NoError(t, client.VerifyEmail(ctx, reg.VerificationToken))
}

// loginBuyer registers, verifies and logs in a fresh buyer.
func loginBuyer(t *testing.T, client *marketsdk.SDKClient, email string) *marketsdk.Session {
	t.Helper()

	registerBuyer(t, client, email)

	session, err := client.Login(context.Background(), email, buyerPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session)

	return session
}

// assertUnauthorized checks that an error indicates unauthorized access.
func assertUnauthorized(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	errMsg := err.Error()
	hasUnauthorized := strings.Contains(errMsg, "401") ||
		strings.Contains(errMsg, "invalid_credentials") ||
		strings.Contains(errMsg, "invalid_token")
	require.True(t, hasUnauthorized, "%s - error should indicate unauthorized access, got: %s", context, errMsg)
}

// seededIDs returns the reference ids of the first seeded country, state and
// city. The registry assigns ids in seed order starting at 1, so Australia /
// Queensland / Brisbane from defaultCountries land on 1 / 1 / 1.
func seededIDs() (countryID, stateID, cityID int64) {
	return 1, 1, 1
}
