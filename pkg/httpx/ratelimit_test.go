package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/openlocal/market/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFromIP(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := requestFromIP("192.168.1.1")
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := requestFromIP("192.168.1.1")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := requestFromIP("192.168.1.1")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestUserIDKeyExtractor(t *testing.T) {
	t.Run("reads the authenticated subject", func(t *testing.T) {
		req := requestFromIP("192.168.1.1")
		ctx := context.WithValue(req.Context(), httpx.CtxKeyUserID, "42")
		require.Equal(t, "42", httpx.UserIDKeyExtractor(req.WithContext(ctx)))
	})

	t.Run("empty without authentication", func(t *testing.T) {
		require.Equal(t, "", httpx.UserIDKeyExtractor(requestFromIP("192.168.1.1")))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 3,
			Window:            time.Minute,
			Burst:             3,
		}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for i := range 3 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 2,
			Window:            time.Minute,
			Burst:             2,
		}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for range 2 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec1 := httptest.NewRecorder()
		limited.ServeHTTP(rec1, requestFromIP("192.168.1.1"))
		require.Equal(t, http.StatusTooManyRequests, rec1.Code)

		rec2 := httptest.NewRecorder()
		limited.ServeHTTP(rec2, requestFromIP("192.168.1.2"))
		require.Equal(t, http.StatusOK, rec2.Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}
		emptyExtractor := func(r *http.Request) string { return "" }
		limited := httpx.RateLimitMiddleware(config, emptyExtractor)(okHandler())

		for range 3 {
			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitByIP(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}
	limited := httpx.RateLimitByIP(config)(okHandler())

	for range 2 {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, requestFromIP("192.168.1.1"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitByUser(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}
	limited := httpx.RateLimitByUser(config)(okHandler())

	withUser := func(ip, userID string) *http.Request {
		req := requestFromIP(ip)
		ctx := context.WithValue(req.Context(), httpx.CtxKeyUserID, userID)
		return req.WithContext(ctx)
	}

	// Exhaust the first user's budget.
	for range 2 {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, withUser("192.168.1.1", "1"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec1 := httptest.NewRecorder()
	limited.ServeHTTP(rec1, withUser("192.168.1.1", "1"))
	require.Equal(t, http.StatusTooManyRequests, rec1.Code)

	// A different user from the same address has its own budget.
	rec2 := httptest.NewRecorder()
	limited.ServeHTTP(rec2, withUser("192.168.1.1", "2"))
	require.Equal(t, http.StatusOK, rec2.Code)
}

func TestRateLimitProfiles(t *testing.T) {
	profiles := map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	}

	for name, config := range profiles {
		t.Run(name, func(t *testing.T) {
			require.Greater(t, config.RequestsPerWindow, 0, "requests per window must be positive")
			require.Greater(t, config.Window, time.Duration(0), "window must be positive")
			require.Greater(t, config.Burst, 0, "burst must be positive")
		})
	}

	// Verify ordering: strict < moderate < lenient < public
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestRateLimitResponse(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}
	limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

	rec1 := httptest.NewRecorder()
	limited.ServeHTTP(rec1, requestFromIP("192.168.1.1"))
	require.Equal(t, http.StatusOK, rec1.Code)

	rec2 := httptest.NewRecorder()
	limited.ServeHTTP(rec2, requestFromIP("192.168.1.1"))

	require.Equal(t, http.StatusTooManyRequests, rec2.Code)
	require.NotEmpty(t, rec2.Header().Get("Retry-After"))
	require.Equal(t, "1", rec2.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec2.Header().Get("X-RateLimit-Window"))

	body := rec2.Body.String()
	require.Contains(t, body, "rate_limit_exceeded")
	require.Contains(t, body, "message")
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaultConfig := httpx.RateLimitConfig{
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	t.Run("no env vars uses defaults", func(t *testing.T) {
		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, defaultConfig, config)
	})

	t.Run("env vars override all parameters", func(t *testing.T) {
		os.Setenv("RATELIMIT_TEST_REQUESTS", "200")
		os.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		os.Setenv("RATELIMIT_TEST_BURST", "250")
		defer func() {
			os.Unsetenv("RATELIMIT_TEST_REQUESTS")
			os.Unsetenv("RATELIMIT_TEST_WINDOW_SEC")
			os.Unsetenv("RATELIMIT_TEST_BURST")
		}()

		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, 200, config.RequestsPerWindow)
		require.Equal(t, 30*time.Second, config.Window)
		require.Equal(t, 250, config.Burst)
	})

	t.Run("invalid or zero values use defaults", func(t *testing.T) {
		os.Setenv("RATELIMIT_TEST_REQUESTS", "invalid")
		os.Setenv("RATELIMIT_TEST_WINDOW_SEC", "-10")
		os.Setenv("RATELIMIT_TEST_BURST", "0")
		defer func() {
			os.Unsetenv("RATELIMIT_TEST_REQUESTS")
			os.Unsetenv("RATELIMIT_TEST_WINDOW_SEC")
			os.Unsetenv("RATELIMIT_TEST_BURST")
		}()

		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, defaultConfig, config)
	})
}
