package httpx_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extract := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)

	t.Run("anonymous falls back to IP", func(t *testing.T) {
		require.Equal(t, "10.0.0.1", extract(requestFrom("10.0.0.1:1")))
	})

	t.Run("authenticated combines user and IP", func(t *testing.T) {
		req := requestFrom("10.0.0.1:1")
		claims := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "3"}, SID: "s"}
		req = req.WithContext(httpx.ContextWithClaims(req.Context(), claims))
		require.Equal(t, "3:10.0.0.1", extract(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	h := httpx.RateLimitMiddleware(cfg, httpx.IPKeyExtractor)(okHandler)

	for i := range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	t.Run("blocks over limit with headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("other keys have their own bucket", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.2:12345"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unkeyed requests pass", func(t *testing.T) {
		never := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler)
		for range 10 {
			rec := httptest.NewRecorder()
			never.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}

	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("no overrides keeps defaults", func(t *testing.T) {
		cfg, err := httpx.RateLimitFromEnv("UNSET", def)
		require.NoError(t, err)
		require.Equal(t, def, cfg)
	})

	t.Run("overrides apply", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
		t.Setenv("RATELIMIT_TEST_WINDOW", "2m")
		t.Setenv("RATELIMIT_TEST_BURST", "5")

		cfg, err := httpx.RateLimitFromEnv("test", def)
		require.NoError(t, err)
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 50, Window: 2 * time.Minute, Burst: 5}, cfg)
	})

	t.Run("non-positive values are ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_ZERO_BURST", "0")

		cfg, err := httpx.RateLimitFromEnv("ZERO", def)
		require.NoError(t, err)
		require.Equal(t, def.Burst, cfg.Burst)
	})

	t.Run("garbage is reported", func(t *testing.T) {
		t.Setenv("RATELIMIT_BAD_REQUESTS", "lots")

		cfg, err := httpx.RateLimitFromEnv("BAD", def)
		require.Error(t, err)
		require.Equal(t, def, cfg)
	})
}

func TestLoadRateLimitProfiles(t *testing.T) {
	// Registered first so it runs after the env is restored.
	t.Cleanup(func() { require.NoError(t, httpx.LoadRateLimitProfiles()) })

	strict := httpx.StrictLimit

	t.Setenv("RATELIMIT_MODERATE_BURST", "7")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "lots")

	err := httpx.LoadRateLimitProfiles()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ratelimit strict")
	require.NotContains(t, err.Error(), "moderate")

	require.Equal(t, strict, httpx.StrictLimit, "bad override keeps the built-in profile")
	require.Equal(t, 7, httpx.ModerateLimit.Burst)
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1000000, Window: time.Minute, Burst: 1000}
	h := httpx.RateLimitByIP(cfg)(okHandler)

	for i := 0; b.Loop(); i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom(fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255)))
	}
}
