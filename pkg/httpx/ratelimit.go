package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/stellar/pkg/slogx"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines a token bucket refilled at
// RequestsPerWindow/Window with room for Burst requests.
type RateLimitConfig struct {
	RequestsPerWindow int           `envconfig:"REQUESTS"`
	Window            time.Duration `envconfig:"WINDOW"`
	Burst             int           `envconfig:"BURST"`
}

// Built-in profiles before any RATELIMIT_* override.
var (
	defaultStrict   = RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}
	defaultModerate = RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 30}
	defaultLenient  = RateLimitConfig{RequestsPerWindow: 300, Window: time.Minute, Burst: 100}
	defaultPublic   = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

// Profiles, overridable through RATELIMIT_{PROFILE}_{REQUESTS,WINDOW,BURST}.
// Routes capture a profile when they are registered, so overrides must be
// loaded before the router is built.
var (
	// StrictLimit guards sign-in.
	StrictLimit = defaultStrict

	// ModerateLimit guards writes to roles and users.
	ModerateLimit = defaultModerate

	// LenientLimit guards authenticated reads.
	LenientLimit = defaultLenient

	// PublicLimit guards health and docs.
	PublicLimit = defaultPublic
)

func init() {
	if err := LoadRateLimitProfiles(); err != nil {
		slog.Default().Warn("ignoring invalid rate limit override", slog.Any("error", err))
	}
}

// LoadRateLimitProfiles re-reads every profile from the environment. A
// profile whose override fails to parse keeps its built-in values and is
// named in the returned error.
func LoadRateLimitProfiles() error {
	var errs []error
	load := func(profile string, def RateLimitConfig, dst *RateLimitConfig) {
		cfg, err := RateLimitFromEnv(profile, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("ratelimit %s: %w", strings.ToLower(profile), err))
		}
		*dst = cfg
	}

	load("STRICT", defaultStrict, &StrictLimit)
	load("MODERATE", defaultModerate, &ModerateLimit)
	load("LENIENT", defaultLenient, &LenientLimit)
	load("PUBLIC", defaultPublic, &PublicLimit)
	return errors.Join(errs...)
}

// RateLimitFromEnv overlays RATELIMIT_{profile}_* variables on def. Values
// that fail to parse or are not positive leave def in place and are
// reported through the error.
func RateLimitFromEnv(profile string, def RateLimitConfig) (RateLimitConfig, error) {
	cfg := def
	if err := envconfig.Process("RATELIMIT_"+strings.ToUpper(profile), &cfg); err != nil {
		return def, err
	}
	if cfg.RequestsPerWindow <= 0 {
		cfg.RequestsPerWindow = def.RequestsPerWindow
	}
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	return cfg, nil
}

// KeyExtractor groups requests into buckets; "" means unkeyed.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the client IP, honouring X-Forwarded-For and X-Real-IP.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor uses the authenticated user id from the request context.
func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

const sweepInterval = 5 * time.Minute

// bucketPool hands out one limiter per key and drops idle ones on a sweep.
type bucketPool struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	buckets   map[string]*rate.Limiter
	lastSweep time.Time
}

func newBucketPool(cfg RateLimitConfig) *bucketPool {
	return &bucketPool{
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		buckets:   make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
	}
}

// allow consumes a token for key, or reports how long until one is free.
func (p *bucketPool) allow(key string) (bool, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if now.Sub(p.lastSweep) >= sweepInterval {
		for k, l := range p.buckets {
			if l.TokensAt(now) >= float64(p.burst) {
				delete(p.buckets, k)
			}
		}
		p.lastSweep = now
	}

	l, ok := p.buckets[key]
	if !ok {
		l = rate.NewLimiter(p.limit, p.burst)
		p.buckets[key] = l
	}
	if l.AllowN(now, 1) {
		return true, 0
	}

	res := l.ReserveN(now, 1)
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return false, wait
}

// RateLimitMiddleware throttles requests per key and answers 429 with a
// Retry-After header once a bucket is empty.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	pool := newBucketPool(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyOf(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := pool.allow(key)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(wait.Seconds()), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			log.Warn("rate limit exceeded", "key", key, "retry_after", retryAfter)
			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"error":             "rate_limit_exceeded",
				"error_description": "Too many requests. Please try again later.",
			})
		})
	}
}

// RateLimitByIP limits by client IP only.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user, keyed with the IP as well
// so anonymous callers still share a bucket per address.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}
