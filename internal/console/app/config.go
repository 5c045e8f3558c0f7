package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/kelseyhightower/envconfig"
)

const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

type Config struct {
	Env                 string        `envconfig:"ENV" default:"dev"`                   // Environment (dev, staging, prod)
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`           // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // Graceful shutdown timeout

	SessionDriver string `envconfig:"CONSOLE_SESSION_DRIVER" default:"memory"`         // memory, redis
	RedisAddr     string `envconfig:"CONSOLE_REDIS_ADDR"`                              // Required for the redis driver
	RedisPrefix   string `envconfig:"CONSOLE_REDIS_PREFIX" default:"stellar:session:"` // Key prefix for session slots

	TokenSecret string        `envconfig:"CONSOLE_TOKEN_SECRET"` // Optional: empty means an ephemeral signing key
	Issuer      string        `envconfig:"CONSOLE_TOKEN_ISSUER" default:"stellar-console"`
	TokenTTL    time.Duration `envconfig:"CONSOLE_TOKEN_TTL" default:"12h"`

	SeedDemo        bool          `envconfig:"CONSOLE_SEED_DEMO" default:"true"`
	ArtificialDelay time.Duration `envconfig:"CONSOLE_ARTIFICIAL_DELAY" default:"0s"` // e.g. 500ms to mimic a slow backend
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if err := httpx.LoadRateLimitProfiles(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations the application cannot start with.
func (c *Config) Validate() error {
	c.SessionDriver = strings.ToLower(strings.TrimSpace(c.SessionDriver))
	switch c.SessionDriver {
	case SessionDriverMemory:
	case SessionDriverRedis:
		if c.RedisAddr == "" {
			return errors.New("CONSOLE_REDIS_ADDR is required when CONSOLE_SESSION_DRIVER=redis")
		}
	default:
		return fmt.Errorf("unknown session driver %q (want memory or redis)", c.SessionDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return errors.New("CONSOLE_TOKEN_TTL must be positive")
	}
	if c.ArtificialDelay < 0 {
		return errors.New("CONSOLE_ARTIFICIAL_DELAY must not be negative")
	}
	return nil
}
