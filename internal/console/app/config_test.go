package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var configKeys = []string{
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	"CONSOLE_SESSION_DRIVER", "CONSOLE_REDIS_ADDR", "CONSOLE_REDIS_PREFIX",
	"CONSOLE_TOKEN_SECRET", "CONSOLE_TOKEN_ISSUER", "CONSOLE_TOKEN_TTL",
	"CONSOLE_SEED_DEMO", "CONSOLE_ARTIFICIAL_DELAY",
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, configKeys...)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, SessionDriverMemory, cfg.SessionDriver)
	require.Equal(t, "stellar:session:", cfg.RedisPrefix)
	require.Equal(t, "stellar-console", cfg.Issuer)
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.SeedDemo)
	require.Zero(t, cfg.ArtificialDelay)
}

func TestLoadConfigOverrides(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("PORT", "9090")
	t.Setenv("CONSOLE_SESSION_DRIVER", "Redis")
	t.Setenv("CONSOLE_REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("CONSOLE_ARTIFICIAL_DELAY", "500ms")
	t.Setenv("CONSOLE_SEED_DEMO", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, SessionDriverRedis, cfg.SessionDriver)
	require.Equal(t, 500*time.Millisecond, cfg.ArtificialDelay)
	require.False(t, cfg.SeedDemo)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"redis without address", map[string]string{"CONSOLE_SESSION_DRIVER": "redis", "CONSOLE_REDIS_ADDR": ""}},
		{"unknown driver", map[string]string{"CONSOLE_SESSION_DRIVER": "etcd"}},
		{"bad duration", map[string]string{"CONSOLE_TOKEN_TTL": "soon"}},
		{"zero ttl", map[string]string{"CONSOLE_TOKEN_TTL": "0s"}},
		{"bad rate limit override", map[string]string{"RATELIMIT_STRICT_WINDOW": "whenever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
