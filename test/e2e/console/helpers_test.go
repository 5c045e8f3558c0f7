//go:build e2e

package console_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/app"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Shared setup for console end-to-end tests. Session state lives in a real
 * Redis container while each console replica runs in-process.
 */

const (
	redisImage  = "redis:7-alpine"
	tokenSecret = "e2e-shared-token-secret-0123456789"
	adminEmail  = "admin@stellar.io"
)

// setupRedisContainer starts Redis and returns its host:port address.
func setupRedisContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, mappedPort.Port())
}

func replicaConfig(redisAddr, prefix string) app.Config {
	return app.Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		ShutdownGracePeriod: time.Second,
		SessionDriver:       app.SessionDriverRedis,
		RedisAddr:           redisAddr,
		RedisPrefix:         prefix,
		TokenSecret:         tokenSecret,
		Issuer:              "stellar-console",
		TokenTTL:            time.Hour,
		SeedDemo:            true,
	}
}

// startReplica boots one console instance against the shared Redis. Calling
// stop early simulates a replica going away.
func startReplica(t *testing.T, cfg app.Config) (*consolesdk.Client, func()) {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		srv.Close()
		require.NoError(t, application.Shutdown())
	}
	t.Cleanup(stop)

	return consolesdk.NewClient(srv.URL), stop
}
