package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/pkg/cryptox"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func sampleIdentity() Identity {
	return Identity{
		ID:        "1",
		Name:      "Admin User",
		Email:     "admin@stellar.io",
		Role:      domain.AdminRoleName,
		Status:    domain.StatusActive,
		CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		LastLogin: time.Date(2026, 3, 2, 9, 30, 15, 123456789, time.UTC),
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:"), mr
}

func TestStores(t *testing.T) {
	t.Parallel()

	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, st := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Ping(ctx))

			_, ok, err := st.Load(ctx, "sid-1")
			require.NoError(t, err)
			require.False(t, ok, "absent slot is anonymous")

			want := sampleIdentity()
			require.NoError(t, st.Save(ctx, "sid-1", want))

			got, ok, err := st.Load(ctx, "sid-1")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, want.ID, got.ID)
			require.Equal(t, want.Role, got.Role)
			require.Equal(t, want.Status, got.Status)
			require.True(t, want.CreatedAt.Equal(got.CreatedAt))
			require.True(t, want.LastLogin.Equal(got.LastLogin))

			_, ok, err = st.Load(ctx, "sid-2")
			require.NoError(t, err)
			require.False(t, ok, "slots are per session")

			require.NoError(t, st.Delete(ctx, "sid-1"))
			require.NoError(t, st.Delete(ctx, "sid-1"))
			_, ok, err = st.Load(ctx, "sid-1")
			require.NoError(t, err)
			require.False(t, ok)

			require.ErrorIs(t, st.Save(ctx, "", want), ErrEmptyID)
			_, _, err = st.Load(ctx, "")
			require.ErrorIs(t, err, ErrEmptyID)
		})
	}
}

func TestCodecWritesRFC3339Strings(t *testing.T) {
	t.Parallel()

	data, err := encode(sampleIdentity())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "2023-01-15T00:00:00Z", raw["createdAt"])
	require.Equal(t, "2026-03-02T09:30:15.123456789Z", raw["lastLogin"])
	require.Equal(t, "Active", raw["status"])
	require.ElementsMatch(t,
		[]string{"id", "name", "email", "role", "createdAt", "lastLogin", "status"},
		keysOf(raw),
	)
}

func TestCodecReparsesTimestamps(t *testing.T) {
	t.Parallel()

	ident, err := decode([]byte(`{"id":"4","name":"Inactive Ian","email":"ian@stellar.io","role":"User",` +
		`"createdAt":"2023-04-05T00:00:00.000Z","lastLogin":"2023-05-01T00:00:00+10:00","status":"Inactive"}`))
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC), ident.CreatedAt.UTC())
	require.Equal(t, time.Date(2023, 4, 30, 14, 0, 0, 0, time.UTC), ident.LastLogin.UTC())
	require.Equal(t, domain.StatusInactive, ident.Status)
}

func TestCodecRejectsCorruptSlots(t *testing.T) {
	t.Parallel()

	for name, payload := range map[string]string{
		"not json":      `{{`,
		"no user id":    `{"name":"x"}`,
		"bad date":      `{"id":"1","createdAt":"yesterday"}`,
		"bad lastLogin": `{"id":"1","lastLogin":"2023-13-45"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decode([]byte(payload))
			require.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestRedisStoreKeys(t *testing.T) {
	t.Parallel()

	st, mr := newRedisStore(t)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, "sid-raw", sampleIdentity()))

	key := "test:" + cryptox.Fingerprint("sid-raw")
	require.True(t, mr.Exists(key), "slot is keyed by fingerprint")
	require.False(t, mr.Exists("test:sid-raw"), "raw session id never stored")
	require.Zero(t, mr.TTL(key), "slots do not expire")

	require.NoError(t, mr.Set(key, "garbage"))
	_, _, err := st.Load(ctx, "sid-raw")
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestRedisStoreSurfacesOutage(t *testing.T) {
	t.Parallel()

	st, mr := newRedisStore(t)
	mr.Close()

	ctx := context.Background()
	require.Error(t, st.Ping(ctx))
	_, _, err := st.Load(ctx, "sid")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCorrupt)
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
