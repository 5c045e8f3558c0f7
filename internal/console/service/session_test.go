package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("email matches case-insensitively", func(t *testing.T) {
		f := newFixture(t)
		auditBefore := f.auditLen(t)
		start := time.Now().Add(-time.Second)

		u, err := f.login.Login(ctx, "sid-1", "ADMIN@stellar.io")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, "1", u.ID)
		require.False(t, u.LastLogin.Before(start))

		stored, err := f.users.Get(ctx, "1")
		require.NoError(t, err)
		require.False(t, stored.LastLogin.Before(start))

		require.Equal(t, auditBefore+1, f.auditLen(t))
		latest := f.latestAudit(t)
		require.Equal(t, "User logged in", latest.Action)
		require.Equal(t, domain.ActorRef{ID: "1", Name: "Admin User"}, latest.Actor)
		require.Nil(t, latest.Target)

		cur, err := f.login.Current(ctx, "sid-1")
		require.NoError(t, err)
		require.NotNil(t, cur)
		require.Equal(t, "1", cur.ID)
		require.Equal(t, "Admin", cur.Role)
	})

	t.Run("no match leaves the session anonymous", func(t *testing.T) {
		f := newFixture(t)
		auditBefore := f.auditLen(t)

		u, err := f.login.Login(ctx, "sid-2", "nobody@x.io")
		require.NoError(t, err)
		require.Nil(t, u)
		require.Equal(t, auditBefore, f.auditLen(t))

		cur, err := f.login.Current(ctx, "sid-2")
		require.NoError(t, err)
		require.Nil(t, cur)
	})

	t.Run("blank email is a no-op", func(t *testing.T) {
		f := newFixture(t)
		u, err := f.login.Login(ctx, "sid-3", "   ")
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("missing session id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.login.Login(ctx, "", "admin@stellar.io")
		require.ErrorIs(t, err, session.ErrEmptyID)
	})

	t.Run("inactive users may still log in", func(t *testing.T) {
		f := newFixture(t)
		u, err := f.login.Login(ctx, "sid-4", "ian@stellar.io")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, domain.StatusInactive, u.Status)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.login.Login(ctx, "sid", "user@stellar.io")
	require.NoError(t, err)
	require.NoError(t, f.login.Logout(ctx, "sid"))

	cur, err := f.login.Current(ctx, "sid")
	require.NoError(t, err)
	require.Nil(t, cur)

	// Logging out an anonymous session is fine too.
	require.NoError(t, f.login.Logout(ctx, "sid"))
	require.NoError(t, f.login.Logout(ctx, ""))
}

type corruptStore struct{ *session.MemoryStore }

func (c corruptStore) Load(ctx context.Context, id string) (session.Identity, bool, error) {
	if _, ok, _ := c.MemoryStore.Load(ctx, id); !ok {
		return session.Identity{}, false, nil
	}
	return session.Identity{}, false, session.ErrCorrupt
}

func TestCurrentDiscardsCorruptSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	mem := session.NewMemoryStore()
	svc := &SessionService{Store: f.store, Sessions: corruptStore{mem}, Audit: f.audit}
	_, err := svc.Login(ctx, "sid", "user@stellar.io")
	require.NoError(t, err)

	cur, err := svc.Current(ctx, "sid")
	require.NoError(t, err)
	require.Nil(t, cur)

	_, ok, err := mem.Load(ctx, "sid")
	require.NoError(t, err)
	require.False(t, ok, "corrupt slot is cleared")
}

var errSessionsDown = errors.New("sessions down")

type failingSaveStore struct{ *session.MemoryStore }

func (failingSaveStore) Save(context.Context, string, session.Identity) error {
	return errSessionsDown
}

func TestLoginRollsBackWhenSlotCannotBeSaved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	before, err := f.users.Get(ctx, "1")
	require.NoError(t, err)
	auditBefore := f.auditLen(t)

	svc := &SessionService{Store: f.store, Sessions: failingSaveStore{session.NewMemoryStore()}, Audit: f.audit}
	u, err := svc.Login(ctx, "sid", "admin@stellar.io")
	require.ErrorIs(t, err, errSessionsDown)
	require.Nil(t, u)

	require.Equal(t, auditBefore, f.auditLen(t), "no audit entry for a failed login")

	after, err := f.users.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, before.LastLogin.Equal(after.LastLogin), "last login unchanged")

	cur, err := svc.Current(ctx, "sid")
	require.NoError(t, err)
	require.Nil(t, cur)
}
