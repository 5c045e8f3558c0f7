package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestSeedDemo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	require.Equal(t, []string{"Admin", "Manager", "User"}, f.roleNames(t))

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 6)
	require.Equal(t, "Admin User", users[0].Name)
	require.Equal(t, domain.StatusInactive, users[3].Status)

	entries, err := f.audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "User logged in", entries[0].Action)
	require.Equal(t, "Admin User", entries[0].Actor.Name)
	require.Equal(t, "Created user", entries[2].Action)
	require.Equal(t, "Ben Carter", entries[2].Target.Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.roles.Update(ctx, adminActor, "Manager", domain.RoleInput{Name: "Lead"})
	require.NoError(t, err)
	auditBefore := f.auditLen(t)

	require.NoError(t, (&SeedService{Store: f.store}).Seed(ctx, true))

	require.Equal(t, []string{"Admin", "Lead", "User"}, f.roleNames(t))
	users, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 6)
	require.Equal(t, auditBefore, f.auditLen(t))
}

func TestSeedWithoutDemo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, (&SeedService{Store: st}).Seed(ctx, false))

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	roles, err := st.Roles().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
	require.Equal(t, domain.Permissions(), roles[0].Permissions)
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	stats, err := f.dash.Stats(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, 6, stats.TotalUsers)
	require.Equal(t, 5, stats.ActiveUsers)
	require.Equal(t, "Manager Mike", stats.Viewer)
	require.Equal(t, "Manager", stats.Role)

	stats, err = f.dash.Stats(ctx, "999")
	require.NoError(t, err)
	require.Equal(t, 6, stats.TotalUsers)
	require.Empty(t, stats.Viewer)
}

func TestAuditNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	for _, name := range []string{"A", "B", "C"} {
		_, err := f.roles.Create(ctx, adminActor, domain.RoleInput{Name: name})
		require.NoError(t, err)
	}

	entries, err := f.audit.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Created role C", entries[0].Action)
	require.Equal(t, "Created role B", entries[1].Action)
	require.Equal(t, "Created role A", entries[2].Action)
	require.False(t, entries[0].Timestamp.Before(entries[1].Timestamp))
}
