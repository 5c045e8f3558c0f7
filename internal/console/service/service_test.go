package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/internal/console/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    store.Store
	sessions *session.MemoryStore
	audit    *AuditService
	roles    *RolesService
	users    *UserService
	authz    *Authorizer
	login    *SessionService
	dash     *DashboardService
}

var adminActor = domain.ActorRef{ID: "1", Name: "Admin User"}

// newFixture wires every service over a fresh in-memory database loaded
// with the demo data.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, (&SeedService{Store: st}).Seed(context.Background(), true))

	audit := &AuditService{Store: st}
	sessions := session.NewMemoryStore()
	return &fixture{
		store:    st,
		sessions: sessions,
		audit:    audit,
		roles:    &RolesService{Store: st, Audit: audit},
		users:    &UserService{Store: st, Audit: audit},
		authz:    &Authorizer{Store: st},
		login:    &SessionService{Store: st, Sessions: sessions, Audit: audit},
		dash:     &DashboardService{Store: st},
	}
}

func (f *fixture) auditLen(t *testing.T) int {
	t.Helper()
	n, err := f.store.AuditLogs().CountAuditEntries(context.Background())
	require.NoError(t, err)
	return n
}

func (f *fixture) latestAudit(t *testing.T) domain.AuditEntry {
	t.Helper()
	entries, err := f.audit.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0]
}

func (f *fixture) userRole(t *testing.T, id string) string {
	t.Helper()
	u, err := f.store.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u.Role
}

func (f *fixture) roleNames(t *testing.T) []string {
	t.Helper()
	roles, err := f.roles.List(context.Background())
	require.NoError(t, err)
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return names
}

func strPtr(s string) *string { return &s }
