package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/stretchr/testify/require"
)

func TestNormalizePermissions(t *testing.T) {
	t.Parallel()

	t.Run("collapses duplicates into catalog order", func(t *testing.T) {
		got, err := domain.NormalizePermissions([]domain.Permission{
			domain.PermViewAuditLogs,
			domain.PermViewUsers,
			domain.PermViewAuditLogs,
		})
		require.NoError(t, err)
		require.Equal(t, []domain.Permission{domain.PermViewUsers, domain.PermViewAuditLogs}, got)
	})

	t.Run("empty set is valid", func(t *testing.T) {
		got, err := domain.NormalizePermissions(nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		_, err := domain.ParsePermissions([]string{"VIEW_USERS", "LAUNCH_ROCKETS"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPermissionsCatalog(t *testing.T) {
	t.Parallel()

	perms := domain.Permissions()
	require.Len(t, perms, 8)
	require.Equal(t, domain.PermViewUsers, perms[0])
	require.Equal(t, domain.PermViewAuditLogs, perms[7])

	// Callers get a copy
	perms[0] = "MUTATED"
	require.Equal(t, domain.PermViewUsers, domain.Permissions()[0])
}

func TestRoleIsDefault(t *testing.T) {
	t.Parallel()

	require.True(t, domain.Role{ID: domain.AdminRoleID, Name: "Superusers"}.IsDefault())
	require.True(t, domain.Role{ID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Name: "Manager"}.IsDefault())
	require.False(t, domain.Role{ID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Name: "Support"}.IsDefault())
}
