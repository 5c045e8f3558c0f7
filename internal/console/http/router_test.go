package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/stellar/internal/console/http"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store/drivers/sqlite"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/cryptox"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const issuer = "stellar-console-test"

// newTestServer serves a fully wired router over a seeded in-memory store.
func newTestServer(t *testing.T) (*httptest.Server, *consolesdk.Client) {
	t.Helper()

	st, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, (&service.SeedService{Store: st}).Seed(context.Background(), true))

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewVerifierEdDSA(keys, issuer, []string{httpapi.TokenAudience})

	sessions := session.NewMemoryStore()
	audit := &service.AuditService{Store: st}

	router := httpapi.NewRouter(keys, signer, verifier, issuer, "test", st, sessions, slogx.Discard())
	router.SessionService = &service.SessionService{Store: st, Sessions: sessions, Audit: audit}
	router.UserService = &service.UserService{Store: st, Audit: audit}
	router.RolesService = &service.RolesService{Store: st, Audit: audit}
	router.AuditService = audit
	router.Authorizer = &service.Authorizer{Store: st}
	router.DashboardService = &service.DashboardService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, consolesdk.NewClient(srv.URL)
}

func login(t *testing.T, client *consolesdk.Client, email string) *consolesdk.Session {
	t.Helper()
	s, err := client.Authenticate(context.Background(), email)
	require.NoError(t, err)
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) *consolesdk.APIError {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, consolesdk.StatusCode(err), err.Error())
	require.True(t, consolesdk.HasCode(err, code), err.Error())
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)

	t.Run("match issues a token", func(t *testing.T) {
		out, err := client.Login(ctx, "Manager@Stellar.io")
		require.NoError(t, err)
		require.True(t, out.Authenticated)
		require.NotEmpty(t, out.Token)
		require.Equal(t, "Bearer", out.TokenType)
		require.Equal(t, "Manager Mike", out.User.Name)
		require.Equal(t, "Manager", out.User.Role)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		out, err := client.Login(ctx, "nobody@x.io")
		require.NoError(t, err)
		require.False(t, out.Authenticated)
		require.Empty(t, out.Token)
		require.Nil(t, out.User)

		_, err = client.Authenticate(ctx, "nobody@x.io")
		require.ErrorIs(t, err, consolesdk.ErrNotAuthenticated)
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)

	sess := login(t, client, "user@stellar.io")
	token := sess.Token()

	me, err := sess.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "Standard User Sally", me.User.Name)
	require.Equal(t, []string{"VIEW_DASHBOARD_STATS"}, me.Permissions)
	require.Equal(t, "dashboard", me.LandingPage)

	perms, err := sess.ListPermissions(ctx)
	require.NoError(t, err)
	require.Len(t, perms, 8)

	require.NoError(t, sess.Logout(ctx))

	// The token still verifies but its session has ended.
	_, err = client.NewSession(token).Current(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, consolesdk.ErrorCodeInvalidToken)
}

func TestAnonymousIsRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)

	anon := client.NewSession("")
	_, err := anon.ListUsers(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, consolesdk.ErrorCodeInvalidToken)

	forged := client.NewSession("not.a.token")
	_, err = forged.GetDashboard(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, consolesdk.ErrorCodeInvalidToken)
}

func TestPermissionGates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)

	user := login(t, client, "user@stellar.io")

	dash, err := user.GetDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, dash.TotalUsers)
	require.Equal(t, 5, dash.ActiveUsers)
	require.Equal(t, "User", dash.Role)

	_, err = user.ListUsers(ctx)
	requireAPIError(t, err, http.StatusForbidden, consolesdk.ErrorCodeInsufficientPermission)
	_, err = user.ListAuditLogs(ctx)
	requireAPIError(t, err, http.StatusForbidden, consolesdk.ErrorCodeInsufficientPermission)
	err = user.DeleteRole(ctx, "Manager")
	requireAPIError(t, err, http.StatusForbidden, consolesdk.ErrorCodeInsufficientPermission)

	manager := login(t, client, "manager@stellar.io")
	_, err = manager.ListUsers(ctx)
	require.NoError(t, err)
	err = manager.DeleteUser(ctx, "6")
	requireAPIError(t, err, http.StatusForbidden, consolesdk.ErrorCodeInsufficientPermission)
}

func TestRoleChangesApplyImmediately(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)

	admin := login(t, client, "admin@stellar.io")
	manager := login(t, client, "manager@stellar.io")

	_, err := manager.ListUsers(ctx)
	require.NoError(t, err)

	_, err = admin.UpdateRole(ctx, "Manager", consolesdk.RoleRequest{
		Name:        "Manager",
		Permissions: []string{"VIEW_DASHBOARD_STATS"},
	})
	require.NoError(t, err)

	_, err = manager.ListUsers(ctx)
	requireAPIError(t, err, http.StatusForbidden, consolesdk.ErrorCodeInsufficientPermission)
}

func TestRolesEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)
	admin := login(t, client, "admin@stellar.io")

	created, err := admin.CreateRole(ctx, consolesdk.RoleRequest{Name: "Support", Permissions: []string{"VIEW_USERS"}})
	require.NoError(t, err)
	require.Equal(t, "Support", created.Name)
	require.Equal(t, []string{"VIEW_USERS"}, created.Permissions)

	_, err = admin.CreateRole(ctx, consolesdk.RoleRequest{Name: "Support"})
	requireAPIError(t, err, http.StatusConflict, consolesdk.ErrorCodeDuplicateRole)

	_, err = admin.CreateRole(ctx, consolesdk.RoleRequest{Name: "Bad", Permissions: []string{"FLY"}})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, consolesdk.ErrorCodeValidation)
	require.Contains(t, apiErr.Details, "permissions")

	_, err = admin.UpdateRole(ctx, "Ghost", consolesdk.RoleRequest{Name: "Ghost"})
	requireAPIError(t, err, http.StatusNotFound, consolesdk.ErrorCodeRoleNotFound)

	err = admin.DeleteRole(ctx, "Admin")
	requireAPIError(t, err, http.StatusConflict, consolesdk.ErrorCodeProtectedRole)

	_, err = admin.UpdateUser(ctx, "6", consolesdk.UpdateUserRequest{Role: ptr("Support")})
	require.NoError(t, err)
	require.NoError(t, admin.DeleteRole(ctx, "Support"))

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == "6" {
			require.Equal(t, "User", u.Role)
		}
	}

	roles, err := admin.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
}

func TestUsersEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, client := newTestServer(t)
	admin := login(t, client, "admin@stellar.io")

	u, err := admin.CreateUser(ctx, consolesdk.CreateUserRequest{Name: "Nina", Email: "nina@stellar.io"})
	require.NoError(t, err)
	require.Equal(t, "User", u.Role)
	require.Equal(t, "Active", u.Status)

	_, err = admin.CreateUser(ctx, consolesdk.CreateUserRequest{Name: "", Email: "nope"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, consolesdk.ErrorCodeValidation)
	require.Contains(t, apiErr.Details, "name")
	require.Contains(t, apiErr.Details, "email")

	_, err = admin.CreateUser(ctx, consolesdk.CreateUserRequest{Name: "Pat", Email: "pat@stellar.io", Role: "Ghost"})
	requireAPIError(t, err, http.StatusNotFound, consolesdk.ErrorCodeRoleNotFound)

	updated, err := admin.UpdateUser(ctx, "3", consolesdk.UpdateUserRequest{Status: ptr("Inactive")})
	require.NoError(t, err)
	require.Equal(t, "Inactive", updated.Status)
	require.Equal(t, "Standard User Sally", updated.Name)

	_, err = admin.UpdateUser(ctx, "999", consolesdk.UpdateUserRequest{Name: ptr("Nobody")})
	requireAPIError(t, err, http.StatusNotFound, consolesdk.ErrorCodeUserNotFound)

	err = admin.DeleteUser(ctx, "999")
	requireAPIError(t, err, http.StatusNotFound, consolesdk.ErrorCodeUserNotFound)

	require.NoError(t, admin.DeleteUser(ctx, u.ID))

	entries, err := admin.ListAuditLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, "Deleted user Nina", entries[0].Action)
	require.Equal(t, consolesdk.Actor{ID: "1", Name: "Admin User"}, entries[0].Actor)
	require.Equal(t, "Updated user Standard User Sally (status from 'Active' to 'Inactive')", entries[1].Action)
	require.Equal(t, "User", entries[1].Target.Type)
	require.Equal(t, "Created user Nina", entries[2].Action)
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	admin := login(t, client, "admin@stellar.io")

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/roles", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+admin.Token())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv, client := newTestServer(t)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, &consolesdk.HealthChecks{Database: "ok", Sessions: "ok", Signer: "ok"}, ready.Checks)

	jwks, err := client.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "test-key", jwks.Keys[0].Kid)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	require.NotEmpty(t, resp.Header.Get(slogx.RequestIDHeader))
}

func TestReadyzDegraded(t *testing.T) {
	t.Parallel()

	st, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, st.Close())

	h := httpapi.ReadyzHandler(time.Now(), "test", st, session.NewMemoryStore(), jwtx.NewKeySet())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"degraded"`)
	require.Contains(t, rec.Body.String(), `"signer":"error: no keys loaded"`)
}

func ptr(s string) *string { return &s }
