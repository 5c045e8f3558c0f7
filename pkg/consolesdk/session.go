package consolesdk

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// Session performs authenticated calls with one session token. It is safe
// for concurrent use.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
}

// Token returns the bearer token this session sends.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// call sends an authenticated request and decodes a JSON reply with the
// expected status into target. A nil target expects 204 No Content.
func (s *Session) call(ctx context.Context, method, path string, body, target any, expected int) error {
	resp, err := s.client.doRequest(ctx, method, path, s.Token(), body)
	if err != nil {
		return err
	}
	if target == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, target, expected)
}

// Current returns the signed-in user, their permissions and landing page.
func (s *Session) Current(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.call(ctx, http.MethodGet, "/v1/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the server-side session and forgets the token.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.call(ctx, http.MethodPost, "/v1/session/logout", nil, nil, http.StatusNoContent); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// ListPermissions returns the permission catalog in display order.
func (s *Session) ListPermissions(ctx context.Context) ([]string, error) {
	var out PermissionsResponse
	if err := s.call(ctx, http.MethodGet, "/v1/permissions", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Permissions, nil
}

// GetDashboard returns the dashboard statistics.
// Requires: VIEW_DASHBOARD_STATS
func (s *Session) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := s.call(ctx, http.MethodGet, "/v1/dashboard", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAuditLogs returns the audit log newest first.
// Requires: VIEW_AUDIT_LOGS
func (s *Session) ListAuditLogs(ctx context.Context) ([]AuditEntry, error) {
	var out AuditLogsResponse
	if err := s.call(ctx, http.MethodGet, "/v1/audit-logs", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func escape(seg string) string { return url.PathEscape(seg) }
