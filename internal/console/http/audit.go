package http

import (
	"net/http"

	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

type AuditLogsHandler struct {
	AuditService *service.AuditService
}

// ServeHTTP handles GET /v1/audit-logs
//
//	@Summary		List audit log
//	@Description	Returns every audit entry, newest first. Requires VIEW_AUDIT_LOGS.
//	@Tags			Audit
//	@Produce		json
//	@Success		200	{object}	consolesdk.AuditLogsResponse	"Audit entries"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	consolesdk.ErrorResponse		"Forbidden - missing required permission"
//	@Failure		500	{object}	consolesdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/audit-logs [get].
func (h *AuditLogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.AuditService.List(ctx)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "retrieve audit log")
		return
	}

	response := consolesdk.AuditLogsResponse{Entries: make([]consolesdk.AuditEntry, len(entries))}
	for i, e := range entries {
		response.Entries[i] = toAuditEntry(e)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP handles GET /v1/dashboard
//
//	@Summary		Dashboard statistics
//	@Description	User counts plus the viewer's role and last login. Requires VIEW_DASHBOARD_STATS.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	consolesdk.DashboardResponse	"Statistics"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	consolesdk.ErrorResponse		"Forbidden - missing required permission"
//	@Failure		500	{object}	consolesdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident, _ := identityFromContext(ctx)

	stats, err := h.DashboardService.Stats(ctx, ident.ID)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "load dashboard")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consolesdk.DashboardResponse{
		TotalUsers:  stats.TotalUsers,
		ActiveUsers: stats.ActiveUsers,
		Viewer:      stats.Viewer,
		Role:        stats.Role,
		LastLogin:   stats.LastLogin,
	})
}
