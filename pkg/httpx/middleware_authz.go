package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// PermissionChecker reports whether the user may use the named permission.
type PermissionChecker func(ctx context.Context, userID, permission string) (bool, error)

// RequirePermission must run after AuthnMiddleware. Unknown users and
// missing permissions both end in 403; a checker failure is a 500.
func RequirePermission(check PermissionChecker, permission string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := UserIDFromContext(ctx)
			if userID == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			ok, err := check(ctx, userID, permission)
			if err != nil {
				slogx.FromContext(ctx).Error("permission check failed", "permission", permission, "error", err)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":             "server_error",
					"error_description": "Failed to evaluate permissions",
				})
				return
			}
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+permission+`"`)
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "insufficient_permission",
					"error_description": "Missing permission " + permission,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
