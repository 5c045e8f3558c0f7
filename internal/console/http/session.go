package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// TokenAudience is the audience of every console session token.
const TokenAudience = "stellar-console"

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// identityFromContext returns the session's current user as loaded by
// RequireSession.
func identityFromContext(ctx context.Context) (session.Identity, bool) {
	ident, ok := ctx.Value(ctxKeyIdentity).(session.Identity)
	return ident, ok
}

// RequireSession must run after AuthnMiddleware. A token outlives its
// session slot after logout, so the slot is the source of truth: an empty
// slot, or one bound to a different user, is rejected with 401.
func RequireSession(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			ident, err := sessions.Current(ctx, httpx.SessionIDFromContext(ctx))
			if err != nil {
				log.Error("failed to load session", slog.Any("error", err))
				httpx.WriteJSON(w, http.StatusInternalServerError, consolesdk.ErrorResponse{
					Error:            consolesdk.ErrorCodeServerError,
					ErrorDescription: "Failed to load session",
				})
				return
			}
			if ident == nil || ident.ID != httpx.UserIDFromContext(ctx) {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="session has ended"`)
				httpx.WriteJSON(w, http.StatusUnauthorized, consolesdk.ErrorResponse{
					Error:            consolesdk.ErrorCodeInvalidToken,
					ErrorDescription: "session has ended",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKeyIdentity, *ident)))
		})
	}
}

type LoginHandler struct {
	SessionService *service.SessionService
	Signer         jwtx.Signer
	Issuer         string
	TTL            time.Duration
}

// ServeHTTP signs a user in by email.
//
//	@Summary		Log in
//	@Description	Matches the email case-insensitively against the user directory. On a match the user becomes the current user of a new session and a bearer token for it is returned. No match is not an error: authenticated is false and no token is issued.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consolesdk.LoginRequest		true	"Login request"
//	@Success		200		{object}	consolesdk.LoginResponse	"Login outcome"
//	@Failure		400		{object}	consolesdk.ErrorResponse	"Malformed request"
//	@Failure		429		{object}	consolesdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/session/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req consolesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	// 1. Bind the user to a fresh session slot
	sid := session.NewID()
	user, err := h.SessionService.Login(ctx, sid, req.Email)
	if err != nil {
		writeError(w, log, err, "log in")
		return
	}
	if user == nil {
		httpx.WriteJSON(w, http.StatusOK, consolesdk.LoginResponse{Authenticated: false})
		return
	}

	// 2. Issue a token naming the slot
	ttl := h.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(user.ID, sid, user.Name, ttl, h.Issuer, []string{TokenAudience}, time.Now().UTC())
	token, err := h.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		_ = h.SessionService.Logout(ctx, sid)
		httpx.WriteJSON(w, http.StatusInternalServerError, consolesdk.ErrorResponse{
			Error:            consolesdk.ErrorCodeServerError,
			ErrorDescription: "Failed to issue session token",
		})
		return
	}

	u := toUser(*user)
	httpx.WriteJSON(w, http.StatusOK, consolesdk.LoginResponse{
		Authenticated: true,
		Token:         token,
		TokenType:     "Bearer",
		ExpiresIn:     int(ttl.Seconds()),
		User:          &u,
	})
}

type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP clears the current user of the session.
//
//	@Summary		Log out
//	@Description	Clears the session's current user. The token stops working immediately.
//	@Tags			Session
//	@Success		204	"Logged out"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/session/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.SessionService.Logout(ctx, httpx.SessionIDFromContext(ctx)); err != nil {
		writeError(w, log, err, "log out")
		return
	}
	log.Info("user logged out")
	w.WriteHeader(http.StatusNoContent)
}

type CurrentSessionHandler struct {
	Authorizer *service.Authorizer
}

// ServeHTTP describes the session's current user.
//
//	@Summary		Current session
//	@Description	Returns the signed-in user as stored in the session, the permissions of their current role and the first console page they may open.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	consolesdk.SessionResponse	"Current user"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/session [get].
func (h *CurrentSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ident, _ := identityFromContext(ctx)

	perms, err := h.Authorizer.Permissions(ctx, ident.ID)
	if err != nil {
		writeError(w, log, err, "load permissions")
		return
	}
	page, err := h.Authorizer.LandingPage(ctx, ident.ID)
	if err != nil {
		writeError(w, log, err, "resolve landing page")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consolesdk.SessionResponse{
		User:        identityToUser(ident),
		Permissions: permStrings(perms),
		LandingPage: string(page),
	})
}
