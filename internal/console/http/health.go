package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	consolesdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, consolesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Pings the database and the session store and checks a signing key is loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	consolesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	consolesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	sessions session.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &consolesdk.HealthChecks{
			Database: "ok",
			Sessions: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK
		fail := func(field *string, msg string) {
			*field = "error: " + msg
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := st.Ping(r.Context()); err != nil {
			fail(&checks.Database, err.Error())
		}
		if err := sessions.Ping(r.Context()); err != nil {
			fail(&checks.Sessions, err.Error())
		}
		if !keys.IsReady() {
			fail(&checks.Signer, "no keys loaded")
		}

		httpx.WriteJSON(w, statusCode, consolesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// JWKSHandler exposes the keys that verify session tokens.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify session tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	consolesdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, consolesdk.JWKSResponse(keys.PublicJWKS()))
	}
}
