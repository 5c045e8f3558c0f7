package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
	"github.com/unrolled/secure"

	_ "github.com/aussiebroadwan/stellar/api/console" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	signer       jwtx.Signer
	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions session.Store

	// TokenTTL is the lifetime of issued session tokens (default 12h).
	TokenTTL time.Duration
	// Delay is added to every /v1 request when positive.
	Delay time.Duration

	SessionService   *service.SessionService
	UserService      *service.UserService
	RolesService     *service.RolesService
	AuditService     *service.AuditService
	Authorizer       *service.Authorizer
	DashboardService *service.DashboardService
}

func NewRouter(
	keys *jwtx.KeySet,
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	sessions session.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		signer:       signer,
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	headers := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		// The swagger UI needs its inline bootstrap script and styles.
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:",
	})

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		headers.Handler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerUsers()
	r.registerRoles()
	r.registerAudit()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Stellar Admin Console API
//	@version		0.1.0
//	@description	Backend of the Stellar admin console: user directory, role registry, audit log and permission-gated access.
//	@description
//	@description				Sign in with POST /v1/session/login and send the returned token as a bearer credential. Tokens are EdDSA signed and verifiable with the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/stellar
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) checkPermission(ctx context.Context, userID, permission string) (bool, error) {
	return r.Authorizer.HasPermission(ctx, userID, domain.Permission(permission))
}

// authenticated gates h on a live session.
func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.Delay(r.Delay),
		httpx.AuthnMiddleware(r.verifier), // verify token (iss/aud/exp)
		RequireSession(r.SessionService),  // token must still name a bound slot
		httpx.RateLimitByUser(limit),
	)
}

// permitted gates h on a live session whose current role grants permission.
func (r *Router) permitted(h http.Handler, permission domain.Permission, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.Delay(r.Delay),
		httpx.AuthnMiddleware(r.verifier),
		RequireSession(r.SessionService),
		httpx.RequirePermission(r.checkPermission, string(permission)),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerSession() {
	login := &LoginHandler{
		SessionService: r.SessionService,
		Signer:         r.signer,
		Issuer:         r.issuer,
		TTL:            r.TokenTTL,
	}

	// POST /session/login - strict rate limit by IP (public sign-in)
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(login,
			httpx.Delay(r.Delay),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/session/logout",
		r.authenticated(&LogoutHandler{SessionService: r.SessionService}, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/session",
		r.authenticated(&CurrentSessionHandler{Authorizer: r.Authorizer}, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/dashboard",
		r.permitted(&DashboardHandler{DashboardService: r.DashboardService}, domain.PermViewDashboardStats, httpx.LenientLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users",
		r.permitted(http.HandlerFunc(h.HandleList), domain.PermViewUsers, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/users",
		r.permitted(http.HandlerFunc(h.HandleCreate), domain.PermCreateUsers, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/users/{id}",
		r.permitted(http.HandlerFunc(h.HandleUpdate), domain.PermEditUsers, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{id}",
		r.permitted(http.HandlerFunc(h.HandleDelete), domain.PermDeleteUsers, httpx.ModerateLimit))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	r.Mux.Handle("GET /v1/permissions",
		r.authenticated(http.HandlerFunc(h.HandlePermissions), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/roles",
		r.permitted(http.HandlerFunc(h.HandleList), domain.PermViewRoles, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/roles",
		r.permitted(http.HandlerFunc(h.HandleCreate), domain.PermManageRoles, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/roles/{name}",
		r.permitted(http.HandlerFunc(h.HandleUpdate), domain.PermManageRoles, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/roles/{name}",
		r.permitted(http.HandlerFunc(h.HandleDelete), domain.PermManageRoles, httpx.ModerateLimit))
}

func (r *Router) registerAudit() {
	r.Mux.Handle("GET /v1/audit-logs",
		r.permitted(&AuditLogsHandler{AuditService: r.AuditService}, domain.PermViewAuditLogs, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.sessions, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
