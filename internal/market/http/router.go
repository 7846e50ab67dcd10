package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openlocal/market/internal/market/service"
	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/jwtx"
	"github.com/openlocal/market/pkg/slogx"

	_ "github.com/openlocal/market/api/market" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	RegistrationService *service.RegistrationService
	UserService         *service.UserService
	RolesService        *service.RolesService
	SellerService       *service.SellerService
	BootstrapService    *service.BootstrapService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccount()
	r.registerRoles()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OpenLocal Market API
//	@version		0.1.0
//	@description	Marketplace account service: registration, login, roles,
//	@description	seller upgrades and user locations. Access tokens are
//	@description	EdDSA-signed JWTs whose scopes derive from the user's role.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	verifyHandler := &VerifyEmailHandler{RegistrationService: r.RegistrationService}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/verify-email - strict rate limit (token guessing)
	r.Mux.Handle("POST /v1/auth/verify-email",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	meHandler := &MeHandler{UserService: r.UserService}
	locationHandler := &LocationHandler{UserService: r.UserService}
	upgradeHandler := &UpgradeHandler{SellerService: r.SellerService}
	appointmentsHandler := &AppointmentsHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("profile:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PUT /v1/me/location",
		httpx.Chain(locationHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("profile:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/me/upgrade-to-seller",
		httpx.Chain(upgradeHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("profile:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/me/appointments",
		httpx.Chain(appointmentsHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("profile:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	// GET /roles - public reference data, high limit
	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
