package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/httpx"
	"github.com/scrob-fm/scrob/pkg/slogx"

	_ "github.com/scrob-fm/scrob/api/scrob" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService     *service.TokenService
	IngestService    *service.IngestService
	StatsService     *service.StatsService
	BootstrapService *service.BootstrapService
	AdminService     *service.AdminService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerTokens()
	r.registerIngest()
	r.registerStats()
	r.registerAdmin()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// authenticate adapts the token service to the middleware contract.
func (r *Router) authenticate() httpx.AuthenticateFunc {
	return func(ctx context.Context, authorization string) (httpx.Principal, error) {
		u, err := r.TokenService.Authenticate(ctx, authorization)
		if err != nil {
			return httpx.Principal{}, err
		}
		return httpx.Principal{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}, nil
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Scrob API
//	@version		0.1.0
//	@description	Self-hosted listening history tracker. Clients submit the
//	@description	tracks a user plays and query their own history and
//	@description	rankings. All tokens are opaque bearer tokens issued by the
//	@description	login and token endpoints.
//
//	@contact.name				Scrob Maintainers
//	@contact.url				https://github.com/scrob-fm/scrob
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
//	@description				Opaque API token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - lenient rate limit by user
	meHandler := &MeHandler{}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTokens() {
	h := &TokensHandler{TokenService: r.TokenService}

	// POST /tokens - moderate rate limit (mints credentials)
	r.Mux.Handle("POST /v1/tokens",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /tokens - lenient rate limit (read only)
	r.Mux.Handle("GET /v1/tokens",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// DELETE /tokens/{id} - moderate rate limit
	r.Mux.Handle("DELETE /v1/tokens/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerIngest() {
	scrobHandler := &ScrobHandler{IngestService: r.IngestService}
	nowHandler := &NowPlayingHandler{IngestService: r.IngestService}

	// POST /scrob - moderate rate limit by user (batched writes)
	r.Mux.Handle("POST /v1/scrob",
		httpx.Chain(scrobHandler,
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /now - moderate rate limit by user (fires on every track change)
	r.Mux.Handle("POST /v1/now",
		httpx.Chain(nowHandler,
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/recent", secured(h.HandleRecent))
	r.Mux.Handle("GET /v1/top/artists", secured(h.HandleTopArtists))
	r.Mux.Handle("GET /v1/top/tracks", secured(h.HandleTopTracks))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.authenticate()),
			httpx.RequireAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/stats", secured(h.HandleStats))
	r.Mux.Handle("GET /v1/admin/users", secured(h.HandleList))
	r.Mux.Handle("GET /v1/admin/users/{id}", secured(h.HandleGet))
	r.Mux.Handle("DELETE /v1/admin/users/{id}", secured(h.HandleDelete))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
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

// principalUser converts the request principal back into the acting
// user shape the services expect.
func principalUser(p httpx.Principal) domain.AuthUser {
	return domain.AuthUser{ID: p.ID, Username: p.Username, IsAdmin: p.IsAdmin}
}
