package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/sessionx"
	"github.com/klantsync/klantsync/pkg/slogx"

	_ "github.com/klantsync/klantsync/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions     *sessionx.Manager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	InviteService   *service.InviteService
	RelationService *service.RelationService
	ProjectService  *service.ProjectService
	UpdateService   *service.UpdateService
}

func NewRouter(
	sessions *sessionx.Manager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		sessions:     sessions,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProjects()
	r.registerInvites()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			KlantSync Portal API
//	@version		0.1.0
//	@description	Project-tracking portal connecting freelancers and their clients.
//	@description
//	@description				Freelancers own projects and invite clients by email; accepting an invite links
//	@description				the two accounts and attaches the client to the referenced project.
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

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// Both endpoints take credentials, so both get the strict IP limit.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProjects() {
	projects := &ProjectsHandler{ProjectService: r.ProjectService}
	updates := &UpdatesHandler{UpdateService: r.UpdateService}

	authn := httpx.SessionMiddleware(r.sessions)

	r.Mux.Handle("GET /v1/projects",
		httpx.Chain(http.HandlerFunc(projects.HandleList),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/projects",
		httpx.Chain(http.HandlerFunc(projects.HandleCreate),
			authn,
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/projects/{id}",
		httpx.Chain(http.HandlerFunc(projects.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/projects/{id}",
		httpx.Chain(http.HandlerFunc(projects.HandleEdit),
			authn,
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/projects/{id}",
		httpx.Chain(http.HandlerFunc(projects.HandleDelete),
			authn,
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/projects/{id}/updates",
		httpx.Chain(http.HandlerFunc(updates.HandleList),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/projects/{id}/updates",
		httpx.Chain(http.HandlerFunc(updates.HandlePost),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	invites := &InvitesHandler{InviteService: r.InviteService}
	accept := &InviteAcceptHandler{InviteService: r.InviteService, Sessions: r.sessions}

	authn := httpx.SessionMiddleware(r.sessions)

	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(http.HandlerFunc(invites.HandleList),
			authn,
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(http.HandlerFunc(invites.HandleIssue),
			authn,
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Acceptance is public: the GET view pre-fills the form behind an
	// invite link, the POST consumes the token. A session is optional on
	// POST since both logged-in clients and new visitors land here.
	r.Mux.Handle("GET /v1/invites/accept/{token}",
		httpx.Chain(http.HandlerFunc(accept.HandleView),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/accept/{token}",
		httpx.Chain(http.HandlerFunc(accept.HandleAccept),
			httpx.OptionalSessionMiddleware(r.sessions),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{RelationService: r.RelationService}

	r.Mux.Handle("GET /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.SessionMiddleware(r.sessions),
			httpx.RequireRole("freelancer"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
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
