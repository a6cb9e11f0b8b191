package router

import (
	"choreboard/internal/handlers/auth"
	"choreboard/internal/handlers/chore"
	"choreboard/internal/handlers/choretype"
	"choreboard/internal/handlers/dashboard"
	"choreboard/internal/handlers/list"
	"choreboard/internal/handlers/user"
	"choreboard/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Chore     chore.Handler
	List      list.Handler
	ChoreType choretype.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every route on router. Authentication and chore routes
// share the root; everything but auth, metrics and docs requires a session.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		r.App.Recover,
		r.App.Tracing,
		r.App.Metrics,
		r.App.CORS(),
		r.App.RateLimit(),
	)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.DomainHandlers.Auth.Router(router)

	router.Group(func(protected chi.Router) {
		protected.Use(r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.User.Router(protected)
		r.DomainHandlers.Chore.Router(protected)
		r.DomainHandlers.List.Router(protected)
		r.DomainHandlers.Dashboard.Router(protected)
	})

	router.Group(func(internal chi.Router) {
		internal.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.ChoreType.Router(internal)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
