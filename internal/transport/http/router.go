// Package httptransport wires the HTTP surface: middleware stack, health and
// metrics endpoints, the journey-facing validation and simulation routes
// behind basic auth, and the admin routes behind bearer tokens.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandler "roster/internal/admin/handler"
	"roster/internal/platform/health"
	"roster/internal/platform/middleware"
	simulationhandler "roster/internal/simulation/handler"
	validationhandler "roster/internal/validation/handler"
)

const requestTimeout = 30 * time.Second

// Deps carries the wired handlers and guards the router mounts.
type Deps struct {
	Logger *slog.Logger
	Health *health.Handler

	Validation *validationhandler.Handler
	Simulation *simulationhandler.Handler
	Admin      *adminhandler.Handler

	// Journey-facing credentials presented by the orchestration engine.
	BasicAuthUser string
	BasicAuthHash string

	// Admin bearer-token validation.
	TokenValidator middleware.TokenValidator
}

// NewRouter assembles the service's full HTTP handler.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientInfo)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)

	// Unauthenticated operational endpoints.
	deps.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Journey-facing endpoints called by the orchestration engine.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBasicAuth(deps.BasicAuthUser, deps.BasicAuthHash, deps.Logger))
		deps.Validation.Register(r)
		deps.Simulation.Register(r)
	})

	// Operator endpoints.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(deps.TokenValidator, deps.Logger))
		deps.Admin.RegisterAdmin(r)
	})

	return r
}
