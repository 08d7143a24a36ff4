package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/httpserver"
	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions wires the modules served by the API.
type RouterOptions struct {
	Logger *slog.Logger

	// AuthGate admits only authenticated requests, normally
	// session.Manager.RequireAuth.
	AuthGate func(http.Handler) http.Handler

	// Account is mounted at /api/auth and gates its own protected routes.
	Account Mountable
	// Todos is mounted at /api/todos behind AuthGate.
	Todos   Mountable

	// ReadinessChecks back /health/ready.
	ReadinessChecks  []httpserver.Check
	ReadinessTimeout time.Duration
}

// Router builds the application router:
//
//	GET  /health/live
//	GET  /health/ready
//	POST /api/auth/register, /api/auth/login, /api/auth/logout
//	GET  /api/auth/me
//	*    /api/todos...
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	timeout := opts.ReadinessTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		requestLogger(log),
		recoverer(log),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, r, handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, r, handler.ErrMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, timeout, opts.ReadinessChecks...))

	r.Route("/api", func(r chi.Router) {
		if opts.Account != nil {
			r.Mount("/auth", opts.Account.Handle())
		}
		if opts.Todos != nil {
			gate := opts.AuthGate
			if gate == nil {
				panic("api: Todos requires AuthGate")
			}
			r.Group(func(r chi.Router) {
				r.Use(gate)
				r.Mount("/todos", opts.Todos.Handle())
			})
		}
	})

	return r
}
