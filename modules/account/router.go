package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/binder"
)

// Handle returns the account routes, meant to be mounted under /api/auth:
//
//	POST /register
//	POST /login
//	POST /logout
//	GET  /me        (requires a session)
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handler.Wrap(s.register,
		handler.WithBinders[handler.Context, registerRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, registerRequest](s.errorHandler),
	))

	r.Post("/login", handler.Wrap(s.login,
		handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, loginRequest](s.errorHandler),
	))

	// Logout never needs a live session.
	r.Post("/logout", handler.Wrap(s.logout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.With(s.sessions.RequireAuth).Get("/me", handler.Wrap(s.me,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}
