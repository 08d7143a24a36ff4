package todos

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/binder"
)

// Handle returns the todo routes, meant to be mounted under /api/todos
// behind the auth gate.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/", handler.Wrap(s.create,
		handler.WithBinders[handler.Context, createRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, createRequest](s.errorHandler),
	))

	r.Get("/{id}", handler.Wrap(s.get,
		handler.WithBinders[handler.Context, itemRequest](path),
		handler.WithErrorHandler[handler.Context, itemRequest](s.errorHandler),
	))
	r.Put("/{id}", handler.Wrap(s.update,
		handler.WithBinders[handler.Context, updateRequest](path, binder.JSON()),
		handler.WithErrorHandler[handler.Context, updateRequest](s.errorHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.delete,
		handler.WithBinders[handler.Context, itemRequest](path),
		handler.WithErrorHandler[handler.Context, itemRequest](s.errorHandler),
	))

	return r
}
