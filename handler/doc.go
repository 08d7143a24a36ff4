// Package handler provides type-safe HTTP request handling for JSON APIs.
//
// Handlers are generic functions that receive a Context and a bound request
// struct and return a Response:
//
//	type createTodoRequest struct {
//		Title   string `json:"title"`
//		Content string `json:"content"`
//	}
//
//	func (h *Handler) create(ctx handler.Context, req createTodoRequest) handler.Response {
//		todo, err := h.svc.Create(ctx, ownerID, req.Title, req.Content)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(todo, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/todos", handler.Wrap(h.create,
//		handler.WithBinders[handler.Context, createTodoRequest](binder.JSON()),
//	))
//
// # Responses
//
// JSON wraps the payload in {"data": ...}; JSONError renders
// {"error": {"code", "message", "details"}}. Empty writes a bare status.
//
// # Errors
//
// ClassifyError is the single place that turns Go errors into HTTP
// responses: HTTPError values keep their status and key,
// validator.ValidationErrors become 400 "validation_error" with per-field
// details, binder failures become 400/413/415, and everything else a
// generic 500 "internal_server_error". NewErrorHandler adds logging on top.
package handler
