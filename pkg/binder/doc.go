// Package binder decodes HTTP request data into typed request structs.
//
// Binders share the signature func(*http.Request, any) error and are plugged
// into handler.Wrap with handler.WithBinders. They run in order, so a request
// struct may combine a JSON body with path parameters:
//
//	type updateTodoRequest struct {
//		ID        string  `path:"id"`
//		Title     *string `json:"title"`
//		Completed *bool   `json:"completed"`
//	}
//
//	handler.WithBinders[handler.Context, updateTodoRequest](
//		binder.Path(chi.URLParam),
//		binder.JSON(),
//	)
//
// All failures wrap one of the package sentinels (ErrFailedToParseJSON,
// ErrUnsupportedMediaType, ErrRequestTooLarge, ErrFailedToParsePath).
package binder
