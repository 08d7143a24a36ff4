package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/todokit/pkg/binder"
	"github.com/dmitrymomot/todokit/pkg/validator"
)

// JSONResponse is the standard JSON response envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON renders v under the "data" key with status 200 unless overridden.
// A non-nil empty slice is rendered as [] rather than omitted.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err under the "error" key. The status and code are
// derived from err by ClassifyError.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := ClassifyError(err)
	r := &jsonResponse{
		status: status,
		body:   JSONResponse{Error: detail},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ClassifyError maps err to an HTTP status and a client-safe error body.
// Anything not recognised becomes a generic 500 so that internal error
// text never reaches the client.
func ClassifyError(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusBadRequest, &ErrorDetail{
			Code:    "validation_error",
			Message: "Validation failed",
			Details: verrs.Map(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: httpErr.Text()}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ClassifyError(ErrUnsupportedMediaType)
	case errors.Is(err, binder.ErrRequestTooLarge):
		return ClassifyError(ErrRequestEntityTooLarge)
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: "Malformed request body"}
	}

	return ErrInternalServerError.Code, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: ErrInternalServerError.Text(),
	}
}
