package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/binder"
	"github.com/dmitrymomot/todokit/pkg/validator"
)

type echoRequest struct {
	Name string `json:"name"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := func(ctx handler.Context, req echoRequest) handler.Response {
		if req.Name == "" {
			return handler.JSONError(validator.ValidationErrors{{Field: "name", Message: "is required"}})
		}
		return handler.JSON(map[string]string{"hello": req.Name}, handler.WithJSONStatus(http.StatusCreated))
	}
	wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, echoRequest](binder.JSON()))

	t.Run("binds and renders", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ann"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"hello":"ann"}}`, rec.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"validation_error","message":"Validation failed","details":{"name":["is required"]}}}`, rec.Body.String())
	})

	t.Run("binder error uses error handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "bad_request", body["error"].(map[string]any)["code"])
	})

	t.Run("nil response", func(t *testing.T) {
		nilHandler := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response { return nil })
		rec := httptest.NewRecorder()
		nilHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(ctx handler.Context, req struct{}) handler.Response { return handler.Empty() },
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestJSON_EmptySlice(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON([]string{}).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", handler.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped http error", fmt.Errorf("lookup: %w", handler.ErrConflict), http.StatusConflict, "conflict"},
		{"custom", handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials", "Invalid email or password"), http.StatusUnauthorized, "invalid_credentials"},
		{"validation", validator.ValidationErrors{{Field: "title"}}, http.StatusBadRequest, "validation_error"},
		{"media type", fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType), http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"too large", binder.ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
		{"unknown", errors.New("mongo: connection refused"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.NotContains(t, detail.Message, "mongo")
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	errHandler := handler.NewErrorHandler(log)

	h := handler.Wrap(
		func(ctx handler.Context, req struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](errHandler),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_server_error","message":"Internal Server Error"}}`, rec.Body.String())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "/boom", record["path"])
	assert.Equal(t, handler.ErrNilResponse.Error(), record["error"])
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), handler.ErrUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"unauthorized","message":"Unauthorized"}}`, rec.Body.String())
}

func TestError_RoutesToErrorHandler(t *testing.T) {
	t.Parallel()

	var handled error
	h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Error(handler.ErrConflict)
	}, handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
		handled = err
		handler.WriteError(ctx.ResponseWriter(), ctx.Request(), err)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.ErrorIs(t, handled, handler.ErrConflict)
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "conflict", body["error"].(map[string]any)["code"])
}
