package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todokit/pkg/binder"
)

type payload struct {
	ID        string  `path:"id"`
	Page      int     `path:"page"`
	Title     string  `json:"title"`
	Completed *bool   `json:"completed"`
	Content   *string `json:"content"`
	Ignored   string  `path:"-"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes body", func(t *testing.T) {
		var p payload
		err := bind(jsonRequest(`{"title":"Buy milk","completed":true}`, "application/json; charset=utf-8"), &p)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", p.Title)
		require.NotNil(t, p.Completed)
		assert.True(t, *p.Completed)
		assert.Nil(t, p.Content)
	})

	t.Run("missing content type treated as json", func(t *testing.T) {
		var p payload
		require.NoError(t, bind(jsonRequest(`{"title":"x"}`, ""), &p))
		assert.Equal(t, "x", p.Title)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		var p payload
		err := bind(jsonRequest(`title=x`, "application/x-www-form-urlencoded"), &p)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body leaves target untouched", func(t *testing.T) {
		var p payload
		require.NoError(t, bind(jsonRequest("  ", "application/json"), &p))
		assert.Empty(t, p.Title)
	})

	t.Run("malformed", func(t *testing.T) {
		var p payload
		err := bind(jsonRequest(`{"title":`, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p payload
		err := bind(jsonRequest(`{"title":42}`, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		var p payload
		err := bind(jsonRequest(`{"title":"a"}{"title":"b"}`, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("unknown fields tolerated unless strict", func(t *testing.T) {
		var p payload
		require.NoError(t, bind(jsonRequest(`{"title":"a","id":"x"}`, "application/json"), &p))

		err := binder.JSON(binder.WithStrict())(jsonRequest(`{"title":"a","extra":1}`, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("too large", func(t *testing.T) {
		var p payload
		body := `{"title":"` + strings.Repeat("a", 64) + `"}`
		err := binder.JSON(binder.WithMaxSize(16))(jsonRequest(body, "application/json"), &p)
		assert.ErrorIs(t, err, binder.ErrRequestTooLarge)
	})
}

func withChiParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPath(t *testing.T) {
	t.Parallel()

	bind := binder.Path(chi.URLParam)

	t.Run("binds tagged fields", func(t *testing.T) {
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), "id", "abc", "page", "3", "-", "zzz")
		var p payload
		require.NoError(t, bind(req, &p))
		assert.Equal(t, "abc", p.ID)
		assert.Equal(t, 3, p.Page)
		assert.Empty(t, p.Ignored)
	})

	t.Run("invalid int", func(t *testing.T) {
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), "page", "x")
		var p payload
		assert.ErrorIs(t, bind(req, &p), binder.ErrFailedToParsePath)
	})

	t.Run("non pointer target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.ErrorIs(t, bind(req, payload{}), binder.ErrFailedToParsePath)
	})

	t.Run("nil extractor", func(t *testing.T) {
		var p payload
		err := binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
	})
}
