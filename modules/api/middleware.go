package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/session"
)

// requestLogger logs one line per request. Request bodies and cookies are
// never logged.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.StatusCode(status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
				logger.Component("http"),
			)
		})
	}
}

// recoverer turns panics into a logged 500 with the JSON error body.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					logger.Error(fmt.Errorf("panic: %v", rec)),
					slog.String("stack", string(debug.Stack())),
					logger.Component("http"),
				)
				handler.WriteError(w, r, handler.ErrInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// UnauthorizedHandler renders auth gate rejections with the JSON error
// envelope: 401 for a missing, expired or unknown session and 500 when the
// session store itself failed.
func UnauthorizedHandler(log *slog.Logger) session.UnauthorizedHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if session.IsUnauthenticated(err) {
			handler.WriteError(w, r, handler.ErrUnauthorized)
			return
		}
		log.ErrorContext(r.Context(), "auth gate failed",
			logger.Error(err),
			logger.Component("http"),
		)
		handler.WriteError(w, r, handler.ErrInternalServerError)
	}
}
