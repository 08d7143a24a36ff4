package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/todokit/pkg/logger"
)

// logLevel maps HTTP status codes to appropriate log levels
func logLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// NewErrorHandler returns an ErrorHandler that logs the error and renders
// the JSON error envelope. Client errors are logged at WARN, server errors
// at ERROR with the original error attached.
// Configure this once in main.go and pass to all modules.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		resp := JSONError(err)
		status, _ := ClassifyError(err)

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.Error(err),
			logger.StatusCode(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}

// WriteError renders err as a JSON error outside of Wrap, e.g. from
// plain net/http middleware or router fallbacks.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	_ = JSONError(err).Render(w, r)
}
