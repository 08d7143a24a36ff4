// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is well
// formed and generates a UUID otherwise. The id is stored in the request
// context, echoed back in the response header and, through LoggerExtractor,
// added to every slog record emitted with that context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
