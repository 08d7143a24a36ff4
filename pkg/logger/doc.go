// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and transparent injection of values stored
// in context.Context (for example a request id).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "todokit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "todo created",
//	    logger.UserID(userID),
//	    logger.Component("todos"),
//	)
//
// Helpers such as Error return an empty slog.Attr for nil input, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
