// Package httpserver runs an http.Handler with sane timeouts and a
// context-driven graceful shutdown, and provides liveness and readiness
// handlers.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns nil after a clean shutdown. Listen failures wrap ErrStart and
// a shutdown that exceeds the timeout wraps ErrShutdown.
package httpserver
