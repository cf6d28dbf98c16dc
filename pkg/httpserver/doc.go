// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness and readiness handlers.
//
// Run binds the listener, logs the bound address, and blocks until the
// context is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called.
// Shutdown waits up to the configured shutdown timeout for in-flight
// requests. Errors are wrapped with ErrStart or ErrShutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Health endpoints:
//
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, 2*time.Second,
//		httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)},
//	))
package httpserver
