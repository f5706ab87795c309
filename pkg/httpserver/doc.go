// Package httpserver runs an http.Handler with graceful shutdown, server
// timeouts from the environment, health probes and slog logging.
//
// Run blocks until the context is cancelled or the process receives an
// interrupt or TERM signal, then calls http.Server.Shutdown with the
// configured deadline. Serve does the same on a caller-supplied listener,
// which lets tests bind to 127.0.0.1:0 and read the port back with Addr.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve failures are wrapped with ErrStart and shutdown failures
// with ErrShutdown; match them with errors.Is.
package httpserver
