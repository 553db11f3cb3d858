// Package httpserver runs an http.Handler with timeouts from Config and a
// graceful shutdown when the run context ends.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	srv := httpserver.New(config.MustLoad[httpserver.Config](), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler exposes readiness checks such as a database ping.
package httpserver
