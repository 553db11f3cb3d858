// Command contactform serves the contact form application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/internal/contact"
	"github.com/dmitrymomot/formhandler/pkg/clientip"
	"github.com/dmitrymomot/formhandler/pkg/config"
	"github.com/dmitrymomot/formhandler/pkg/email"
	"github.com/dmitrymomot/formhandler/pkg/httpserver"
	"github.com/dmitrymomot/formhandler/pkg/i18n"
	"github.com/dmitrymomot/formhandler/pkg/logger"
	"github.com/dmitrymomot/formhandler/pkg/metrics"
	"github.com/dmitrymomot/formhandler/pkg/pg"
	"github.com/dmitrymomot/formhandler/pkg/ratelimiter"
	"github.com/dmitrymomot/formhandler/pkg/registry"
	"github.com/dmitrymomot/formhandler/pkg/requestid"
)

type appConfig struct {
	Name           string `env:"APP_NAME" envDefault:"contactform"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	// TrustedIPHeaders names the proxy headers carrying the client address,
	// clientip.DefaultHeaders when empty.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	DB        pg.Config
	Mail      email.Config
	RateLimit ratelimiter.Config
}

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.Extractor),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("contactform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	translator, err := i18n.Load(contact.Locales, i18n.WithLogger(log))
	if err != nil {
		return err
	}
	forms, err := form.NewFactory([]form.Type{contact.Type}, form.WithTranslator(translator))
	if err != nil {
		return err
	}
	log.Debug("form types registered", slog.Any("types", forms.Names()))

	var (
		store  contact.Store = contact.NewMemoryStore()
		checks []httpserver.Check
	)
	if cfg.DB.Enabled() {
		pool, err := pg.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, contact.Migrations, cfg.DB, log); err != nil {
			return err
		}
		store = contact.NewPGStore(pool)
		checks = append(checks, pg.Healthcheck(pool))
	} else {
		log.Warn("no database configured, contact messages are kept in memory")
	}

	sender, err := email.New(cfg.Mail)
	if err != nil {
		return err
	}

	dispatcher := formhandler.NewDispatcher()
	dispatcher.AddListener(formhandler.EventSuccess, contact.NotifyListener(sender, cfg.Mail.SupportEmail, log))

	handlers := registry.New()
	if err := contact.Register(handlers, forms, dispatcher, store, log); err != nil {
		return err
	}

	limiter, err := ratelimiter.New(cfg.RateLimit)
	if err != nil {
		return err
	}
	go pruneEvery(ctx, limiter, cfg.RateLimit.RefillInterval)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustedIPHeaders...),
		i18n.Middleware(translator),
		middleware.Recoverer,
	)
	r.Get("/health", httpserver.HealthHandler(log, checks...))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		counter, err := metrics.NewEventCounter(reg, "contactform")
		if err != nil {
			return err
		}
		defer metrics.Subscribe(dispatcher, counter, formhandler.EventProcess, formhandler.EventSuccess, formhandler.EventFail)()
		r.Handle("/metrics", metrics.Handler(reg))
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: contact.ErrorPage})
	contact.Routes(r, formhandler.NewFactory(handlers, forms), errorHandler, limiter)

	log.Info("starting contactform", slog.String("addr", cfg.HTTP.Addr))
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

func pruneEvery(ctx context.Context, l *ratelimiter.Limiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune()
		}
	}
}
