package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hostcities/notify/migrations"
	"github.com/hostcities/notify/modules/notification"
	"github.com/hostcities/notify/pkg/clientip"
	"github.com/hostcities/notify/pkg/config"
	"github.com/hostcities/notify/pkg/email"
	"github.com/hostcities/notify/pkg/httpserver"
	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/metrics"
	"github.com/hostcities/notify/pkg/origin"
	"github.com/hostcities/notify/pkg/pg"
	"github.com/hostcities/notify/pkg/ratelimit"
	"github.com/hostcities/notify/pkg/redis"
	"github.com/hostcities/notify/pkg/requestid"
)

type appConfig struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"hostcities-notify"`
	// LogLevel overrides the APP_ENV preset: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL"`

	HTTP     httpserver.Config
	ClientIP clientip.Config
	Email    email.Config
	Notify   notification.Config
	PG       pg.Config
	Redis    redis.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func loggerOptions(cfg appConfig) ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return opts, nil
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts, err := loggerOptions(cfg)
	if err != nil {
		return err
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver, err := clientip.NewFromConfig(cfg.ClientIP)
	if err != nil {
		return err
	}
	if cfg.ClientIP.TrustedHeader == "" {
		log.WarnContext(ctx, "CLIENT_IP_HEADER is not set, rate limits key on the peer address")
	}

	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "email provider configured", slog.String("provider", cfg.Email.Provider))

	m := metrics.New()
	svcOpts := []notification.Option{
		notification.WithLogger(log),
		notification.WithMetrics(m),
	}
	var checks []httpserver.Check

	if cfg.PG.Enabled() {
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.PG.AutoMigrate {
			if err := pg.Migrate(ctx, pool, migrations.FS, cfg.PG, log); err != nil {
				return err
			}
		}

		svcOpts = append(svcOpts, notification.WithStore(notification.NewPostgresStore(pool)))
		checks = append(checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})
	} else {
		log.WarnContext(ctx, "PG_CONN_URL is not set, predictions will not be persisted")
	}

	var store ratelimit.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		if store, err = ratelimit.NewRedisStore(client); err != nil {
			return err
		}
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		mem := ratelimit.NewMemoryStore()
		defer mem.Close()
		store = mem
		log.InfoContext(ctx, "REDIS_URL is not set, rate limits are per instance")
	}

	limiter, err := notification.NewLimiter(cfg.Notify, store)
	if err != nil {
		return err
	}

	origins := cfg.Notify.Origins()
	svc := notification.NewService(cfg.Notify, sender,
		origin.New(origins, origin.WithAllowMissing(cfg.Notify.AllowMissingOrigin)),
		limiter,
		svcOpts...,
	)

	router := newRouter(routerConfig{
		log:      log,
		clientIP: resolver,
		origins:  origins,
		api:      svc.Handle(),
		metrics:  m,
		checks:   checks,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
