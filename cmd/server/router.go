package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hostcities/notify/handler"
	"github.com/hostcities/notify/pkg/clientip"
	"github.com/hostcities/notify/pkg/httpserver"
	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/metrics"
	"github.com/hostcities/notify/pkg/origin"
	"github.com/hostcities/notify/pkg/requestid"
)

const readinessTimeout = 2 * time.Second

type routerConfig struct {
	log      *slog.Logger
	clientIP *clientip.Resolver
	origins  []string
	api      http.Handler
	metrics  *metrics.Metrics
	checks   []httpserver.Check
}

func newRouter(rc routerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	if rc.clientIP != nil {
		r.Use(rc.clientIP.Middleware)
	} else {
		r.Use(clientip.Middleware)
	}
	r.Use(accessLog(rc.log))
	r.Use(middleware.Recoverer)

	allowed := make([]string, 0, len(rc.origins))
	for _, o := range rc.origins {
		if n := origin.Normalize(o); n != "" {
			allowed = append(allowed, n)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestid.Header, "Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = handler.WriteError(w, handler.NewHTTPError(http.StatusNotFound, "Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		_ = handler.WriteError(w, handler.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(rc.log, readinessTimeout, rc.checks...))
	r.Method(http.MethodGet, "/metrics", rc.metrics.Handler())

	if rc.api != nil {
		r.Mount("/api", rc.api)
	}

	return r
}

// accessLog logs one line per request. Health checks log at debug.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				level := slog.LevelInfo
				if r.URL.Path == "/health/live" || r.URL.Path == "/health/ready" || r.URL.Path == "/metrics" {
					level = slog.LevelDebug
				}
				log.LogAttrs(r.Context(), level, "http request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("client_ip", clientip.GetIPFromContext(r.Context())),
					logger.Component("http"),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
