package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostcities/notify/pkg/clientip"
	"github.com/hostcities/notify/pkg/httpserver"
	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/metrics"
	"github.com/hostcities/notify/pkg/requestid"
)

func testRouter(checks ...httpserver.Check) http.Handler {
	return testRouterWith(nil, checks...)
}

func testRouterWith(rs *clientip.Resolver, checks ...httpserver.Check) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /send-email", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestid.FromContext(r.Context()) + "|" + clientip.GetIPFromContext(r.Context())))
	})

	return newRouter(routerConfig{
		log:      logger.Noop(),
		clientIP: rs,
		origins:  []string{"https://worldcup26hostcities.com/", "http://localhost:3000"},
		api:      api,
		metrics:  metrics.New(),
		checks:   checks,
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
	})

	t.Run("readiness reports failing checks", func(t *testing.T) {
		t.Parallel()
		router := testRouter(
			httpserver.Check{Name: "postgres", Fn: func(context.Context) error { return nil }},
			httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("down") }},
		)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"not_ready","checks":{"postgres":"ok","redis":"fail"}}`, rec.Body.String())
	})
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_API(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
	req.RemoteAddr = "198.51.100.4:1234"
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(requestid.Header)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id+"|198.51.100.4", rec.Body.String())
}

func TestRouter_ClientIP(t *testing.T) {
	t.Parallel()

	post := func(router http.Handler) string {
		req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.4")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		_, ip, _ := strings.Cut(rec.Body.String(), "|")
		return ip
	}

	assert.Equal(t, "10.0.0.9", post(testRouter()))

	rs, err := clientip.NewFromConfig(clientip.Config{
		TrustedHeader:  "X-Forwarded-For",
		TrustedProxies: []string{"10.0.0.0/8"},
	})
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.4", post(testRouterWith(rs)))
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodOptions, "/api/send-email", nil)
		req.Header.Set("Origin", "https://worldcup26hostcities.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, req)

		assert.Equal(t, "https://worldcup26hostcities.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("preflight from a foreign origin", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodOptions, "/api/send-email", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
