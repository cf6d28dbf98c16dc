package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostcities/notify/modules/notification"
	"github.com/hostcities/notify/pkg/config"
	"github.com/hostcities/notify/pkg/ratelimit"
)

func TestConfig_Load(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg notification.Config
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, notification.DefaultConfig(), cfg)
		assert.Equal(t, []string{"https://worldcup26hostcities.com", "http://localhost:3000"}, cfg.Origins())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		var cfg notification.Config
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
			"SITE_URL":             "https://staging.example.com",
			"ALLOWED_ORIGINS":      "https://a.example,https://b.example",
			"ALLOW_MISSING_ORIGIN": "true",
			"RATE_LIMIT_WINDOW":    "30s",
			"RATE_LIMIT_MAX":       "5",
			"RATE_LIMIT_ALGORITHM": "sliding",
		})))

		assert.Equal(t, "https://staging.example.com", cfg.SiteURL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
		assert.True(t, cfg.AllowMissingOrigin)
		assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
		assert.Equal(t, 5, cfg.RateLimitMax)
		assert.Equal(t, "sliding", cfg.RateLimitAlgorithm)
	})
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	cfg := notification.DefaultConfig()

	limiter, err := notification.NewLimiter(cfg, store)
	require.NoError(t, err)
	assert.IsType(t, &ratelimit.FixedWindow{}, limiter)

	cfg.RateLimitAlgorithm = "sliding"
	limiter, err = notification.NewLimiter(cfg, store)
	require.NoError(t, err)
	assert.IsType(t, &ratelimit.SlidingWindow{}, limiter)

	cfg.RateLimitAlgorithm = "leaky"
	_, err = notification.NewLimiter(cfg, store)
	assert.ErrorIs(t, err, ratelimit.ErrUnknownAlgorithm)
}
