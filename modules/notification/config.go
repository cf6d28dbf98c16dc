package notification

import (
	"time"

	"github.com/hostcities/notify/pkg/ratelimit"
)

const localDevOrigin = "http://localhost:3000"

// Config holds the endpoint settings.
type Config struct {
	SiteURL            string        `env:"SITE_URL" envDefault:"https://worldcup26hostcities.com"`
	SenderEmail        string        `env:"SENDER_EMAIL" envDefault:"noreply@worldcup26hostcities.com"`
	AllowedOrigins     []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	AllowMissingOrigin bool          `env:"ALLOW_MISSING_ORIGIN" envDefault:"false"`
	RateLimitWindow    time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
	RateLimitMax       int           `env:"RATE_LIMIT_MAX" envDefault:"20"`
	RateLimitAlgorithm string        `env:"RATE_LIMIT_ALGORITHM" envDefault:"fixed"`
	SendTimeout        time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`
	MaxBodyBytes       int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`
}

// DefaultConfig returns the values the env tags default to.
func DefaultConfig() Config {
	return Config{
		SiteURL:            "https://worldcup26hostcities.com",
		SenderEmail:        "noreply@worldcup26hostcities.com",
		RateLimitWindow:    time.Minute,
		RateLimitMax:       20,
		RateLimitAlgorithm: string(ratelimit.AlgorithmFixed),
		SendTimeout:        15 * time.Second,
		MaxBodyBytes:       64 << 10,
	}
}

// Origins returns ALLOWED_ORIGINS, or the site URL plus the local dev
// server when it is unset.
func (c Config) Origins() []string {
	if len(c.AllowedOrigins) > 0 {
		return c.AllowedOrigins
	}
	return []string{c.SiteURL, localDevOrigin}
}

// NewLimiter builds the send-email rate limiter on top of store.
func NewLimiter(cfg Config, store ratelimit.Store) (ratelimit.Limiter, error) {
	return ratelimit.New(ratelimit.Algorithm(cfg.RateLimitAlgorithm), store, cfg.RateLimitMax, cfg.RateLimitWindow)
}
