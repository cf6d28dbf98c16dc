package notification

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hostcities/notify/handler"
	"github.com/hostcities/notify/pkg/binder"
	"github.com/hostcities/notify/pkg/email"
	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/metrics"
	"github.com/hostcities/notify/pkg/origin"
	"github.com/hostcities/notify/pkg/ratelimit"
)

// rateLimitScope namespaces the limiter keys of this endpoint.
const rateLimitScope = "send-email"

// Service serves the send-email endpoint.
type Service struct {
	cfg     Config
	sender  email.EmailSender
	origins origin.Policy
	limiter ratelimit.Limiter
	store   PredictionStore
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithStore enables persistence of predictor signups.
func WithStore(store PredictionStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics enables Prometheus counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates the endpoint. sender, origins and limiter are required.
func NewService(cfg Config, sender email.EmailSender, origins origin.Policy, limiter ratelimit.Limiter, opts ...Option) *Service {
	if sender == nil {
		panic("notification.NewService: sender is required")
	}
	if origins == nil {
		panic("notification.NewService: origin policy is required")
	}
	if limiter == nil {
		panic("notification.NewService: limiter is required")
	}

	s := &Service{
		cfg:     cfg,
		sender:  sender,
		origins: origins,
		limiter: limiter,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("notification"))
	return s
}

// Handle returns the router for the endpoint. Mount it under /api.
//
// Gates run in a fixed order: origin check, rate limit, body parse, type
// dispatch. A request rejected by one gate never reaches the next.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.With(
		origin.Middleware(s.origins, origin.WithForbiddenHandler(s.forbidden)),
		ratelimit.Middleware(s.limiter, rateLimitKey,
			ratelimit.WithOnLimitReached(s.tooManyRequests),
			ratelimit.WithOnError(s.rateLimitFailed),
		),
	).Post("/send-email", handler.Wrap(s.sendEmail,
		handler.WithBinders[Request](binder.JSON(binder.WithMaxBytes(s.cfg.MaxBodyBytes))),
		handler.WithErrorHandler[Request](s.errorHandler()),
	))

	return r
}

func rateLimitKey(r *http.Request) string {
	return ratelimit.Key(rateLimitScope, origin.ClientKey(r))
}

func (s *Service) forbidden(w http.ResponseWriter, r *http.Request, d origin.Decision) {
	s.log.DebugContext(r.Context(), "origin rejected",
		slog.String("origin", d.Origin),
		slog.String("client", d.ClientKey),
	)
	s.metrics.Request(typeUnknown, http.StatusForbidden)
	_ = handler.WriteError(w, handler.ErrForbidden)
}

func (s *Service) tooManyRequests(w http.ResponseWriter, r *http.Request, res *ratelimit.Result) {
	s.log.InfoContext(r.Context(), "rate limit exceeded",
		slog.String("client", origin.ClientKey(r)),
		slog.Int("retry_after", res.RetryAfterSeconds()),
	)
	s.metrics.RateLimited()
	s.metrics.Request(typeUnknown, http.StatusTooManyRequests)
	_ = handler.WriteError(w, handler.ErrTooManyRequests)
}

func (s *Service) rateLimitFailed(r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "rate limiter unavailable, allowing request",
		logger.Error(err),
	)
}

// errorHandler counts failures that happen before a type is known and
// delegates the response to the default boundary.
func (s *Service) errorHandler() handler.ErrorHandler {
	base := handler.NewErrorHandler(s.log)
	return func(ctx handler.Context, err error) {
		var httpErr handler.HTTPError
		if !errors.As(err, &httpErr) && !errors.Is(err, ErrContactEmail) {
			s.metrics.Request(typeUnknown, http.StatusInternalServerError)
		}
		base(ctx, err)
	}
}

func (s *Service) sendEmail(ctx handler.Context, req Request) handler.Response {
	switch req.Type {
	case TypePredictorSignup:
		return s.predictorSignup(ctx, req)
	case TypeContactForm:
		return s.contactForm(ctx, req)
	default:
		s.metrics.Request(typeUnknown, http.StatusBadRequest)
		return handler.JSONError(ErrInvalidRequestType)
	}
}

func (s *Service) predictorSignup(ctx handler.Context, req Request) handler.Response {
	sub, err := parseSignup(req.Data)
	if err != nil {
		s.metrics.Request(TypePredictorSignup, http.StatusBadRequest)
		return handler.Error(err)
	}
	sub.CreatedAt = time.Now().UTC()

	// The signup already counts as accepted; finish the side effects even
	// if the client goes away.
	bgCtx, cancel := s.sideEffectContext(ctx)
	defer cancel()

	log := s.log.With(logger.EntryID(sub.UniqueID))
	s.persist(bgCtx, log, sub)
	s.notifySignup(bgCtx, log, sub)

	s.metrics.Request(TypePredictorSignup, http.StatusOK)
	return handler.Success()
}

func (s *Service) contactForm(ctx handler.Context, req Request) handler.Response {
	msg, err := parseContact(req.Data)
	if err != nil {
		s.metrics.Request(TypeContactForm, http.StatusBadRequest)
		return handler.Error(err)
	}

	sendCtx, cancel := s.sideEffectContext(ctx)
	defer cancel()

	if err := s.sendContact(sendCtx, msg); err != nil {
		s.metrics.Request(TypeContactForm, http.StatusInternalServerError)
		return handler.Error(err)
	}

	s.metrics.Request(TypeContactForm, http.StatusOK)
	return handler.Success()
}

// sideEffectContext detaches ctx from client cancellation and bounds it by
// SendTimeout. Request-scoped values such as the request id are kept.
func (s *Service) sideEffectContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.cfg.SendTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.cfg.SendTimeout)
}
