package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hostcities/notify/pkg/async"
	"github.com/hostcities/notify/pkg/email"
	"github.com/hostcities/notify/pkg/email/templates"
	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/metrics"
)

// bestEffort runs fn and logs a failure instead of returning it. It reports
// whether fn succeeded.
func bestEffort(ctx context.Context, log *slog.Logger, op string, fn func(context.Context) error) bool {
	if err := fn(ctx); err != nil {
		log.WarnContext(ctx, "best-effort operation failed",
			logger.Operation(op),
			logger.Error(err),
		)
		return false
	}
	return true
}

func outcome(ok bool, success string) string {
	if ok {
		return success
	}
	return metrics.OutcomeFailed
}

// persist upserts sub when a store is configured.
func (s *Service) persist(ctx context.Context, log *slog.Logger, sub PredictionSubmission) {
	if s.store == nil {
		s.metrics.StoreWrite(metrics.OutcomeSkipped)
		log.DebugContext(ctx, "prediction store not configured, skipping upsert")
		return
	}

	ok := bestEffort(ctx, log, "upsert_prediction", func(ctx context.Context) error {
		return s.store.UpsertPrediction(ctx, sub)
	})
	s.metrics.StoreWrite(outcome(ok, metrics.OutcomeOK))
}

// notifySignup sends the admin notification and the confirmation
// concurrently and waits for both. Failures are logged and counted only.
func (s *Service) notifySignup(ctx context.Context, log *slog.Logger, sub PredictionSubmission) {
	task := func(kind string, build func(context.Context, PredictionSubmission) (email.SendEmailParams, error)) func(context.Context, PredictionSubmission) (bool, error) {
		return func(ctx context.Context, sub PredictionSubmission) (bool, error) {
			ok := bestEffort(ctx, log, "send_"+kind+"_email", func(ctx context.Context) error {
				params, err := build(ctx, sub)
				if err != nil {
					return err
				}
				return s.sender.SendEmail(ctx, params)
			})
			s.metrics.Email(kind, outcome(ok, metrics.OutcomeSent))
			return ok, nil
		}
	}

	settled := async.SettleAll(
		async.Async(ctx, sub, task(kindAdmin, s.adminSignupParams)),
		async.Async(ctx, sub, task(kindConfirmation, s.confirmationParams)),
	)

	for i, res := range settled {
		if res.OK() {
			continue
		}
		kind := []string{kindAdmin, kindConfirmation}[i]
		s.metrics.Email(kind, metrics.OutcomeFailed)
		log.WarnContext(ctx, "signup email task aborted",
			slog.String("kind", kind),
			logger.Error(res.Err),
		)
	}
}

// sendContact sends the contact message. Its error is returned.
func (s *Service) sendContact(ctx context.Context, msg ContactMessage) error {
	html, err := templates.Render(ctx, contactEmail(s.cfg.SiteURL, msg))
	if err != nil {
		return errors.Join(ErrRenderEmail, err)
	}

	err = s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.cfg.SenderEmail,
		Subject:  contactSubject(msg),
		BodyHTML: html,
		ReplyTo:  msg.Email,
		Tag:      TypeContactForm,
	})
	s.metrics.Email(kindContact, outcome(err == nil, metrics.OutcomeSent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContactEmail, err)
	}
	return nil
}

func (s *Service) adminSignupParams(ctx context.Context, sub PredictionSubmission) (email.SendEmailParams, error) {
	html, err := templates.Render(ctx, adminSignupEmail(s.cfg.SiteURL, sub))
	if err != nil {
		return email.SendEmailParams{}, errors.Join(ErrRenderEmail, err)
	}
	return email.SendEmailParams{
		SendTo:   s.cfg.SenderEmail,
		Subject:  adminSignupSubject(sub),
		BodyHTML: html,
		Tag:      TypePredictorSignup + "-" + kindAdmin,
	}, nil
}

func (s *Service) confirmationParams(ctx context.Context, sub PredictionSubmission) (email.SendEmailParams, error) {
	html, err := templates.Render(ctx, confirmationEmail(s.cfg.SiteURL, sub))
	if err != nil {
		return email.SendEmailParams{}, errors.Join(ErrRenderEmail, err)
	}
	return email.SendEmailParams{
		SendTo:   sub.Email,
		Subject:  confirmationSubject,
		BodyHTML: html,
		Tag:      TypePredictorSignup + "-" + kindConfirmation,
	}, nil
}
