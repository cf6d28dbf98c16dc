package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/resend/resend-go/v2"
)

type resendClient struct {
	client *resend.Client
	sender string
}

// ResendOption configures the Resend sender.
type ResendOption func(*resend.Client) error

// WithResendBaseURL points the client at a different API host.
func WithResendBaseURL(raw string) ResendOption {
	return func(c *resend.Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: invalid Resend base URL: %v", ErrInvalidConfig, err)
		}
		c.BaseURL = u
		return nil
	}
}

// NewResendClient creates a Resend-backed email sender.
func NewResendClient(cfg Config, opts ...ResendOption) (EmailSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: ResendAPIKey is required", ErrInvalidConfig)
	}
	if err := validateSender(cfg.SenderEmail); err != nil {
		return nil, err
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return &resendClient{
		client: client,
		sender: cfg.SenderEmail,
	}, nil
}

// resendTagRegex matches characters Resend rejects in tag values.
var resendTagRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SendEmail implements EmailSender using the Resend emails API.
func (c *resendClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    c.sender,
		To:      []string{params.SendTo},
		Subject: params.Subject,
		Html:    params.BodyHTML,
		ReplyTo: params.ReplyTo,
	}
	if params.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: resendTagRegex.ReplaceAllString(params.Tag, "_")}}
	}

	if _, err := c.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
