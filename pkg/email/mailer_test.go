package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hostcities/notify/pkg/email"
)

// MockEmailSender is a mock implementation of EmailSender for testing
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Test Subject",
		BodyHTML: "<p>Test body</p>",
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*email.SendEmailParams)
		wantErr bool
		errMsg  string
	}{
		{name: "valid params", modify: func(p *email.SendEmailParams) { p.Tag = "test" }},
		{name: "valid with reply-to", modify: func(p *email.SendEmailParams) { p.ReplyTo = "visitor@example.org" }},
		{name: "complex valid email", modify: func(p *email.SendEmailParams) { p.SendTo = "test.user+tag@sub.example.com" }},
		{name: "empty SendTo", modify: func(p *email.SendEmailParams) { p.SendTo = "" }, wantErr: true, errMsg: "SendTo is required"},
		{name: "whitespace only SendTo", modify: func(p *email.SendEmailParams) { p.SendTo = "   " }, wantErr: true, errMsg: "SendTo is required"},
		{name: "invalid email format", modify: func(p *email.SendEmailParams) { p.SendTo = "invalid-email" }, wantErr: true, errMsg: "SendTo must be a valid email address"},
		{name: "missing domain dot", modify: func(p *email.SendEmailParams) { p.SendTo = "user@example" }, wantErr: true, errMsg: "SendTo must be a valid email address"},
		{name: "empty Subject", modify: func(p *email.SendEmailParams) { p.Subject = "" }, wantErr: true, errMsg: "Subject is required"},
		{name: "multiline Subject", modify: func(p *email.SendEmailParams) { p.Subject = "Hi\r\nBcc: x@y.z" }, wantErr: true, errMsg: "Subject must be a single line"},
		{name: "empty BodyHTML", modify: func(p *email.SendEmailParams) { p.BodyHTML = "  " }, wantErr: true, errMsg: "BodyHTML is required"},
		{name: "invalid ReplyTo", modify: func(p *email.SendEmailParams) { p.ReplyTo = "nope" }, wantErr: true, errMsg: "ReplyTo must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := validParams()
			tt.modify(&params)

			err := params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	t.Run("dev is the default", func(t *testing.T) {
		t.Parallel()
		sender, err := email.NewSender(email.Config{DevDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &email.DevSender{}, sender)
	})

	t.Run("postmark", func(t *testing.T) {
		t.Parallel()
		sender, err := email.NewSender(email.Config{
			Provider:            "Postmark",
			SenderEmail:         "noreply@example.com",
			PostmarkServerToken: "token",
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("resend without key", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewSender(email.Config{Provider: "resend", SenderEmail: "noreply@example.com"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewSender(email.Config{Provider: "carrier-pigeon"})
		assert.ErrorIs(t, err, email.ErrUnknownProvider)
	})
}

func TestEmailSender_Interface(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	params := validParams()

	m := new(MockEmailSender)
	m.On("SendEmail", ctx, params).Return(email.ErrFailedToSendEmail)

	var sender email.EmailSender = m
	assert.ErrorIs(t, sender.SendEmail(ctx, params), email.ErrFailedToSendEmail)
	m.AssertExpectations(t)
}
