package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostcities/notify/pkg/email"
)

func TestNewPostmarkClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    email.Config
		errMsg string
	}{
		{name: "missing server token", cfg: email.Config{SenderEmail: "noreply@example.com"}, errMsg: "PostmarkServerToken is required"},
		{name: "missing sender", cfg: email.Config{PostmarkServerToken: "t"}, errMsg: "SenderEmail is required"},
		{name: "invalid sender", cfg: email.Config{PostmarkServerToken: "t", SenderEmail: "noreply"}, errMsg: "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := email.NewPostmarkClient(tt.cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, client)
		})
	}
}

func newPostmarkServer(t *testing.T, status int, reply string, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/email"))
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPostmarkClient_SendEmail(t *testing.T) {
	t.Parallel()

	cfg := email.Config{PostmarkServerToken: "server-token", SenderEmail: "noreply@example.com"}

	t.Run("sends message with reply-to", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		srv := newPostmarkServer(t, http.StatusOK, `{"ErrorCode":0,"Message":"OK","MessageID":"abc"}`, &got)
		client, err := email.NewPostmarkClient(cfg, email.WithPostmarkBaseURL(srv.URL))
		require.NoError(t, err)

		err = client.SendEmail(context.Background(), email.SendEmailParams{
			SendTo:   "admin@example.com",
			Subject:  "Contact form: Ana",
			BodyHTML: "<p>hi</p>",
			ReplyTo:  "ana@example.org",
			Tag:      "contact-form",
		})
		require.NoError(t, err)

		assert.Equal(t, "noreply@example.com", got["From"])
		assert.Equal(t, "admin@example.com", got["To"])
		assert.Equal(t, "Contact form: Ana", got["Subject"])
		assert.Equal(t, "<p>hi</p>", got["HtmlBody"])
		assert.Equal(t, "ana@example.org", got["ReplyTo"])
		assert.Equal(t, "contact-form", got["Tag"])
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()

		srv := newPostmarkServer(t, http.StatusOK, `{"ErrorCode":406,"Message":"Inactive recipient"}`, nil)
		client, err := email.NewPostmarkClient(cfg, email.WithPostmarkBaseURL(srv.URL))
		require.NoError(t, err)

		err = client.SendEmail(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "406")
	})

	t.Run("validation error skips the network", func(t *testing.T) {
		t.Parallel()

		client, err := email.NewPostmarkClient(cfg, email.WithPostmarkBaseURL("http://127.0.0.1:1"))
		require.NoError(t, err)

		err = client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "user@example.com"})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})
}
